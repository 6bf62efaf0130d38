package scenes

import (
	"fmt"

	"github.com/gruftwerk/gruft/internal/console"
	"github.com/gruftwerk/gruft/internal/geometry"
)

// Bar is a one-row gauge: a filled fraction over a background color
// with "Name: current/maximum" printed on top of both.
type Bar struct {
	Name       string
	Current    int
	Maximum    int
	Width      int
	Color      console.Color
	Background console.Color
}

// Draw paints the bar with its left end at `at`, clamped to the buffer.
func (bar Bar) Draw(con *console.Buffer, at geometry.Location) {
	width := bar.Width
	if room := con.Size().Width - at.X; room < width {
		width = room
	}
	if width <= 0 {
		return
	}

	con.SetDefaultBackground(bar.Background)
	con.Fill(at.X, at.Y, width, 1)

	filled := int(float64(bar.Current) / float64(bar.Maximum) * float64(width))
	if filled > 0 {
		con.SetDefaultBackground(bar.Color)
		con.Fill(at.X, at.Y, filled, 1)
	}

	// PutChar keeps the cell background, so the label shows the fill
	// level through it.
	con.SetDefaultForeground(console.Black)
	label := fmt.Sprintf("%s: %d/%d", bar.Name, bar.Current, bar.Maximum)
	for i, r := range []rune(label) {
		con.PutChar(at.X+2+i, at.Y, r)
	}
}
