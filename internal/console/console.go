// Package console provides the character-cell rendering and input
// boundary: an off-screen cell Buffer with draw and composite
// primitives, structured Key events, and a Screen interface with
// interchangeable terminal drivers.
package console

import (
	"strings"

	"github.com/gruftwerk/gruft/internal/geometry"
)

// Color names a cell color. The zero value means the driver's default.
type Color uint8

// The palette. Drivers map these onto their own color models.
const (
	Default Color = iota
	Black
	White
	Red
	DarkRed
	Green
	DarkGreen
	Yellow
	Blue
	DarkBlue
	LightGrey
	Grey
	DarkGrey
	DarkerGrey
	DarkestGrey
)

// Dim returns the next darker palette neighbor of a color. Used by Blit
// to approximate partial background opacity on a cell terminal.
func (c Color) Dim() Color {
	switch c {
	case White:
		return Grey
	case LightGrey, Grey:
		return DarkGrey
	case DarkGrey:
		return DarkerGrey
	case DarkerGrey:
		return DarkestGrey
	case DarkestGrey:
		return Black
	case Red, DarkRed:
		return DarkRed
	case Green, DarkGreen:
		return DarkGreen
	case Blue, DarkBlue:
		return DarkBlue
	case Yellow:
		return DarkGrey
	default:
		return c
	}
}

// Align selects the anchor for printed text.
type Align int

// Text alignments.
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Cell is one character cell. A zero Ch marks the cell unset; drivers
// show unset cells as blanks and Blit treats them as transparent.
type Cell struct {
	Ch     rune
	Fg, Bg Color
}

// Buffer is a sized off-screen grid of cells. All drawing happens against
// a Buffer; a Screen shows finished buffers.
type Buffer struct {
	dim   geometry.Dimension
	cells []Cell

	fg, bg Color
}

// NewBuffer makes a cleared buffer of the given dimension.
func NewBuffer(dim geometry.Dimension) *Buffer {
	return &Buffer{
		dim:   dim,
		cells: make([]Cell, dim.Width*dim.Height),
	}
}

// Size returns the buffer dimension.
func (b *Buffer) Size() geometry.Dimension { return b.dim }

// SetDefaultForeground sets the color used by PutChar and the Print
// family.
func (b *Buffer) SetDefaultForeground(c Color) { b.fg = c }

// SetDefaultBackground sets the color used by Clear, Fill, and the Print
// family.
func (b *Buffer) SetDefaultBackground(c Color) { b.bg = c }

// Clear fills the whole buffer with blanks in the default colors.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{Ch: ' ', Fg: b.fg, Bg: b.bg}
	}
}

// Get returns the cell at a position. Out-of-bounds reads return the
// zero cell.
func (b *Buffer) Get(x, y int) Cell {
	if !b.in(x, y) {
		return Cell{}
	}
	return b.cells[y*b.dim.Width+x]
}

// PutChar draws a glyph in the default foreground, leaving the cell
// background in place.
func (b *Buffer) PutChar(x, y int, ch rune) {
	if !b.in(x, y) {
		return
	}
	i := y*b.dim.Width + x
	b.cells[i].Ch = ch
	b.cells[i].Fg = b.fg
}

// PutCharEx draws a glyph with explicit foreground and background.
func (b *Buffer) PutCharEx(x, y int, ch rune, fg, bg Color) {
	if !b.in(x, y) {
		return
	}
	b.cells[y*b.dim.Width+x] = Cell{Ch: ch, Fg: fg, Bg: bg}
}

// SetCharBackground paints only the background of a cell.
func (b *Buffer) SetCharBackground(x, y int, c Color) {
	if !b.in(x, y) {
		return
	}
	b.cells[y*b.dim.Width+x].Bg = c
}

// Fill paints the default background over a rectangle, leaving glyphs in
// place.
func (b *Buffer) Fill(x, y, w, h int) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			b.SetCharBackground(xx, yy, b.bg)
		}
	}
}

// Print writes text anchored at x according to the alignment, in the
// default colors. Newlines continue on the next row with the same
// anchor.
func (b *Buffer) Print(x, y int, align Align, text string) {
	for i, line := range strings.Split(text, "\n") {
		b.printLine(x, y+i, align, line)
	}
}

func (b *Buffer) printLine(x, y int, align Align, line string) {
	runes := []rune(line)
	switch align {
	case AlignCenter:
		x -= len(runes) / 2
	case AlignRight:
		x -= len(runes) - 1
	}
	for i, r := range runes {
		if !b.in(x+i, y) {
			continue
		}
		j := y*b.dim.Width + x + i
		b.cells[j] = Cell{Ch: r, Fg: b.fg, Bg: b.bg}
	}
}

// PrintRect writes text word-wrapped to the given width, anchored per
// line like Print. When h is positive, lines past the limit are dropped.
// It returns the number of lines drawn.
func (b *Buffer) PrintRect(x, y, w, h int, align Align, text string) int {
	lines := wrap(text, w)
	if h > 0 && len(lines) > h {
		lines = lines[:h]
	}
	for i, line := range lines {
		b.printLine(x, y+i, align, line)
	}
	return len(lines)
}

// HeightRect measures how many lines PrintRect would use for the text at
// the given width, without drawing.
func (b *Buffer) HeightRect(w int, text string) int {
	return len(wrap(text, w))
}

// Blit composites src onto this buffer with its top-left cell at `at`.
// Cells falling outside the destination are clipped. fgAlpha and bgAlpha
// select how glyphs and backgrounds carry over: at or above 1.0 the
// source replaces the destination; between 0 and 1 the glyph carries in
// a dimmed foreground and a black or default source background instead
// dims whatever the destination already shows; at or below 0 the
// destination is untouched. Unset source cells never overwrite glyphs.
func (b *Buffer) Blit(src *Buffer, at geometry.Location, fgAlpha, bgAlpha float64) {
	for sy := 0; sy < src.dim.Height; sy++ {
		for sx := 0; sx < src.dim.Width; sx++ {
			dx, dy := at.X+sx, at.Y+sy
			if !b.in(dx, dy) {
				continue
			}
			s := src.cells[sy*src.dim.Width+sx]
			i := dy*b.dim.Width + dx

			if fgAlpha > 0 && s.Ch != 0 {
				b.cells[i].Ch = s.Ch
				if fgAlpha >= 1 {
					b.cells[i].Fg = s.Fg
				} else {
					b.cells[i].Fg = s.Fg.Dim()
				}
			}

			if bgAlpha > 0 {
				switch {
				case bgAlpha >= 1:
					b.cells[i].Bg = s.Bg
				case s.Bg == Black || s.Bg == Default:
					b.cells[i].Bg = b.cells[i].Bg.Dim()
				default:
					b.cells[i].Bg = s.Bg
				}
			}
		}
	}
}

// Lines returns a slice of row strings from the buffer, filling in any
// unset runes with the given one.
func (b *Buffer) Lines(fillZero rune) []string {
	lines := make([]string, b.dim.Height)
	line := make([]rune, b.dim.Width)
	for y, i := 0, 0; y < b.dim.Height; y++ {
		for x := 0; x < b.dim.Width; x++ {
			if ch := b.cells[i].Ch; ch != 0 {
				line[x] = ch
			} else {
				line[x] = fillZero
			}
			i++
		}
		lines[y] = string(line)
	}
	return lines
}

func (b *Buffer) in(x, y int) bool {
	return x >= 0 && x < b.dim.Width && y >= 0 && y < b.dim.Height
}

// wrap splits text into lines no wider than w, breaking on spaces where
// possible and mid-word when a word alone exceeds the width. Explicit
// newlines force breaks; an empty paragraph still takes a line.
func wrap(text string, w int) []string {
	if w < 1 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := ""
		for _, word := range words {
			for len([]rune(word)) > w {
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				runes := []rune(word)
				lines = append(lines, string(runes[:w]))
				word = string(runes[w:])
			}
			switch {
			case line == "":
				line = word
			case len([]rune(line))+1+len([]rune(word)) <= w:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	return lines
}
