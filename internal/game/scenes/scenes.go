// Package scenes binds the generic scene engine to the game: the main
// menu, the world view with its sidebar, the inventory and character
// overlays. Scenes hold no game state; they render the world they are
// given and turn key presses into actions against it.
package scenes

import (
	"github.com/gruftwerk/gruft/internal/console"
	"github.com/gruftwerk/gruft/internal/geometry"
)

// The sidebar takes this share of the screen width; the status panel
// sits above the message log inside it.
const (
	sidebarShare = 30
	panelHeight  = 10
)

// Settings is what the menu collects before a run starts.
type Settings struct {
	Name  string
	Start bool
}

// layout carves the frame into the dungeon view and the two sidebar
// windows, each with a margin around it.
type layout struct {
	view geometry.Dimension

	panelAt geometry.Location
	panel   geometry.Dimension

	logAt geometry.Location
	log   geometry.Dimension
}

func splitScreen(frame geometry.Dimension) layout {
	sidebar := frame.Width * sidebarShare / 100
	left := frame.Width - sidebar

	panelTop := 2
	logTop := panelTop + panelHeight + 2
	return layout{
		view:    geometry.Dim(left-2, frame.Height-panelHeight-2),
		panelAt: geometry.Loc(left+2, panelTop),
		panel:   geometry.Dim(sidebar-4, panelHeight),
		logAt:   geometry.Loc(left+2, logTop),
		log:     geometry.Dim(sidebar-4, frame.Height-logTop-1),
	}
}

// dismiss closes an overlay scene.
type dismiss struct{}

// blitOverView centers a window over the dungeon view and lays it on
// translucently, dimming the world underneath.
func blitOverView(con, window *console.Buffer) {
	l := splitScreen(con.Size())
	at := geometry.Loc(
		l.view.Width/2-window.Size().Width/2,
		l.view.Height/2-window.Size().Height/2,
	)
	con.Blit(window, at, 1.0, 0.7)
}
