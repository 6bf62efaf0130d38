package scenes

import (
	"fmt"
	"unicode"

	"github.com/gruftwerk/gruft/internal/console"
	"github.com/gruftwerk/gruft/internal/game"
	"github.com/gruftwerk/gruft/internal/geometry"
	"github.com/gruftwerk/gruft/internal/scene"
)

const overlayWidth = 25

// Inventory lists the carried items over a dimmed world view. A letter
// uses the item in that slot; any other key just closes the list.
type Inventory struct {
	world *World
}

type pick int

// Render draws the world underneath and the item list on top.
func (inv *Inventory) Render(con *console.Buffer, g *game.Game) {
	inv.world.Render(con, g)

	lines := []string{"Inventory"}
	for i, item := range g.Inventory {
		lines = append(lines, fmt.Sprintf("%c %s", 'a'+i, item.Name))
	}
	if len(g.Inventory) == 0 {
		lines = append(lines, "Inventory is empty.")
	}

	window := console.NewBuffer(geometry.Dim(overlayWidth, len(lines)))
	window.SetDefaultForeground(console.White)
	for y, line := range lines {
		window.Print(0, y, console.AlignLeft, line)
	}
	blitOverView(con, window)
}

// Interpret turns letters into slot picks and anything else into a
// dismissal.
func (inv *Inventory) Interpret(ev scene.Event) any {
	k, ok := ev.(scene.KeyEvent)
	if !ok {
		return nil
	}
	if k.Key.Code == console.KeyChar {
		if ch := unicode.ToLower(k.Key.Ch); ch >= 'a' && ch <= 'z' {
			return pick(ch - 'a')
		}
	}
	return dismiss{}
}

// Update uses the picked item, if there is one, and closes the list.
func (inv *Inventory) Update(action any, g *game.Game) scene.Transition[*game.Game] {
	if slot, ok := action.(pick); ok && int(slot) < len(g.Inventory) {
		g.Update(game.Action{Kind: game.UseItem, Actor: game.Player, Slot: int(slot)})
	}
	return scene.Exit[*game.Game]()
}
