package scenes

import (
	"fmt"

	"github.com/gruftwerk/gruft/internal/console"
	"github.com/gruftwerk/gruft/internal/game"
	"github.com/gruftwerk/gruft/internal/geometry"
	"github.com/gruftwerk/gruft/internal/scene"
)

// Character shows the player sheet over a dimmed world view. Any key
// closes it.
type Character struct {
	world *World
}

// Render draws the world underneath and the sheet on top.
func (c *Character) Render(con *console.Buffer, g *game.Game) {
	c.world.Render(con, g)

	player := g.Objects[game.Player]
	sheet := fmt.Sprintf(
		"Character\n\nName: %s\nTurn: %d\n\nHP: %d/%d\nPower: %d\nDefense: %d",
		player.Name,
		g.TurnNumber,
		player.Fighter.Health,
		player.Fighter.MaxHealth,
		player.Fighter.Power,
		player.Fighter.Defense,
	)

	window := console.NewBuffer(geometry.Dim(overlayWidth, con.HeightRect(overlayWidth, sheet)))
	window.SetDefaultForeground(console.White)
	window.PrintRect(0, 0, overlayWidth, 0, console.AlignLeft, sheet)
	blitOverView(con, window)
}

// Interpret reports any key press as a dismissal.
func (c *Character) Interpret(ev scene.Event) any {
	if _, ok := ev.(scene.KeyEvent); ok {
		return dismiss{}
	}
	return nil
}

// Update closes the sheet.
func (c *Character) Update(action any, g *game.Game) scene.Transition[*game.Game] {
	return scene.Exit[*game.Game]()
}
