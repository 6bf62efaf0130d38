package scenes

import (
	"fmt"
	"sort"

	"github.com/gruftwerk/gruft/internal/console"
	"github.com/gruftwerk/gruft/internal/game"
	"github.com/gruftwerk/gruft/internal/game/dungeon"
	"github.com/gruftwerk/gruft/internal/geometry"
	"github.com/gruftwerk/gruft/internal/scene"
	"github.com/gruftwerk/gruft/internal/scene/prompt"
)

// World plays a run of the game: the dungeon view centered on the
// player, the status panel and message log beside it, and the keys
// that turn into actions. It needs the engine to run the command line
// as a nested scene.
type World struct {
	engine *scene.Engine
}

// NewWorld makes the world scene on the engine that will run it.
func NewWorld(engine *scene.Engine) *World {
	return &World{engine: engine}
}

type worldAction int

const (
	leave worldAction = iota
	openInventory
	openCharacter
	openPrompt
	wait
	grab
	list
)

type walk geometry.Direction

type unknown string

// Render composes the frame out of the three windows.
func (w *World) Render(con *console.Buffer, g *game.Game) {
	l := splitScreen(con.Size())

	view := console.NewBuffer(l.view)
	renderView(view, g)
	con.Blit(view, geometry.Loc(0, 0), 1, 1)

	panel := console.NewBuffer(l.panel)
	renderPanel(panel, g)
	con.Blit(panel, l.panelAt, 1, 1)

	log := console.NewBuffer(l.log)
	renderMessages(log, g)
	con.Blit(log, l.logAt, 1, 1)
}

func renderView(con *console.Buffer, g *game.Game) {
	con.SetDefaultBackground(console.Black)
	con.Clear()

	focus := g.Objects[game.Player].Loc
	source := g.Map.Size()
	target := con.Size()

	for yMap := 0; yMap < source.Height; yMap++ {
		for xMap := 0; xMap < source.Width; xMap++ {
			loc, ok := geometry.Translate(source, target, geometry.Loc(xMap, yMap), focus)
			if !ok {
				continue
			}
			bg, glyph := tileColors(g.Map.At(geometry.Loc(xMap, yMap)))
			con.SetCharBackground(loc.X, loc.Y, bg)
			if glyph != 0 {
				con.SetDefaultForeground(console.LightGrey)
				con.PutChar(loc.X, loc.Y, glyph)
			}
		}
	}

	// Non-blockers first, so whatever stands on them draws over them.
	var toDraw []*game.Object
	for _, o := range g.Objects {
		if o.Visible {
			toDraw = append(toDraw, o)
		}
	}
	sort.SliceStable(toDraw, func(i, j int) bool {
		return !toDraw[i].Blocks && toDraw[j].Blocks
	})
	for _, o := range toDraw {
		if loc, ok := geometry.Translate(source, target, o.Loc, focus); ok {
			con.SetDefaultForeground(o.Color)
			con.PutChar(loc.X, loc.Y, o.Char)
		}
	}
}

// tileColors picks a tile's background, plus its glyph when it is lit.
func tileColors(t dungeon.Tile) (console.Color, rune) {
	switch {
	case !t.Explored:
		return console.Black, 0
	case t.Blocked && t.Visible:
		return console.DarkerGrey, '#'
	case t.Blocked:
		return console.DarkestGrey, 0
	case t.Visible:
		return console.DarkGrey, '.'
	default:
		return console.DarkerGrey, 0
	}
}

func renderPanel(con *console.Buffer, g *game.Game) {
	con.SetDefaultBackground(console.Black)
	con.Clear()

	player := g.Objects[game.Player]
	if player.Fighter != nil {
		Bar{
			Name:       "HP",
			Current:    player.Fighter.Health,
			Maximum:    player.Fighter.MaxHealth,
			Width:      con.Size().Width,
			Color:      console.Green,
			Background: console.Red,
		}.Draw(con, geometry.Loc(0, 0))
	}

	con.SetDefaultBackground(console.Black)
	con.SetDefaultForeground(console.White)
	const top = 2
	rows := con.Size().Height - top - 1
	opponents := g.FightersByDistance(game.Player, game.TorchRadius)
	for i := 0; i < len(opponents) && i < rows; i++ {
		o := g.Objects[opponents[len(opponents)-1-i]]
		if !g.Visible(o.Loc) {
			continue
		}
		con.PutCharEx(1, top+i, o.Char, o.Color, console.Black)
		con.Print(2, top+i, console.AlignLeft, " "+o.Name)
	}

	con.Print(1, con.Size().Height-1, console.AlignLeft, fmt.Sprintf("Turn: %d", g.TurnNumber))
}

func renderMessages(con *console.Buffer, g *game.Game) {
	con.SetDefaultBackground(console.Black)
	con.Clear()

	width := con.Size().Width
	remain := con.Size().Height
	msgs := g.Messages.All()
	for i := len(msgs) - 1; i >= 0; i-- {
		remain -= con.HeightRect(width, msgs[i].Text)
		if remain < 0 {
			break
		}
		con.SetDefaultForeground(msgs[i].Color)
		con.PrintRect(0, remain, width, 0, console.AlignLeft, msgs[i].Text)
	}
}

// Interpret maps keys and submitted commands onto world actions.
func (w *World) Interpret(ev scene.Event) any {
	switch ev := ev.(type) {
	case scene.KeyEvent:
		return interpretKey(ev.Key)
	case scene.CommandEvent:
		return interpretCommand(string(ev))
	}
	return nil
}

func interpretKey(key console.Key) any {
	switch key.Code {
	case console.KeyEscape:
		return leave
	case console.KeyUp:
		return walk(geometry.North)
	case console.KeyDown:
		return walk(geometry.South)
	case console.KeyLeft:
		return walk(geometry.West)
	case console.KeyRight:
		return walk(geometry.East)
	case console.KeyChar:
		switch key.Ch {
		case 'k':
			return walk(geometry.North)
		case 'j':
			return walk(geometry.South)
		case 'h':
			return walk(geometry.West)
		case 'l':
			return walk(geometry.East)
		case 'y':
			return walk(geometry.NorthWest)
		case 'u':
			return walk(geometry.NorthEast)
		case 'b':
			return walk(geometry.SouthWest)
		case 'n':
			return walk(geometry.SouthEast)
		case '.':
			return wait
		case ',':
			return grab
		case 'i':
			return openInventory
		case 'c':
			return openCharacter
		case '\'':
			return openPrompt
		}
	}
	return nil
}

func interpretCommand(cmd string) any {
	if cmd == "ls" {
		return list
	}
	return unknown(cmd)
}

// Update feeds one action into the game.
func (w *World) Update(action any, g *game.Game) scene.Transition[*game.Game] {
	switch a := action.(type) {
	case walk:
		act, msgs := g.MoveOrAttack(game.Player, geometry.Direction(a))
		g.Messages.Append(msgs...)
		if act.Kind != game.Nothing {
			g.Update(act)
		}
	case unknown:
		g.Messages.Log(console.White, "Unknown command: %q", string(a))
	case worldAction:
		switch a {
		case leave:
			return scene.Exit[*game.Game]()
		case openInventory:
			return scene.Next[*game.Game](&Inventory{world: w})
		case openCharacter:
			return scene.Next[*game.Game](&Character{world: w})
		case openPrompt:
			w.commandLine(g)
		case wait:
			g.Update(game.Action{Kind: game.Wait, Actor: game.Player})
		case grab:
			act, msgs := g.Grab(game.Player)
			g.Messages.Append(msgs...)
			if act.Kind != game.Nothing {
				g.Update(act)
			}
		case list:
			g.ListVisible()
		}
	}
	return scene.Continue[*game.Game]()
}

// commandLine runs the prompt as a nested scene over a snapshot of the
// current frame, then feeds the confirmed line back through the engine.
func (w *World) commandLine(g *game.Game) {
	backdrop := console.NewBuffer(w.engine.Size())
	backdrop.SetDefaultBackground(console.Black)
	backdrop.Clear()
	w.Render(backdrop, g)

	line, err := scene.Run(w.engine, &prompt.Line{}, prompt.New(backdrop))
	if err != nil {
		return
	}
	if cmd := line.String(); cmd != "" {
		w.engine.Submit(scene.CommandEvent(cmd))
	}
}
