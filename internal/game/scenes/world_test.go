package scenes

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gruftwerk/gruft/internal/console"
	"github.com/gruftwerk/gruft/internal/game"
	"github.com/gruftwerk/gruft/internal/game/dungeon"
	"github.com/gruftwerk/gruft/internal/geometry"
	"github.com/gruftwerk/gruft/internal/scene"
)

func TestTileColors(t *testing.T) {
	tile := func(blocked, explored, visible bool) dungeon.Tile {
		tl := dungeon.Floor()
		if blocked {
			tl = dungeon.Wall()
		}
		tl.Explored = explored
		tl.Visible = visible
		return tl
	}

	cases := []struct {
		name                       string
		blocked, explored, visible bool
		bg                         console.Color
		glyph                      rune
	}{
		{"lit wall", true, true, true, console.DarkerGrey, '#'},
		{"remembered wall", true, true, false, console.DarkestGrey, 0},
		{"lit floor", false, true, true, console.DarkGrey, '.'},
		{"remembered floor", false, true, false, console.DarkerGrey, 0},
		{"unexplored", true, false, false, console.Black, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			bg, glyph := tileColors(tile(c.blocked, c.explored, c.visible))
			assert.Equal(t, c.bg, bg)
			assert.Equal(t, c.glyph, glyph)
		})
	}
}

func TestInterpretKey(t *testing.T) {
	cases := []struct {
		name string
		key  console.Key
		want any
	}{
		{"k", console.Char('k', false), walk(geometry.North)},
		{"j", console.Char('j', false), walk(geometry.South)},
		{"h", console.Char('h', false), walk(geometry.West)},
		{"l", console.Char('l', false), walk(geometry.East)},
		{"y", console.Char('y', false), walk(geometry.NorthWest)},
		{"u", console.Char('u', false), walk(geometry.NorthEast)},
		{"b", console.Char('b', false), walk(geometry.SouthWest)},
		{"n", console.Char('n', false), walk(geometry.SouthEast)},
		{"up", console.Key{Code: console.KeyUp}, walk(geometry.North)},
		{"down", console.Key{Code: console.KeyDown}, walk(geometry.South)},
		{"left", console.Key{Code: console.KeyLeft}, walk(geometry.West)},
		{"right", console.Key{Code: console.KeyRight}, walk(geometry.East)},
		{"wait", console.Char('.', false), wait},
		{"grab", console.Char(',', false), grab},
		{"inventory", console.Char('i', false), openInventory},
		{"character", console.Char('c', false), openCharacter},
		{"prompt", console.Char('\'', false), openPrompt},
		{"escape", console.Key{Code: console.KeyEscape}, leave},
		{"unbound letter", console.Char('x', false), nil},
		{"enter", console.Key{Code: console.KeyEnter}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, interpretKey(c.key))
		})
	}
}

func TestInterpretCommand(t *testing.T) {
	assert.Equal(t, list, interpretCommand("ls"))
	assert.Equal(t, unknown("frobnicate"), interpretCommand("frobnicate"))
}

func TestWorld_update(t *testing.T) {
	t.Run("walking commits a turn", func(t *testing.T) {
		g := newGame()
		w := NewWorld(nil)
		from := g.Objects[game.Player].Loc

		tr := w.Update(walk(geometry.East), g)

		assert.Equal(t, scene.Continue[*game.Game](), tr)
		assert.Equal(t, geometry.Loc(from.X+1, from.Y), g.Objects[game.Player].Loc)
		assert.Equal(t, 1, g.TurnNumber)
	})

	t.Run("waiting commits a turn", func(t *testing.T) {
		g := newGame()
		w := NewWorld(nil)
		from := g.Objects[game.Player].Loc

		w.Update(wait, g)

		assert.Equal(t, from, g.Objects[game.Player].Loc)
		assert.Equal(t, 1, g.TurnNumber)
	})

	t.Run("grabbing nothing burns no turn", func(t *testing.T) {
		g := newGame()
		w := NewWorld(nil)

		w.Update(grab, g)

		assert.Equal(t, 0, g.TurnNumber)
		msgs := texts(g.Messages.All())
		assert.Equal(t, "There is nothing here to pick up.", msgs[len(msgs)-1])
	})

	t.Run("grabbing picks up what is underfoot", func(t *testing.T) {
		g := newGame()
		w := NewWorld(nil)
		g.Objects = append(g.Objects, game.NewHealingPotion(g.Objects[game.Player].Loc))

		w.Update(grab, g)

		assert.Equal(t, 1, g.TurnNumber)
		require.Len(t, g.Inventory, 1)
		assert.Contains(t, texts(g.Messages.All()), "You pick up a healing potion.")
	})

	t.Run("escape leaves the world", func(t *testing.T) {
		g := newGame()
		w := NewWorld(nil)

		assert.Equal(t, scene.Exit[*game.Game](), w.Update(leave, g))
	})

	t.Run("overlays push onto the stack", func(t *testing.T) {
		g := newGame()
		w := NewWorld(nil)

		inv := w.Update(openInventory, g)
		assert.Equal(t, scene.Next[*game.Game](&Inventory{world: w}), inv)

		char := w.Update(openCharacter, g)
		assert.Equal(t, scene.Next[*game.Game](&Character{world: w}), char)
	})

	t.Run("unknown commands land in the log", func(t *testing.T) {
		g := newGame()
		w := NewWorld(nil)

		w.Update(unknown("frobnicate"), g)

		msgs := texts(g.Messages.All())
		assert.Equal(t, `Unknown command: "frobnicate"`, msgs[len(msgs)-1])
	})

	t.Run("ls lists what is visible", func(t *testing.T) {
		g := newGame()
		w := NewWorld(nil)
		at := g.Objects[game.Player].Loc
		g.Objects = append(g.Objects, game.NewHealingPotion(geometry.Loc(at.X+1, at.Y)))
		w.Update(wait, g) // refresh marks the potion visible

		w.Update(list, g)

		msgs := texts(g.Messages.All())
		assert.Equal(t, "You see a healing potion", msgs[len(msgs)-1])
	})
}

func TestWorld_render(t *testing.T) {
	g := newGame()
	con := frame(NewWorld(nil), g)
	lines := con.Lines(' ')

	// The view keeps the player at its center.
	assert.Equal(t, uint8('@'), lines[22][34])
	assert.Equal(t, console.Yellow, con.Get(34, 22).Fg)
	assert.Equal(t, console.DarkGrey, con.Get(34, 22).Bg)

	// The panel shows a full health bar and the turn counter.
	assert.Contains(t, lines[2], "HP: 30/30")
	assert.Equal(t, console.Green, con.Get(70, 2).Bg)
	assert.Contains(t, lines[11], "Turn: 0")

	// The intro lands at the bottom of the message window.
	assert.Contains(t, strings.Join(lines, "\n"), "Prepare yourself.")
	assert.Contains(t, lines[52], "Prepare yourself.")
}

func TestWorld_panelListsOpponents(t *testing.T) {
	g := newGame()
	at := g.Objects[game.Player].Loc
	g.Objects = append(g.Objects, game.NewOrc(geometry.Loc(at.X+1, at.Y)))
	NewWorld(nil).Update(wait, g) // refresh marks the orc visible

	con := frame(NewWorld(nil), g)
	lines := con.Lines(' ')

	assert.Equal(t, uint8('o'), lines[4][71])
	assert.Contains(t, lines[4], " orc")
}

func TestWorld_commandLine(t *testing.T) {
	g := newGame()
	screen := &keyScreen{keys: []console.Key{
		console.Char('\'', false),
		console.Char('x', false),
		console.Char('y', false),
		{Code: console.KeyEnter},
		{Code: console.KeyEscape},
	}}
	eng := scene.NewEngine(screen, screen.Size(), zerolog.Nop())

	_, err := scene.Run(eng, g, NewWorld(eng))

	require.NoError(t, err)
	msgs := texts(g.Messages.All())
	assert.Equal(t, `Unknown command: "xy"`, msgs[len(msgs)-1])
	assert.Equal(t, 0, g.TurnNumber)
}

func TestWorld_commandLineCancelled(t *testing.T) {
	g := newGame()
	screen := &keyScreen{keys: []console.Key{
		console.Char('\'', false),
		console.Char('x', false),
		{Code: console.KeyEscape}, // cancels the prompt
		{Code: console.KeyEscape}, // leaves the world
	}}
	eng := scene.NewEngine(screen, screen.Size(), zerolog.Nop())

	_, err := scene.Run(eng, g, NewWorld(eng))

	require.NoError(t, err)
	assert.Len(t, g.Messages.All(), 1) // only the intro
}
