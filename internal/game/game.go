// Package game holds the world state of one dungeon run and resolves
// the actions that change it. A turn is player action, refresh,
// monster replies, then a rollover that settles deaths and
// regeneration and commits the history.
package game

import (
	"github.com/rs/zerolog"

	"github.com/gruftwerk/gruft/internal/console"
	"github.com/gruftwerk/gruft/internal/dice"
	"github.com/gruftwerk/gruft/internal/fov"
	"github.com/gruftwerk/gruft/internal/game/dungeon"
	"github.com/gruftwerk/gruft/internal/geometry"
)

// TorchRadius is how far the player sees.
const TorchRadius = 10

const (
	fovLightWalls   = true
	healAmount      = 10
	lightningRange  = 3
	lightningDamage = 10
	confuseRange    = 5
	confuseTurns    = 5
	inventoryCap    = 26
)

// Turn records the actions resolved in one committed turn.
type Turn struct {
	Number int
	Player []Action
	AI     []Action
}

// Game is the world of one run: the map, every object on it, the
// player's inventory, and the log.
type Game struct {
	Map        *dungeon.Map
	Objects    []*Object
	Inventory  []*Object
	Messages   *Messages
	History    []Turn
	TurnNumber int

	fov        *fov.Map
	rng        dice.Roller
	log        zerolog.Logger
	playerTurn []Action
}

// spawner feeds dungeon placements into the object table in placement
// order.
type spawner struct {
	g *Game
}

func (s spawner) PlaceMonster(sp dungeon.Species, loc geometry.Location) {
	var o *Object
	switch sp {
	case dungeon.Orc:
		o = NewOrc(loc)
	case dungeon.Troll:
		o = NewTroll(loc)
	case dungeon.Ogre:
		o = NewOgre(loc)
	default:
		panic("unknown species")
	}
	s.g.Objects = append(s.g.Objects, o)
}

func (s spawner) PlaceItem(l dungeon.Loot, loc geometry.Location) {
	switch l {
	case dungeon.HealingPotion:
		s.g.Objects = append(s.g.Objects, NewHealingPotion(loc))
	case dungeon.LightningScroll:
		s.g.Objects = append(s.g.Objects, NewLightningScroll(loc))
	}
}

func (s spawner) BlockedAt(loc geometry.Location) bool {
	return s.g.blockedAt(loc)
}

// New generates a dungeon and drops a fresh player into its first
// room.
func New(name string, p dungeon.Params, r dice.Roller, log zerolog.Logger) *Game {
	g := &Game{
		Messages: NewMessages(),
		rng:      r,
		log:      log,
	}
	g.Objects = []*Object{NewPlayer(name, geometry.Loc(0, 0))}

	m, spawn := dungeon.Generate(r, p, spawner{g})
	g.Map = m
	g.Objects[Player].Loc = spawn

	dim := m.Size()
	g.fov = fov.New(dim)
	for y := 0; y < dim.Height; y++ {
		for x := 0; x < dim.Width; x++ {
			t := m.At(geometry.Loc(x, y))
			g.fov.Set(x, y, !t.BlocksSight, !t.Blocked)
		}
	}

	g.refresh()
	g.Messages.Log(console.Green, "You've stumbled into some very rusty caves. Prepare yourself.")

	g.log.Info().
		Str("player", name).
		Int("objects", len(g.Objects)).
		Msg("game generated")
	return g
}

// Update resolves one player action and, when it consumes the turn,
// the monsters' replies. Deaths and regeneration settle during the
// rollover at the end of a full turn.
func (g *Game) Update(a Action) {
	g.log.Debug().
		Stringer("action", a.Kind).
		Int("actor", int(a.Actor)).
		Msg("resolving player action")

	g.playerTurn = append(g.playerTurn, a)
	g.play([]Action{a})
	g.refresh()

	if !a.TookTurn() {
		return
	}

	batch := g.aiTurns()
	g.play(batch)

	g.updateFOV()
	g.updateMap()
	g.Messages.Append(g.updateObjects(true)...)

	g.History = append(g.History, Turn{Number: g.TurnNumber, Player: g.playerTurn, AI: batch})
	g.TurnNumber++
	g.playerTurn = nil

	g.log.Debug().
		Int("turn", g.TurnNumber).
		Int("monsterActions", len(batch)).
		Msg("turn committed")
}

// play resolves a batch of actions in order, logging their messages.
func (g *Game) play(actions []Action) {
	for _, a := range actions {
		g.Messages.Append(g.resolve(a)...)
	}
}

// aiTurns runs every monster mind once, in table order, and collects
// their actions.
func (g *Game) aiTurns() []Action {
	var batch []Action
	for id := 1; id < len(g.Objects); id++ {
		o := g.Objects[id]
		if o.Mind == nil {
			continue
		}
		actions, next := o.Mind.Think(ID(id), g, g.rng)
		batch = append(batch, actions...)
		o.Mind = next
	}
	return batch
}

// refresh recomputes sight and settles the object table after an
// action, without advancing regeneration.
func (g *Game) refresh() {
	g.updateFOV()
	g.updateMap()
	g.Messages.Append(g.updateObjects(false)...)
}

func (g *Game) updateFOV() {
	g.fov.Compute(g.Objects[Player].Loc, TorchRadius, fovLightWalls, fov.ShadowCast)
}

// updateMap folds the computed field of view into the tiles. Seeing a
// tile explores it for good.
func (g *Game) updateMap() {
	dim := g.Map.Size()
	for y := 0; y < dim.Height; y++ {
		for x := 0; x < dim.Width; x++ {
			t := g.Map.Ref(geometry.Loc(x, y))
			if g.fov.IsVisible(x, y) {
				t.Explored = true
				t.Visible = true
			} else {
				t.Visible = false
			}
		}
	}
}

// updateObjects settles visibility and deaths for every object. A full
// update, run once per committed turn, also regenerates the living.
func (g *Game) updateObjects(full bool) []Message {
	var msgs []Message
	for _, o := range g.Objects {
		o.Visible = g.Visible(o.Loc)
		if o.Visible && !o.Seen {
			o.Seen = true
			msgs = append(msgs, Message{
				Text:  "You see " + indirect(o.Name, false),
				Color: console.White,
			})
		}

		if o.Fighter != nil && o.Fighter.Health <= 0 && o.Alive {
			switch o.Fighter.OnDeath {
			case PlayerDeath:
				msgs = append(msgs, g.killPlayer(o)...)
			case MonsterDeath:
				msgs = append(msgs, g.killMonster(o)...)
			}
		}

		if full && o.Alive {
			regenerate(o, g.rng)
		}
	}
	return msgs
}

// Visible reports whether the player currently sees the location.
func (g *Game) Visible(loc geometry.Location) bool {
	return g.fov.IsVisible(loc.X, loc.Y)
}

// ListVisible logs everything the player currently sees.
func (g *Game) ListVisible() {
	for id, o := range g.Objects {
		if ID(id) == Player || !o.Visible {
			continue
		}
		g.Messages.Log(console.White, "You see %s", indirect(o.Name, false))
	}
}
