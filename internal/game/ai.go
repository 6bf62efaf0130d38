package game

import "github.com/gruftwerk/gruft/internal/dice"

// Mind drives a monster. Think inspects the world and returns the
// actions to take this turn plus the mind for the next one. Minds
// never mutate the game themselves; their actions do.
type Mind interface {
	Think(id ID, g *Game, r dice.Roller) ([]Action, Mind)
}

// Basic hunts the player on sight: it closes the distance, sometimes
// barking, and attacks once adjacent. Losing sight of its spot drops it
// back to Idle.
type Basic struct{}

// Idle loiters out of sight, occasionally mumbling, until the player
// torch reaches it.
type Idle struct{}

// Confused stumbles for a number of turns, then snaps back to the mind
// it wrapped.
type Confused struct {
	Previous  Mind
	TurnsLeft int
}

func (Basic) Think(id ID, g *Game, r dice.Roller) ([]Action, Mind) {
	monster := g.Objects[id]
	if !g.Visible(monster.Loc) {
		return nil, Idle{}
	}

	player := g.Objects[Player]
	if monster.Loc.Distance(player.Loc) >= 2.0 {
		var actions []Action
		if dice.D12(r) > 11 {
			actions = append(actions, Action{Kind: Bark, Actor: id})
		}
		actions = append(actions, Action{
			Kind:  Move,
			Actor: id,
			Dir:   monster.Loc.Toward(player.Loc),
		})
		return actions, Basic{}
	}

	if player.Fighter != nil && player.Fighter.Health > 0 {
		return []Action{{Kind: Attack, Actor: id, Target: Player}}, Basic{}
	}
	return nil, Basic{}
}

func (Idle) Think(id ID, g *Game, r dice.Roller) ([]Action, Mind) {
	if g.Visible(g.Objects[id].Loc) {
		return nil, Basic{}
	}
	if dice.DX(r, 1000) > 999 {
		return []Action{{Kind: Mumble, Actor: id}}, Idle{}
	}
	return nil, Idle{}
}

func (c Confused) Think(id ID, g *Game, r dice.Roller) ([]Action, Mind) {
	if c.TurnsLeft >= 1 {
		return nil, Confused{Previous: c.Previous, TurnsLeft: c.TurnsLeft - 1}
	}
	return nil, c.Previous
}
