package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gruftwerk/gruft/internal/console"
	"github.com/gruftwerk/gruft/internal/dice"
	"github.com/gruftwerk/gruft/internal/geometry"
)

// indirect prefixes a name with its indefinite article.
func indirect(name string, capital bool) string {
	article := "a"
	if name != "" && strings.ContainsRune("aeiou", rune(name[0])) {
		article = "an"
	}
	if capital {
		article = strings.ToUpper(article[:1]) + article[1:]
	}
	return article + " " + name
}

// direct prefixes a name with the definite article.
func direct(name string, capital bool) string {
	if capital {
		return "The " + name
	}
	return "the " + name
}

// MoveOrAttack turns a directional intent into a move, or an attack on
// whatever fighter stands in the way. The intent dies with a message
// when the way is taken by something unattackable.
func (g *Game) MoveOrAttack(actor ID, dir geometry.Direction) (Action, []Message) {
	dest := g.Objects[actor].Loc.Add(dir)

	if g.blockedAt(dest) {
		for id, o := range g.Objects {
			if o.Loc.Equal(dest) && o.Fighter != nil {
				return Action{Kind: Attack, Actor: actor, Target: ID(id)}, nil
			}
		}
		return Action{}, []Message{{Text: "Cannot attack that.", Color: console.White}}
	}
	if g.Map.At(dest).Blocked {
		return Action{}, []Message{{Text: "It's blocked.", Color: console.White}}
	}
	return Action{Kind: Move, Actor: actor, Dir: dir}, nil
}

// Grab turns a pickup intent into an action when an item lies under
// the actor.
func (g *Game) Grab(actor ID) (Action, []Message) {
	loc := g.Objects[actor].Loc
	for id, o := range g.Objects {
		if o.Loc.Equal(loc) && o.Item != NoItem {
			return Action{Kind: PickUp, Actor: actor, Target: ID(id)}, nil
		}
	}
	return Action{}, []Message{{Text: "There is nothing here to pick up.", Color: console.White}}
}

// resolve mutates the game for one action and returns its messages.
func (g *Game) resolve(a Action) []Message {
	switch a.Kind {
	case Move:
		return g.resolveMove(a)
	case Attack:
		return g.resolveAttack(a)
	case PickUp:
		return g.resolvePickUp(a)
	case UseItem:
		return g.resolveUseItem(a)
	case Bark:
		return g.resolveBark(a)
	case Mumble:
		return g.resolveMumble(a)
	}
	return nil
}

// resolveMove carries an object one step, sliding along a single axis
// when the full direction is blocked. A failed speed roll wastes the
// turn silently.
func (g *Game) resolveMove(a Action) []Message {
	o := g.Objects[a.Actor]
	if o.Movement == nil {
		return nil
	}
	if o.Movement.Speed < dice.D100(g.rng) {
		return nil
	}
	for _, dir := range []geometry.Direction{a.Dir, a.Dir.Horizontal(), a.Dir.Vertical()} {
		if g.moveBy(o, dir) {
			return nil
		}
	}
	return []Message{{Text: "The way is blocked!", Color: console.White}}
}

// moveBy steps an object when neither the map nor a blocking object is
// in the way.
func (g *Game) moveBy(o *Object, dir geometry.Direction) bool {
	dest := o.Loc.Add(dir)
	if g.Map.At(dest).Blocked {
		return false
	}
	if g.blockedAt(dest) {
		return false
	}
	o.Loc = dest
	return true
}

// blockedAt reports whether a blocking object occupies the location.
func (g *Game) blockedAt(loc geometry.Location) bool {
	for _, o := range g.Objects {
		if o.Blocks && o.Loc.Equal(loc) {
			return true
		}
	}
	return false
}

// resolveAttack rolls the attacker's power against the defender's
// defense and applies any surplus as damage.
func (g *Game) resolveAttack(a Action) []Message {
	attacker := g.Objects[a.Actor]
	defender := g.Objects[a.Target]

	if defender.Fighter == nil {
		return []Message{{Text: "Cannot attack that!", Color: console.White}}
	}

	var power int
	if attacker.Fighter != nil {
		power = dice.DX(g.rng, attacker.Fighter.Power)
	}
	damage := power - dice.DX(g.rng, defender.Fighter.Defense)

	subject, verb := "You", "attack"
	if a.Actor != Player {
		subject = direct(attacker.Name, true)
		verb = "attacks"
	}
	object := direct(defender.Name, false)
	if a.Target == Player {
		object = "you"
	}
	prefix := fmt.Sprintf("%s %s %s", subject, verb, object)

	if damage > 0 {
		defender.Fighter.TakeDamage(damage)
		return []Message{{Text: fmt.Sprintf("%s for %d damage!", prefix, damage), Color: console.White}}
	}
	suffix := "but does no damage."
	if a.Actor == Player {
		suffix = "but do no damage."
	}
	return []Message{{Text: prefix + " " + suffix, Color: console.White}}
}

// resolvePickUp moves an item object off the map into the inventory.
func (g *Game) resolvePickUp(a Action) []Message {
	if len(g.Inventory) >= inventoryCap {
		return []Message{{Text: "Inventory full", Color: console.White}}
	}

	item := g.removeObject(a.Target)
	text := fmt.Sprintf("You pick up %s.", indirect(item.Name, false))
	if a.Actor != Player {
		text = fmt.Sprintf("%s picks up %s.", direct(g.Objects[a.Actor].Name, true), indirect(item.Name, false))
	}
	g.Inventory = append(g.Inventory, item)
	return []Message{{Text: text, Color: console.White}}
}

// removeObject takes an object out of the table. The last object moves
// into the freed slot, taking over its index.
func (g *Game) removeObject(id ID) *Object {
	o := g.Objects[id]
	last := len(g.Objects) - 1
	g.Objects[id] = g.Objects[last]
	g.Objects = g.Objects[:last]
	return o
}

type useResult int

const (
	usedUp useResult = iota
	cancelled
)

// resolveUseItem dispatches on the item in the slot. A used-up item
// leaves the inventory; a cancelled use keeps it.
func (g *Game) resolveUseItem(a Action) []Message {
	item := g.Inventory[a.Slot]

	var result useResult
	var msgs []Message
	switch item.Item {
	case Heal:
		result, msgs = g.castHeal(a.Actor)
	case Lightning:
		result, msgs = g.castLightning(a.Actor)
	case Confuse:
		result, msgs = g.castConfusion(a.Actor)
	default:
		return nil
	}

	if result == usedUp {
		g.Inventory = append(g.Inventory[:a.Slot], g.Inventory[a.Slot+1:]...)
	}
	return msgs
}

func (g *Game) castHeal(actor ID) (useResult, []Message) {
	o := g.Objects[actor]
	if o.Fighter == nil {
		return cancelled, []Message{{Text: "Only fighters can drink!", Color: console.White}}
	}
	if o.Fighter.Health == o.Fighter.MaxHealth {
		return cancelled, []Message{{Text: "Already at full health!", Color: console.White}}
	}
	o.Fighter.Heal(healAmount)
	return usedUp, []Message{{Text: "Healed!", Color: console.White}}
}

func (g *Game) castLightning(actor ID) (useResult, []Message) {
	target, ok := g.closestFighter(actor, lightningRange)
	if !ok {
		return cancelled, []Message{{Text: "There are no targets in range.", Color: console.White}}
	}
	o := g.Objects[target]
	if o.Fighter == nil {
		panic("Target must be a fighter")
	}
	o.Fighter.TakeDamage(lightningDamage)
	return usedUp, []Message{{Text: fmt.Sprintf("You zap %s ", direct(o.Name, false)), Color: console.White}}
}

func (g *Game) castConfusion(actor ID) (useResult, []Message) {
	target, ok := g.closestFighter(actor, confuseRange)
	if !ok {
		return cancelled, []Message{{Text: "There are no targets in range.", Color: console.White}}
	}
	o := g.Objects[target]
	if o.Mind == nil {
		panic("Fighters must have AI!")
	}
	o.Mind = Confused{Previous: o.Mind, TurnsLeft: confuseTurns}
	return usedUp, []Message{{Text: fmt.Sprintf("%s looks confused.", direct(o.Name, true)), Color: console.White}}
}

func (g *Game) resolveBark(a Action) []Message {
	o := g.Objects[a.Actor]
	if o.Noises == nil {
		return nil
	}
	return []Message{{Text: fmt.Sprintf("%s %ss.", indirect(o.Name, true), o.Noises.Bark), Color: console.White}}
}

func (g *Game) resolveMumble(a Action) []Message {
	o := g.Objects[a.Actor]
	if o.Noises == nil {
		return nil
	}
	return []Message{{Text: fmt.Sprintf("%s %ss.", indirect(o.Name, true), o.Noises.Mumble), Color: console.White}}
}

// FightersByDistance lists the fighters within range of an object,
// farthest first. The sort is stable over table order, so among
// equally-near fighters the highest index lands at the tail.
func (g *Game) FightersByDistance(from ID, radius int) []ID {
	origin := g.Objects[from].Loc

	var ids []ID
	for id, o := range g.Objects {
		if ID(id) == from || o.Fighter == nil {
			continue
		}
		if int(origin.Distance(o.Loc)) <= radius {
			ids = append(ids, ID(id))
		}
	}
	sort.SliceStable(ids, func(i, j int) bool {
		return int(origin.Distance(g.Objects[ids[i]].Loc)) > int(origin.Distance(g.Objects[ids[j]].Loc))
	})
	return ids
}

// closestFighter picks the nearest fighter in range.
func (g *Game) closestFighter(from ID, radius int) (ID, bool) {
	ids := g.FightersByDistance(from, radius)
	if len(ids) == 0 {
		return 0, false
	}
	return ids[len(ids)-1], true
}

// killMonster turns a monster into remains.
func (g *Game) killMonster(o *Object) []Message {
	g.log.Debug().Str("name", o.Name).Msg("monster died")
	msg := Message{Text: fmt.Sprintf("%s dies.", direct(o.Name, true)), Color: console.Red}
	o.Name = "Remains of " + o.Name
	o.Char = '%'
	o.Color = console.Red
	o.Blocks = false
	o.Alive = false
	o.Fighter = nil
	o.Mind = nil
	return []Message{msg}
}

// killPlayer ends the player without taking the corpse's stats away.
func (g *Game) killPlayer(o *Object) []Message {
	g.log.Debug().Str("name", o.Name).Msg("player died")
	o.Alive = false
	o.Char = '%'
	o.Color = console.Red
	return []Message{{Text: "You die!", Color: console.Red}}
}

// regenerate trickles health back. Fractional rates heal one point
// that fraction of the time.
func regenerate(o *Object, r dice.Roller) {
	if o.Fighter == nil {
		return
	}
	amount := int(o.Fighter.Regen)
	if o.Fighter.Regen <= 1.0 {
		amount = 0
		if dice.Chance(r, o.Fighter.Regen) {
			amount = 1
		}
	}
	o.Fighter.Heal(amount)
}
