package game

import (
	"github.com/gruftwerk/gruft/internal/console"
	"github.com/gruftwerk/gruft/internal/geometry"
)

// ID indexes an object in the game's table. The index is the object's
// identity for as long as it stays in the table.
type ID int

// Player is the index of the player object.
const Player ID = 0

// Death selects what happens when a fighter runs out of health.
type Death int

// Death behaviors.
const (
	MonsterDeath Death = iota
	PlayerDeath
)

// Fighter holds combat stats. Health below one marks the fighter for
// its death behavior at the next refresh.
type Fighter struct {
	MaxHealth int
	Health    int
	Defense   int
	Power     int
	Regen     float64
	OnDeath   Death
}

// Heal raises health, clamped to the maximum.
func (f *Fighter) Heal(amount int) {
	f.Health += amount
	if f.Health > f.MaxHealth {
		f.Health = f.MaxHealth
	}
}

// TakeDamage lowers health. It never kills directly; deaths resolve at
// the next refresh.
func (f *Fighter) TakeDamage(damage int) {
	f.Health -= damage
}

// Movement gives an object a speed: the percent chance one move
// attempt goes through.
type Movement struct {
	Speed int
}

// Noise holds the sounds a monster makes when hunting and when bored.
type Noise struct {
	Bark   string
	Mumble string
}

// Item classifies what using an object does. NoItem marks objects that
// cannot be picked up.
type Item int

// Item kinds.
const (
	NoItem Item = iota
	Heal
	Lightning
	Confuse
)

// Object is anything occupying the map: the player, monsters, items,
// remains. Component fields are nil for objects without that behavior.
type Object struct {
	Name    string
	Char    rune
	Color   console.Color
	Loc     geometry.Location
	Blocks  bool
	Alive   bool
	Visible bool
	Seen    bool

	Fighter  *Fighter
	Movement *Movement
	Mind     Mind
	Noises   *Noise
	Item     Item
}

// NewObject returns the blank object, a nameless "it" with no
// behavior. The factories below fill it in.
func NewObject() *Object {
	return &Object{Name: "it", Char: '`'}
}

// NewPlayer makes the player at a location.
func NewPlayer(name string, loc geometry.Location) *Object {
	o := NewObject()
	o.Name = name
	o.Char = '@'
	o.Color = console.Yellow
	o.Loc = loc
	o.Blocks = true
	o.Alive = true
	o.Visible = true
	o.Seen = true
	o.Fighter = &Fighter{MaxHealth: 30, Health: 30, Defense: 2, Power: 5, Regen: 0.5, OnDeath: PlayerDeath}
	o.Movement = &Movement{Speed: 100}
	return o
}

// NewOrc makes an orc.
func NewOrc(loc geometry.Location) *Object {
	o := NewObject()
	o.Name = "orc"
	o.Char = 'o'
	o.Color = console.Green
	o.Loc = loc
	o.Blocks = true
	o.Alive = true
	o.Fighter = &Fighter{MaxHealth: 10, Health: 10, Defense: 0, Power: 3, Regen: 0.1, OnDeath: MonsterDeath}
	o.Movement = &Movement{Speed: 90}
	o.Mind = Basic{}
	o.Noises = &Noise{Bark: "shout", Mumble: "mumble"}
	return o
}

// NewTroll makes a troll.
func NewTroll(loc geometry.Location) *Object {
	o := NewObject()
	o.Name = "troll"
	o.Char = 'T'
	o.Color = console.Green
	o.Loc = loc
	o.Blocks = true
	o.Alive = true
	o.Fighter = &Fighter{MaxHealth: 16, Health: 16, Defense: 1, Power: 4, Regen: 0.5, OnDeath: MonsterDeath}
	o.Movement = &Movement{Speed: 80}
	o.Mind = Basic{}
	o.Noises = &Noise{Bark: "roar", Mumble: "growl"}
	return o
}

// NewOgre makes an ogre.
func NewOgre(loc geometry.Location) *Object {
	o := NewObject()
	o.Name = "ogre"
	o.Char = 'O'
	o.Color = console.Yellow
	o.Loc = loc
	o.Blocks = true
	o.Alive = true
	o.Fighter = &Fighter{MaxHealth: 25, Health: 25, Defense: 2, Power: 8, Regen: 0.2, OnDeath: MonsterDeath}
	o.Movement = &Movement{Speed: 70}
	o.Mind = Basic{}
	o.Noises = &Noise{Bark: "bellow", Mumble: "burp"}
	return o
}

// NewHealingPotion makes a healing potion.
func NewHealingPotion(loc geometry.Location) *Object {
	o := NewObject()
	o.Name = "healing potion"
	o.Char = '!'
	o.Color = console.Blue
	o.Loc = loc
	o.Item = Heal
	return o
}

// NewLightningScroll makes a scroll of lightning bolt.
func NewLightningScroll(loc geometry.Location) *Object {
	o := NewObject()
	o.Name = "lightning bolt"
	o.Char = '?'
	o.Color = console.Blue
	o.Loc = loc
	o.Item = Lightning
	return o
}
