package game

import "github.com/gruftwerk/gruft/internal/geometry"

// ActionKind tags what an action does.
type ActionKind int

// Action kinds. Nothing is the zero action.
const (
	Nothing ActionKind = iota
	Move
	Attack
	PickUp
	UseItem
	Bark
	Mumble
	Wait
)

func (k ActionKind) String() string {
	switch k {
	case Move:
		return "move"
	case Attack:
		return "attack"
	case PickUp:
		return "pickup"
	case UseItem:
		return "use"
	case Bark:
		return "bark"
	case Mumble:
		return "mumble"
	case Wait:
		return "wait"
	}
	return "nothing"
}

// Action is one resolved intent: who does what, to whom or which way.
// Target names the defender for Attack and the item object for PickUp;
// Slot names the inventory position for UseItem.
type Action struct {
	Kind   ActionKind
	Actor  ID
	Target ID
	Dir    geometry.Direction
	Slot   int
}

// TookTurn reports whether the action consumes the actor's turn.
// Using an item never does.
func (a Action) TookTurn() bool {
	switch a.Kind {
	case Move, Attack, PickUp, Bark, Mumble, Wait:
		return true
	}
	return false
}
