// Package scene runs a stack of interactive scenes over a screen. The
// top scene draws each frame, decodes one event, and picks a
// transition; pushing and popping scenes is how the application moves
// between its modes.
package scene

import "github.com/gruftwerk/gruft/internal/console"

// Event is one input delivered to a scene. It is either a KeyEvent from
// the terminal or a CommandEvent submitted through the engine.
type Event interface{ event() }

// KeyEvent carries one key press.
type KeyEvent struct {
	Key console.Key
}

// CommandEvent carries a command line.
type CommandEvent string

func (KeyEvent) event()     {}
func (CommandEvent) event() {}

// Scene is one mode of the application over a world of type W.
type Scene[W any] interface {
	// Render draws the scene onto the buffer.
	Render(b *console.Buffer, w W)

	// Interpret decodes an event into a scene action. Returning nil
	// ignores the event; Update is then skipped.
	Interpret(ev Event) any

	// Update applies an action to the world and picks what happens to
	// the scene stack.
	Update(action any, w W) Transition[W]
}

// Transition tells the engine what to do with the scene stack after an
// update.
type Transition[W any] struct {
	kind transitionKind
	next Scene[W]
}

type transitionKind int

const (
	continueScene transitionKind = iota
	exitScene
	nextScene
	replaceScene
)

// Continue keeps the current scene on top.
func Continue[W any]() Transition[W] {
	return Transition[W]{kind: continueScene}
}

// Exit pops the current scene, resuming the one beneath it.
func Exit[W any]() Transition[W] {
	return Transition[W]{kind: exitScene}
}

// Next pushes a scene on top of the current one.
func Next[W any](s Scene[W]) Transition[W] {
	return Transition[W]{kind: nextScene, next: s}
}

// Replace swaps the current scene for another without growing the
// stack.
func Replace[W any](s Scene[W]) Transition[W] {
	return Transition[W]{kind: replaceScene, next: s}
}
