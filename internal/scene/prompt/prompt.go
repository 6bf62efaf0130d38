// Package prompt implements the command line: a one-row line editor
// scene run over a snapshot of whatever opened it.
package prompt

import (
	"unicode"

	"github.com/gruftwerk/gruft/internal/console"
	"github.com/gruftwerk/gruft/internal/geometry"
	"github.com/gruftwerk/gruft/internal/scene"
)

// Line is the text under edit. Confirming the prompt keeps it;
// cancelling resets it to empty.
type Line struct {
	text []rune
}

// String returns the accumulated text.
func (l *Line) String() string { return string(l.text) }

// Prompt edits a Line on the bottom row of the frame. The backdrop is
// drawn underneath so the scene that opened the prompt stays visible.
type Prompt struct {
	backdrop *console.Buffer
}

// New makes a prompt over a backdrop. A nil backdrop leaves the rest of
// the frame black.
func New(backdrop *console.Buffer) *Prompt {
	return &Prompt{backdrop: backdrop}
}

type promptAction int

const (
	confirm promptAction = iota
	cancel
	erase
)

type insert rune

// Render draws the backdrop and the prompt row.
func (p *Prompt) Render(b *console.Buffer, l *Line) {
	if p.backdrop != nil {
		b.Blit(p.backdrop, geometry.Loc(0, 0), 1.0, 1.0)
	}
	dim := b.Size()
	y := dim.Height - 1
	for x := 0; x < dim.Width; x++ {
		b.PutCharEx(x, y, ' ', console.White, console.Blue)
	}
	b.SetDefaultForeground(console.White)
	b.SetDefaultBackground(console.Blue)
	b.Print(0, y, console.AlignLeft, "$ "+l.String())
}

// Interpret maps keys onto edits. Enter confirms, Escape cancels,
// anything printable goes into the line.
func (p *Prompt) Interpret(ev scene.Event) any {
	k, ok := ev.(scene.KeyEvent)
	if !ok {
		return nil
	}
	switch k.Key.Code {
	case console.KeyEnter:
		return confirm
	case console.KeyEscape:
		return cancel
	case console.KeyBackspace:
		return erase
	case console.KeySpace:
		return insert(' ')
	case console.KeyChar:
		ch := k.Key.Ch
		if k.Key.Shift {
			ch = unicode.ToUpper(ch)
		}
		return insert(ch)
	}
	return nil
}

// Update applies one edit to the line.
func (p *Prompt) Update(action any, l *Line) scene.Transition[*Line] {
	switch a := action.(type) {
	case insert:
		l.text = append(l.text, rune(a))
	case promptAction:
		switch a {
		case erase:
			if n := len(l.text); n > 0 {
				l.text = l.text[:n-1]
			}
		case cancel:
			l.text = nil
			return scene.Exit[*Line]()
		case confirm:
			return scene.Exit[*Line]()
		}
	}
	return scene.Continue[*Line]()
}
