package scenes

import (
	"unicode"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/gruftwerk/gruft/internal/console"
	"github.com/gruftwerk/gruft/internal/scene"
)

const banner = "* Gruft *\n" +
	"\n" +
	"A short adventure in game development.\n" +
	"\n\n\n\n" +
	"Press Enter to start a game. ESC to exit."

// Menu is the title screen: a noise-lit cave backdrop with the banner
// and the name entry field floating over it.
type Menu struct {
	noise opensimplex.Noise
}

// NewMenu makes the title screen. The seed varies the backdrop between
// visits.
func NewMenu(seed int64) *Menu {
	return &Menu{noise: opensimplex.New(seed)}
}

type menuAction int

const (
	cancel menuAction = iota
	start
	erase
)

type insert rune

// Render draws the backdrop, the banner, and the name being typed.
func (m *Menu) Render(con *console.Buffer, s *Settings) {
	dim := con.Size()
	for y := 0; y < dim.Height; y++ {
		for x := 0; x < dim.Width; x++ {
			switch n := m.noise.Eval2(float64(x)/9, float64(y)/9); {
			case n > 0.35:
				con.PutCharEx(x, y, '#', console.DarkerGrey, console.Black)
			case n < -0.55:
				con.PutCharEx(x, y, '~', console.DarkBlue, console.Black)
			}
		}
	}

	con.SetDefaultForeground(console.White)
	con.SetDefaultBackground(console.Black)

	w, h := dim.Width, dim.Height
	lines := con.PrintRect(w/2, h/4, w-2, h-2, console.AlignCenter, banner)
	con.Print(w/2, h/4+lines+3, console.AlignCenter, "Enter name:\n"+s.Name)
}

// Interpret maps keys onto menu edits. Enter starts the game, Escape
// leaves, anything printable goes into the name.
func (m *Menu) Interpret(ev scene.Event) any {
	k, ok := ev.(scene.KeyEvent)
	if !ok {
		return nil
	}
	switch k.Key.Code {
	case console.KeyEnter:
		return start
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

// Update applies one edit to the settings.
func (m *Menu) Update(action any, s *Settings) scene.Transition[*Settings] {
	switch a := action.(type) {
	case insert:
		s.Name += string(rune(a))
	case menuAction:
		switch a {
		case erase:
			if r := []rune(s.Name); len(r) > 0 {
				s.Name = string(r[:len(r)-1])
			}
		case start:
			s.Start = true
			return scene.Exit[*Settings]()
		case cancel:
			return scene.Exit[*Settings]()
		}
	}
	return scene.Continue[*Settings]()
}
