package console

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/gruftwerk/gruft/internal/geometry"
)

// tcellScreen drives the terminal through tcell. It maps the palette
// onto the same 256-color indexes as the termbox driver so the two look
// alike.
type tcellScreen struct {
	scr tcell.Screen
}

func newTcellScreen() (*tcellScreen, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return nil, fmt.Errorf("tcell init: %w", err)
	}
	scr.SetStyle(tcell.StyleDefault)
	scr.HideCursor()
	return &tcellScreen{scr: scr}, nil
}

func (s *tcellScreen) Size() geometry.Dimension {
	w, h := s.scr.Size()
	return geometry.Dim(w, h)
}

func (s *tcellScreen) Show(b *Buffer) error {
	s.scr.Clear()
	dim := b.Size()
	for y := 0; y < dim.Height; y++ {
		for x := 0; x < dim.Width; x++ {
			c := b.Get(x, y)
			ch := c.Ch
			if ch == 0 {
				ch = ' '
			}
			style := tcell.StyleDefault.
				Foreground(tcellColor(c.Fg)).
				Background(tcellColor(c.Bg))
			s.scr.SetContent(x, y, ch, nil, style)
		}
	}
	s.scr.Show()
	return nil
}

func (s *tcellScreen) WaitKey() (Key, bool) {
	for {
		switch ev := s.scr.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				return Key{}, false
			}
			if k, ok := decodeTcellKey(ev); ok {
				return k, true
			}
		case *tcell.EventResize:
			s.scr.Sync()
		case *tcell.EventInterrupt, *tcell.EventError:
			return Key{}, false
		case nil:
			return Key{}, false
		}
	}
}

func (s *tcellScreen) Close() {
	s.scr.Fini()
}

func decodeTcellKey(ev *tcell.EventKey) (Key, bool) {
	mod := ev.Modifiers()
	k := Key{
		Shift: mod&tcell.ModShift != 0,
		Ctrl:  mod&tcell.ModCtrl != 0,
		Alt:   mod&tcell.ModAlt != 0,
	}
	switch ev.Key() {
	case tcell.KeyEnter:
		k.Code = KeyEnter
	case tcell.KeyEscape:
		k.Code = KeyEscape
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		k.Code = KeyBackspace
	case tcell.KeyUp:
		k.Code = KeyUp
	case tcell.KeyDown:
		k.Code = KeyDown
	case tcell.KeyLeft:
		k.Code = KeyLeft
	case tcell.KeyRight:
		k.Code = KeyRight
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			k.Code = KeySpace
			k.Ch = ' '
			break
		}
		k.Code = KeyChar
		k.Ch = r
		k.Shift = k.Shift || unicode.IsUpper(r)
	default:
		return Key{}, false
	}
	return k, true
}

func tcellColor(c Color) tcell.Color {
	switch c {
	case Black:
		return tcell.ColorBlack
	case White:
		return tcell.PaletteColor(15)
	case Red:
		return tcell.PaletteColor(9)
	case DarkRed:
		return tcell.PaletteColor(88)
	case Green:
		return tcell.PaletteColor(10)
	case DarkGreen:
		return tcell.PaletteColor(22)
	case Yellow:
		return tcell.PaletteColor(11)
	case Blue:
		return tcell.PaletteColor(12)
	case DarkBlue:
		return tcell.PaletteColor(18)
	case LightGrey:
		return tcell.PaletteColor(247)
	case Grey:
		return tcell.PaletteColor(244)
	case DarkGrey:
		return tcell.PaletteColor(241)
	case DarkerGrey:
		return tcell.PaletteColor(237)
	case DarkestGrey:
		return tcell.PaletteColor(234)
	default:
		return tcell.ColorDefault
	}
}
