package console

import (
	"fmt"
	"unicode"

	termbox "github.com/nsf/termbox-go"

	"github.com/gruftwerk/gruft/internal/geometry"
)

// termboxScreen drives the terminal through termbox in 256-color output
// mode.
type termboxScreen struct{}

func newTermboxScreen() (*termboxScreen, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("termbox init: %w", err)
	}
	termbox.SetOutputMode(termbox.Output256)
	termbox.HideCursor()
	return &termboxScreen{}, nil
}

func (s *termboxScreen) Size() geometry.Dimension {
	w, h := termbox.Size()
	return geometry.Dim(w, h)
}

func (s *termboxScreen) Show(b *Buffer) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}
	dim := b.Size()
	for y := 0; y < dim.Height; y++ {
		for x := 0; x < dim.Width; x++ {
			c := b.Get(x, y)
			ch := c.Ch
			if ch == 0 {
				ch = ' '
			}
			termbox.SetCell(x, y, ch, termboxAttr(c.Fg), termboxAttr(c.Bg))
		}
	}
	return termbox.Flush()
}

func (s *termboxScreen) WaitKey() (Key, bool) {
	for {
		switch ev := termbox.PollEvent(); ev.Type {
		case termbox.EventKey:
			if ev.Key == termbox.KeyCtrlC {
				return Key{}, false
			}
			if k, ok := decodeTermboxKey(ev); ok {
				return k, true
			}
		case termbox.EventInterrupt, termbox.EventError:
			return Key{}, false
		}
	}
}

func (s *termboxScreen) Close() {
	termbox.Close()
}

func decodeTermboxKey(ev termbox.Event) (Key, bool) {
	alt := ev.Mod&termbox.ModAlt != 0
	switch ev.Key {
	case termbox.KeyEnter:
		return Key{Code: KeyEnter, Alt: alt}, true
	case termbox.KeyEsc:
		return Key{Code: KeyEscape, Alt: alt}, true
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return Key{Code: KeyBackspace, Alt: alt}, true
	case termbox.KeySpace:
		return Key{Code: KeySpace, Ch: ' ', Alt: alt}, true
	case termbox.KeyArrowUp:
		return Key{Code: KeyUp, Alt: alt}, true
	case termbox.KeyArrowDown:
		return Key{Code: KeyDown, Alt: alt}, true
	case termbox.KeyArrowLeft:
		return Key{Code: KeyLeft, Alt: alt}, true
	case termbox.KeyArrowRight:
		return Key{Code: KeyRight, Alt: alt}, true
	}
	if ev.Ch != 0 {
		return Key{Code: KeyChar, Ch: ev.Ch, Shift: unicode.IsUpper(ev.Ch), Alt: alt}, true
	}
	return Key{}, false
}

// termboxAttr maps the palette onto 256-color terminal attributes.
// Attributes are the color index plus one; zero stays the terminal
// default.
func termboxAttr(c Color) termbox.Attribute {
	switch c {
	case Black:
		return termbox.ColorBlack
	case White:
		return attr256(15)
	case Red:
		return attr256(9)
	case DarkRed:
		return attr256(88)
	case Green:
		return attr256(10)
	case DarkGreen:
		return attr256(22)
	case Yellow:
		return attr256(11)
	case Blue:
		return attr256(12)
	case DarkBlue:
		return attr256(18)
	case LightGrey:
		return attr256(247)
	case Grey:
		return attr256(244)
	case DarkGrey:
		return attr256(241)
	case DarkerGrey:
		return attr256(237)
	case DarkestGrey:
		return attr256(234)
	default:
		return termbox.ColorDefault
	}
}

func attr256(idx int) termbox.Attribute {
	return termbox.Attribute(idx + 1)
}
