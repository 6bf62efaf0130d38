package console

import (
	"fmt"

	"github.com/gruftwerk/gruft/internal/geometry"
)

// Screen is a terminal the engine can draw buffers onto and read keys
// from. Implementations own terminal setup and teardown; Close must
// restore the terminal to a sane state.
type Screen interface {
	// Size reports the terminal dimension in cells.
	Size() geometry.Dimension

	// Show presents a finished buffer. Cells outside the terminal are
	// dropped.
	Show(b *Buffer) error

	// WaitKey blocks for the next key press. It returns false when the
	// terminal wants the program gone, on interrupt or closed input.
	WaitKey() (Key, bool)

	// Close restores the terminal.
	Close()
}

// Open sets up the named screen driver. The empty name selects termbox.
func Open(driver string) (Screen, error) {
	switch driver {
	case "", "termbox":
		return newTermboxScreen()
	case "tcell":
		return newTcellScreen()
	default:
		return nil, fmt.Errorf("unknown screen driver %q", driver)
	}
}
