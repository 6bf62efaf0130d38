package console

// KeyCode classifies a key press. Printable input arrives as KeyChar
// with the rune in Key.Ch; everything the scenes care about beyond that
// gets its own code.
type KeyCode int

// Key codes.
const (
	KeyNone KeyCode = iota
	KeyChar
	KeyEnter
	KeyEscape
	KeyBackspace
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Key is one decoded key press.
type Key struct {
	Code  KeyCode
	Ch    rune
	Shift bool
	Ctrl  bool
	Alt   bool
}

// Char makes a printable key press.
func Char(ch rune, shift bool) Key {
	return Key{Code: KeyChar, Ch: ch, Shift: shift}
}
