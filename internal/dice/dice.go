// Package dice provides the randomness service used by combat, AI, and
// generation. Every draw goes through an injected Roller so outcomes can
// be made deterministic in tests; *math/rand.Rand satisfies Roller as-is.
package dice

// Roller is the source of randomness behind every roll.
type Roller interface {
	Intn(n int) int
	Float64() float64
}

// Within returns a uniform draw from [min, max], inclusive at both ends.
func Within(r Roller, min, max int) int {
	return min + r.Intn(max-min+1)
}

// DX rolls an x-sided die, returning a value in [1, x]. A die with no
// sides rolls 0 rather than panicking.
func DX(r Roller, x int) int {
	if x < 1 {
		return 0
	}
	return Within(r, 1, x)
}

// D100 rolls a hundred-sided die.
func D100(r Roller) int { return Within(r, 1, 100) }

// D12 rolls a twelve-sided die.
func D12(r Roller) int { return Within(r, 1, 12) }

// Chance returns true with probability p, where p ranges over [0, 1].
func Chance(r Roller, p float64) bool {
	return r.Float64() <= p
}

// Choose returns a uniformly chosen element of the slice, or false when
// the slice is empty.
func Choose[T any](r Roller, elems []T) (T, bool) {
	if len(elems) == 0 {
		var zero T
		return zero, false
	}
	return elems[Within(r, 0, len(elems)-1)], true
}
