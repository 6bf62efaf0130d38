// Package geometry provides the integer 2-space value types used across
// the engine: absolute locations, movement deltas, and extents, plus the
// focus-centered viewport translation used by map rendering.
package geometry

import "math"

// Loc is a convenience constructor for Location.
func Loc(x, y int) Location { return Location{x, y} }

// Location represents an absolute position in <X,Y> 2-space.
type Location struct{ X, Y int }

// Dir is a convenience constructor for Direction.
func Dir(dx, dy int) Direction { return Direction{dx, dy} }

// Direction represents a movement delta in <DX,DY> 2-space.
type Direction struct{ DX, DY int }

// Dim is a convenience constructor for Dimension.
func Dim(w, h int) Dimension { return Dimension{w, h} }

// Dimension represents a width-by-height extent.
type Dimension struct{ Width, Height int }

// Compass directions.
var (
	North     = Direction{0, -1}
	South     = Direction{0, 1}
	West      = Direction{-1, 0}
	East      = Direction{1, 0}
	NorthWest = Direction{-1, -1}
	NorthEast = Direction{1, -1}
	SouthWest = Direction{-1, 1}
	SouthEast = Direction{1, 1}
)

// Equal returns true if both this location's X and Y components equal
// another's.
func (l Location) Equal(other Location) bool {
	return l.X == other.X && l.Y == other.Y
}

// Add offsets a copy of this location by a direction, returning the copy.
func (l Location) Add(d Direction) Location {
	l.X += d.DX
	l.Y += d.DY
	return l
}

// Delta returns the direction from this location to another, one
// component per axis.
func (l Location) Delta(other Location) Direction {
	return Direction{other.X - l.X, other.Y - l.Y}
}

// Distance returns the Euclidean distance to another location.
func (l Location) Distance(other Location) float64 {
	dx := float64(other.X - l.X)
	dy := float64(other.Y - l.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Toward returns the unit step from this location toward another, each
// component reduced to -1, 0, or 1.
func (l Location) Toward(other Location) Direction {
	return l.Delta(other).Sign()
}

// Sign returns a copy of this direction reduced to the values -1, 0, or 1
// depending on the sign of the original components.
func (d Direction) Sign() Direction {
	d.DX = sign(d.DX)
	d.DY = sign(d.DY)
	return d
}

// Horizontal returns a copy of this direction with its vertical component
// dropped.
func (d Direction) Horizontal() Direction { return Direction{d.DX, 0} }

// Vertical returns a copy of this direction with its horizontal component
// dropped.
func (d Direction) Vertical() Direction { return Direction{0, d.DY} }

// Contains returns true if the location lies inside a dimension anchored
// at the origin.
func (dim Dimension) Contains(l Location) bool {
	return l.X >= 0 && l.X < dim.Width && l.Y >= 0 && l.Y < dim.Height
}

// Center returns the viewport focal cell for this dimension. It sits one
// cell past the true midpoint on each axis; rendering depends on this
// exact offset.
func (dim Dimension) Center() Location {
	return Location{dim.Width/2 + 1, dim.Height/2 + 1}
}

// Translate projects a map location into a viewport of the target
// dimension centered on focus. The second return is false when the
// projection falls outside the source dimension; callers use it to cull
// drawing, while clipping to the viewport itself happens at blit time.
func Translate(source, target Dimension, loc, focus Location) (Location, bool) {
	center := target.Center()
	view := Location{
		X: center.X + loc.X - focus.X,
		Y: center.Y + loc.Y - focus.Y,
	}
	if !source.Contains(view) {
		return Location{}, false
	}
	return view, true
}

func sign(i int) int {
	if i < 0 {
		return -1
	}
	if i > 0 {
		return 1
	}
	return 0
}
