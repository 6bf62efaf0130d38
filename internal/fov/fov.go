// Package fov computes fields of view over a cell grid with recursive
// shadowcasting.
package fov

import "github.com/gruftwerk/gruft/internal/geometry"

// Algorithm selects the visibility computation.
type Algorithm int

// ShadowCast scans eight octants recursively, splitting the scan
// wherever an opaque cell starts a shadow.
const ShadowCast Algorithm = iota

// multipliers transform row and column offsets of the scanned octant
// into each of the eight map octants.
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

type cell struct {
	transparent bool
	walkable    bool
	visible     bool
}

// Map is a grid of sight and movement properties plus the visibility
// state of the most recent Compute call.
type Map struct {
	dim   geometry.Dimension
	cells []cell
}

// New makes a map of the given dimension with every cell opaque and
// unwalkable.
func New(dim geometry.Dimension) *Map {
	return &Map{
		dim:   dim,
		cells: make([]cell, dim.Width*dim.Height),
	}
}

// Size returns the map dimension.
func (m *Map) Size() geometry.Dimension { return m.dim }

// In reports whether the position lies on the map.
func (m *Map) In(x, y int) bool {
	return x >= 0 && x < m.dim.Width && y >= 0 && y < m.dim.Height
}

// Set assigns the sight and movement properties of one cell.
func (m *Map) Set(x, y int, transparent, walkable bool) {
	if !m.In(x, y) {
		return
	}
	i := y*m.dim.Width + x
	m.cells[i].transparent = transparent
	m.cells[i].walkable = walkable
}

// IsTransparent reports whether sight passes through the cell.
// Positions off the map block sight.
func (m *Map) IsTransparent(x, y int) bool {
	return m.In(x, y) && m.cells[y*m.dim.Width+x].transparent
}

// IsWalkable reports whether the cell can be stood on.
func (m *Map) IsWalkable(x, y int) bool {
	return m.In(x, y) && m.cells[y*m.dim.Width+x].walkable
}

// IsVisible reports whether the last Compute lit the cell.
func (m *Map) IsVisible(x, y int) bool {
	return m.In(x, y) && m.cells[y*m.dim.Width+x].visible
}

// Compute recalculates visibility from the origin. Cells strictly
// closer than radius are candidates; the boundary itself stays dark.
// With lightWalls false, opaque cells stay dark even in line of sight.
// The origin is always lit.
func (m *Map) Compute(origin geometry.Location, radius int, lightWalls bool, algo Algorithm) {
	for i := range m.cells {
		m.cells[i].visible = false
	}
	if !m.In(origin.X, origin.Y) {
		return
	}
	m.cells[origin.Y*m.dim.Width+origin.X].visible = true
	if radius <= 0 {
		return
	}
	switch algo {
	case ShadowCast:
		for oct := 0; oct < 8; oct++ {
			m.castLight(origin.X, origin.Y, 1, 1.0, 0.0, radius, lightWalls,
				multipliers[0][oct], multipliers[1][oct],
				multipliers[2][oct], multipliers[3][oct])
		}
	}
}

// castLight scans one octant between the start and end slopes, marking
// lit cells and recursing past the far edge of each run of opaque
// cells.
func (m *Map) castLight(cx, cy, row int, start, end float64, radius int, lightWalls bool, xx, xy, yx, yy int) {
	if start < end {
		return
	}

	radiusSq := radius * radius

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for dx < 0 {
			dx++

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			x := cx + dx*xx + dy*xy
			y := cy + dx*yx + dy*yy

			if m.In(x, y) && dx*dx+dy*dy < radiusSq {
				if lightWalls || m.IsTransparent(x, y) {
					m.cells[y*m.dim.Width+x].visible = true
				}
			}

			if blocked {
				if m.blocks(x, y) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if m.blocks(x, y) && j < radius {
				blocked = true
				m.castLight(cx, cy, j+1, start, lSlope, radius, lightWalls, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

// blocks treats positions off the map as opaque.
func (m *Map) blocks(x, y int) bool {
	return !m.IsTransparent(x, y)
}
