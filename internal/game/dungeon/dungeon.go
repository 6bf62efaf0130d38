// Package dungeon carves maps of rooms and tunnels and decides where
// their occupants go.
package dungeon

import (
	"github.com/gruftwerk/gruft/internal/dice"
	"github.com/gruftwerk/gruft/internal/geometry"
)

// Tile is one map cell.
type Tile struct {
	Blocked     bool
	BlocksSight bool
	Explored    bool
	Visible     bool
}

// Wall returns a solid tile.
func Wall() Tile { return Tile{Blocked: true, BlocksSight: true} }

// Floor returns a passable tile.
func Floor() Tile { return Tile{} }

// Map is a grid of tiles. Its border always stays wall; movement and
// sight never leave the grid.
type Map struct {
	dim   geometry.Dimension
	tiles []Tile
}

// NewMap returns a map of solid wall.
func NewMap(dim geometry.Dimension) *Map {
	m := &Map{
		dim:   dim,
		tiles: make([]Tile, dim.Width*dim.Height),
	}
	for i := range m.tiles {
		m.tiles[i] = Wall()
	}
	return m
}

// Size returns the map dimension.
func (m *Map) Size() geometry.Dimension { return m.dim }

// In reports whether the location lies on the map.
func (m *Map) In(loc geometry.Location) bool {
	return m.dim.Contains(loc)
}

// At returns the tile at a location.
func (m *Map) At(loc geometry.Location) Tile {
	return m.tiles[loc.Y*m.dim.Width+loc.X]
}

// Ref returns the tile at a location for mutation.
func (m *Map) Ref(loc geometry.Location) *Tile {
	return &m.tiles[loc.Y*m.dim.Width+loc.X]
}

func (m *Map) carve(room Rect) {
	for x := room.X1 + 1; x < room.X2; x++ {
		for y := room.Y1 + 1; y < room.Y2; y++ {
			*m.Ref(geometry.Loc(x, y)) = Floor()
		}
	}
}

func (m *Map) carveHTunnel(x1, x2, y int) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		*m.Ref(geometry.Loc(x, y)) = Floor()
	}
}

func (m *Map) carveVTunnel(y1, y2, x int) {
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		*m.Ref(geometry.Loc(x, y)) = Floor()
	}
}

// Rect is a room footprint, walls included. Carving opens the strictly
// interior cells only, so adjacent rooms sharing an edge keep a wall
// between them.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the room midpoint.
func (r Rect) Center() geometry.Location {
	return geometry.Loc((r.X1+r.X2)/2, (r.Y1+r.Y2)/2)
}

// Intersects reports whether two footprints touch, edges included.
func (r Rect) Intersects(o Rect) bool {
	return r.X1 <= o.X2 && r.X2 >= o.X1 && r.Y1 <= o.Y2 && r.Y2 >= o.Y1
}

// Species names a monster kind to place.
type Species int

// Monster kinds.
const (
	Orc Species = iota
	Troll
	Ogre
)

// Loot names an item kind to place.
type Loot int

// Item kinds.
const (
	HealingPotion Loot = iota
	LightningScroll
)

// Spawner receives the occupants the generator places, in placement
// order. BlockedAt lets the generator skip monster spots already taken
// by something placed earlier.
type Spawner interface {
	PlaceMonster(s Species, loc geometry.Location)
	PlaceItem(l Loot, loc geometry.Location)
	BlockedAt(loc geometry.Location) bool
}

// Params bounds the generator.
type Params struct {
	Size            geometry.Dimension
	RoomMinSize     int
	RoomMaxSize     int
	MaxRooms        int
	MaxRoomMonsters int
	MaxRoomItems    int
}

// Generate carves a dungeon and populates it through the spawner. It
// returns the map and the player spawn, which sits at the center of the
// first room. The first room is never populated. Each later room is
// populated and then joined to the room before it with an L-shaped
// tunnel.
func Generate(r dice.Roller, p Params, sp Spawner) (*Map, geometry.Location) {
	m := NewMap(p.Size)

	var rooms []Rect
	var spawn geometry.Location

	for i := 0; i < p.MaxRooms; i++ {
		w := dice.Within(r, p.RoomMinSize, p.RoomMaxSize)
		h := dice.Within(r, p.RoomMinSize, p.RoomMaxSize)
		x := dice.Within(r, 0, p.Size.Width-w-1)
		y := dice.Within(r, 0, p.Size.Height-h-1)

		room := Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}

		overlaps := false
		for _, other := range rooms {
			if room.Intersects(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		m.carve(room)
		center := room.Center()

		if len(rooms) == 0 {
			spawn = center
		} else {
			populate(r, room, p, sp)

			prev := rooms[len(rooms)-1].Center()
			if dice.Chance(r, 0.5) {
				m.carveHTunnel(prev.X, center.X, prev.Y)
				m.carveVTunnel(prev.Y, center.Y, center.X)
			} else {
				m.carveVTunnel(prev.Y, center.Y, prev.X)
				m.carveHTunnel(prev.X, center.X, center.Y)
			}
		}

		rooms = append(rooms, room)
	}

	return m, spawn
}

// populate rolls the monsters and items of one room. The species roll
// happens before the blocked check, so a discarded spot still consumes
// its draws; items land regardless of blockage.
func populate(r dice.Roller, room Rect, p Params, sp Spawner) {
	monsters := dice.Within(r, 0, p.MaxRoomMonsters)
	for i := 0; i < monsters; i++ {
		loc := locInRoom(r, room)
		roll := dice.D100(r)
		if sp.BlockedAt(loc) {
			continue
		}
		switch {
		case roll < 50:
			sp.PlaceMonster(Orc, loc)
		case roll < 80:
			sp.PlaceMonster(Troll, loc)
		default:
			sp.PlaceMonster(Ogre, loc)
		}
	}

	items := dice.Within(r, 0, p.MaxRoomItems)
	for i := 0; i < items; i++ {
		loc := locInRoom(r, room)
		if dice.D100(r) < 50 {
			sp.PlaceItem(HealingPotion, loc)
		} else {
			sp.PlaceItem(LightningScroll, loc)
		}
	}
}

// locInRoom draws a cell from the room interior.
func locInRoom(r dice.Roller, room Rect) geometry.Location {
	return geometry.Loc(
		dice.Within(r, room.X1+1, room.X2-1),
		dice.Within(r, room.Y1+1, room.Y2-1),
	)
}
