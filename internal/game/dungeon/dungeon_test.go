package dungeon_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gruftwerk/gruft/internal/game/dungeon"
	"github.com/gruftwerk/gruft/internal/geometry"
)

var params = dungeon.Params{
	Size:            geometry.Dim(80, 43),
	RoomMinSize:     6,
	RoomMaxSize:     10,
	MaxRooms:        30,
	MaxRoomMonsters: 3,
	MaxRoomItems:    2,
}

// recorder collects placements the way the game would.
type recorder struct {
	monsters []geometry.Location
	species  []dungeon.Species
	items    []geometry.Location
	loot     []dungeon.Loot
}

func (r *recorder) PlaceMonster(s dungeon.Species, loc geometry.Location) {
	r.species = append(r.species, s)
	r.monsters = append(r.monsters, loc)
}

func (r *recorder) PlaceItem(l dungeon.Loot, loc geometry.Location) {
	r.loot = append(r.loot, l)
	r.items = append(r.items, loc)
}

func (r *recorder) BlockedAt(loc geometry.Location) bool {
	for _, m := range r.monsters {
		if m.Equal(loc) {
			return true
		}
	}
	return false
}

// script plays back fixed rolls; exhausted ints draw zero, exhausted
// floats draw one.
type script struct {
	ints   []int
	floats []float64
}

func (s *script) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0] % n
	s.ints = s.ints[1:]
	return v
}

func (s *script) Float64() float64 {
	if len(s.floats) == 0 {
		return 1
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func mapLines(m *dungeon.Map) []string {
	dim := m.Size()
	lines := make([]string, dim.Height)
	row := make([]rune, dim.Width)
	for y := 0; y < dim.Height; y++ {
		for x := 0; x < dim.Width; x++ {
			if m.At(geometry.Loc(x, y)).Blocked {
				row[x] = '#'
			} else {
				row[x] = '.'
			}
		}
		lines[y] = string(row)
	}
	return lines
}

func TestGenerate_spawnIsWalkable(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		sp := &recorder{}
		m, spawn := dungeon.Generate(rand.New(rand.NewSource(seed)), params, sp)
		tile := m.At(spawn)
		assert.False(t, tile.Blocked, "seed %d", seed)
		assert.False(t, tile.BlocksSight, "seed %d", seed)
	}
}

func TestGenerate_bordersStayWall(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		m, _ := dungeon.Generate(rand.New(rand.NewSource(seed)), params, &recorder{})
		dim := m.Size()
		for x := 0; x < dim.Width; x++ {
			assert.True(t, m.At(geometry.Loc(x, 0)).Blocked, "seed %d top x=%d", seed, x)
			assert.True(t, m.At(geometry.Loc(x, dim.Height-1)).Blocked, "seed %d bottom x=%d", seed, x)
		}
		for y := 0; y < dim.Height; y++ {
			assert.True(t, m.At(geometry.Loc(0, y)).Blocked, "seed %d left y=%d", seed, y)
			assert.True(t, m.At(geometry.Loc(dim.Width-1, y)).Blocked, "seed %d right y=%d", seed, y)
		}
	}
}

func TestGenerate_placements(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		sp := &recorder{}
		m, spawn := dungeon.Generate(rand.New(rand.NewSource(seed)), params, sp)

		for _, loc := range sp.monsters {
			assert.False(t, m.At(loc).Blocked, "seed %d monster in wall at %v", seed, loc)
			assert.False(t, loc.Equal(spawn), "seed %d monster on spawn", seed)
		}
		for _, loc := range sp.items {
			assert.False(t, m.At(loc).Blocked, "seed %d item in wall at %v", seed, loc)
		}

		// Monsters never stack.
		seen := map[geometry.Location]bool{}
		for _, loc := range sp.monsters {
			assert.False(t, seen[loc], "seed %d stacked monsters at %v", seed, loc)
			seen[loc] = true
		}
	}
}

func TestGenerate_floorIsConnected(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		m, spawn := dungeon.Generate(rand.New(rand.NewSource(seed)), params, &recorder{})
		dim := m.Size()

		reached := map[geometry.Location]bool{spawn: true}
		frontier := []geometry.Location{spawn}
		for len(frontier) > 0 {
			loc := frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]
			for _, d := range []geometry.Direction{
				geometry.North, geometry.South, geometry.East, geometry.West,
			} {
				next := loc.Add(d)
				if !m.In(next) || reached[next] || m.At(next).Blocked {
					continue
				}
				reached[next] = true
				frontier = append(frontier, next)
			}
		}

		for y := 0; y < dim.Height; y++ {
			for x := 0; x < dim.Width; x++ {
				loc := geometry.Loc(x, y)
				if !m.At(loc).Blocked {
					require.True(t, reached[loc], "seed %d unreachable floor at %v", seed, loc)
				}
			}
		}
	}
}

func TestGenerate_singleRoom(t *testing.T) {
	single := params
	single.MaxRooms = 1

	for seed := int64(1); seed <= 10; seed++ {
		sp := &recorder{}
		m, spawn := dungeon.Generate(rand.New(rand.NewSource(seed)), single, sp)
		dim := m.Size()

		assert.Empty(t, sp.monsters, "seed %d: the first room is never populated", seed)
		assert.Empty(t, sp.items, "seed %d", seed)

		// The floor of a one-room dungeon is a solid rectangle; a
		// tunnel would poke out of it.
		minX, minY, maxX, maxY := dim.Width, dim.Height, -1, -1
		for y := 0; y < dim.Height; y++ {
			for x := 0; x < dim.Width; x++ {
				if m.At(geometry.Loc(x, y)).Blocked {
					continue
				}
				if x < minX {
					minX = x
				}
				if y < minY {
					minY = y
				}
				if x > maxX {
					maxX = x
				}
				if y > maxY {
					maxY = y
				}
			}
		}
		require.True(t, maxX >= minX && maxY >= minY, "seed %d carved nothing", seed)
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				assert.False(t, m.At(geometry.Loc(x, y)).Blocked, "seed %d hole at (%d,%d)", seed, x, y)
			}
		}
		assert.Equal(t, geometry.Loc((minX+maxX)/2, (minY+maxY)/2), spawn, "seed %d", seed)
	}
}

func TestGenerate_deterministic(t *testing.T) {
	spA, spB := &recorder{}, &recorder{}
	a, spawnA := dungeon.Generate(rand.New(rand.NewSource(99)), params, spA)
	b, spawnB := dungeon.Generate(rand.New(rand.NewSource(99)), params, spB)

	assert.Equal(t, mapLines(a), mapLines(b))
	assert.Equal(t, spawnA, spawnB)
	assert.Equal(t, spA.monsters, spB.monsters)
	assert.Equal(t, spA.species, spB.species)
	assert.Equal(t, spA.items, spB.items)
	assert.Equal(t, spA.loot, spB.loot)
}

func TestGenerate_speciesAndLootRolls(t *testing.T) {
	two := params
	two.MaxRooms = 2
	two.MaxRoomMonsters = 4

	// Two fixed rooms, then one d100 per monster and item: 49 and 50
	// land on either side of the orc/troll and potion/scroll splits,
	// 80 on the ogre. The second monster draws a taken cell; its roll
	// is still spent.
	r := &script{ints: []int{
		0, 0, 10, 10, // first room, 6x6 at (10,10)
		0, 0, 40, 30, // second room, 6x6 at (40,30)
		4,
		0, 0, 48, // orc at (41,31)
		0, 0, 49, // same cell, discarded
		1, 1, 49, // troll at (42,32)
		2, 2, 79, // ogre at (43,33)
		2,
		3, 0, 48, // potion at (44,31)
		4, 0, 49, // scroll at (45,31)
	}}

	sp := &recorder{}
	_, spawn := dungeon.Generate(r, two, sp)

	assert.Equal(t, geometry.Loc(13, 13), spawn)
	assert.Equal(t, []dungeon.Species{dungeon.Orc, dungeon.Troll, dungeon.Ogre}, sp.species)
	assert.Equal(t, []geometry.Location{
		geometry.Loc(41, 31), geometry.Loc(42, 32), geometry.Loc(43, 33),
	}, sp.monsters)
	assert.Equal(t, []dungeon.Loot{dungeon.HealingPotion, dungeon.LightningScroll}, sp.loot)
	assert.Equal(t, []geometry.Location{
		geometry.Loc(44, 31), geometry.Loc(45, 31),
	}, sp.items)
}

func TestRect_Intersects(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b dungeon.Rect
		want bool
	}{
		{"overlapping", dungeon.Rect{X1: 0, Y1: 0, X2: 5, Y2: 5}, dungeon.Rect{X1: 3, Y1: 3, X2: 8, Y2: 8}, true},
		{"sharing an edge", dungeon.Rect{X1: 0, Y1: 0, X2: 5, Y2: 5}, dungeon.Rect{X1: 5, Y1: 0, X2: 9, Y2: 5}, true},
		{"apart", dungeon.Rect{X1: 0, Y1: 0, X2: 5, Y2: 5}, dungeon.Rect{X1: 6, Y1: 6, X2: 9, Y2: 9}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Intersects(tc.b))
			assert.Equal(t, tc.want, tc.b.Intersects(tc.a))
		})
	}
}

func TestRect_Center(t *testing.T) {
	r := dungeon.Rect{X1: 2, Y1: 4, X2: 8, Y2: 10}
	assert.Equal(t, geometry.Loc(5, 7), r.Center())
}
