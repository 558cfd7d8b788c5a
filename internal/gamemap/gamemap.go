package gamemap

import "iter"

// Point is an (x, y) grid coordinate.
type Point struct {
	X, Y int
}

// GameMap holds the flat tile grid and room list for one dungeon level.
// Tiles is row-major: the tile at (x, y) lives at Tiles[y*Width+x].
type GameMap struct {
	Width, Height int
	Tiles         []TileType
	Rooms         []Rect
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	return &GameMap{
		Width:  width,
		Height: height,
		Tiles:  make([]TileType, width*height),
	}
}

// Index maps (x, y) to its position in Tiles. Callers pass in-bounds coordinates.
func (m *GameMap) Index(x, y int) int {
	return y*m.Width + x
}

// Point is the inverse of Index.
func (m *GameMap) Point(idx int) Point {
	return Point{X: idx % m.Width, Y: idx / m.Width}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile at (x, y). Panics if the index falls outside Tiles.
func (m *GameMap) At(x, y int) TileType {
	return m.Tiles[m.Index(x, y)]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t TileType) {
	m.Tiles[m.Index(x, y)] = t
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.At(x, y).Walkable()
}

// All yields every tile with its coordinate in row-major order
// (x fastest, y slowest). The sequence can be ranged over any number of times.
func (m *GameMap) All() iter.Seq2[Point, TileType] {
	return func(yield func(Point, TileType) bool) {
		x, y := 0, 0
		for _, t := range m.Tiles {
			if !yield(Point{X: x, Y: y}, t) {
				return
			}
			x++
			if x >= m.Width {
				x = 0
				y++
			}
		}
	}
}

// Rows yields each row of the grid as a slice view into Tiles.
func (m *GameMap) Rows() iter.Seq2[int, []TileType] {
	return func(yield func(int, []TileType) bool) {
		for y := 0; y < m.Height; y++ {
			start := y * m.Width
			if !yield(y, m.Tiles[start:start+m.Width:start+m.Width]) {
				return
			}
		}
	}
}

// Count returns how many tiles have type t.
func (m *GameMap) Count(t TileType) int {
	n := 0
	for _, tile := range m.Tiles {
		if tile == t {
			n++
		}
	}
	return n
}
