package gamemap

// TileType identifies the terrain of one map cell.
type TileType uint8

const (
	Wall TileType = iota
	Floor
)

// String returns a lowercase name for the tile type.
func (t TileType) String() string {
	switch t {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	}
	return "unknown"
}

// Walkable reports whether an entity may stand on this tile.
func (t TileType) Walkable() bool { return t == Floor }
