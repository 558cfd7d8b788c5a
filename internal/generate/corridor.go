package generate

import "dungeon-roguelike/internal/gamemap"

// carveH digs a horizontal tunnel at row y from x1 to x2, both inclusive.
func carveH(gmap *gamemap.GameMap, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		carveFloor(gmap, x, y)
	}
}

// carveV digs a vertical tunnel at column x from y1 to y2, both inclusive.
func carveV(gmap *gamemap.GameMap, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		carveFloor(gmap, x, y)
	}
}

// carveFloor writes one corridor tile by flat index. Index 0 is never carved
// and anything past the end of the grid is dropped.
// TODO: confirm whether the index-0 exclusion is wanted before changing it.
func carveFloor(gmap *gamemap.GameMap, x, y int) {
	idx := gmap.Index(x, y)
	if idx > 0 && idx < len(gmap.Tiles) {
		gmap.Tiles[idx] = gamemap.Floor
	}
}
