package generate

import "dungeon-roguelike/internal/gamemap"

// Scatter builds a test map: open floor inside a solid wall ring, with
// width*height/10 walls dropped at random. The centre tile always stays floor
// so a player placed there can move. The result has no rooms.
func Scatter(width, height int, rng Random) *gamemap.GameMap {
	gmap := gamemap.New(width, height)
	for i := range gmap.Tiles {
		gmap.Tiles[i] = gamemap.Floor
	}

	for x := 0; x < width; x++ {
		gmap.Set(x, 0, gamemap.Wall)
		gmap.Set(x, height-1, gamemap.Wall)
	}
	for y := 0; y < height; y++ {
		gmap.Set(0, y, gamemap.Wall)
		gmap.Set(width-1, y, gamemap.Wall)
	}

	center := gmap.Index(width/2, height/2)
	for range width * height / 10 {
		x := rng.RollDice(1, width-1)
		y := rng.RollDice(1, height-1)
		if idx := gmap.Index(x, y); idx != center {
			gmap.Tiles[idx] = gamemap.Wall
		}
	}
	return gmap
}
