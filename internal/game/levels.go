package game

import (
	"dungeon-roguelike/internal/config"
	"dungeon-roguelike/internal/gamemap"
	"dungeon-roguelike/internal/generate"
)

// newLevel generates one rooms-and-corridors map.
func newLevel(level config.LevelConfig, r generate.Random) *gamemap.GameMap {
	return generate.RoomsAndCorridors(level.Generate(), r)
}

// startPosition is the centre of the first room, or the map centre when
// no room was placed.
func startPosition(gmap *gamemap.GameMap) (int, int) {
	if len(gmap.Rooms) > 0 {
		return gmap.Rooms[0].Center()
	}
	return gmap.Width / 2, gmap.Height / 2
}
