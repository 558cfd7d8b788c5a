package generate

import (
	"dungeon-roguelike/internal/gamemap"
	"dungeon-roguelike/internal/logger"

	"github.com/sirupsen/logrus"
)

// Random is the dice capability generation draws from.
type Random interface {
	// RollDice sums n rolls of a die with faces 1..sides.
	RollDice(n, sides int) int
	// Range returns a uniform integer in [lo, hi).
	Range(lo, hi int) int
}

// Config drives rooms-and-corridors generation for one level.
type Config struct {
	MapWidth, MapHeight int
	MaxRooms            int // placement attempts, not a room target
	MinRoomSize         int
	MaxRoomSize         int
}

// DefaultConfig returns the classic 30-attempt, 6..10 room layout for a map
// of the given size.
func DefaultConfig(width, height int) Config {
	return Config{
		MapWidth:    width,
		MapHeight:   height,
		MaxRooms:    30,
		MinRoomSize: 6,
		MaxRoomSize: 10,
	}
}

// RoomsAndCorridors places up to cfg.MaxRooms non-overlapping rooms and links
// each accepted room to the one accepted before it with an L-shaped corridor.
// Every attempt consumes one iteration whether or not its room fits.
func RoomsAndCorridors(cfg Config, rng Random) *gamemap.GameMap {
	gmap := gamemap.New(cfg.MapWidth, cfg.MapHeight)
	rejected := 0

	for range cfg.MaxRooms {
		w := rng.RollDice(1, cfg.MaxRoomSize-cfg.MinRoomSize+1) + cfg.MinRoomSize - 1
		h := rng.RollDice(1, cfg.MaxRoomSize-cfg.MinRoomSize+1) + cfg.MinRoomSize - 1
		x := rng.RollDice(1, max(1, cfg.MapWidth-w-1)) - 1
		y := rng.RollDice(1, max(1, cfg.MapHeight-h-1)) - 1
		room := gamemap.NewRect(x, y, w, h)

		if overlapsAny(room, gmap.Rooms) {
			rejected++
			continue
		}

		carveRoom(gmap, room)

		if len(gmap.Rooms) > 0 {
			newX, newY := room.Center()
			prevX, prevY := gmap.Rooms[len(gmap.Rooms)-1].Center()
			if rng.Range(0, 2) == 1 {
				carveH(gmap, prevX, newX, prevY)
				carveV(gmap, prevY, newY, newX)
			} else {
				carveV(gmap, prevY, newY, prevX)
				carveH(gmap, prevX, newX, newY)
			}
		}

		gmap.Rooms = append(gmap.Rooms, room)
	}

	logger.Log.WithFields(logrus.Fields{
		"width":    cfg.MapWidth,
		"height":   cfg.MapHeight,
		"attempts": cfg.MaxRooms,
		"rooms":    len(gmap.Rooms),
		"rejected": rejected,
	}).Debug("generated rooms and corridors")

	return gmap
}

func overlapsAny(room gamemap.Rect, rooms []gamemap.Rect) bool {
	for _, other := range rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom floors the cells x1 < x <= x2, y1 < y <= y2. The low edges stay
// wall so rooms never share a floor edge with a neighbour.
// Cells outside the map are skipped; only oversized rooms reach them.
func carveRoom(gmap *gamemap.GameMap, room gamemap.Rect) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			if gmap.InBounds(x, y) {
				gmap.Set(x, y, gamemap.Floor)
			}
		}
	}
}
