// mapgen prints a generated level as text: '#' for wall, '.' for floor.
// The room list goes to stderr so stdout stays a clean map.
//
//	go run ./cmd/mapgen -seed 42
//	go run ./cmd/mapgen -style scatter -width 60 -height 20
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"dungeon-roguelike/internal/config"
	"dungeon-roguelike/internal/gamemap"
	"dungeon-roguelike/internal/generate"
	"dungeon-roguelike/internal/logger"
	"dungeon-roguelike/internal/rng"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	width := flag.Int("width", 0, "Map width (overrides config)")
	height := flag.Int("height", 0, "Map height (overrides config)")
	rooms := flag.Int("rooms", -1, "Room placement attempts (overrides config)")
	minSize := flag.Int("min", 0, "Minimum room size (overrides config)")
	maxSize := flag.Int("max", 0, "Maximum room size (overrides config)")
	seed := flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
	style := flag.String("style", "rooms", "Generator: rooms or scatter")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	applyOverrides(&cfg.Level, *width, *height, *rooms, *minSize, *maxSize, *seed)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid config: %v\n", err)
		os.Exit(1)
	}
	closer := logger.Init(cfg.Logging)
	defer closer.Close()

	r := rng.New(cfg.Level.Seed)
	var gmap *gamemap.GameMap
	switch *style {
	case "rooms":
		gmap = generate.RoomsAndCorridors(cfg.Level.Generate(), r)
	case "scatter":
		gmap = generate.Scatter(cfg.Level.Width, cfg.Level.Height, r)
	default:
		fmt.Fprintf(os.Stderr, "error: unknown style %q (want rooms or scatter)\n", *style)
		os.Exit(2)
	}

	if err := writeMap(os.Stdout, gmap); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "seed %d, %d rooms\n", r.Seed(), len(gmap.Rooms))
	for i, room := range gmap.Rooms {
		cx, cy := room.Center()
		fmt.Fprintf(os.Stderr, "  room %2d: (%d,%d)-(%d,%d) centre (%d,%d)\n",
			i, room.X1, room.Y1, room.X2, room.Y2, cx, cy)
	}
}

// applyOverrides copies flags that were set onto the level config.
func applyOverrides(l *config.LevelConfig, width, height, rooms, minSize, maxSize int, seed int64) {
	if width > 0 {
		l.Width = width
	}
	if height > 0 {
		l.Height = height
	}
	if rooms >= 0 {
		l.MaxRooms = rooms
	}
	if minSize > 0 {
		l.MinRoomSize = minSize
	}
	if maxSize > 0 {
		l.MaxRoomSize = maxSize
	}
	if seed != 0 {
		l.Seed = seed
	}
}

// writeMap prints one line per map row.
func writeMap(w io.Writer, gmap *gamemap.GameMap) error {
	bw := bufio.NewWriter(w)
	for _, row := range gmap.Rows() {
		for _, tile := range row {
			ch := byte('#')
			if tile == gamemap.Floor {
				ch = '.'
			}
			bw.WriteByte(ch)
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write map: %w", err)
	}
	return nil
}
