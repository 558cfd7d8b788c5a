// Package config loads the YAML settings shared by the game binaries.
package config

import (
	"errors"
	"fmt"
	"os"

	"dungeon-roguelike/internal/generate"
	"dungeon-roguelike/internal/logger"

	"gopkg.in/yaml.v3"
)

// Config is the top-level settings file.
type Config struct {
	Level   LevelConfig   `yaml:"level"`
	Logging logger.Config `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
}

// LevelConfig holds the dungeon generation parameters.
type LevelConfig struct {
	Width       int   `yaml:"width"`
	Height      int   `yaml:"height"`
	MaxRooms    int   `yaml:"max_rooms"`
	MinRoomSize int   `yaml:"min_room_size"`
	MaxRoomSize int   `yaml:"max_room_size"`
	Seed        int64 `yaml:"seed"` // 0 seeds from the clock
}

// ServerConfig holds SSH server settings.
type ServerConfig struct {
	Port    int    `yaml:"port"`
	HostKey string `yaml:"host_key"`
}

// Default returns an 80x50 level with the classic room settings.
func Default() Config {
	gen := generate.DefaultConfig(80, 50)
	return Config{
		Level: LevelConfig{
			Width:       gen.MapWidth,
			Height:      gen.MapHeight,
			MaxRooms:    gen.MaxRooms,
			MinRoomSize: gen.MinRoomSize,
			MaxRoomSize: gen.MaxRoomSize,
		},
		Logging: logger.DefaultConfig(),
		Server: ServerConfig{
			Port:    2222,
			HostKey: "server_host_key",
		},
	}
}

// Load reads path over the defaults. Fields absent from the file keep their
// default value. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports parameters the generator cannot turn into a useful level.
func (c Config) Validate() error {
	var errs []error
	l := c.Level
	if l.MinRoomSize <= 0 {
		errs = append(errs, fmt.Errorf("min_room_size must be positive, got %d", l.MinRoomSize))
	}
	if l.MaxRoomSize < l.MinRoomSize {
		errs = append(errs, fmt.Errorf("max_room_size %d is below min_room_size %d", l.MaxRoomSize, l.MinRoomSize))
	}
	if l.MaxRooms < 0 {
		errs = append(errs, fmt.Errorf("max_rooms must not be negative, got %d", l.MaxRooms))
	}
	// A room needs its size plus a one-tile border on each side.
	if need := l.MinRoomSize + 2; l.Width < need || l.Height < need {
		errs = append(errs, fmt.Errorf("level %dx%d cannot fit a %d-tile room with its border", l.Width, l.Height, l.MinRoomSize))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server port %d out of range", c.Server.Port))
	}
	return errors.Join(errs...)
}

// Generate converts the level settings into generator input.
func (l LevelConfig) Generate() generate.Config {
	return generate.Config{
		MapWidth:    l.Width,
		MapHeight:   l.Height,
		MaxRooms:    l.MaxRooms,
		MinRoomSize: l.MinRoomSize,
		MaxRoomSize: l.MaxRoomSize,
	}
}
