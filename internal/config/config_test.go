package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dungeon.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v; want defaults", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadOverridesSomeFields(t *testing.T) {
	path := writeConfig(t, `
level:
  width: 60
  seed: 99
logging:
  level: debug
server:
  port: 2300
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Level.Width != 60 || cfg.Level.Seed != 99 {
		t.Errorf("level = %+v; want width 60 seed 99", cfg.Level)
	}
	if cfg.Level.Height != 50 || cfg.Level.MaxRooms != 30 {
		t.Errorf("unset level fields should keep defaults, got %+v", cfg.Level)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "text" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if cfg.Server.Port != 2300 || cfg.Server.HostKey != "server_host_key" {
		t.Errorf("server = %+v", cfg.Server)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "read config") {
		t.Errorf("error %q should mention reading the config", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "level: [not, a, map")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero min size", func(c *Config) { c.Level.MinRoomSize = 0 }, "min_room_size"},
		{"max below min", func(c *Config) { c.Level.MaxRoomSize = 3 }, "max_room_size"},
		{"negative attempts", func(c *Config) { c.Level.MaxRooms = -1 }, "max_rooms"},
		{"zero attempts ok", func(c *Config) { c.Level.MaxRooms = 0 }, ""},
		{"map too small", func(c *Config) { c.Level.Width = 7 }, "cannot fit"},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, "port"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v; want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v; want error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestLevelGenerate(t *testing.T) {
	l := Default().Level
	g := l.Generate()
	if g.MapWidth != l.Width || g.MapHeight != l.Height || g.MaxRooms != l.MaxRooms ||
		g.MinRoomSize != l.MinRoomSize || g.MaxRoomSize != l.MaxRoomSize {
		t.Errorf("Generate() = %+v; does not match %+v", g, l)
	}
}
