package render

import (
	"testing"

	"dungeon-roguelike/internal/component"
	"dungeon-roguelike/internal/ecs"
	"dungeon-roguelike/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, w, h int) tcell.Screen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	ss.SetSize(w, h)
	t.Cleanup(ss.Fini)
	return ss
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestDrawMapGlyphs(t *testing.T) {
	screen := newTestScreen(t, 20, 10)
	gmap := gamemap.New(5, 4)
	gmap.Set(2, 1, gamemap.Floor)

	r := NewRenderer(screen, DefaultTheme)
	r.DrawFrame(ecs.NewWorld(), gmap)

	for p, tile := range gmap.All() {
		want := DefaultTheme.Wall.Glyph
		if tile == gamemap.Floor {
			want = DefaultTheme.Floor.Glyph
		}
		if got := runeAt(screen, p.X, p.Y); got != want {
			t.Errorf("cell %v = %q, want %q", p, got, want)
		}
	}
	// Nothing is drawn past the map.
	if got := runeAt(screen, 5, 0); got != ' ' {
		t.Errorf("cell right of map = %q, want blank", got)
	}
}

func TestDrawMapColours(t *testing.T) {
	screen := newTestScreen(t, 10, 6)
	gmap := gamemap.New(3, 3)
	gmap.Set(1, 1, gamemap.Floor)

	r := NewRenderer(screen, DefaultTheme)
	r.DrawFrame(ecs.NewWorld(), gmap)

	_, _, wallStyle, _ := screen.GetContent(0, 0)
	_, _, floorStyle, _ := screen.GetContent(1, 1)
	if wallStyle != DefaultTheme.Wall.Style() {
		t.Errorf("wall style = %v, want %v", wallStyle, DefaultTheme.Wall.Style())
	}
	if floorStyle != DefaultTheme.Floor.Style() {
		t.Errorf("floor style = %v, want %v", floorStyle, DefaultTheme.Floor.Style())
	}
}

func TestDrawEntitiesOnTop(t *testing.T) {
	screen := newTestScreen(t, 10, 6)
	gmap := gamemap.New(4, 4)
	w := ecs.NewWorld()
	w.Spawn(component.Position{X: 1, Y: 1}, component.Renderable{Glyph: "@", RenderOrder: 10})
	w.Spawn(component.Position{X: 1, Y: 1}, component.Renderable{Glyph: "%", RenderOrder: 1})
	w.Spawn(component.Position{X: 2, Y: 2}) // no Renderable

	r := NewRenderer(screen, DefaultTheme)
	r.DrawFrame(w, gmap)

	if got := runeAt(screen, 1, 1); got != '@' {
		t.Errorf("entity cell = %q, want '@' (highest render order)", got)
	}
	if got := runeAt(screen, 2, 2); got != '#' {
		t.Errorf("cell without renderable = %q, want wall", got)
	}
}

func TestDrawHUD(t *testing.T) {
	screen := newTestScreen(t, 30, 8)
	r := NewRenderer(screen, DefaultTheme)
	r.DrawHUD("seed 7", []string{"old", "new"})

	want := "seed 7"
	for i, ch := range want {
		if got := runeAt(screen, i, 6); got != ch {
			t.Fatalf("status col %d = %q, want %q", i, got, ch)
		}
	}
	if got := runeAt(screen, 0, 7); got != 'n' {
		t.Errorf("message row starts with %q, want 'n' from the latest message", got)
	}
}

func TestCameraFollowClamps(t *testing.T) {
	cases := []struct {
		name       string
		cx, cy     int
		mapW, mapH int
		wantX      int
		wantY      int
	}{
		{"centred", 40, 25, 80, 50, 30, 20},
		{"top-left corner", 2, 1, 80, 50, 0, 0},
		{"bottom-right corner", 79, 49, 80, 50, 60, 40},
		{"map smaller than view", 3, 3, 10, 5, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCamera(20, 10)
			c.Follow(tc.cx, tc.cy, tc.mapW, tc.mapH)
			if c.OffsetX != tc.wantX || c.OffsetY != tc.wantY {
				t.Errorf("offset = (%d,%d); want (%d,%d)", c.OffsetX, c.OffsetY, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera(20, 10)
	c.Follow(40, 25, 80, 50)
	sx, sy, visible := c.WorldToScreen(40, 25)
	if !visible {
		t.Fatal("followed point should be visible")
	}
	if wx, wy := c.ScreenToWorld(sx, sy); wx != 40 || wy != 25 {
		t.Errorf("round trip = (%d,%d); want (40,25)", wx, wy)
	}
	if _, _, visible := c.WorldToScreen(0, 0); visible {
		t.Error("(0,0) should be off screen")
	}
}
