package render

import (
	"sort"

	"dungeon-roguelike/internal/component"
	"dungeon-roguelike/internal/ecs"
	"dungeon-roguelike/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of screen rows reserved below the map.
const hudRows = 2

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	theme  Theme
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, theme Theme) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(w, max(0, h-hudRows)),
		theme:  theme,
	}
}

// Resize refits the viewport to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth, r.camera.ViewHeight = w, max(0, h-hudRows)
}

// Follow keeps world position (x, y) in view.
func (r *Renderer) Follow(x, y int, gmap *gamemap.GameMap) {
	r.camera.Follow(x, y, gmap.Width, gmap.Height)
}

// DrawFrame clears the screen and renders tiles then entities.
// The caller draws the HUD and calls Show.
func (r *Renderer) DrawFrame(w *ecs.World, gmap *gamemap.GameMap) {
	r.screen.Clear()
	r.drawMap(gmap)
	r.drawEntities(w)
}

// drawMap walks the grid once in row-major order.
func (r *Renderer) drawMap(gmap *gamemap.GameMap) {
	wall, floor := r.theme.Wall, r.theme.Floor
	wallStyle, floorStyle := wall.Style(), floor.Style()

	for p, tile := range gmap.All() {
		sx, sy, onScreen := r.camera.WorldToScreen(p.X, p.Y)
		if !onScreen {
			continue
		}
		switch tile {
		case gamemap.Floor:
			r.screen.SetContent(sx, sy, floor.Glyph, nil, floorStyle)
		default:
			r.screen.SetContent(sx, sy, wall.Glyph, nil, wallStyle)
		}
	}
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	order int
	pos   component.Position
	rend  component.Renderable
}

// drawEntities renders all entities with Renderable + Position, ordered by RenderOrder.
func (r *Renderer) drawEntities(w *ecs.World) {
	ids := w.Query(component.CRenderable, component.CPosition)
	entities := make([]renderableEntity, 0, len(ids))
	for _, id := range ids {
		pos := w.Get(id, component.CPosition).(component.Position)
		rend := w.Get(id, component.CRenderable).(component.Renderable)
		entities = append(entities, renderableEntity{order: rend.RenderOrder, pos: pos, rend: rend})
	}

	// Lower order is drawn first, i.e. behind.
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].order < entities[j].order
	})

	for _, e := range entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.pos.X, e.pos.Y)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(e.rend.FGColor).Background(e.rend.BGColor)
		r.putGlyph(sx, sy, e.rend.Glyph, style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
