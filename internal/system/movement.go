package system

import (
	"dungeon-roguelike/internal/component"
	"dungeon-roguelike/internal/ecs"
	"dungeon-roguelike/internal/gamemap"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall, out of bounds, or no position
)

// TryMove attempts to move entity id by (dx, dy) on gmap. Only floor tiles
// can be entered.
func TryMove(w *ecs.World, gmap *gamemap.GameMap, id ecs.EntityID, dx, dy int) MoveResult {
	pos, ok := w.Get(id, component.CPosition).(component.Position)
	if !ok {
		return MoveBlocked
	}
	nx, ny := pos.X+dx, pos.Y+dy
	if !gmap.IsWalkable(nx, ny) {
		return MoveBlocked
	}
	w.Add(id, component.Position{X: nx, Y: ny})
	return MoveOK
}

// PlayerPosition returns the first player entity's position.
func PlayerPosition(w *ecs.World) (component.Position, bool) {
	for _, id := range w.Query(component.CTagPlayer, component.CPosition) {
		return w.Get(id, component.CPosition).(component.Position), true
	}
	return component.Position{}, false
}
