package component

import "dungeon-roguelike/internal/ecs"

const CPosition ecs.ComponentType = 1

// Position is an entity's tile coordinate on the current level.
type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }
