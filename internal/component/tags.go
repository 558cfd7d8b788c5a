package component

import "dungeon-roguelike/internal/ecs"

const CTagPlayer ecs.ComponentType = 3

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }
