package component

import "pylon-delta/internal/ecs"

const (
	CTagPlayer   ecs.ComponentType = 7
	CTagBlocking ecs.ComponentType = 8
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagBlocking marks an entity that occupies its tile (blocks movement).
type TagBlocking struct{}

func (TagBlocking) Type() ecs.ComponentType { return CTagBlocking }
