package component

import (
	"pylon-delta/internal/ecs"
	"pylon-delta/internal/gamemap"
)

const CAI ecs.ComponentType = 6

// AI is the hostile-pursuer decision policy's per-actor state. An entity with
// this component takes a turn every round; removing it is the one-way "dead"
// marker; it is never reattached.
type AI struct {
	SightRange int
	// Path is the cached route toward the player. A stale path is simply
	// overwritten the next time the player is visible; no invalidation.
	Path []gamemap.Point
}

func (AI) Type() ecs.ComponentType { return CAI }
