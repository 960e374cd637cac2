package component

import "pylon-delta/internal/ecs"

const CHealth ecs.ComponentType = 2

// Health tracks hit points. Current stays within [0, Max]; writes go through
// action.ApplyDamage so the clamp and the death transition are explicit.
type Health struct {
	Current, Max int
}

func (Health) Type() ecs.ComponentType { return CHealth }
