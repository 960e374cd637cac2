package component

import "pylon-delta/internal/ecs"

const CName ecs.ComponentType = 5

// Name is the entity's display name used in combat notifications.
type Name struct {
	Value string
}

func (Name) Type() ecs.ComponentType { return CName }
