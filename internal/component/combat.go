package component

import "pylon-delta/internal/ecs"

const CCombat ecs.ComponentType = 3

// Combat marks an entity as a melee participant. The component is removed for
// good when the entity dies, so its presence doubles as the liveness check.
type Combat struct {
	Power   int // raw attack strength
	Defense int // flat damage reduction
}

func (Combat) Type() ecs.ComponentType { return CCombat }
