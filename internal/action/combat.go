package action

import (
	"pylon-delta/internal/component"
	"pylon-delta/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// ApplyDamage subtracts amount from the entity's hit points, clamped into
// [0, Max], and reports whether this killed it. Reaching zero triggers the
// corpse transition synchronously, so by the time the caller sees true the
// entity already neither blocks nor fights.
func ApplyDamage(w *ecs.World, id ecs.EntityID, amount int) bool {
	c := w.Get(id, component.CHealth)
	if c == nil {
		return false
	}
	h := c.(component.Health)

	hp := h.Current - amount
	if hp < 0 {
		hp = 0
	}
	if hp > h.Max {
		hp = h.Max
	}
	h.Current = hp
	w.Add(id, h)

	if hp == 0 {
		die(w, id)
		return true
	}
	return false
}

// die converts the entity in place into a corpse. This is a state transition,
// not removal: the ID stays valid and the position is retained. It runs at
// most once per entity, since the combat component it removes is what made
// the entity attackable in the first place.
func die(w *ecs.World, id ecs.EntityID) {
	name := displayName(w, id)
	w.Add(id, component.Name{Value: "remains of " + name})
	w.Add(id, component.Renderable{
		Glyph:       "%",
		FGColor:     tcell.NewRGBColor(191, 0, 0),
		RenderOrder: component.RenderOrderCorpse,
	})
	w.Remove(id, component.CTagBlocking)
	w.Remove(id, component.CCombat)
	// The decision policy never comes back: no-AI is the canonical dead marker.
	w.Remove(id, component.CAI)
}
