// Package factory builds fully-wired entities from archetype definitions.
package factory

import (
	"pylon-delta/assets"
	"pylon-delta/internal/component"
	"pylon-delta/internal/ecs"
	"pylon-delta/internal/generate"
)

// NewPlayer creates the player entity at (x, y).
func NewPlayer(w *ecs.World, x, y int, def assets.PlayerDef) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Name{Value: def.Name})
	w.Add(id, component.Health{Current: def.MaxHP, Max: def.MaxHP})
	w.Add(id, component.Combat{Power: def.Power, Defense: def.Defense})
	w.Add(id, component.Renderable{
		Glyph:       def.Glyph,
		FGColor:     def.Color,
		RenderOrder: component.RenderOrderActor,
	})
	w.Add(id, component.TagPlayer{})
	w.Add(id, component.TagBlocking{})
	return id
}

// NewHostile creates a hostile actor from a spawn entry. The AI component is
// what makes it take turns; losing it later is how it dies.
func NewHostile(w *ecs.World, entry generate.SpawnEntry, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Name{Value: entry.Name})
	w.Add(id, component.Health{Current: entry.MaxHP, Max: entry.MaxHP})
	w.Add(id, component.Combat{Power: entry.Power, Defense: entry.Defense})
	w.Add(id, component.Renderable{
		Glyph:       entry.Glyph,
		FGColor:     entry.Color,
		RenderOrder: component.RenderOrderActor,
	})
	w.Add(id, component.AI{SightRange: entry.SightRange})
	w.Add(id, component.TagBlocking{})
	return id
}
