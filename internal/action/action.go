// Package action defines the closed set of turn intents and their resolution
// against the world. Every effect a turn can have on the simulation passes
// through exactly one Resolve call.
package action

import (
	"fmt"

	"pylon-delta/internal/component"
	"pylon-delta/internal/ecs"
	"pylon-delta/internal/gamemap"
)

// Action is one resolvable intent for a single actor's turn. Resolve is
// called exactly once per value; an illegal intent (blocked move, attack on
// an empty tile) resolves as a silent no-op, never an error.
type Action interface {
	Resolve(w *ecs.World, m *gamemap.GameMap) Result
}

// Result is what a resolution tells the host. A zero Result is a no-op turn.
type Result struct {
	Quit   bool    // the session must end; nothing resumes after this
	Report *Report // attack notification, nil for non-combat resolutions
}

// Report carries the data a message log needs alongside one attack.
type Report struct {
	Attacker, Target         ecs.EntityID
	AttackerName, TargetName string
	Damage                   int
	Killed                   bool
}

// Escape aborts the session. It is a control signal, not a gameplay effect.
type Escape struct{}

func (Escape) Resolve(w *ecs.World, m *gamemap.GameMap) Result {
	return Result{Quit: true}
}

// Wait consumes the actor's turn without side effects.
type Wait struct {
	Actor ecs.EntityID
}

func (Wait) Resolve(w *ecs.World, m *gamemap.GameMap) Result {
	return Result{}
}

// Move relocates the actor by (DX, DY). It is the only way an actor's
// position changes. Out-of-bounds, unwalkable, or occupied destinations make
// it a no-op.
type Move struct {
	Actor  ecs.EntityID
	DX, DY int
}

func (a Move) Resolve(w *ecs.World, m *gamemap.GameMap) Result {
	pos := mustPosition(w, a.Actor)
	nx, ny := pos.X+a.DX, pos.Y+a.DY

	if !m.IsWalkable(nx, ny) {
		return Result{}
	}
	if blockingEntityAt(w, nx, ny) != ecs.NilEntity {
		return Result{}
	}
	w.Add(a.Actor, component.Position{X: nx, Y: ny})
	return Result{}
}

// Melee attacks whatever blocking combatant stands at actor+(DX, DY).
// Attacking an empty tile or a non-combatant is a silent no-op. A zero-damage
// hit still produces a report: the swing happened, it just bounced off.
type Melee struct {
	Actor  ecs.EntityID
	DX, DY int
}

func (a Melee) Resolve(w *ecs.World, m *gamemap.GameMap) Result {
	pos := mustPosition(w, a.Actor)
	target := combatantAt(w, pos.X+a.DX, pos.Y+a.DY)
	if target == ecs.NilEntity {
		return Result{}
	}

	attacker := w.Get(a.Actor, component.CCombat)
	if attacker == nil {
		return Result{}
	}
	defense := w.Get(target, component.CCombat).(component.Combat).Defense

	damage := attacker.(component.Combat).Power - defense
	if damage < 0 {
		damage = 0
	}

	report := &Report{
		Attacker:     a.Actor,
		Target:       target,
		AttackerName: displayName(w, a.Actor),
		TargetName:   displayName(w, target),
		Damage:       damage,
	}
	if damage > 0 {
		report.Killed = ApplyDamage(w, target, damage)
	}
	return Result{Report: report}
}

// Bump is the chokepoint for all directional input: it resolves to Melee when
// a blocking combatant occupies the destination, to Move otherwise, never
// both. New directional behaviors branch here.
type Bump struct {
	Actor  ecs.EntityID
	DX, DY int
}

func (a Bump) Resolve(w *ecs.World, m *gamemap.GameMap) Result {
	pos := mustPosition(w, a.Actor)
	if combatantAt(w, pos.X+a.DX, pos.Y+a.DY) != ecs.NilEntity {
		return Melee{Actor: a.Actor, DX: a.DX, DY: a.DY}.Resolve(w, m)
	}
	return Move{Actor: a.Actor, DX: a.DX, DY: a.DY}.Resolve(w, m)
}

// mustPosition panics when the actor has no position: an action reaching
// Resolve for a positionless actor is a scheduler bug.
func mustPosition(w *ecs.World, id ecs.EntityID) component.Position {
	c := w.Get(id, component.CPosition)
	if c == nil {
		panic(fmt.Sprintf("action: entity %d has no position", id))
	}
	return c.(component.Position)
}

// blockingEntityAt returns the blocking entity standing at (x, y), or
// NilEntity. At most one blocking entity can occupy a tile.
func blockingEntityAt(w *ecs.World, x, y int) ecs.EntityID {
	for _, id := range w.Query(component.CTagBlocking, component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		if pos.X == x && pos.Y == y {
			return id
		}
	}
	return ecs.NilEntity
}

// combatantAt returns the blocking entity at (x, y) only when it can fight.
// Corpses fail both checks: they neither block nor carry combat stats.
func combatantAt(w *ecs.World, x, y int) ecs.EntityID {
	id := blockingEntityAt(w, x, y)
	if id == ecs.NilEntity || !w.Has(id, component.CCombat) {
		return ecs.NilEntity
	}
	return id
}

func displayName(w *ecs.World, id ecs.EntityID) string {
	c := w.Get(id, component.CName)
	if c == nil {
		return "something"
	}
	return c.(component.Name).Value
}
