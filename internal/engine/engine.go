// Package engine drives the round loop: the player's action, then every
// hostile's reaction, then the visibility refresh. It owns the session mode
// and is the only code that resolves actions.
package engine

import (
	"pylon-delta/internal/action"
	"pylon-delta/internal/ai"
	"pylon-delta/internal/component"
	"pylon-delta/internal/ecs"
	"pylon-delta/internal/gamemap"
)

// Mode is the session's top-level state.
type Mode uint8

const (
	ModePlaying Mode = iota
	// ModeGameOver is terminal: the engine still accepts Escape but resolves
	// nothing else. It is a separate state, not a flag inside the round.
	ModeGameOver
)

// RoundOutcome tells the host what one round amounted to.
type RoundOutcome uint8

const (
	RoundContinue RoundOutcome = iota
	RoundPlayerDied
	RoundQuit
)

// Engine sequences one dungeon session. Everything runs on the caller's
// goroutine; nothing inside a round suspends or overlaps.
type Engine struct {
	World  *ecs.World
	Map    *gamemap.GameMap
	Player ecs.EntityID

	fov       ai.FOV
	policy    ai.HostilePursuer
	fovRadius int
	mode      Mode
}

// New creates an engine over an already-populated world and computes the
// initial field of view.
func New(w *ecs.World, m *gamemap.GameMap, player ecs.EntityID, fieldOfView ai.FOV, paths ai.Pathfinder, fovRadius int) *Engine {
	e := &Engine{
		World:     w,
		Map:       m,
		Player:    player,
		fov:       fieldOfView,
		policy:    ai.HostilePursuer{FOV: fieldOfView, Paths: paths},
		fovRadius: fovRadius,
	}
	e.refreshVisibility()
	return e
}

// Mode returns the current session mode.
func (e *Engine) Mode() Mode { return e.mode }

// ApplyRound resolves one full round: the player's action, then, in stable
// entity order, each hostile that still has a decision policy. The player's
// action is fully resolved (including any death it causes) before the first
// hostile is even consulted, and each hostile finishes before the next
// starts. The returned reports are in resolution order.
func (e *Engine) ApplyRound(playerAction action.Action) (RoundOutcome, []action.Report) {
	if e.mode == ModeGameOver {
		// Terminal mode: Escape is honored, everything else is ignored.
		if _, ok := playerAction.(action.Escape); ok {
			return RoundQuit, nil
		}
		return RoundPlayerDied, nil
	}

	var reports []action.Report

	// Player phase.
	res := playerAction.Resolve(e.World, e.Map)
	if res.Quit {
		return RoundQuit, nil
	}
	if res.Report != nil {
		reports = append(reports, *res.Report)
	}

	// Hostile phase.
	for _, id := range e.World.Query(component.CAI, component.CPosition) {
		// Re-check: losing the policy mid-phase means the actor is dead.
		if !e.World.Has(id, component.CAI) {
			continue
		}
		hres := e.policy.Decide(e.World, e.Map, id, e.Player).Resolve(e.World, e.Map)
		if hres.Report != nil {
			reports = append(reports, *hres.Report)
		}
		if !e.playerAlive() {
			e.mode = ModeGameOver
			break
		}
	}

	// Visibility refresh.
	e.refreshVisibility()

	if e.mode == ModeGameOver {
		return RoundPlayerDied, reports
	}
	return RoundContinue, reports
}

// playerAlive reports whether the player can still act. The corpse
// transition strips the combat component, so its absence is the death mark.
func (e *Engine) playerAlive() bool {
	return e.World.Has(e.Player, component.CCombat)
}

// refreshVisibility recomputes the FOV from the player's position and unions
// it into the explored set.
func (e *Engine) refreshVisibility() {
	c := e.World.Get(e.Player, component.CPosition)
	if c == nil {
		return
	}
	pos := c.(component.Position)
	e.Map.SetVisible(e.fov.Compute(e.Map, pos.X, pos.Y, e.fovRadius))
}
