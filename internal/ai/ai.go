// Package ai decides hostile actors' turns. A policy inspects the world and
// returns one Action; it never mutates anything itself except its own cached
// path.
package ai

import (
	"pylon-delta/internal/action"
	"pylon-delta/internal/component"
	"pylon-delta/internal/ecs"
	"pylon-delta/internal/gamemap"
)

// FOV computes the tiles visible from an origin within a radius.
type FOV interface {
	Compute(m *gamemap.GameMap, ox, oy, radius int) [][]bool
}

// Pathfinder finds the cheapest route over a per-tile cost grid, empty when
// the destination is unreachable.
type Pathfinder interface {
	Find(cost [][]int, from, to gamemap.Point) []gamemap.Point
}

// crowdPenalty is added to a tile's path cost when a blocking entity stands
// on it. High enough that hostiles route around a queue, low enough that a
// single chokepoint stays usable.
const crowdPenalty = 10

// HostilePursuer always targets the player: attack when adjacent, chase when
// the player is in sight, wait otherwise.
type HostilePursuer struct {
	FOV   FOV
	Paths Pathfinder
}

// Decide returns the actor's action for this round.
func (p HostilePursuer) Decide(w *ecs.World, m *gamemap.GameMap, actor, player ecs.EntityID) action.Action {
	posC := w.Get(actor, component.CPosition)
	targetC := w.Get(player, component.CPosition)
	aiC := w.Get(actor, component.CAI)
	if posC == nil || targetC == nil || aiC == nil {
		return action.Wait{Actor: actor}
	}
	pos := posC.(component.Position)
	target := targetC.(component.Position)
	brain := aiC.(component.AI)

	// Sight is checked from the actor's own position, not the player's.
	seen := p.FOV.Compute(m, pos.X, pos.Y, brain.SightRange)
	if m.InBounds(target.X, target.Y) && seen[target.Y][target.X] {
		dx, dy := target.X-pos.X, target.Y-pos.Y
		if gamemap.Chebyshev(gamemap.Point{X: pos.X, Y: pos.Y}, gamemap.Point{X: target.X, Y: target.Y}) <= 1 {
			return action.Melee{Actor: actor, DX: dx, DY: dy}
		}
		// Recompute the route every round the player is in sight; a stale
		// cached path is simply replaced, never explicitly invalidated.
		brain.Path = p.Paths.Find(p.costGrid(w, m), gamemap.Point{X: pos.X, Y: pos.Y}, gamemap.Point{X: target.X, Y: target.Y})
		if len(brain.Path) > 0 {
			step := brain.Path[0]
			brain.Path = brain.Path[1:]
			w.Add(actor, brain)
			return action.Move{Actor: actor, DX: step.X - pos.X, DY: step.Y - pos.Y}
		}
		w.Add(actor, brain)
		return action.Wait{Actor: actor}
	}

	return action.Wait{Actor: actor}
}

// costGrid derives path costs from the map: 1 per walkable tile, 0 for
// walls. Tiles under blocking entities cost extra rather than being
// forbidden, which makes crowded corridors unattractive without ever
// declaring them impassable, so hostiles fan out around clustered allies.
func (p HostilePursuer) costGrid(w *ecs.World, m *gamemap.GameMap) [][]int {
	cost := make([][]int, m.Height)
	for y := range cost {
		cost[y] = make([]int, m.Width)
		for x := range cost[y] {
			if m.IsWalkable(x, y) {
				cost[y][x] = 1
			}
		}
	}
	for _, id := range w.Query(component.CTagBlocking, component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		if m.InBounds(pos.X, pos.Y) && cost[pos.Y][pos.X] > 0 {
			cost[pos.Y][pos.X] += crowdPenalty
		}
	}
	return cost
}
