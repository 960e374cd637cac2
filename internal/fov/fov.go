// Package fov computes fields of view with recursive shadowcasting. The core
// consumes it through a narrow interface, so another algorithm can be swapped
// in without touching action or scheduler code.
package fov

import "pylon-delta/internal/gamemap"

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//
//	worldX = cx + dx*xx + dy*xy
//	worldY = cy + dx*yx + dy*yy
//
// These match the standard RogueBasin recursive shadowcasting multipliers.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// Shadowcast is the default field-of-view provider.
type Shadowcast struct{}

// Compute returns the set of tiles visible from (ox, oy) within radius as a
// [height][width] grid. The origin itself is always visible.
func (Shadowcast) Compute(m *gamemap.GameMap, ox, oy, radius int) [][]bool {
	grid := make([][]bool, m.Height)
	for y := range grid {
		grid[y] = make([]bool, m.Width)
	}

	if !m.InBounds(ox, oy) {
		return grid
	}
	grid[oy][ox] = true

	for _, t := range octants {
		castLight(m, grid, ox, oy, 1, 1.0, 0.0, radius, t[0], t[1], t[2], t[3])
	}
	return grid
}

// castLight casts light for one octant using recursive shadowcasting.
//
//   - j is the current row (distance from origin along the main axis)
//   - dy = -j is fixed for the entire inner sweep (the row coordinate)
//   - dx sweeps from -j to 0 (the column coordinate within the row)
//   - world position: (cx + dx*xx + dy*xy,  cy + dx*yx + dy*yy)
func castLight(m *gamemap.GameMap, grid [][]bool, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := float64(radius * radius)
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j // fixed row index (always negative, moving away from origin)
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			// Slopes of the left and right edges of this cell. dy is negative,
			// so both denominators are negative and the slopes decrease toward
			// zero as dx moves right.
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue // cell is to the right of the current shadow beam
			}
			if end > lSlope {
				break // cell is to the left; all remaining cells are too
			}

			if float64(dx*dx+dy*dy) < radiusSq && m.InBounds(wx, wy) {
				grid[wy][wx] = true
			}

			opaque := !m.IsTransparent(wx, wy)

			if blocked {
				if opaque {
					// Still inside a wall run, advance the shadow boundary.
					newStart = rSlope
				} else {
					// Transitioned wall→open: resume with updated start slope.
					blocked = false
					start = newStart
				}
			} else {
				if opaque && j < radius {
					// Hit a new wall: cast a child scan beyond it.
					blocked = true
					castLight(m, grid, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
					newStart = rSlope
				}
			}
		}
		if blocked {
			break // entire row was wall; no light beyond
		}
	}
}
