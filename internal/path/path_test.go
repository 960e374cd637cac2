package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pylon-delta/internal/gamemap"
)

// uniformGrid returns a w x h cost grid of all 1s.
func uniformGrid(w, h int) [][]int {
	grid := make([][]int, h)
	for y := range grid {
		grid[y] = make([]int, w)
		for x := range grid[y] {
			grid[y][x] = 1
		}
	}
	return grid
}

func TestStraightLine(t *testing.T) {
	grid := uniformGrid(10, 10)
	p := Dijkstra{}.Find(grid, gamemap.Point{X: 2, Y: 5}, gamemap.Point{X: 6, Y: 5})

	require.Len(t, p, 4)
	assert.Equal(t, gamemap.Point{X: 3, Y: 5}, p[0])
	assert.Equal(t, gamemap.Point{X: 6, Y: 5}, p[3])
}

func TestDiagonalIsSingleStep(t *testing.T) {
	grid := uniformGrid(5, 5)
	p := Dijkstra{}.Find(grid, gamemap.Point{X: 1, Y: 1}, gamemap.Point{X: 2, Y: 2})

	require.Len(t, p, 1)
	assert.Equal(t, gamemap.Point{X: 2, Y: 2}, p[0])
}

func TestRoutesAroundWall(t *testing.T) {
	// Vertical wall at x=3 with a gap at y=0.
	grid := uniformGrid(7, 5)
	for y := 1; y < 5; y++ {
		grid[y][3] = 0
	}

	p := Dijkstra{}.Find(grid, gamemap.Point{X: 1, Y: 3}, gamemap.Point{X: 5, Y: 3})
	require.NotEmpty(t, p)

	// The route must pass through the gap row and never enter a wall cell.
	throughGap := false
	for _, step := range p {
		assert.NotZero(t, grid[step.Y][step.X], "path entered impassable cell %v", step)
		if step.X == 3 && step.Y == 0 {
			throughGap = true
		}
	}
	assert.True(t, throughGap, "path should use the only gap in the wall")
	assert.Equal(t, gamemap.Point{X: 5, Y: 3}, p[len(p)-1])
}

func TestUnreachableIsEmpty(t *testing.T) {
	// Solid wall at x=3, no gap.
	grid := uniformGrid(7, 5)
	for y := 0; y < 5; y++ {
		grid[y][3] = 0
	}

	p := Dijkstra{}.Find(grid, gamemap.Point{X: 1, Y: 2}, gamemap.Point{X: 5, Y: 2})
	assert.Empty(t, p)
}

func TestSameStartAndGoalIsEmpty(t *testing.T) {
	grid := uniformGrid(4, 4)
	p := Dijkstra{}.Find(grid, gamemap.Point{X: 2, Y: 2}, gamemap.Point{X: 2, Y: 2})
	assert.Empty(t, p)
}

func TestElevatedCostDiscouragesButAllows(t *testing.T) {
	// A 3-wide corridor where the middle row is cheap except for one
	// expensive cell; the path should sidestep the expensive cell.
	grid := uniformGrid(7, 3)
	grid[1][3] = 11 // crowded tile: passable but costly

	p := Dijkstra{}.Find(grid, gamemap.Point{X: 0, Y: 1}, gamemap.Point{X: 6, Y: 1})
	require.NotEmpty(t, p)
	for _, step := range p {
		assert.NotEqual(t, gamemap.Point{X: 3, Y: 1}, step, "path should sidestep the elevated-cost cell")
	}

	// With every alternative blocked, the expensive cell is still usable.
	narrow := [][]int{{1, 1, 1, 11, 1, 1, 1}}
	p = Dijkstra{}.Find(narrow, gamemap.Point{X: 0, Y: 0}, gamemap.Point{X: 6, Y: 0})
	require.Len(t, p, 6)
}

func TestOutOfGridEndpoints(t *testing.T) {
	grid := uniformGrid(4, 4)
	assert.Empty(t, Dijkstra{}.Find(grid, gamemap.Point{X: -1, Y: 0}, gamemap.Point{X: 2, Y: 2}))
	assert.Empty(t, Dijkstra{}.Find(grid, gamemap.Point{X: 0, Y: 0}, gamemap.Point{X: 9, Y: 2}))
}
