// Package gamemap holds the tile grid and per-map visibility state.
package gamemap

// GameMap is one dungeon level: a static tile grid plus the dynamic
// visible/explored grids. Tiles are read-only after generation; the
// visibility grids are rewritten once per round by the scheduler.
type GameMap struct {
	Width, Height int
	Tiles         [][]Tile
	visible       [][]bool
	explored      [][]bool
}

// New creates a GameMap filled with walls, nothing visible or explored.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	visible := make([][]bool, height)
	explored := make([][]bool, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		visible[y] = make([]bool, width)
		explored[y] = make([]bool, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles, visible: visible, explored: explored}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile at (x, y). Panics if out of bounds; an out-of-range
// index here is a generator or scheduler bug, not a recoverable condition.
func (m *GameMap) At(x, y int) Tile {
	return m.Tiles[y][x]
}

// Set replaces the tile at (x, y). Only generation calls this.
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Walkable
}

// IsTransparent returns true when (x, y) is in bounds and transparent.
func (m *GameMap) IsTransparent(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Transparent
}

// Visible reports whether (x, y) is inside the current field of view.
func (m *GameMap) Visible(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.visible[y][x]
}

// Explored reports whether (x, y) has ever been visible.
func (m *GameMap) Explored(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.explored[y][x]
}

// SetVisible replaces the visible grid with the given FOV result and unions
// it into the explored grid. Explored is monotonic: once true, never reset.
func (m *GameMap) SetVisible(fov [][]bool) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			v := fov[y][x]
			m.visible[y][x] = v
			if v {
				m.explored[y][x] = true
			}
		}
	}
}
