package gamemap

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// Chebyshev returns max(|dx|, |dy|) between two points, adjacency including
// diagonals is distance 1.
func Chebyshev(a, b Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// Rect is an axis-aligned rectangle used for rooms during generation. Rooms
// are not retained on the finished map.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Inner returns the carved interior, one tile in from every edge. Leaving the
// outer ring as wall guarantees adjacent non-overlapping rooms stay separated.
func (r Rect) Inner() Rect {
	return Rect{X1: r.X1 + 1, Y1: r.Y1 + 1, X2: r.X2 - 1, Y2: r.Y2 - 1}
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}
