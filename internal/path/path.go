// Package path finds shortest routes over a weighted tile grid. Like fov, it
// is a capability the core reaches through an interface, not part of the
// action or scheduler logic.
package path

import (
	"container/heap"

	"pylon-delta/internal/gamemap"
)

// Step costs: entering a tile costs its grid weight times the move factor.
// Diagonals cost 1.5x cardinals, so paths prefer straight runs but still cut
// corners when it genuinely saves distance.
const (
	cardinalFactor = 2
	diagonalFactor = 3
)

var neighbors = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1}, // cardinal
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1}, // diagonal
}

// Dijkstra is the default pathfinding provider.
type Dijkstra struct{}

// Find returns the cheapest route from `from` to `to` over cost, a
// [height][width] grid of per-tile entry weights where 0 means impassable.
// The result excludes the starting tile and ends at the destination; it is
// empty when the destination is unreachable.
func (Dijkstra) Find(cost [][]int, from, to gamemap.Point) []gamemap.Point {
	h := len(cost)
	if h == 0 {
		return nil
	}
	w := len(cost[0])
	inGrid := func(p gamemap.Point) bool {
		return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
	}
	if !inGrid(from) || !inGrid(to) {
		return nil
	}
	if from == to {
		return nil
	}

	dist := make([]int, w*h)
	prev := make([]int, w*h)
	for i := range dist {
		dist[i] = -1
		prev[i] = -1
	}
	idx := func(p gamemap.Point) int { return p.Y*w + p.X }

	pq := &nodeQueue{}
	heap.Init(pq)
	dist[idx(from)] = 0
	heap.Push(pq, node{pos: from, dist: 0})

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(node)
		ci := idx(cur.pos)
		if cur.dist > dist[ci] {
			continue // stale queue entry
		}
		if cur.pos == to {
			break
		}
		for i, d := range neighbors {
			next := gamemap.Point{X: cur.pos.X + d[0], Y: cur.pos.Y + d[1]}
			if !inGrid(next) {
				continue
			}
			weight := cost[next.Y][next.X]
			if weight <= 0 {
				continue
			}
			factor := cardinalFactor
			if i >= 4 {
				factor = diagonalFactor
			}
			ni := idx(next)
			nd := cur.dist + weight*factor
			if dist[ni] < 0 || nd < dist[ni] {
				dist[ni] = nd
				prev[ni] = ci
				heap.Push(pq, node{pos: next, dist: nd})
			}
		}
	}

	if dist[idx(to)] < 0 {
		return nil
	}

	// Walk predecessors back from the destination, then reverse.
	var rev []gamemap.Point
	for i := idx(to); i != idx(from); i = prev[i] {
		rev = append(rev, gamemap.Point{X: i % w, Y: i / w})
	}
	out := make([]gamemap.Point, len(rev))
	for i, p := range rev {
		out[len(rev)-1-i] = p
	}
	return out
}

type node struct {
	pos  gamemap.Point
	dist int
}

// nodeQueue is a min-heap of frontier nodes ordered by distance.
type nodeQueue []node

func (q nodeQueue) Len() int            { return len(q) }
func (q nodeQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q nodeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x any) { *q = append(*q, x.(node)) }
func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}
