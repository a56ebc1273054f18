package grid

import (
	"container/heap"
	"fmt"
)

// pathNode holds the best-known route to one coordinate during a search:
// the accumulated cost from the start, and the coordinate it was most
// recently reached from. The start node is the only one with no
// predecessor. Nodes are created when a coordinate is first discovered and
// updated in place on relaxation, never deleted mid-search.
type pathNode[C comparable] struct {
	totalCost int
	prev      C
	hasPrev   bool
}

// frontierEntry is one scheduled visit in the frontier queue. Relaxing a
// coordinate does not remove its old entry; the cheaper route enqueues a
// fresh one and stale entries are skipped when popped.
type frontierEntry[C comparable] struct {
	coord C
	cost  int
}

type frontierQueue[C comparable] []frontierEntry[C]

func (q frontierQueue[C]) Len() int           { return len(q) }
func (q frontierQueue[C]) Less(i, j int) bool { return q[i].cost < q[j].cost }
func (q frontierQueue[C]) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *frontierQueue[C]) Push(x any) {
	*q = append(*q, x.(frontierEntry[C]))
}

func (q *frontierQueue[C]) Pop() any {
	old := *q
	n := len(old)
	entry := old[n-1]
	*q = old[:n-1]
	return entry
}

// Pathfinder computes minimum-cost paths over a Map. Per-search state (node
// map, frontier, finalized set) is cleared at the start of every FindPath
// call, so a single instance can be reused across searches to keep its
// allocations; sharing one instance between goroutines is not safe.
type Pathfinder[C Coord[C], T any] struct {
	nodes     map[C]*pathNode[C]
	finalized map[C]struct{}
	frontier  frontierQueue[C]
}

// NewPathfinder creates a reusable pathfinder.
func NewPathfinder[C Coord[C], T any]() *Pathfinder[C, T] {
	return &Pathfinder[C, T]{
		nodes:     make(map[C]*pathNode[C]),
		finalized: make(map[C]struct{}),
	}
}

// FindPath computes a minimum-total-cost path from start to end over m,
// ordered start to end and inclusive of both endpoints. The cost of a step
// is the cost of the tile stepped onto (TileCost of the destination tile),
// so the start tile never contributes to a path's total. Returns
// (nil, false) when no sequence of adjacent stored tiles connects the
// endpoints.
//
// The start coordinate is seeded at cost zero even when m stores no tile
// there; its neighbors are explored normally. When several paths share the
// minimum cost, which one is returned is unspecified. The map is only read.
func (p *Pathfinder[C, T]) FindPath(m *Map[C, T], start, end C) ([]C, bool) {
	p.reset()

	p.nodes[start] = &pathNode[C]{}
	heap.Push(&p.frontier, frontierEntry[C]{coord: start})

	for p.frontier.Len() > 0 {
		entry := heap.Pop(&p.frontier).(frontierEntry[C])
		if _, done := p.finalized[entry.coord]; done {
			continue
		}
		cur := p.node(entry.coord)
		if entry.cost > cur.totalCost {
			// Stale entry: the coordinate was relaxed to a cheaper route
			// after this visit was scheduled.
			continue
		}
		p.finalized[entry.coord] = struct{}{}

		if entry.coord == end {
			return p.reconstruct(end), true
		}

		for _, adj := range entry.coord.Neighbors() {
			tile, ok := m.Get(adj)
			if !ok {
				// No tile stored: not traversable, not an error.
				continue
			}
			if _, done := p.finalized[adj]; done {
				// Finalized coordinates are never reopened. Correct only
				// while tile costs are non-negative.
				continue
			}
			candidate := cur.totalCost + TileCost(tile)
			n, seen := p.nodes[adj]
			switch {
			case !seen:
				p.nodes[adj] = &pathNode[C]{totalCost: candidate, prev: entry.coord, hasPrev: true}
				heap.Push(&p.frontier, frontierEntry[C]{coord: adj, cost: candidate})
			case candidate < n.totalCost:
				n.totalCost = candidate
				n.prev = entry.coord
				n.hasPrev = true
				heap.Push(&p.frontier, frontierEntry[C]{coord: adj, cost: candidate})
			}
		}
	}

	return nil, false
}

// reset clears state left over from a previous search, keeping the backing
// allocations.
func (p *Pathfinder[C, T]) reset() {
	clear(p.nodes)
	clear(p.finalized)
	p.frontier = p.frontier[:0]
}

// node returns the search node for a coordinate the bookkeeping guarantees
// to have one. A miss means the search state itself is corrupt, so fail
// loudly instead of returning a wrong path.
func (p *Pathfinder[C, T]) node(c C) *pathNode[C] {
	n, ok := p.nodes[c]
	if !ok {
		panic(fmt.Sprintf("grid: coordinate %v reached without a search node", c))
	}
	return n
}

// reconstruct walks predecessor links back from end, then reverses the
// sequence so the first element is the start coordinate.
func (p *Pathfinder[C, T]) reconstruct(end C) []C {
	path := []C{end}
	for n := p.node(end); n.hasPrev; n = p.node(n.prev) {
		path = append(path, n.prev)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// FindPath runs a one-off search with a fresh Pathfinder. Callers that
// search repeatedly should hold on to a Pathfinder instead.
func FindPath[C Coord[C], T any](m *Map[C, T], start, end C) ([]C, bool) {
	return NewPathfinder[C, T]().FindPath(m, start, end)
}

// PathCost sums traversal costs along a path the way FindPath accumulates
// them: the tile cost of every element except the first. Coordinates with
// no stored tile contribute nothing (in a returned path only the start can
// legally be off the map).
func PathCost[C Coord[C], T any](m *Map[C, T], path []C) int {
	total := 0
	for i := 1; i < len(path); i++ {
		if tile, ok := m.Get(path[i]); ok {
			total += TileCost(tile)
		}
	}
	return total
}
