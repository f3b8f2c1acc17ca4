package graphs

import (
	"iter"
	"slices"

	"github.com/goose-lang/std"

	"github.com/jmcomets/cs-exercises/heap"
)

// Problem describes a shortest-path search from Start to any node satisfying
// IsGoal. Costs must not overflow a uint64 when summed along a path.
type Problem[N comparable] struct {
	Start     N
	Neighbors func(N) iter.Seq[N]
	// Cost of the edge from one node to a neighbor.
	Cost func(from, to N) uint64
	// Heuristic estimates the remaining cost to a goal. It must never
	// overestimate for the returned path to be a shortest one. A nil
	// Heuristic is the zero estimate, which makes AStar Dijkstra's algorithm.
	Heuristic func(N) uint64
	IsGoal    func(N) bool
}

func (p Problem[N]) validate() error {
	if p.Neighbors == nil {
		return ErrNilNeighbors
	}
	if p.Cost == nil {
		return ErrNilCost
	}
	if p.IsGoal == nil {
		return ErrNilGoal
	}
	return nil
}

type scored[N any] struct {
	node  N
	score uint64
}

// AStar returns a cheapest path from p.Start to a goal node, start and goal
// included, along with its cost.
func AStar[N comparable](p Problem[N]) ([]N, uint64, error) {
	if err := p.validate(); err != nil {
		return nil, 0, err
	}
	heuristic := p.Heuristic
	if heuristic == nil {
		heuristic = func(N) uint64 { return 0 }
	}

	costs := map[N]uint64{p.Start: 0}
	predecessors := make(map[N]N)
	visited := make(map[N]struct{})
	// a node may be queued several times; only its cheapest entry is expanded
	toVisit := heap.NewPriorityQueue(func(a, b scored[N]) bool {
		return a.score < b.score
	})
	toVisit.Push(scored[N]{p.Start, heuristic(p.Start)})

	for {
		next, ok := toVisit.Pop()
		if !ok {
			break
		}
		node := next.node
		if _, done := visited[node]; done {
			continue
		}
		visited[node] = struct{}{}

		if p.IsGoal(node) {
			return RebuildPath(predecessors, node, false), costs[node], nil
		}

		for neighbor := range p.Neighbors(node) {
			cost := std.SumAssumeNoOverflow(costs[node], p.Cost(node, neighbor))
			if old, seen := costs[neighbor]; seen && old <= cost {
				continue
			}
			predecessors[neighbor] = node
			costs[neighbor] = cost
			toVisit.Push(scored[N]{neighbor, std.SumAssumeNoOverflow(cost, heuristic(neighbor))})
		}
	}
	return nil, 0, ErrNoPath
}

// Dijkstra is AStar without a heuristic.
func Dijkstra[N comparable](p Problem[N]) ([]N, uint64, error) {
	p.Heuristic = nil
	return AStar(p)
}

// RebuildPath follows predecessors back from node until a node without one.
// The path is returned from that first node to node, or the other way around
// if reverse is set.
func RebuildPath[N comparable](predecessors map[N]N, node N, reverse bool) []N {
	var path = []N{node}
	for {
		prev, ok := predecessors[node]
		if !ok {
			break
		}
		path = append(path, prev)
		node = prev
	}
	if !reverse {
		slices.Reverse(path)
	}
	return path
}
