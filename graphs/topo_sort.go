package graphs

import (
	"slices"

	"github.com/jmcomets/cs-exercises/internal/queue"
)

type Edge[N comparable] struct {
	Src N
	Dst N
}

type Graph[N comparable] struct {
	Edges []Edge[N]
	Nodes []N
}

// NewGraph returns the graph made of edges, with nodes listed in order of
// first appearance.
func NewGraph[N comparable](edges []Edge[N]) Graph[N] {
	seen := make(map[N]struct{})
	var nodes = []N{}
	add := func(n N) {
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			nodes = append(nodes, n)
		}
	}
	for _, e := range edges {
		add(e.Src)
		add(e.Dst)
	}
	return Graph[N]{Edges: edges, Nodes: nodes}
}

// TopoSort orders the nodes of graph so that every edge goes from an earlier
// node to a later one. Among nodes that are ready at the same time, the order
// of graph.Nodes is kept; edge endpoints missing from graph.Nodes follow
// them in order of first appearance. Parallel edges are allowed; a cycle,
// including a self-loop, makes the sort fail with ErrCycle.
func TopoSort[N comparable](graph Graph[N]) ([]N, error) {
	nodes := slices.Clone(graph.Nodes)
	inDegree := make(map[N]int, len(graph.Nodes))
	successors := make(map[N][]N, len(graph.Nodes))
	for _, n := range graph.Nodes {
		inDegree[n] = 0
	}
	for _, e := range graph.Edges {
		for _, n := range [2]N{e.Src, e.Dst} {
			if _, ok := inDegree[n]; !ok {
				inDegree[n] = 0
				nodes = append(nodes, n)
			}
		}
	}
	for _, e := range graph.Edges {
		inDegree[e.Dst]++
		successors[e.Src] = append(successors[e.Src], e.Dst)
	}

	sources := queue.NewQueue[N]()
	for _, n := range nodes {
		if inDegree[n] == 0 {
			sources.Push(n)
		}
	}

	var order = make([]N, 0, len(nodes))
	for {
		u, ok := sources.Pop()
		if !ok {
			break
		}
		order = append(order, u)
		for _, v := range successors[u] {
			inDegree[v]--
			if inDegree[v] == 0 {
				sources.Push(v)
			}
		}
	}

	if len(order) < len(inDegree) {
		return order, ErrCycle
	}
	return order, nil
}
