// Package graphs implements searches over implicit graphs: A* and Dijkstra
// shortest paths, whose graph is described by a neighbors function, and
// topological sorting of an explicit edge list.
//
// Errors (sentinel):
//
//	– ErrNilNeighbors if a Problem has no Neighbors function.
//	– ErrNilCost      if a Problem has no Cost function.
//	– ErrNilGoal      if a Problem has no IsGoal function.
//	– ErrNoPath       if no goal node is reachable from the start.
//	– ErrCycle        if a graph given to TopoSort has a cycle.
package graphs

import "errors"

var (
	ErrNilNeighbors = errors.New("graphs: problem has no neighbors function")
	ErrNilCost      = errors.New("graphs: problem has no cost function")
	ErrNilGoal      = errors.New("graphs: problem has no goal predicate")
	ErrNoPath       = errors.New("graphs: no path to a goal node")
	ErrCycle        = errors.New("graphs: graph has a cycle")
)
