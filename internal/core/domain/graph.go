// Package domain contains the core domain models for the variant-aware
// build pipeline: task nodes, the dependency graph, build variants, and
// the resolved toolchain configuration.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// TaskGraph is a directed acyclic graph of task nodes. Edges only ever
// point from a later pipeline stage to an earlier one, so no node may
// depend, directly or transitively, on itself.
type TaskGraph struct {
	nodes          map[InternedString]TaskNode
	dependents     map[InternedString][]InternedString
	executionOrder []InternedString
}

// NewTaskGraph creates a new empty TaskGraph.
func NewTaskGraph() *TaskGraph {
	return &TaskGraph{
		nodes:      make(map[InternedString]TaskNode),
		dependents: make(map[InternedString][]InternedString),
	}
}

// AddNode adds a node to the graph.
// It returns an error if a node with the same ID already exists.
func (g *TaskGraph) AddNode(n *TaskNode) error {
	if _, exists := g.nodes[n.ID]; exists {
		return zerr.With(ErrTaskAlreadyExists, "task_id", n.ID.String())
	}
	g.nodes[n.ID] = *n
	return nil
}

// Node returns the node with the given ID.
func (g *TaskGraph) Node(id InternedString) (TaskNode, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Len returns the number of nodes in the graph.
func (g *TaskGraph) Len() int {
	return len(g.nodes)
}

// Validate checks that every predecessor exists and that the graph is
// acyclic, using a depth-first topological sort. It populates the
// execution order and the reverse (dependents) index on success.
func (g *TaskGraph) Validate() error {
	g.executionOrder = make([]InternedString, 0, len(g.nodes))
	g.dependents = make(map[InternedString][]InternedString, len(g.nodes))
	visited := make(map[InternedString]int) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		node, exists := g.nodes[u]
		if !exists {
			return zerr.With(ErrMissingDependency, "dependency", u.String())
		}

		for _, dep := range node.DependsOn {
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.executionOrder = append(g.executionOrder, u)
		return nil
	}

	for id := range g.nodes {
		if visited[id] == 0 {
			if err := visit(id); err != nil {
				return err
			}
		}
	}

	for id, node := range g.nodes {
		for _, dep := range node.DependsOn {
			g.dependents[dep] = append(g.dependents[dep], id)
		}
	}

	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (g *TaskGraph) buildCycleError(path []InternedString, dep InternedString) error {
	cyclePath := ""
	startIdx := -1
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(path); i++ {
		cyclePath += path[i].String() + " -> "
	}
	cyclePath += dep.String()
	return zerr.With(ErrCycleDetected, "cycle", cyclePath)
}

// Dependents returns the IDs of nodes that depend directly on the given
// node. It assumes Validate() has been called and returned nil.
func (g *TaskGraph) Dependents(id InternedString) []InternedString {
	return g.dependents[id]
}

// Walk returns an iterator that yields nodes in execution order.
// It assumes Validate() has been called and returned nil.
func (g *TaskGraph) Walk() iter.Seq[TaskNode] {
	return func(yield func(TaskNode) bool) {
		for _, id := range g.executionOrder {
			if !yield(g.nodes[id]) {
				return
			}
		}
	}
}
