// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"
	"maps"
	"slices"
)

// Islands partitions the buses into electrically connected groups.
//
// Each island is sorted, and islands are ordered by their smallest bus ID.
// An isolated bus forms an island of its own.
//
// Implementation:
//   - Stage 1: Visit buses in ascending order; each unvisited bus seeds a BFS.
//   - Stage 2: The BFS expands neighbors in sorted order, marking them visited.
//
// Complexity: O(V log V + E).
func (g *Graph) Islands() [][]string {
	visited := make(map[string]bool, len(g.vertices))
	var islands [][]string
	for _, seed := range g.Buses() {
		if visited[seed] {
			continue
		}
		island := g.walk(seed, visited, nil)
		slices.Sort(island)
		islands = append(islands, island)
	}

	return islands
}

// IslandOf returns the sorted island containing bus.
func (g *Graph) IslandOf(bus string) ([]string, error) {
	if !g.HasBus(bus) {
		return nil, fmt.Errorf("IslandOf(%s): %w", bus, ErrBusNotFound)
	}
	island := g.walk(bus, make(map[string]bool), nil)
	slices.Sort(island)

	return island, nil
}

// ShortestPath returns the bus sequence of a minimum-hop route from one bus
// to another, both ends included. from == to yields a single-element path.
//
// Errors: ErrBusNotFound for unknown endpoints, ErrNoPath when the buses lie
// on different islands.
func (g *Graph) ShortestPath(from, to string) ([]string, error) {
	if !g.HasBus(from) {
		return nil, fmt.Errorf("ShortestPath(%s): %w", from, ErrBusNotFound)
	}
	if !g.HasBus(to) {
		return nil, fmt.Errorf("ShortestPath(%s): %w", to, ErrBusNotFound)
	}
	parent := make(map[string]string)
	g.walk(from, make(map[string]bool), parent)
	if _, ok := parent[to]; !ok && from != to {
		return nil, fmt.Errorf("ShortestPath(%s, %s): %w", from, to, ErrNoPath)
	}

	var path []string
	for cur := to; cur != from; cur = parent[cur] {
		path = append(path, cur)
	}
	path = append(path, from)
	slices.Reverse(path)

	return path, nil
}

// walk runs a BFS from start and returns the visit order. When parent is
// non-nil it records the BFS tree, which gives minimum-hop paths.
func (g *Graph) walk(start string, visited map[string]bool, parent map[string]string) []string {
	queue := []string{start}
	visited[start] = true
	var order []string
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)
		for _, nbr := range slices.Sorted(maps.Keys(g.adjacency[cur])) {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			if parent != nil {
				parent[nbr] = cur
			}
			queue = append(queue, nbr)
		}
	}

	return order
}
