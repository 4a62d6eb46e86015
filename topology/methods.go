// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"
	"maps"
	"slices"
)

// Circuit returns the name of the circuit the graph was built from.
func (g *Graph) Circuit() string { return g.circuit }

// BusCount returns |V|, dangling vertices included.
func (g *Graph) BusCount() int { return len(g.vertices) }

// BranchCount returns |E|.
func (g *Graph) BranchCount() int { return len(g.edges) }

// HasBus reports whether id is a vertex.
func (g *Graph) HasBus(id string) bool {
	_, ok := g.vertices[id]

	return ok
}

// Buses returns every vertex ID in ascending order.
func (g *Graph) Buses() []string {
	return slices.Sorted(maps.Keys(g.vertices))
}

// Bus returns a copy of the vertex id.
func (g *Graph) Bus(id string) (Vertex, error) {
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("Bus(%s): %w", id, ErrBusNotFound)
	}

	return v.clone(), nil
}

// Dangling returns the IDs of vertices that equipment references but the
// circuit never declared, in ascending order.
func (g *Graph) Dangling() []string {
	var out []string
	for _, id := range g.Buses() {
		if !g.vertices[id].Declared {
			out = append(out, id)
		}
	}

	return out
}

// Branches returns every edge sorted by ID.
func (g *Graph) Branches() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, id := range slices.Sorted(maps.Keys(g.edges)) {
		out = append(out, *g.edges[id])
	}

	return out
}

// Branch returns the edge with the given ID, e.g. "Transformer/T1".
func (g *Graph) Branch(id string) (Edge, error) {
	e, ok := g.edges[id]
	if !ok {
		return Edge{}, fmt.Errorf("Branch(%s): %w", id, ErrBranchNotFound)
	}

	return *e, nil
}

// BranchesAt returns the edges incident to bus, sorted by ID. A self-loop
// appears once.
func (g *Graph) BranchesAt(bus string) ([]Edge, error) {
	if !g.HasBus(bus) {
		return nil, fmt.Errorf("BranchesAt(%s): %w", bus, ErrBusNotFound)
	}
	seen := make(map[string]struct{})
	for _, ids := range g.adjacency[bus] {
		for id := range ids {
			seen[id] = struct{}{}
		}
	}
	out := make([]Edge, 0, len(seen))
	for _, id := range slices.Sorted(maps.Keys(seen)) {
		out = append(out, *g.edges[id])
	}

	return out, nil
}

// Neighbors returns the distinct buses adjacent to bus, sorted. A bus with a
// self-loop lists itself.
func (g *Graph) Neighbors(bus string) ([]string, error) {
	if !g.HasBus(bus) {
		return nil, fmt.Errorf("Neighbors(%s): %w", bus, ErrBusNotFound)
	}

	return slices.Sorted(maps.Keys(g.adjacency[bus])), nil
}

// Degree counts incident branches; parallel branches count separately and a
// self-loop counts twice.
func (g *Graph) Degree(bus string) (int, error) {
	if !g.HasBus(bus) {
		return 0, fmt.Errorf("Degree(%s): %w", bus, ErrBusNotFound)
	}
	deg := 0
	for nbr, ids := range g.adjacency[bus] {
		if nbr == bus {
			deg += 2 * len(ids)
			continue
		}
		deg += len(ids)
	}

	return deg, nil
}

// Attached returns the generators and loads attached to bus.
func (g *Graph) Attached(bus string) (generators, loads []string, err error) {
	v, ok := g.vertices[bus]
	if !ok {
		return nil, nil, fmt.Errorf("Attached(%s): %w", bus, ErrBusNotFound)
	}

	return slices.Clone(v.Generators), slices.Clone(v.Loads), nil
}
