// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/gridtopo/network"
)

// FromCircuit builds the bus/branch graph of c.
//
// Implementation:
//   - Stage 1: Add a declared vertex for every bus in c.
//   - Stage 2: Add an edge for every selected branch (c.Branches order);
//     endpoints that are not declared become dangling vertices, or fail
//     under WithStrictReferences.
//   - Stage 3: Attach generators and loads to their vertex, with the same
//     dangling/strict policy.
//
// The circuit is read once through c.View, so the Graph is a consistent
// point-in-time copy even while other goroutines keep adding to c.
//
// Errors:
//   - ErrNilCircuit if c is nil.
//   - *network.UnresolvedReferenceError under WithStrictReferences.
//
// Complexity: O(V log V + E log E).
func FromCircuit(c *network.Circuit, opts ...Option) (*Graph, error) {
	if c == nil {
		return nil, ErrNilCircuit
	}
	cfg := newConfig(opts...)
	view := c.View()

	g := &Graph{
		circuit:   view.Name,
		vertices:  make(map[string]*Vertex, len(view.Buses)),
		edges:     make(map[string]*Edge, len(view.Branches)),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}

	// Stage 1: declared buses.
	for _, b := range view.Buses {
		g.vertices[b.Name()] = &Vertex{ID: b.Name(), Declared: true, Index: b.Index(), NominalKV: b.NominalKV()}
	}

	// Stage 2: branches.
	for _, br := range view.Branches {
		if !cfg.kinds[br.Kind] {
			continue
		}
		for _, ref := range []network.BusRef{br.Bus1, br.Bus2} {
			if err := g.admit(cfg, br.Kind, br.Name, ref); err != nil {
				return nil, fmt.Errorf("topology.FromCircuit(%s): %w", view.Name, err)
			}
		}
		g.addEdge(&Edge{
			ID: br.ID(), Kind: br.Kind, Name: br.Name,
			From: br.Bus1.Name(), To: br.Bus2.Name(),
			R: br.R, X: br.X,
		})
	}

	// Stage 3: injections, in name order.
	for _, gen := range view.Generators {
		if err := g.admit(cfg, network.KindGenerator, gen.Name, gen.Bus1); err != nil {
			return nil, fmt.Errorf("topology.FromCircuit(%s): %w", view.Name, err)
		}
		v := g.vertices[gen.Bus1.Name()]
		v.Generators = append(v.Generators, gen.Name)
	}
	for _, load := range view.Loads {
		if err := g.admit(cfg, network.KindLoad, load.Name, load.Bus1); err != nil {
			return nil, fmt.Errorf("topology.FromCircuit(%s): %w", view.Name, err)
		}
		v := g.vertices[load.Bus1.Name()]
		v.Loads = append(v.Loads, load.Name)
	}

	return g, nil
}

// admit makes sure ref is a vertex, creating a dangling one when allowed.
func (g *Graph) admit(cfg config, kind network.Kind, equipment string, ref network.BusRef) error {
	if _, ok := g.vertices[ref.Name()]; ok {
		return nil
	}
	if cfg.strict {
		return &network.UnresolvedReferenceError{Kind: kind, Equipment: equipment, Bus: ref}
	}
	g.vertices[ref.Name()] = &Vertex{ID: ref.Name(), Index: -1}

	return nil
}

// addEdge stores e and its adjacency entries. A self-loop is recorded once.
func (g *Graph) addEdge(e *Edge) {
	g.edges[e.ID] = e
	g.link(e.From, e.To, e.ID)
	if e.From != e.To {
		g.link(e.To, e.From, e.ID)
	}
}

func (g *Graph) link(from, to, eid string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
	g.adjacency[from][to][eid] = struct{}{}
}

// clone returns a copy of v whose slices the caller may keep.
func (v *Vertex) clone() Vertex {
	out := *v
	out.Generators = slices.Clone(v.Generators)
	out.Loads = slices.Clone(v.Loads)

	return out
}
