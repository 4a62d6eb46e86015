// SPDX-License-Identifier: MIT
//
// Package topology derives a bus/branch graph from a network.Circuit.
//
// The graph G = (V, E) is an undirected multigraph with self-loops:
//
//   - V: every bus declared in the circuit, plus every bus name that
//     equipment references without a declaration ("dangling" vertices).
//   - E: one edge per transformer and transmission line, ID "<Kind>/<Name>".
//     Parallel branches and self-loop branches are kept as distinct edges.
//   - Generators and loads are not edges; they are attached to the vertex of
//     the bus they reference.
//
// A Graph is a snapshot: it is built once by FromCircuit, never mutated
// afterwards, and therefore safe for concurrent readers without locking.
// All enumerations are sorted so results are reproducible.
//
// Errors:
//
//	ErrNilCircuit      - FromCircuit received a nil circuit.
//	ErrBusNotFound     - a query named a bus absent from the graph.
//	ErrBranchNotFound  - a query named an unknown edge ID.
//	ErrNoPath          - path endpoints lie on different islands.
package topology

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridtopo/network"
)

// Sentinel errors for topology queries.
var (
	// ErrNilCircuit indicates FromCircuit was called with a nil circuit.
	ErrNilCircuit = errors.New("topology: circuit is nil")

	// ErrBusNotFound indicates a query referenced a bus that is not a vertex.
	ErrBusNotFound = errors.New("topology: bus not found")

	// ErrBranchNotFound indicates a query referenced an unknown branch ID.
	ErrBranchNotFound = errors.New("topology: branch not found")

	// ErrNoPath indicates two buses are not connected.
	ErrNoPath = errors.New("topology: no path between buses")
)

// Vertex is one bus of the graph.
type Vertex struct {
	// ID is the bus name.
	ID string

	// Declared is false for dangling vertices created from references.
	Declared bool

	// Index is the bus index assigned at construction, or -1 when not declared.
	// It is the index carried by the Bus object, not a registry lookup, so it
	// is unaffected by later shadowing.
	Index int

	// NominalKV is the nominal voltage of a declared bus, 0 otherwise.
	NominalKV float64

	// Generators and Loads name the equipment attached here, sorted.
	Generators []string
	Loads      []string
}

// Edge is one branch of the graph. From and To follow Bus1 and Bus2;
// R and X are the branch series resistance and reactance.
type Edge struct {
	ID   string
	Kind network.Kind
	Name string
	From string
	To   string
	R, X float64
}

// Impedance returns the series impedance magnitude |R + jX|.
func (e Edge) Impedance() float64 { return math.Hypot(e.R, e.X) }

// Graph is an immutable bus/branch multigraph.
type Graph struct {
	circuit string

	vertices map[string]*Vertex
	edges    map[string]*Edge

	// adjacency[a][b][edgeID] is mirrored for a != b; a self-loop is stored once.
	adjacency map[string]map[string]map[string]struct{}
}

// Option configures FromCircuit.
type Option func(cfg *config)

type config struct {
	strict bool
	kinds  map[network.Kind]bool
}

// WithStrictReferences makes FromCircuit fail on the first equipment
// reference to an undeclared bus instead of creating a dangling vertex.
func WithStrictReferences() Option {
	return func(cfg *config) { cfg.strict = true }
}

// WithKinds restricts edges to the given branch kinds, e.g. only
// transmission lines. Non-branch kinds panic.
func WithKinds(kinds ...network.Kind) Option {
	for _, k := range kinds {
		if !k.IsBranch() {
			panic("topology: WithKinds(" + k.String() + ") is not a branch kind")
		}
	}
	return func(cfg *config) {
		cfg.kinds = make(map[network.Kind]bool, len(kinds))
		for _, k := range kinds {
			cfg.kinds[k] = true
		}
	}
}

func newConfig(opts ...Option) config {
	cfg := config{
		kinds: map[network.Kind]bool{
			network.KindTransformer:      true,
			network.KindTransmissionLine: true,
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
