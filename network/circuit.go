// SPDX-License-Identifier: MIT
//
// File: circuit.go
// Role: Circuit aggregate, its five collections and the Add* creation path.
//
// Invariants:
//   - Keys are unique within each collection; collections are independent.
//   - A rejected Add* leaves every collection and the registry untouched.
//   - Add* never inspects other collections (no reference validation).
//
// Locking:
//   - mu guards the five maps. AddBus calls into the registry while holding
//     mu; the order is always Circuit.mu -> Registry.mu.
//   - The Recorder is called under mu, so counts arrive in commit order.

package network

import (
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridtopo/internal/logging"
	"github.com/katalvlaran/gridtopo/registry"
)

// Circuit is the aggregate root of a power network model.
type Circuit struct {
	mu sync.RWMutex

	id   uuid.UUID
	name string

	reg      *registry.Registry
	log      logging.Logger
	recorder Recorder

	buses             map[string]*Bus
	transformers      map[string]*Transformer
	transmissionLines map[string]*TransmissionLine
	generators        map[string]*Generator
	loads             map[string]*Load
}

// Stats is a point-in-time count of every collection.
type Stats struct {
	Buses             int
	Transformers      int
	TransmissionLines int
	Generators        int
	Loads             int
}

// NewCircuit returns an empty Circuit named name.
// Complexity: O(len(opts)).
func NewCircuit(name string, opts ...Option) *Circuit {
	c := &Circuit{
		id:                uuid.New(),
		name:              name,
		reg:               registry.Default(),
		log:               logging.Noop(),
		buses:             make(map[string]*Bus),
		transformers:      make(map[string]*Transformer),
		transmissionLines: make(map[string]*TransmissionLine),
		generators:        make(map[string]*Generator),
		loads:             make(map[string]*Load),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(logging.String("circuit", name))

	return c
}

// Name returns the circuit name.
func (c *Circuit) Name() string { return c.name }

// ID returns the identity assigned at construction.
func (c *Circuit) ID() uuid.UUID { return c.id }

// Registry returns the registry that indexes this circuit's buses.
func (c *Circuit) Registry() *registry.Registry { return c.reg }

// insert is the shared Add* body: reject a taken name, otherwise build and
// store the entity. build runs under the write lock and only after the
// duplicate check, so a rejected AddBus never reaches the registry.
func insert[T any](c *Circuit, m map[string]*T, kind Kind, name string, build func() *T) error {
	c.mu.Lock()
	if _, exists := m[name]; exists {
		c.mu.Unlock()
		c.log.Debug("duplicate rejected", logging.String("kind", kind.String()), logging.String("name", name))
		return &DuplicateEntityError{Kind: kind, Name: name, Circuit: c.name}
	}
	m[name] = build()
	if c.recorder != nil {
		c.recorder.SetEntityCount(c.name, kind.String(), len(m))
	}
	c.mu.Unlock()

	return nil
}

// AddBus creates a bus and indexes it in the circuit's registry.
//
// Implementation:
//   - Stage 1: Reject a name already present in the bus collection.
//   - Stage 2: Construct the Bus, which registers name and may shadow a bus of
//     the same name registered elsewhere (another Circuit sharing the
//     registry, or a direct NewBus call).
//   - Stage 3: Store it under name.
//
// Errors:
//   - *DuplicateEntityError (ErrDuplicateEntity) if name is taken in this
//     circuit's bus collection. Duplicate detection never consults the registry.
func (c *Circuit) AddBus(name string, nominalKV float64) error {
	return insert(c, c.buses, KindBus, name, func() *Bus {
		return NewBus(c.reg, name, nominalKV)
	})
}

// AddTransformer creates a transformer between bus1 and bus2.
// The bus names are stored as references and are not checked.
func (c *Circuit) AddTransformer(name, bus1, bus2 string, r, x float64) error {
	return insert(c, c.transformers, KindTransformer, name, func() *Transformer {
		return &Transformer{Name: name, Bus1: BusRef(bus1), Bus2: BusRef(bus2), R: r, X: x}
	})
}

// AddTransmissionLine creates a line between bus1 and bus2 with series
// impedance r + jx and shunt admittance g + jb.
func (c *Circuit) AddTransmissionLine(name, bus1, bus2 string, r, x, g, b float64) error {
	return insert(c, c.transmissionLines, KindTransmissionLine, name, func() *TransmissionLine {
		return &TransmissionLine{Name: name, Bus1: BusRef(bus1), Bus2: BusRef(bus2), R: r, X: x, G: g, B: b}
	})
}

// AddGenerator creates a generator at bus1 with a voltage setpoint in p.u.
// and an active power setpoint in MW.
func (c *Circuit) AddGenerator(name, bus1 string, voltageSetpoint, mwSetpoint float64) error {
	return insert(c, c.generators, KindGenerator, name, func() *Generator {
		return &Generator{Name: name, Bus1: BusRef(bus1), VoltageSetpoint: voltageSetpoint, MWSetpoint: mwSetpoint}
	})
}

// AddLoad creates a load at bus1 drawing mw and mvar.
func (c *Circuit) AddLoad(name, bus1 string, mw, mvar float64) error {
	return insert(c, c.loads, KindLoad, name, func() *Load {
		return &Load{Name: name, Bus1: BusRef(bus1), MW: mw, MVAR: mvar}
	})
}

func lookup[T any](c *Circuit, m map[string]*T, name string) (*T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := m[name]

	return v, ok
}

func snapshot[T any](c *Circuit, m map[string]*T) map[string]*T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return maps.Clone(m)
}

// Bus returns the bus stored under name.
func (c *Circuit) Bus(name string) (*Bus, bool) { return lookup(c, c.buses, name) }

// Transformer returns the transformer stored under name.
func (c *Circuit) Transformer(name string) (*Transformer, bool) {
	return lookup(c, c.transformers, name)
}

// TransmissionLine returns the line stored under name.
func (c *Circuit) TransmissionLine(name string) (*TransmissionLine, bool) {
	return lookup(c, c.transmissionLines, name)
}

// Generator returns the generator stored under name.
func (c *Circuit) Generator(name string) (*Generator, bool) { return lookup(c, c.generators, name) }

// Load returns the load stored under name.
func (c *Circuit) Load(name string) (*Load, bool) { return lookup(c, c.loads, name) }

// Buses returns a shallow copy of the bus collection.
// The map is the caller's; the *Bus values are shared.
func (c *Circuit) Buses() map[string]*Bus { return snapshot(c, c.buses) }

// Transformers returns a shallow copy of the transformer collection.
// Mutating a returned *Transformer is visible through the Circuit.
func (c *Circuit) Transformers() map[string]*Transformer { return snapshot(c, c.transformers) }

// TransmissionLines returns a shallow copy of the line collection.
func (c *Circuit) TransmissionLines() map[string]*TransmissionLine {
	return snapshot(c, c.transmissionLines)
}

// Generators returns a shallow copy of the generator collection.
func (c *Circuit) Generators() map[string]*Generator { return snapshot(c, c.generators) }

// Loads returns a shallow copy of the load collection.
func (c *Circuit) Loads() map[string]*Load { return snapshot(c, c.loads) }

// keysLocked returns the sorted names of one collection; caller holds mu.
func (c *Circuit) keysLocked(kind Kind) []string {
	switch kind {
	case KindBus:
		return slices.Sorted(maps.Keys(c.buses))
	case KindTransformer:
		return slices.Sorted(maps.Keys(c.transformers))
	case KindTransmissionLine:
		return slices.Sorted(maps.Keys(c.transmissionLines))
	case KindGenerator:
		return slices.Sorted(maps.Keys(c.generators))
	case KindLoad:
		return slices.Sorted(maps.Keys(c.loads))
	}
	return nil
}

// Names returns the names in the kind collection, sorted ascending.
// An unknown kind yields nil.
// Complexity: O(n log n).
func (c *Circuit) Names(kind Kind) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.keysLocked(kind)
}

// Count returns the size of the kind collection.
func (c *Circuit) Count(kind Kind) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch kind {
	case KindBus:
		return len(c.buses)
	case KindTransformer:
		return len(c.transformers)
	case KindTransmissionLine:
		return len(c.transmissionLines)
	case KindGenerator:
		return len(c.generators)
	case KindLoad:
		return len(c.loads)
	}
	return 0
}

// Stats returns the size of every collection under one read lock.
func (c *Circuit) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Stats{
		Buses:             len(c.buses),
		Transformers:      len(c.transformers),
		TransmissionLines: len(c.transmissionLines),
		Generators:        len(c.generators),
		Loads:             len(c.loads),
	}
}

// Branches returns every transformer followed by every transmission line,
// each group sorted by name. Values are copies taken under the read lock.
// Complexity: O(B log B).
func (c *Circuit) Branches() []Branch {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.branchesLocked()
}

// branchesLocked builds the Branches result; caller holds mu.
func (c *Circuit) branchesLocked() []Branch {
	out := make([]Branch, 0, len(c.transformers)+len(c.transmissionLines))
	for _, name := range c.keysLocked(KindTransformer) {
		t := c.transformers[name]
		out = append(out, Branch{Kind: KindTransformer, Name: name, Bus1: t.Bus1, Bus2: t.Bus2, R: t.R, X: t.X})
	}
	for _, name := range c.keysLocked(KindTransmissionLine) {
		l := c.transmissionLines[name]
		out = append(out, Branch{
			Kind: KindTransmissionLine, Name: name, Bus1: l.Bus1, Bus2: l.Bus2,
			R: l.R, X: l.X, G: l.G, B: l.B,
		})
	}

	return out
}
