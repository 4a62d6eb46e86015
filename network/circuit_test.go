// SPDX-License-Identifier: MIT
package network_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridtopo/network"
	"github.com/katalvlaran/gridtopo/registry"
)

// newCircuit returns an empty circuit on its own registry so tests never
// share an index space.
func newCircuit(t *testing.T, name string) (*network.Circuit, *registry.Registry) {
	t.Helper()
	reg := registry.New()
	return network.NewCircuit(name, network.WithRegistry(reg)), reg
}

type countRecorder struct {
	mu     sync.Mutex
	counts map[string]int
}

func (r *countRecorder) SetEntityCount(circuit, kind string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.counts == nil {
		r.counts = make(map[string]int)
	}
	r.counts[circuit+"/"+kind] = n
}

func TestNewCircuit_Empty(t *testing.T) {
	c, reg := newCircuit(t, "Test Circuit")

	assert.Equal(t, "Test Circuit", c.Name())
	assert.NotEqual(t, [16]byte{}, [16]byte(c.ID()))
	assert.Same(t, reg, c.Registry())
	assert.Empty(t, c.Buses())
	assert.Empty(t, c.Transformers())
	assert.Empty(t, c.TransmissionLines())
	assert.Empty(t, c.Generators())
	assert.Empty(t, c.Loads())
	assert.Equal(t, network.Stats{}, c.Stats())
}

func TestNewCircuit_EmptyName(t *testing.T) {
	c, _ := newCircuit(t, "")
	assert.Equal(t, "", c.Name())
}

func TestNewCircuit_DefaultRegistry(t *testing.T) {
	registry.Reset()
	t.Cleanup(registry.Reset)

	c := network.NewCircuit("default")
	assert.Same(t, registry.Default(), c.Registry())
	require.NoError(t, c.AddBus("Bus_1", 20))

	idx, ok := registry.Lookup("Bus_1")
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestAddBus(t *testing.T) {
	c, _ := newCircuit(t, "Test Circuit")
	require.NoError(t, c.AddBus("Bus_1", 20.0))
	require.NoError(t, c.AddBus("Bus_2", 230.0))

	buses := c.Buses()
	require.Len(t, buses, 2)
	assert.Equal(t, []string{"Bus_1", "Bus_2"}, c.Names(network.KindBus))

	b1, ok := c.Bus("Bus_1")
	require.True(t, ok)
	assert.Equal(t, "Bus_1", b1.Name())
	assert.Equal(t, 20.0, b1.NominalKV())
	assert.Equal(t, 0, b1.Index())
	assert.Equal(t, 1, buses["Bus_2"].Index())
}

func TestAddBus_DuplicateLeavesRegistryUntouched(t *testing.T) {
	c, reg := newCircuit(t, "Test Circuit")
	require.NoError(t, c.AddBus("Bus_1", 20.0))

	err := c.AddBus("Bus_1", 115)
	require.ErrorIs(t, err, network.ErrDuplicateEntity)

	var dup *network.DuplicateEntityError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, network.KindBus, dup.Kind)
	assert.Equal(t, "Bus_1", dup.Name)
	assert.Equal(t, `network: Bus "Bus_1" already exists in circuit "Test Circuit"`, err.Error())

	b, _ := c.Bus("Bus_1")
	assert.Equal(t, 20.0, b.NominalKV())
	assert.Equal(t, 1, reg.Next(), "rejected AddBus must not consume an index")
}

func TestAddTransformer(t *testing.T) {
	c, _ := newCircuit(t, "Test Circuit")
	require.NoError(t, c.AddTransformer("T1", "Bus_1", "Bus_2", 0.01, 0.10))

	tr, ok := c.Transformer("T1")
	require.True(t, ok)
	assert.Equal(t, &network.Transformer{Name: "T1", Bus1: "Bus_1", Bus2: "Bus_2", R: 0.01, X: 0.10}, tr)
	assert.Equal(t, []string{"T1"}, c.Names(network.KindTransformer))
}

func TestAddTransformer_Duplicate(t *testing.T) {
	c, _ := newCircuit(t, "Test Circuit")
	require.NoError(t, c.AddTransformer("T1", "Bus_1", "Bus_2", 0.01, 0.10))

	err := c.AddTransformer("T1", "Bus_3", "Bus_4", 0.02, 0.20)
	var dup *network.DuplicateEntityError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, network.KindTransformer, dup.Kind)
	assert.Equal(t, "T1", dup.Name)

	tr := c.Transformers()["T1"]
	assert.Equal(t, 0.01, tr.R)
	assert.Equal(t, 0.10, tr.X)
	assert.Equal(t, network.BusRef("Bus_1"), tr.Bus1)
	assert.Equal(t, 1, c.Count(network.KindTransformer))
}

func TestAddTransmissionLine(t *testing.T) {
	c, _ := newCircuit(t, "Test Circuit")
	require.NoError(t, c.AddTransmissionLine("Line_1", "Bus_1", "Bus_2", 0.02, 0.25, 0.0, 0.04))

	l, ok := c.TransmissionLine("Line_1")
	require.True(t, ok)
	assert.Equal(t, &network.TransmissionLine{
		Name: "Line_1", Bus1: "Bus_1", Bus2: "Bus_2", R: 0.02, X: 0.25, G: 0.0, B: 0.04,
	}, l)

	err := c.AddTransmissionLine("Line_1", "Bus_2", "Bus_3", 1, 1, 1, 1)
	require.ErrorIs(t, err, network.ErrDuplicateEntity)
	assert.Equal(t, 0.25, c.TransmissionLines()["Line_1"].X)
}

func TestAddGenerator(t *testing.T) {
	c, _ := newCircuit(t, "Test Circuit")
	require.NoError(t, c.AddGenerator("G1", "Bus_1", 1.04, 100.0))

	g, ok := c.Generator("G1")
	require.True(t, ok)
	assert.Equal(t, &network.Generator{Name: "G1", Bus1: "Bus_1", VoltageSetpoint: 1.04, MWSetpoint: 100.0}, g)

	err := c.AddGenerator("G1", "Bus_2", 1.0, 50.0)
	require.ErrorIs(t, err, network.ErrDuplicateEntity)
	assert.Equal(t, 100.0, c.Generators()["G1"].MWSetpoint)
}

func TestAddLoad(t *testing.T) {
	c, _ := newCircuit(t, "Test Circuit")
	require.NoError(t, c.AddLoad("Load_1", "Bus_2", 50.0, 30.0))

	l, ok := c.Load("Load_1")
	require.True(t, ok)
	assert.Equal(t, &network.Load{Name: "Load_1", Bus1: "Bus_2", MW: 50.0, MVAR: 30.0}, l)

	err := c.AddLoad("Load_1", "Bus_3", 1, 1)
	require.ErrorIs(t, err, network.ErrDuplicateEntity)
	assert.Equal(t, 30.0, c.Loads()["Load_1"].MVAR)
}

// TestAdd_DuplicateTable checks every collection rejects a second use of a
// name, keeps exactly one entry and leaves the first entry's fields intact.
func TestAdd_DuplicateTable(t *testing.T) {
	tests := []struct {
		kind  network.Kind
		add   func(c *network.Circuit, name string, v float64) error
		first func(t *testing.T, c *network.Circuit)
	}{
		{
			kind: network.KindBus,
			add:  func(c *network.Circuit, n string, v float64) error { return c.AddBus(n, v) },
			first: func(t *testing.T, c *network.Circuit) {
				b, ok := c.Bus("X")
				require.True(t, ok)
				assert.Equal(t, 1.0, b.NominalKV())
				assert.Equal(t, 0, b.Index())
			},
		},
		{
			kind: network.KindTransformer,
			add: func(c *network.Circuit, n string, v float64) error {
				return c.AddTransformer(n, "a", "b", v, v)
			},
			first: func(t *testing.T, c *network.Circuit) {
				tr, ok := c.Transformer("X")
				require.True(t, ok)
				assert.Equal(t, network.Transformer{Name: "X", Bus1: "a", Bus2: "b", R: 1, X: 1}, *tr)
			},
		},
		{
			kind: network.KindTransmissionLine,
			add: func(c *network.Circuit, n string, v float64) error {
				return c.AddTransmissionLine(n, "a", "b", v, v, v, v)
			},
			first: func(t *testing.T, c *network.Circuit) {
				l, ok := c.TransmissionLine("X")
				require.True(t, ok)
				assert.Equal(t, network.TransmissionLine{Name: "X", Bus1: "a", Bus2: "b", R: 1, X: 1, G: 1, B: 1}, *l)
			},
		},
		{
			kind: network.KindGenerator,
			add: func(c *network.Circuit, n string, v float64) error {
				return c.AddGenerator(n, "a", v, v)
			},
			first: func(t *testing.T, c *network.Circuit) {
				g, ok := c.Generator("X")
				require.True(t, ok)
				assert.Equal(t, network.Generator{Name: "X", Bus1: "a", VoltageSetpoint: 1, MWSetpoint: 1}, *g)
			},
		},
		{
			kind: network.KindLoad,
			add:  func(c *network.Circuit, n string, v float64) error { return c.AddLoad(n, "a", v, v) },
			first: func(t *testing.T, c *network.Circuit) {
				l, ok := c.Load("X")
				require.True(t, ok)
				assert.Equal(t, network.Load{Name: "X", Bus1: "a", MW: 1, MVAR: 1}, *l)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			c, _ := newCircuit(t, "dup")
			require.NoError(t, tc.add(c, "X", 1))
			require.NoError(t, tc.add(c, "Y", 2))
			assert.Equal(t, 2, c.Count(tc.kind))

			err := tc.add(c, "X", 9)
			var dup *network.DuplicateEntityError
			require.ErrorAs(t, err, &dup)
			assert.Equal(t, tc.kind, dup.Kind)
			assert.Equal(t, "X", dup.Name)
			assert.Equal(t, "dup", dup.Circuit)
			assert.Equal(t, 2, c.Count(tc.kind))
			tc.first(t, c)
		})
	}
}

func TestAdd_SameNameAcrossKinds(t *testing.T) {
	c, _ := newCircuit(t, "Test Circuit")
	require.NoError(t, c.AddBus("G1", 20.0))
	require.NoError(t, c.AddTransformer("G1", "G1", "Bus_2", 0.01, 0.10))
	require.NoError(t, c.AddTransmissionLine("G1", "G1", "Bus_2", 0.01, 0.10, 0, 0))
	require.NoError(t, c.AddGenerator("G1", "G1", 1.0, 100.0))
	require.NoError(t, c.AddLoad("G1", "G1", 50.0, 30.0))

	for _, k := range network.Kinds() {
		assert.Equal(t, []string{"G1"}, c.Names(k), k.String())
	}
	assert.Equal(t, network.Stats{Buses: 1, Transformers: 1, TransmissionLines: 1, Generators: 1, Loads: 1}, c.Stats())
}

func TestAdd_PermissiveInputs(t *testing.T) {
	c, reg := newCircuit(t, "Test Circuit")

	// Dangling reference, self loop, negative and zero values are all accepted.
	require.NoError(t, c.AddLoad("L1", "Bus_999", 50.0, 30.0))
	require.NoError(t, c.AddTransformer("T_loop", "Bus_1", "Bus_1", -0.01, 0))
	require.NoError(t, c.AddTransmissionLine("Line_0", "Bus_1", "Bus_2", 0, 0, 0, 0))
	require.NoError(t, c.AddLoad("L_cap", "Bus_1", 0, -10))

	l, _ := c.Load("L1")
	assert.Equal(t, "Bus_999", l.Bus1.Name())
	_, ok := reg.Lookup("Bus_999")
	assert.False(t, ok)
	assert.Empty(t, c.Buses())
}

func TestEquipment_MutationIsVisible(t *testing.T) {
	c, _ := newCircuit(t, "dispatch")
	require.NoError(t, c.AddGenerator("G1", "Bus_1", 1.04, 100.0))

	g, _ := c.Generator("G1")
	g.MWSetpoint = 120.0

	again, _ := c.Generator("G1")
	assert.Equal(t, 120.0, again.MWSetpoint)
	assert.Equal(t, 1.04, again.VoltageSetpoint)
	assert.Equal(t, network.BusRef("Bus_1"), again.Bus1)
	assert.Equal(t, "G1", again.Name)
}

func TestSnapshots_AreCopies(t *testing.T) {
	c, _ := newCircuit(t, "copy")
	require.NoError(t, c.AddLoad("L1", "Bus_1", 1, 1))

	loads := c.Loads()
	delete(loads, "L1")
	loads["L2"] = &network.Load{Name: "L2"}

	assert.Equal(t, []string{"L1"}, c.Names(network.KindLoad))
}

func TestBranches_Order(t *testing.T) {
	c, _ := newCircuit(t, "branches")
	require.NoError(t, c.AddTransmissionLine("Line_B", "Bus_2", "Bus_3", 0.03, 0.3, 0, 0.05))
	require.NoError(t, c.AddTransmissionLine("Line_A", "Bus_1", "Bus_2", 0.02, 0.25, 0, 0.04))
	require.NoError(t, c.AddTransformer("T2", "Bus_3", "Bus_4", 0.02, 0.15))
	require.NoError(t, c.AddTransformer("T1", "Bus_1", "Bus_2", 0.01, 0.10))

	got := c.Branches()
	ids := make([]string, 0, len(got))
	for _, b := range got {
		ids = append(ids, b.ID())
	}
	assert.Equal(t, []string{"Transformer/T1", "Transformer/T2", "TransmissionLine/Line_A", "TransmissionLine/Line_B"}, ids)
	assert.Equal(t, network.Branch{
		Kind: network.KindTransmissionLine, Name: "Line_A", Bus1: "Bus_1", Bus2: "Bus_2", R: 0.02, X: 0.25, G: 0, B: 0.04,
	}, got[2])
	assert.False(t, got[0].IsLoop())
}

func TestNamesAndCount_UnknownKind(t *testing.T) {
	c, _ := newCircuit(t, "k")
	assert.Nil(t, c.Names(network.Kind(99)))
	assert.Zero(t, c.Count(network.Kind(99)))
	assert.Equal(t, "Kind(99)", network.Kind(99).String())
}

func TestCircuits_ShareRegistry(t *testing.T) {
	reg := registry.New()
	a := network.NewCircuit("A", network.WithRegistry(reg))
	b := network.NewCircuit("B", network.WithRegistry(reg))

	require.NoError(t, a.AddBus("Bus_1", 20))
	require.NoError(t, b.AddBus("Bus_1", 230)) // not a duplicate: different circuit
	require.NoError(t, a.AddBus("Bus_2", 20))

	ab, _ := a.Bus("Bus_1")
	bb, _ := b.Bus("Bus_1")
	a2, _ := a.Bus("Bus_2")
	assert.Equal(t, 0, ab.Index())
	assert.Equal(t, 1, bb.Index())
	assert.Equal(t, 2, a2.Index())

	idx, _ := reg.Lookup("Bus_1")
	assert.Equal(t, 1, idx, "circuit B's bus shadows circuit A's")
}

func TestWithRecorder(t *testing.T) {
	rec := &countRecorder{}
	c := network.NewCircuit("rec", network.WithRegistry(registry.New()), network.WithRecorder(rec))

	require.NoError(t, c.AddBus("Bus_1", 20))
	require.NoError(t, c.AddBus("Bus_2", 20))
	require.NoError(t, c.AddLoad("L1", "Bus_2", 1, 1))
	require.Error(t, c.AddLoad("L1", "Bus_2", 1, 1))

	assert.Equal(t, map[string]int{"rec/Bus": 2, "rec/Load": 1}, rec.counts)
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { network.WithRegistry(nil) })
	assert.Panics(t, func() { network.WithLogger(nil) })
	assert.Panics(t, func() { network.WithRecorder(nil) })
}

func TestConcurrentAdd(t *testing.T) {
	c, reg := newCircuit(t, "concurrent")
	const n = 100
	var wg sync.WaitGroup
	errs := make([]error, 2*n)

	wg.Add(2 * n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			errs[i] = c.AddBus(busName(i), 20)
		}(i)
		// Every goroutine in this half races on the same name.
		go func(i int) {
			defer wg.Done()
			errs[n+i] = c.AddLoad("L", busName(i), 1, 1)
		}(i)
	}
	wg.Wait()

	var dups int
	for i, err := range errs {
		if i < n {
			require.NoError(t, err)
			continue
		}
		if err != nil {
			require.ErrorIs(t, err, network.ErrDuplicateEntity)
			dups++
		}
	}
	assert.Equal(t, n-1, dups)
	assert.Equal(t, n, c.Count(network.KindBus))
	assert.Equal(t, 1, c.Count(network.KindLoad))
	assert.Equal(t, n, reg.Next())
}

func busName(i int) string { return fmt.Sprintf("Bus_%02d", i) }

func TestView(t *testing.T) {
	c, _ := newCircuit(t, "Two Bus")
	require.NoError(t, c.AddBus("Bus_2", 230))
	require.NoError(t, c.AddBus("Bus_1", 20))
	require.NoError(t, c.AddTransmissionLine("L1", "Bus_1", "Bus_2", 0.02, 0.25, 0, 0.04))
	require.NoError(t, c.AddTransformer("T1", "Bus_1", "Bus_2", 0.01, 0.1))
	require.NoError(t, c.AddGenerator("G2", "Bus_2", 1.0, 20))
	require.NoError(t, c.AddGenerator("G1", "Bus_1", 1.04, 100))
	require.NoError(t, c.AddLoad("Load_1", "Bus_2", 50, 30))

	v := c.View()
	assert.Equal(t, "Two Bus", v.Name)
	require.Len(t, v.Buses, 2)
	assert.Equal(t, "Bus_1", v.Buses[0].Name())
	assert.Equal(t, "Bus_2", v.Buses[1].Name())
	assert.Equal(t, c.Branches(), v.Branches)
	require.Len(t, v.Generators, 2)
	assert.Equal(t, network.Generator{Name: "G1", Bus1: "Bus_1", VoltageSetpoint: 1.04, MWSetpoint: 100}, v.Generators[0])
	assert.Equal(t, "G2", v.Generators[1].Name)
	assert.Equal(t, []network.Load{{Name: "Load_1", Bus1: "Bus_2", MW: 50, MVAR: 30}}, v.Loads)

	// Equipment values are copies; later adds do not reach an earlier View.
	v.Generators[0].MWSetpoint = 0
	require.NoError(t, c.AddLoad("Load_2", "Bus_1", 1, 1))
	g1, _ := c.Generator("G1")
	assert.Equal(t, 100.0, g1.MWSetpoint)
	assert.Len(t, v.Loads, 1)
}
