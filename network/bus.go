// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/katalvlaran/gridtopo/registry"
)

// Bus is a network node. Its fields are fixed at construction; the index is
// taken from a registry.Registry and is unique within that registry's index
// space.
type Bus struct {
	name      string
	nominalKV float64
	index     int
}

// NewBus registers name in reg and returns the bus carrying the assigned
// index. A nil reg means registry.Default().
//
// Two buses built with the same name are both valid and independently
// indexed; only the later one is reachable through reg.Lookup(name).
func NewBus(reg *registry.Registry, name string, nominalKV float64) *Bus {
	if reg == nil {
		reg = registry.Default()
	}

	return &Bus{
		name:      name,
		nominalKV: nominalKV,
		index:     reg.Register(name),
	}
}

// Name returns the bus name.
func (b *Bus) Name() string { return b.name }

// NominalKV returns the nominal voltage in kilovolts.
func (b *Bus) NominalKV() float64 { return b.nominalKV }

// Index returns the registry index assigned at construction.
func (b *Bus) Index() int { return b.index }

// Ref returns a weak reference to this bus by name.
func (b *Bus) Ref() BusRef { return BusRef(b.name) }

func (b *Bus) String() string {
	return fmt.Sprintf("Bus(name='%s', nominal_kv=%s, index=%d)", b.name, formatFloat(b.nominalKV), b.index)
}
