// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridtopo/network"
)

// Constructor applies a deterministic circuit mutation using the resolved
// config. Constructors validate parameters before touching the circuit and
// stop at the first rejected Add* call.
type Constructor func(c *network.Circuit, cfg builderConfig) error

// BuildCircuit creates a circuit named name with circuit options copts,
// resolves the builder options bopts, and applies cons in order.
//
// Any constructor error is wrapped as "BuildCircuit: %w" and returned at
// once; the partial circuit is discarded, but buses it already registered
// stay registered.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - ErrTooFewBuses from size validation.
//   - network.ErrDuplicateEntity when constructors collide on names.
func BuildCircuit(name string, copts []network.Option, bopts []Option, cons ...Constructor) (*network.Circuit, error) {
	c := network.NewCircuit(name, copts...)
	if err := apply(methodBuildCircuit, c, newBuilderConfig(bopts...), cons); err != nil {
		return nil, err
	}

	return c, nil
}

// Extend applies cons to an existing circuit, for example one that already
// holds hand-built equipment. Errors are wrapped as "Extend: %w"; adds made
// before a failing constructor stay in c.
//
// Errors: as BuildCircuit, plus ErrConstructFailed for a nil circuit.
func Extend(c *network.Circuit, bopts []Option, cons ...Constructor) error {
	if c == nil {
		return fmt.Errorf("%s: nil circuit: %w", methodExtend, ErrConstructFailed)
	}

	return apply(methodExtend, c, newBuilderConfig(bopts...), cons)
}

func apply(method string, c *network.Circuit, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("%s: nil constructor at index %d: %w", method, i, ErrConstructFailed)
		}
		if err := fn(c, cfg); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}

// addBuses adds n buses named by cfg.idFn(offset..offset+n-1).
func addBuses(method string, c *network.Circuit, cfg builderConfig, offset, n int, kv float64) error {
	for i := offset; i < offset+n; i++ {
		id := cfg.idFn(i)
		if err := c.AddBus(id, kv); err != nil {
			return fmt.Errorf("%s: AddBus(%s): %w", method, id, err)
		}
	}

	return nil
}

// addLine adds line number ordinal between the buses at positions u and v.
func addLine(method string, c *network.Circuit, cfg builderConfig, ordinal, u, v int) error {
	name := cfg.name(lineStem, ordinal)
	from, to := cfg.idFn(u), cfg.idFn(v)
	z := cfg.lineFn(cfg.rng)
	if err := c.AddTransmissionLine(name, from, to, z.R, z.X, z.G, z.B); err != nil {
		return fmt.Errorf("%s: AddTransmissionLine(%s, %s→%s): %w", method, name, from, to, err)
	}

	return nil
}
