// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridtopo/network"
)

// Generators returns a Constructor adding one generator per named bus, in
// argument order, with the configured setpoints.
//
// Each generator takes the lowest ordinal whose name is still free in the
// circuit, so names added by hand (or by an earlier call) are skipped rather
// than collided with. Bus names are not checked against the circuit; an
// undeclared bus simply stays a dangling reference.
// Requires at least one bus.
func Generators(buses ...string) Constructor {
	return func(c *network.Circuit, cfg builderConfig) error {
		if len(buses) == 0 {
			return fmt.Errorf("%s: no buses: %w", methodGenerators, ErrTooFewBuses)
		}
		names := newOrdinals(c, cfg, network.KindGenerator, generatorStem)
		for _, bus := range buses {
			name := names.next()
			if err := c.AddGenerator(name, bus, cfg.genV, cfg.genMW); err != nil {
				return fmt.Errorf("%s: AddGenerator(%s@%s): %w", methodGenerators, name, bus, err)
			}
		}

		return nil
	}
}

// Loads is the demand counterpart of Generators.
func Loads(buses ...string) Constructor {
	return func(c *network.Circuit, cfg builderConfig) error {
		if len(buses) == 0 {
			return fmt.Errorf("%s: no buses: %w", methodLoads, ErrTooFewBuses)
		}
		names := newOrdinals(c, cfg, network.KindLoad, loadStem)
		for _, bus := range buses {
			name := names.next()
			if err := c.AddLoad(name, bus, cfg.loadMW, cfg.loadMVAR); err != nil {
				return fmt.Errorf("%s: AddLoad(%s@%s): %w", methodLoads, name, bus, err)
			}
		}

		return nil
	}
}

// ordinals hands out stem names with increasing ordinals, skipping any name
// already present in one collection of the circuit.
type ordinals struct {
	cfg     builderConfig
	stem    string
	taken   map[string]struct{}
	ordinal int
}

func newOrdinals(c *network.Circuit, cfg builderConfig, kind network.Kind, stem string) *ordinals {
	o := &ordinals{cfg: cfg, stem: stem, taken: make(map[string]struct{})}
	for _, name := range c.Names(kind) {
		o.taken[name] = struct{}{}
	}

	return o
}

// next returns the lowest free name and reserves it.
func (o *ordinals) next() string {
	for {
		o.ordinal++
		name := o.cfg.name(o.stem, o.ordinal)
		if _, ok := o.taken[name]; !ok {
			o.taken[name] = struct{}{}
			return name
		}
	}
}
