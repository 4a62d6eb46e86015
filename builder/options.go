// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// Option customizes a build by mutating the builder config before any
// constructor runs. Option constructors validate and panic on meaningless
// input; constructors themselves never panic.
type Option func(*builderConfig)

// WithIDScheme sets the bus naming function. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithPrefix prepends p to every generated equipment name, not to buses.
func WithPrefix(p string) Option {
	return func(c *builderConfig) {
		c.prefix = p
	}
}

// WithNominalKV sets the voltage of Radial and Ring buses and of the
// Substation HV bus. Panics if kv <= 0.
func WithNominalKV(kv float64) Option {
	if kv <= 0 {
		panic(fmt.Sprintf("builder: WithNominalKV(%g)", kv))
	}
	return func(c *builderConfig) {
		c.hvKV = kv
	}
}

// WithLowVoltageKV sets the voltage of Substation LV buses. Panics if kv <= 0.
func WithLowVoltageKV(kv float64) Option {
	if kv <= 0 {
		panic(fmt.Sprintf("builder: WithLowVoltageKV(%g)", kv))
	}
	return func(c *builderConfig) {
		c.lvKV = kv
	}
}

// WithRand provides an explicit RNG for ImpedanceFns. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLineImpedanceFn overrides transmission line data. Panics on nil.
func WithLineImpedanceFn(fn ImpedanceFn) Option {
	if fn == nil {
		panic("builder: WithLineImpedanceFn(nil)")
	}
	return func(c *builderConfig) {
		c.lineFn = fn
	}
}

// WithTransformerImpedanceFn overrides transformer data. Panics on nil.
func WithTransformerImpedanceFn(fn ImpedanceFn) Option {
	if fn == nil {
		panic("builder: WithTransformerImpedanceFn(nil)")
	}
	return func(c *builderConfig) {
		c.xfmrFn = fn
	}
}

// WithGeneration sets the setpoints used by Generators.
// Panics if voltageSetpoint <= 0.
func WithGeneration(voltageSetpoint, mw float64) Option {
	if voltageSetpoint <= 0 {
		panic(fmt.Sprintf("builder: WithGeneration(v=%g)", voltageSetpoint))
	}
	return func(c *builderConfig) {
		c.genV, c.genMW = voltageSetpoint, mw
	}
}

// WithDemand sets the consumption used by Loads. Any sign is accepted.
func WithDemand(mw, mvar float64) Option {
	return func(c *builderConfig) {
		c.loadMW, c.loadMVAR = mw, mvar
	}
}
