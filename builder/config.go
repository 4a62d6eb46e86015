// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value so constructors cannot leak changes to each other.
type builderConfig struct {
	idFn   IDFn
	prefix string

	hvKV float64 // Radial, Ring, Substation HV side
	lvKV float64 // Substation LV side

	// RNG for ImpedanceFns; nil means constant fallbacks.
	rng    *rand.Rand
	lineFn ImpedanceFn
	xfmrFn ImpedanceFn

	genV, genMW      float64
	loadMW, loadMVAR float64
}

// newBuilderConfig starts from deterministic defaults and applies opts in
// order; later options override earlier ones.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:     NumberedIDFn(DefaultBusPrefix),
		hvKV:     DefaultNominalKV,
		lvKV:     DefaultLowVoltageKV,
		lineFn:   ConstantImpedance(DefaultLineImpedance),
		xfmrFn:   ConstantImpedance(DefaultTransformerImpedance),
		genV:     DefaultVoltageSetpoint,
		genMW:    DefaultGenerationMW,
		loadMW:   DefaultDemandMW,
		loadMVAR: DefaultDemandMVAR,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// name joins the configured prefix, a stem and a 1-based ordinal.
func (cfg builderConfig) name(stem string, ordinal int) string {
	return cfg.prefix + stem + strconv.Itoa(ordinal)
}
