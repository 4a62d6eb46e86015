// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// Impedance is the series (R, X) and shunt (G, B) data of one branch.
// Transformers use R and X only.
type Impedance struct {
	R, X, G, B float64
}

// Default branch data.
var (
	DefaultLineImpedance        = Impedance{R: 0.02, X: 0.25, B: 0.04}
	DefaultTransformerImpedance = Impedance{R: 0.01, X: 0.10}
)

// ImpedanceFn produces branch data given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type ImpedanceFn func(rng *rand.Rand) Impedance

// ConstantImpedance returns an ImpedanceFn that always yields z.
// Any sign is accepted, as in network.Circuit: a series-compensated line
// carries a negative X.
func ConstantImpedance(z Impedance) ImpedanceFn {
	return func(_ *rand.Rand) Impedance { return z }
}

// UniformImpedance returns an ImpedanceFn sampling each component uniformly
// in [lo, hi). Panics unless lo ≤ hi component-wise; negative bounds are fine.
// If rng is nil it yields lo, keeping unseeded builds deterministic.
func UniformImpedance(lo, hi Impedance) ImpedanceFn {
	if hi.R < lo.R || hi.X < lo.X || hi.G < lo.G || hi.B < lo.B {
		panic(fmt.Sprintf("UniformImpedance: require lo ≤ hi, got lo=%+v hi=%+v", lo, hi))
	}

	return func(rng *rand.Rand) Impedance {
		if rng == nil {
			return lo
		}
		// Fixed draw order R, X, G, B keeps sequences reproducible.
		return Impedance{
			R: uniform(rng, lo.R, hi.R),
			X: uniform(rng, lo.X, hi.X),
			G: uniform(rng, lo.G, hi.G),
			B: uniform(rng, lo.B, hi.B),
		}
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi == lo {
		return lo
	}

	return lo + rng.Float64()*(hi-lo)
}

// WithLineImpedance sets constant transmission line data.
func WithLineImpedance(r, x, g, b float64) Option {
	return WithLineImpedanceFn(ConstantImpedance(Impedance{R: r, X: x, G: g, B: b}))
}

// WithTransformerImpedance sets constant transformer data.
func WithTransformerImpedance(r, x float64) Option {
	return WithTransformerImpedanceFn(ConstantImpedance(Impedance{R: r, X: x}))
}
