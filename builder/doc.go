// SPDX-License-Identifier: MIT

// Package builder assembles deterministic network.Circuit fixtures.
//
// A build is one call to BuildCircuit: it creates the circuit, resolves the
// builder options into an immutable config, and runs constructors in order.
//
// Constructors:
//
//   - Radial(n):     n buses in a chain joined by n-1 transmission lines.
//   - Ring(n):       Radial(n) closed by one more line back to the first bus.
//   - Substation(n): one high-voltage bus feeding n-1 low-voltage buses
//     through transformers.
//   - Generators(bus...), Loads(bus...): injections at named buses, each
//     taking the lowest free "Gi" or "Load_i" name.
//
// Bus names come from the ID scheme (default "Bus_1", "Bus_2", ...);
// equipment names are "Line_i", "Ti", "Gi", "Load_i" behind an optional
// prefix. Branch impedances come from an ImpedanceFn, constant by default
// and seeded-random with WithSeed and UniformImpedance.
//
// Option constructors panic on meaningless input. Constructors never panic;
// they return ErrTooFewBuses, ErrConstructFailed, or the wrapped
// network error of the first rejected Add* call.
package builder
