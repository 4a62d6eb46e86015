// SPDX-License-Identifier: MIT

package builder

// Entry point and constructor names used as error context.
const (
	methodBuildCircuit = "BuildCircuit"
	methodExtend       = "Extend"
	methodRadial       = "Radial"
	methodRing         = "Ring"
	methodSubstation   = "Substation"
	methodGenerators   = "Generators"
	methodLoads        = "Loads"
)

// Minimum sizes.
const (
	// MinRadialBuses is the smallest feeder with at least one line.
	MinRadialBuses = 2
	// MinRingBuses is the smallest ring without parallel lines.
	MinRingBuses = 3
	// MinSubstationBuses is one HV bus plus at least one LV bus.
	MinSubstationBuses = 2
)

// Deterministic electrical defaults.
const (
	DefaultNominalKV       = 230.0
	DefaultLowVoltageKV    = 20.0
	DefaultVoltageSetpoint = 1.0
	DefaultGenerationMW    = 100.0
	DefaultDemandMW        = 50.0
	DefaultDemandMVAR      = 30.0
)

// Equipment name stems.
const (
	lineStem        = "Line_"
	transformerStem = "T"
	generatorStem   = "G"
	loadStem        = "Load_"
)
