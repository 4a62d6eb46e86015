// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Every message is prefixed with "matrix: ". Callers match with errors.Is;
// methods add context with fmt.Errorf("Type.Method(...): %w", ErrX).
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At and Set return it rather than panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilCircuit indicates NewIncidence received a nil circuit.
	ErrNilCircuit = errors.New("matrix: circuit is nil")

	// ErrUnknownBranch indicates a branch ID with no incidence column.
	ErrUnknownBranch = errors.New("matrix: unknown branch")
)
