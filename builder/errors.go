// SPDX-License-Identifier: MIT

package builder

import "errors"

// Callers branch with errors.Is. Constructors add context as
// fmt.Errorf("<Constructor>: ...: %w", ErrX).
var (
	// ErrTooFewBuses indicates a size parameter below the constructor minimum.
	ErrTooFewBuses = errors.New("builder: too few buses")

	// ErrConstructFailed indicates a build that could not run, such as a nil
	// constructor.
	ErrConstructFailed = errors.New("builder: construction failed")
)
