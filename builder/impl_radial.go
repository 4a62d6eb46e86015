// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridtopo/network"
)

// Radial returns a Constructor for a feeder of n buses in a chain.
//
// Buses are idFn(0..n-1) at the nominal voltage; line i (1-based) joins
// idFn(i-1) to idFn(i), emitted in increasing i.
// Requires n ≥ MinRadialBuses.
//
// Complexity: O(n).
func Radial(n int) Constructor {
	return func(c *network.Circuit, cfg builderConfig) error {
		if n < MinRadialBuses {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRadial, n, MinRadialBuses, ErrTooFewBuses)
		}
		if err := addBuses(methodRadial, c, cfg, 0, n, cfg.hvKV); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addLine(methodRadial, c, cfg, i, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
