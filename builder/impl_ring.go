// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridtopo/network"
)

// Ring returns a Constructor for a closed loop of n buses.
//
// Line i (1-based) joins idFn(i-1) to idFn(i mod n); the last line closes
// the ring back to idFn(0). Requires n ≥ MinRingBuses.
//
// Complexity: O(n).
func Ring(n int) Constructor {
	return func(c *network.Circuit, cfg builderConfig) error {
		if n < MinRingBuses {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, MinRingBuses, ErrTooFewBuses)
		}
		if err := addBuses(methodRing, c, cfg, 0, n, cfg.hvKV); err != nil {
			return err
		}
		for i := 1; i <= n; i++ {
			if err := addLine(methodRing, c, cfg, i, i-1, i%n); err != nil {
				return err
			}
		}

		return nil
	}
}
