// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridtopo/network"
)

// Substation returns a Constructor for a star: the HV bus idFn(0) feeds
// n-1 LV buses idFn(1..n-1), transformer Ti joining idFn(0) to idFn(i).
// Requires n ≥ MinSubstationBuses.
//
// Complexity: O(n).
func Substation(n int) Constructor {
	return func(c *network.Circuit, cfg builderConfig) error {
		if n < MinSubstationBuses {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodSubstation, n, MinSubstationBuses, ErrTooFewBuses)
		}
		if err := addBuses(methodSubstation, c, cfg, 0, 1, cfg.hvKV); err != nil {
			return err
		}
		if err := addBuses(methodSubstation, c, cfg, 1, n-1, cfg.lvKV); err != nil {
			return err
		}

		hv := cfg.idFn(0)
		for i := 1; i < n; i++ {
			name := cfg.name(transformerStem, i)
			lv := cfg.idFn(i)
			z := cfg.xfmrFn(cfg.rng)
			if err := c.AddTransformer(name, hv, lv, z.R, z.X); err != nil {
				return fmt.Errorf("%s: AddTransformer(%s, %s→%s): %w", methodSubstation, name, hv, lv, err)
			}
		}

		return nil
	}
}
