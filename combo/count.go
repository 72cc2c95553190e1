// SPDX-License-Identifier: MIT

package combo

import (
	"fmt"
	"math/bits"
)

// Count returns the binomial coefficient C(n,k), the number of combinations
// an Enumerator over (n,k) yields. k>n yields 0; k==0 yields 0 as well,
// matching the enumerator which emits nothing for empty groups.
//
// Errors: ErrNegativeSize for n<0 or k<0, ErrOverflow when the result does
// not fit in uint64.
//
// Complexity: O(min(k, n-k)) time, O(1) space.
func Count(n, k int) (uint64, error) {
	if n < 0 || k < 0 {
		return 0, fmt.Errorf("Count: n=%d k=%d: %w", n, k, ErrNegativeSize)
	}
	if k == 0 || k > n {
		return 0, nil
	}
	if k > n-k {
		k = n - k
	}

	// c = c·(n-i)/(i+1) stays integral at every step; the 128-bit product
	// keeps the intermediate exact.
	var c uint64 = 1
	for i := 0; i < k; i++ {
		hi, lo := bits.Mul64(c, uint64(n-i))
		if hi >= uint64(i+1) {
			return 0, fmt.Errorf("Count: C(%d,%d): %w", n, k, ErrOverflow)
		}
		c, _ = bits.Div64(hi, lo, uint64(i+1))
	}

	return c, nil
}
