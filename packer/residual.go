// SPDX-License-Identifier: MIT

package packer

import "github.com/prysmaticlabs/go-bitfield"

// Residual returns, in ascending index order, the participants in [0,n)
// whose bit is not set in placed. Indices follow the order of first
// appearance in the source data, so ascending order is that order.
//
// Complexity: O(n).
func Residual(n int, placed bitfield.Bitlist) []int {
	out := make([]int, 0)
	for i := 0; i < n; i++ {
		if placed == nil || uint64(i) >= placed.Len() || !placed.BitAt(uint64(i)) {
			out = append(out, i)
		}
	}

	return out
}
