// SPDX-License-Identifier: MIT

package combo

import "errors"

var (
	// ErrInvalidState is returned by Resume when a State snapshot is not a
	// combination the enumerator could have produced for its (N, K).
	ErrInvalidState = errors.New("combo: invalid enumerator state")

	// ErrOverflow is returned by Count when C(n,k) does not fit in uint64.
	ErrOverflow = errors.New("combo: binomial coefficient overflows uint64")

	// ErrNegativeSize is returned by Count for n<0 or k<0.
	ErrNegativeSize = errors.New("combo: negative size")
)

// State is a serializable snapshot of an Enumerator.
//
// Fields:
//   - N, K — the index range size and the combination size.
//   - Seq  — the last emitted combination; nil when nothing was emitted yet.
//   - Done — true once the enumeration is exhausted.
type State struct {
	N    int   `json:"n" toml:"n"`
	K    int   `json:"k" toml:"k"`
	Seq  []int `json:"seq,omitempty" toml:"seq,omitempty"`
	Done bool  `json:"done" toml:"done"`
}
