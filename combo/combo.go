// SPDX-License-Identifier: MIT
// Package: affinity/combo
//
// combo.go — lexicographic k-combination successor.
//
// Contract:
//   • The first call to Next positions the enumerator at {0,1,…,k-1}.
//   • Each further call advances to the lexicographic successor.
//   • k==0, k>n, n<0 or k<0 ⇒ Next reports false on the very first call.
//   • k==n ⇒ exactly one combination; the enumerator marks itself done
//     right after emitting it.
//   • Exhaustion is permanent; there is no Reset.
//
// Complexity:
//   • Next: O(k) time worst case, O(1) extra space.

package combo

import "fmt"

// Enumerator produces the k-combinations of {0,…,n-1} in lexicographic order.
// The zero value is an exhausted enumerator; construct with New or Resume.
// An Enumerator is not safe for concurrent use.
type Enumerator struct {
	n, k    int
	seq     []int
	started bool
	done    bool
}

// New returns an Enumerator over the k-subsets of an n-element range.
// Degenerate sizes are accepted and simply yield no combinations.
func New(n, k int) *Enumerator {
	e := &Enumerator{n: n, k: k}
	if k <= 0 || n < 0 || k > n {
		e.done = true
	}

	return e
}

// Next advances to the next combination and reports whether one exists.
func (e *Enumerator) Next() bool {
	if e.done {
		e.seq = nil

		return false
	}

	if !e.started {
		e.started = true
		e.seq = make([]int, e.k)
		for i := range e.seq {
			e.seq[i] = i
		}
		// k==n has a single combination; the next call must fail.
		if e.k == e.n {
			e.done = true
		}

		return true
	}

	// Scan right to left for the first position that can grow without
	// colliding with the positions to its right.
	for i := e.k - 1; i >= 0; i-- {
		if e.seq[i]+1+(e.k-1-i) < e.n {
			e.seq[i]++
			for j := i + 1; j < e.k; j++ {
				e.seq[j] = e.seq[i] + (j - i)
			}

			return true
		}
	}

	e.done = true
	e.seq = nil

	return false
}

// Current returns a copy of the current combination, or nil if Next has not
// reported true yet or the enumeration is exhausted.
func (e *Enumerator) Current() []int {
	if e.seq == nil {
		return nil
	}
	out := make([]int, len(e.seq))
	copy(out, e.seq)

	return out
}

// Done reports whether the enumeration is exhausted, i.e. the next call to
// Next will report false.
func (e *Enumerator) Done() bool { return e.done }

// State returns a snapshot that Resume can continue from.
func (e *Enumerator) State() State {
	return State{N: e.n, K: e.k, Seq: e.Current(), Done: e.done}
}

// Resume reconstructs an Enumerator from a snapshot taken with State.
// The returned enumerator continues with the successor of st.Seq; when
// st.Seq is nil it starts from the beginning.
//
// Errors: ErrInvalidState if Seq has the wrong length, is not strictly
// increasing, or leaves the range [0,N).
func Resume(st State) (*Enumerator, error) {
	e := New(st.N, st.K)
	if st.Done {
		e.done = true

		return e, nil
	}
	if st.Seq == nil {
		return e, nil
	}
	if e.done {
		return nil, fmt.Errorf("Resume: n=%d k=%d has no combinations: %w", st.N, st.K, ErrInvalidState)
	}
	if len(st.Seq) != st.K {
		return nil, fmt.Errorf("Resume: len(seq)=%d != k=%d: %w", len(st.Seq), st.K, ErrInvalidState)
	}
	for i, v := range st.Seq {
		if v < 0 || v >= st.N {
			return nil, fmt.Errorf("Resume: seq[%d]=%d outside [0,%d): %w", i, v, st.N, ErrInvalidState)
		}
		if i > 0 && v <= st.Seq[i-1] {
			return nil, fmt.Errorf("Resume: seq not strictly increasing at %d: %w", i, ErrInvalidState)
		}
	}

	e.started = true
	e.seq = make([]int, st.K)
	copy(e.seq, st.Seq)

	return e, nil
}

// Each calls fn for every k-combination of {0,…,n-1} in lexicographic order.
// The slice passed to fn is reused between calls; copy it to retain it.
// Iteration stops at the first error returned by fn, which Each returns.
//
// Complexity: O(C(n,k)·k) time, O(k) space.
func Each(n, k int, fn func(comb []int) error) error {
	e := New(n, k)
	for e.Next() {
		if err := fn(e.seq); err != nil {
			return err
		}
	}

	return nil
}
