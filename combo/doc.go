// SPDX-License-Identifier: MIT

// Package combo enumerates k-combinations of the index range {0,…,n-1}
// one at a time, in lexicographic order, without materializing them.
//
// 🚀 Why an enumerator?
//
//	C(n,k) grows quickly: C(40,4) is already 91 390 candidate groups and
//	C(60,5) is over five million. The Enumerator keeps only the current
//	combination (O(k) memory) and derives its successor in O(k) time.
//
// ✨ Key features:
//   - lexicographic order starting at {0,1,…,k-1}
//   - degenerate inputs (k==0, k>n) yield nothing, no error
//   - permanent exhaustion: after the last combination Next always reports false
//   - resumable: State snapshots can be persisted and Resume'd later
//   - Count computes C(n,k) with overflow detection
//
// ⚙️ Usage:
//
//	e := combo.New(5, 3)
//	for e.Next() {
//	    fmt.Println(e.Current()) // [0 1 2], [0 1 3], … , [2 3 4]
//	}
//
// Complexity:
//
//   - Next:    O(k) worst case, O(1) amortized
//   - Current: O(k) (defensive copy)
//   - Memory:  O(k)
package combo
