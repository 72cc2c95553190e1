package combo_test

import (
	"fmt"

	"github.com/katalvlaran/affinity/combo"
)

// ExampleNew walks every 3-subset of five participants.
func ExampleNew() {
	e := combo.New(5, 3)
	for e.Next() {
		fmt.Println(e.Current())
	}
	// Output:
	// [0 1 2]
	// [0 1 3]
	// [0 1 4]
	// [0 2 3]
	// [0 2 4]
	// [0 3 4]
	// [1 2 3]
	// [1 2 4]
	// [1 3 4]
	// [2 3 4]
}

// ExampleResume pauses an enumeration and picks it up from a snapshot.
func ExampleResume() {
	e := combo.New(4, 2)
	e.Next()
	e.Next()
	st := e.State()

	r, err := combo.Resume(st)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for r.Next() {
		fmt.Println(r.Current())
	}
	// Output:
	// [0 3]
	// [1 2]
	// [1 3]
	// [2 3]
}

// ExampleCount sizes the candidate space before enumerating it.
func ExampleCount() {
	c, _ := combo.Count(40, 4)
	fmt.Println(c)
	// Output:
	// 91390
}
