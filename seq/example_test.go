package seq_test

import (
	"fmt"

	"github.com/wippyai/fixedseq/nat"
	"github.com/wippyai/fixedseq/seq"
)

func Example() {
	s := seq.MustNew[nat.U3](1, 2, 3)

	s4 := seq.Append(s, 4)
	fmt.Println(s4)

	first, rest := seq.PopFront(s4)
	fmt.Println(first, rest)

	head, tail := seq.Split[nat.U1, nat.U2](rest)
	fmt.Println(head, tail)

	fmt.Println(seq.Concat[nat.U3](tail, head))
	fmt.Println(s.Valid())
	// Output:
	// [1 2 3 4]
	// 1 [2 3 4]
	// [2] [3 4]
	// [3 4 2]
	// false
}

func ExamplePrepend() {
	s := seq.Prepend(seq.MustNew[nat.U2]("b", "c"), "a")
	fmt.Println(s, s.Len())
	// Output: [a b c] 3
}
