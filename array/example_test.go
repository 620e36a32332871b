package array_test

import (
	"fmt"

	"github.com/hasbyte1/go-array-utils/array"
)

func ExampleNew() {
	a := array.New(1, 2, 3).
		Push(4).
		Reverse()
	fmt.Println(a)
	// Output: [4,3,2,1]
}

func ExampleArray_Split() {
	head, tail := array.New("a", "b", "c").Split(1)
	fmt.Println(head, tail)
	// Output: ["a"] ["b","c"]
}

func ExampleFlatten() {
	a := array.Flatten([][]int{{1, 2}, {3, 4}})
	fmt.Println(a.Len(), a)
	// Output: 4 [1,2,3,4]
}

func ExampleArray_Remove() {
	fmt.Println(array.New(1, 2, 3).Remove(1))
	// Output: [1,3]
}
