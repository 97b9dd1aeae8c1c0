package coe_test

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/sarah-quinones/coe"
)

// scale picks a concrete fast path per instantiation: float64 slices are
// multiplied in place through a coerced view, everything else runs the
// generic fallback.
func scale[T constraints.Integer | constraints.Float](factor T, xs []T) {
	if coe.Is[T, float64]() {
		fs := coe.AsSlice[float64](xs)
		f := coe.As[float64](factor)
		for i := range fs {
			fs[i] *= f
		}
		return
	}

	for i := range xs {
		xs[i] = 2 * factor * xs[i]
	}
}

func Example() {
	ints := []uint32{0, 1, 2}
	floats := []float64{0, 1, 2}

	scale(uint32(2), ints)
	scale(2.0, floats)

	fmt.Println(ints)
	fmt.Println(floats)
	// Output:
	// [0 4 8]
	// [0 2 4]
}
