//go:build !coe_unchecked

package coe

// check guards every coercion against mismatched type arguments. The
// coe_unchecked build tag swaps it for a no-op.
func check[T, U any]() {
	Same[T, U]()
}
