// Package coe coerces a value of type T into type U in cases where the two
// types are the same but the compiler cannot prove it.
//
// At any instantiation of a generic function the concrete type behind a type
// parameter is fixed, yet the function body cannot name it. [Is] recovers
// that knowledge as a runtime boolean, letting generic code branch into a
// path specialized for one concrete type. Inside such a branch, [As],
// [AsPtr] and [AsSlice] reinterpret the guarded value as the concrete type
// with zero copying, emulating specialization:
//
//	func scale[T constraints.Float](factor T, xs []T) {
//		if coe.Is[T, float64]() {
//			fs := coe.AsSlice[float64](xs)
//			// float64-only fast path writing through fs
//			return
//		}
//		// generic fallback
//	}
//
// Calling a coercion function when [Is] would report false is a contract
// violation, not a recoverable error. By default every coercion re-checks
// type identity and panics on mismatch, costing one predictable branch per
// call. Building with the coe_unchecked tag compiles the check out; under
// that tag a mismatched coercion reinterprets memory at the wrong type and
// the resulting corruption is undefined behavior that no tooling will catch.
// [TryAs] folds the check and the coercion into one call for code that
// prefers a boolean to a guard clause.
package coe
