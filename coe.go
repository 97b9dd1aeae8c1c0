package coe

import (
	"reflect"
	"unsafe"
)

// Is reports whether T and U denote the same concrete type at this
// instantiation site.
func Is[T, U any]() bool {
	return reflect.TypeFor[T]() == reflect.TypeFor[U]()
}

// Same panics if T and U are not the same concrete type.
func Same[T, U any]() {
	t, u := reflect.TypeFor[T](), reflect.TypeFor[U]()
	if t != u {
		panic("coe: cannot coerce " + t.String() + " to " + u.String())
	}
}

// As reinterprets an owned value of type T as type U. The bit pattern is
// preserved exactly; nothing is converted.
//
// The caller must have established [Is][T, U] first. In the default build a
// violation panics; under the coe_unchecked tag it is undefined behavior.
func As[U, T any](v T) U {
	check[T, U]()
	return *(*U)(unsafe.Pointer(&v))
}

// AsPtr reinterprets a pointer to T as a pointer to U. Both pointers address
// the same memory, so writes through either are visible through the other.
// Same contract as [As].
func AsPtr[U, T any](p *T) *U {
	check[T, U]()
	return (*U)(unsafe.Pointer(p))
}

// AsSlice reinterprets a slice of T as a slice of U sharing the same backing
// array. Length and capacity carry over unchanged; a nil slice stays nil.
// Same contract as [As].
func AsSlice[U, T any](s []T) []U {
	check[T, U]()
	return *(*[]U)(unsafe.Pointer(&s))
}

// TryAs combines the identity check and the coercion: it returns v
// reinterpreted as U and true when T and U are the same type, or the zero U
// and false otherwise. It never panics.
func TryAs[U, T any](v T) (U, bool) {
	if !Is[T, U]() {
		var zero U
		return zero, false
	}
	return *(*U)(unsafe.Pointer(&v)), true
}
