package convert

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"

	"github.com/sarah-quinones/coe"
)

// Basic is an alias for [cast.Basic].
type Basic = cast.Basic

// Integer is an alias for [safemath.Integer].
type Integer = safemath.Integer

// Type is a constraint matching every target type supported by [To].
type Type interface {
	Basic | Integer
}

// checked matches integer types accepted by both backends: safemath when the
// input is itself an integer, cast otherwise.
type checked interface {
	cast.Basic
	safemath.Integer
}

// To converts v to type T. When v already holds a T it is returned unchanged
// and no backend runs.
//
// The dispatch below branches on the concrete type behind T, then retypes
// each backend's result with [coe.As]; the matching [coe.Is] case is what
// establishes the coercion's precondition.
func To[T Type](v any) (T, error) {
	if out, ok := v.(T); ok {
		return out, nil
	}

	switch {
	case coe.Is[T, int]():
		return viaChecked[T, int](v)
	case coe.Is[T, int8]():
		return viaChecked[T, int8](v)
	case coe.Is[T, int16]():
		return viaChecked[T, int16](v)
	case coe.Is[T, int32]():
		return viaChecked[T, int32](v)
	case coe.Is[T, int64]():
		return viaChecked[T, int64](v)
	case coe.Is[T, uint]():
		return viaChecked[T, uint](v)
	case coe.Is[T, uint8]():
		return viaChecked[T, uint8](v)
	case coe.Is[T, uint16]():
		return viaChecked[T, uint16](v)
	case coe.Is[T, uint32]():
		return viaChecked[T, uint32](v)
	case coe.Is[T, uint64]():
		return viaChecked[T, uint64](v)
	case coe.Is[T, uintptr]():
		// cast has no uintptr support, so only integer inputs convert.
		if !isIntVal(v) {
			var zero T
			return zero, fmt.Errorf("convert: cannot make uintptr from %T", v)
		}
		return viaSafemath[T, uintptr](v)
	case coe.Is[T, string]():
		return viaCast[T, string](v)
	case coe.Is[T, bool]():
		return viaCast[T, bool](v)
	case coe.Is[T, float32]():
		return viaCast[T, float32](v)
	case coe.Is[T, float64]():
		return viaCast[T, float64](v)
	case coe.Is[T, time.Time]():
		return viaCast[T, time.Time](v)
	case coe.Is[T, time.Duration]():
		return viaCast[T, time.Duration](v)
	default:
		var zero T
		return zero, fmt.Errorf("convert: unsupported target type %T", zero)
	}
}

// ToMust is like [To] but panics when the conversion fails.
func ToMust[T Type](v any) T {
	out, err := To[T](v)
	if err != nil {
		panic(err)
	}

	return out
}

// viaChecked converts v to the integer type I, routing integer inputs through
// safemath and everything else through cast.
func viaChecked[T any, I checked](v any) (T, error) {
	if isIntVal(v) {
		return viaSafemath[T, I](v)
	}

	return viaCast[T, I](v)
}

// viaSafemath converts v to the integer type I with overflow/underflow
// checking, then retypes the result as the caller's type parameter T.
func viaSafemath[T any, I Integer](v any) (T, error) {
	converted, err := safemath.ConvertAny[I](v)
	if err != nil {
		var zero T
		return zero, err
	}

	return coe.As[T](converted), nil
}

// viaCast converts v to the basic type B using cast, then retypes the result
// as the caller's type parameter T.
func viaCast[T any, B Basic](v any) (T, error) {
	converted, err := cast.ToE[B](v)
	if err != nil {
		var zero T
		return zero, err
	}

	return coe.As[T](converted), nil
}

// isIntVal reports whether v's dynamic type is one of the integer types
// routed through safemath.
func isIntVal(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	default:
		return false
	}
}
