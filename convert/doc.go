// Package convert turns loosely typed values into a concrete target type,
// skipping all conversion work when the value already has that type.
//
// A value whose dynamic type equals the target is returned bit-identical,
// without touching a conversion backend. Otherwise integer targets go through
// [safemath] to guard against overflows, underflows, and silent truncation,
// and the remaining targets use [cast].
package convert
