//go:build coe_unchecked

package coe

func check[T, U any]() {}
