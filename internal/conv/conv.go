// Package conv provides safe integer narrowing helpers for the generator.
//
// These functions perform bounds checking before narrowing conversions and
// panic on overflow, since overflow here indicates a programming error (a
// hex escape or code-unit value outside the range the caller already
// validated).
package conv

import (
	"math"
	"unicode"
)

// Uint64ToUint16 safely converts a parsed hex value to a UTF-16 code unit.
// Panics if n > math.MaxUint16.
//
//go:inline
func Uint64ToUint16(n uint64) uint16 {
	if n > math.MaxUint16 {
		panic("integer overflow: uint64 value out of uint16 range")
	}
	return uint16(n)
}

// Uint64ToRune safely converts a parsed hex value to a code point.
// Panics if n exceeds unicode.MaxRune; callers reject such values with a
// proper error before converting.
//
//go:inline
func Uint64ToRune(n uint64) rune {
	if n > uint64(unicode.MaxRune) {
		panic("integer overflow: uint64 value out of code point range")
	}
	return rune(n)
}
