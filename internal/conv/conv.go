// Package conv provides checked integer narrowing.
//
// Offsets are stored as uint32 in compact tables. A conversion that would
// overflow indicates an input larger than those tables support, so it
// panics rather than silently wrapping.
package conv

import "math"

// IntToUint32 converts n to uint32.
// It panics if n < 0 or n > math.MaxUint32.
func IntToUint32(n int) uint32 {
	// Compare as uint so 32-bit platforms do not overflow the constant.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("conv: int value out of uint32 range")
	}
	return uint32(n)
}
