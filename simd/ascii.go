// Package simd provides word-parallel scans used to validate matcher input.
//
// The matchers operate over a fixed 7-bit symbol domain when strict
// alphabet checking is enabled. Validation touches every byte of the text
// once, so it uses SWAR (SIMD Within A Register) kernels: 8 bytes per
// uint64 load, or four loads per iteration on CPUs with wide vector units
// where the extra in-flight loads pay off.
package simd

import "golang.org/x/sys/cpu"

// wideLoads selects the 32-byte kernel. AVX2 on x86-64 and ASIMD on arm64
// indicate cores that sustain several independent loads per cycle.
var wideLoads = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD

// wideThreshold is the input size below which the wide kernel's setup is
// not worth it.
const wideThreshold = 64

// IsASCII reports whether every byte of data is below 0x80.
//
// Example:
//
//	simd.IsASCII([]byte("hello"))      // true
//	simd.IsASCII([]byte("h\xc3\xa9")) // false
func IsASCII(data []byte) bool {
	return FirstNonASCII(data) < 0
}

// FirstNonASCII returns the index of the first byte >= 0x80, or -1.
func FirstNonASCII(data []byte) int {
	if wideLoads && len(data) >= wideThreshold {
		return firstNonASCIIWide(data)
	}
	return firstNonASCIISWAR(data)
}
