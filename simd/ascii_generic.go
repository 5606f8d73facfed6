package simd

import "encoding/binary"

// hi8 has the high bit of every byte lane set.
const hi8 = uint64(0x8080808080808080)

// firstNonASCIISWAR checks 8 bytes per iteration and locates the offending
// byte only once a chunk fails.
func firstNonASCIISWAR(data []byte) int {
	idx := 0
	for idx+8 <= len(data) {
		if binary.LittleEndian.Uint64(data[idx:])&hi8 != 0 {
			return idx + scalar(data[idx:idx+8])
		}
		idx += 8
	}
	if i := scalar(data[idx:]); i >= 0 {
		return idx + i
	}
	return -1
}

// firstNonASCIIWide ORs four 8-byte lanes per iteration so the loads are
// independent, then falls back to the SWAR kernel for the failing block
// and the tail.
func firstNonASCIIWide(data []byte) int {
	idx := 0
	for idx+32 <= len(data) {
		w := binary.LittleEndian.Uint64(data[idx:]) |
			binary.LittleEndian.Uint64(data[idx+8:]) |
			binary.LittleEndian.Uint64(data[idx+16:]) |
			binary.LittleEndian.Uint64(data[idx+24:])
		if w&hi8 != 0 {
			return idx + firstNonASCIISWAR(data[idx:idx+32])
		}
		idx += 32
	}
	if i := firstNonASCIISWAR(data[idx:]); i >= 0 {
		return idx + i
	}
	return -1
}

func scalar(data []byte) int {
	for i, b := range data {
		if b >= 0x80 {
			return i
		}
	}
	return -1
}
