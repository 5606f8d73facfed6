// Package alphabet maps raw symbols to dense class identifiers.
//
// The preprocessing tables of the Boyer-Moore and KMP matchers keep one row
// per symbol. Instead of sizing those tables to a fixed symbol domain, a
// Classes value numbers only the symbols that actually occur in a pattern.
// Every other symbol maps to Absent, which the matchers treat as "no table
// row" and resolve with the maximal safe shift.
//
// Example for pattern "abca":
//   - 'a' -> class 1
//   - 'b' -> class 2
//   - 'c' -> class 3
//   - every other byte -> Absent (0)
package alphabet

// Absent is the class of every symbol that does not occur in the pattern.
const Absent = 0

// Classes maps each byte value to its class.
type Classes struct {
	classes [256]uint16
	symbols []byte // symbols[c-1] is the representative of class c
}

// New numbers the distinct symbols of pattern in order of first occurrence.
func New(pattern []byte) *Classes {
	c := &Classes{}
	for _, b := range pattern {
		if c.classes[b] == Absent {
			c.symbols = append(c.symbols, b)
			c.classes[b] = uint16(len(c.symbols))
		}
	}
	return c
}

// Get returns the class of b, or Absent.
func (c *Classes) Get(b byte) int {
	return int(c.classes[b])
}

// Len returns the number of present classes (excluding Absent).
func (c *Classes) Len() int {
	return len(c.symbols)
}

// Symbols returns the present symbols in class order: Symbols()[i] has
// class i+1. The returned slice must not be modified.
func (c *Classes) Symbols() []byte {
	return c.symbols
}
