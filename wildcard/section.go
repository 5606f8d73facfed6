package wildcard

// DefaultWildcard is the symbol matching any single text symbol.
const DefaultWildcard = '?'

// Section is a literal run of a wildcard pattern together with the run of
// wildcards that follows it.
type Section struct {
	Literal   []byte
	Wildcards int
}

// Len returns the number of pattern symbols the section covers.
func (s Section) Len() int {
	return len(s.Literal) + s.Wildcards
}

// Sections splits pattern at wildcard runs.
//
// A pattern that opens with wildcards yields a first section with an empty
// literal. The sections cover the pattern exactly:
//
//	Sections([]byte("??ab?c"), '?')
//	// [{"" 2} {"ab" 1} {"c" 0}]
func Sections(pattern []byte, wildcard byte) []Section {
	var sections []Section
	cur := Section{}
	start := 0
	for i, b := range pattern {
		if b == wildcard {
			cur.Wildcards++
			continue
		}
		if cur.Wildcards > 0 {
			sections = append(sections, cur)
			cur = Section{}
			start = i
		}
		cur.Literal = pattern[start : i+1]
	}
	return append(sections, cur)
}
