// Package model defines the data structures for build matrix testing.
package model

// Path represents a file system path.
type Path string

// Option is a named build tunable with an ordered list of admissible values.
// An Option is never mutated after discovery.
type Option struct {
	Name   string
	Values []string
}

// Cardinality returns the number of admissible values.
func (o Option) Cardinality() int {
	return len(o.Values)
}

// OptionSet is the ordered list of discovered options. The first option is
// the most significant digit of the enumeration, the last one varies fastest.
type OptionSet []Option

// Count returns the number of combinations a full enumeration produces.
// Options without values count as a single fixed digit.
func (s OptionSet) Count() int {
	if len(s) == 0 {
		return 0
	}

	total := 1

	for _, opt := range s {
		if c := opt.Cardinality(); c > 0 {
			total *= c
		}
	}

	return total
}

// OptionState is the mutable cursor of one option during enumeration.
type OptionState struct {
	// Cardinality is fixed when the cursor is created.
	Cardinality int
	// Index is the 1-based position into the value list, or 0 when the
	// option has no values.
	Index int
}
