package model

import (
	"strings"
)

// Assignment is a single option=value pair of a combination.
type Assignment struct {
	Option string
	Value  string
}

// Combination is one point of the enumeration: one value for every option
// that has values. It is a snapshot and must not be modified.
type Combination struct {
	// Index is the zero-based position in enumeration order.
	Index       int
	Assignments []Assignment
}

// KeyRule maps option identifiers onto the variable names the build tool
// expects, e.g. OPT_CLOCK -> SEL_CLOCK.
type KeyRule struct {
	From string
	To   string
}

// Key applies the rule to a single option identifier. Only the first
// occurrence of From is replaced.
func (r KeyRule) Key(option string) string {
	if r.From == "" {
		return option
	}

	return strings.Replace(option, r.From, r.To, 1)
}

// Args returns the build tool arguments for the combination in KEY=value form.
func (c Combination) Args(rule KeyRule) []string {
	args := make([]string, 0, len(c.Assignments))
	for _, a := range c.Assignments {
		args = append(args, rule.Key(a.Option)+"="+a.Value)
	}

	return args
}

// Render returns the display form of the combination: KEY="value" pairs
// separated by spaces. An empty combination renders as an empty string.
func (c Combination) Render(rule KeyRule) string {
	parts := make([]string, 0, len(c.Assignments))
	for _, a := range c.Assignments {
		parts = append(parts, rule.Key(a.Option)+`="`+a.Value+`"`)
	}

	return strings.Join(parts, " ")
}
