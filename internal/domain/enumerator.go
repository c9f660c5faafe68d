// Package domain contains the build matrix enumeration and run logic.
package domain

import (
	"iter"

	berrors "github.com/mouse-blink/buildmatrix/internal/errors"
	m "github.com/mouse-blink/buildmatrix/internal/model"
)

// Enumerator walks the Cartesian product of an OptionSet as a mixed-radix
// counter. Each option is a digit whose radix is its cardinality; the last
// option is the least significant digit.
//
// Options without values keep the sentinel index 0. They never overflow and
// never carry, and they contribute nothing to a combination.
type Enumerator struct {
	options  m.OptionSet
	states   []m.OptionState
	position int
}

// NewEnumerator initializes the cursors of set. An empty set is a
// configuration error: there is nothing to build.
func NewEnumerator(set m.OptionSet) (*Enumerator, error) {
	if len(set) == 0 {
		return nil, berrors.Config("no build options discovered")
	}

	e := &Enumerator{
		options: set,
		states:  make([]m.OptionState, len(set)),
	}
	e.Reset()

	return e, nil
}

// Reset moves every cursor back to the first combination.
func (e *Enumerator) Reset() {
	for i, opt := range e.options {
		c := opt.Cardinality()
		e.states[i] = m.OptionState{Cardinality: c}

		if c > 0 {
			e.states[i].Index = 1
		}
	}

	e.position = 0
}

// Options returns the option set being enumerated.
func (e *Enumerator) Options() m.OptionSet {
	return e.options
}

// States returns a copy of the current cursors.
func (e *Enumerator) States() []m.OptionState {
	out := make([]m.OptionState, len(e.states))
	copy(out, e.states)

	return out
}

// Count returns the total number of combinations.
func (e *Enumerator) Count() int {
	return e.options.Count()
}

// Current returns the combination the cursors point at.
func (e *Enumerator) Current() m.Combination {
	assignments := make([]m.Assignment, 0, len(e.options))

	for i, opt := range e.options {
		st := e.states[i]
		if st.Cardinality == 0 {
			continue
		}

		assignments = append(assignments, m.Assignment{
			Option: opt.Name,
			Value:  opt.Values[st.Index-1],
		})
	}

	return m.Combination{Index: e.position, Assignments: assignments}
}

// Advance moves to the next combination and reports whether one exists.
// Once the product is exhausted it returns false and leaves the cursors
// untouched, so further calls keep returning false.
func (e *Enumerator) Advance() bool {
	// The carry stops at the least significant digit that still has room.
	pivot := -1

	for i := len(e.states) - 1; i >= 0; i-- {
		st := e.states[i]
		if st.Cardinality == 0 {
			continue
		}

		if st.Index < st.Cardinality {
			pivot = i
			break
		}
	}

	if pivot < 0 {
		return false
	}

	e.states[pivot].Index++

	for i := pivot + 1; i < len(e.states); i++ {
		if e.states[i].Cardinality > 0 {
			e.states[i].Index = 1
		}
	}

	e.position++

	return true
}

// All streams the combinations from the current one to the last.
func (e *Enumerator) All() iter.Seq[m.Combination] {
	return func(yield func(m.Combination) bool) {
		for {
			if !yield(e.Current()) {
				return
			}

			if !e.Advance() {
				return
			}
		}
	}
}
