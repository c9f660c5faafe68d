package domain

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	berrors "github.com/mouse-blink/buildmatrix/internal/errors"
	m "github.com/mouse-blink/buildmatrix/internal/model"
)

func collect(t *testing.T, set m.OptionSet) [][]m.Assignment {
	t.Helper()

	e, err := NewEnumerator(set)
	require.NoError(t, err)

	var out [][]m.Assignment
	for c := range e.All() {
		out = append(out, c.Assignments)
	}

	return out
}

func pairs(kv ...string) []m.Assignment {
	out := make([]m.Assignment, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		out = append(out, m.Assignment{Option: kv[i], Value: kv[i+1]})
	}

	return out
}

func TestEnumerator_TwoByOne(t *testing.T) {
	got := collect(t, m.OptionSet{
		{Name: "OPT_A", Values: []string{"x", "y"}},
		{Name: "OPT_B", Values: []string{"1"}},
	})

	assert.Equal(t, [][]m.Assignment{
		pairs("OPT_A", "x", "OPT_B", "1"),
		pairs("OPT_A", "y", "OPT_B", "1"),
	}, got)
}

func TestEnumerator_LastOptionVariesFastest(t *testing.T) {
	got := collect(t, m.OptionSet{
		{Name: "OPT_A", Values: []string{"x", "y"}},
		{Name: "OPT_B", Values: []string{"1", "2"}},
	})

	assert.Equal(t, [][]m.Assignment{
		pairs("OPT_A", "x", "OPT_B", "1"),
		pairs("OPT_A", "x", "OPT_B", "2"),
		pairs("OPT_A", "y", "OPT_B", "1"),
		pairs("OPT_A", "y", "OPT_B", "2"),
	}, got)
}

func TestEnumerator_SingleEmptyOption(t *testing.T) {
	e, err := NewEnumerator(m.OptionSet{{Name: "OPT_A"}})
	require.NoError(t, err)

	assert.Empty(t, e.Current().Assignments)
	assert.Equal(t, []m.OptionState{{Cardinality: 0, Index: 0}}, e.States())
	assert.False(t, e.Advance())
	assert.Equal(t, 1, e.Count())
}

func TestEnumerator_EmptySetIsConfigurationError(t *testing.T) {
	_, err := NewEnumerator(nil)
	require.Error(t, err)
	assert.True(t, berrors.IsConfig(err))
}

func TestEnumerator_EmptyOptionInTheMiddle(t *testing.T) {
	got := collect(t, m.OptionSet{
		{Name: "OPT_A", Values: []string{"x", "y"}},
		{Name: "OPT_E"},
		{Name: "OPT_B", Values: []string{"1", "2"}},
	})

	assert.Equal(t, [][]m.Assignment{
		pairs("OPT_A", "x", "OPT_B", "1"),
		pairs("OPT_A", "x", "OPT_B", "2"),
		pairs("OPT_A", "y", "OPT_B", "1"),
		pairs("OPT_A", "y", "OPT_B", "2"),
	}, got)
}

func TestEnumerator_EmptyOptionLast(t *testing.T) {
	got := collect(t, m.OptionSet{
		{Name: "OPT_A", Values: []string{"x", "y", "z"}},
		{Name: "OPT_E"},
	})

	assert.Equal(t, [][]m.Assignment{
		pairs("OPT_A", "x"),
		pairs("OPT_A", "y"),
		pairs("OPT_A", "z"),
	}, got)
}

func TestEnumerator_AdvanceIsIdempotentWhenExhausted(t *testing.T) {
	e, err := NewEnumerator(m.OptionSet{
		{Name: "OPT_A", Values: []string{"x", "y"}},
		{Name: "OPT_B", Values: []string{"1", "2", "3"}},
	})
	require.NoError(t, err)

	advances := 0
	for e.Advance() {
		advances++
	}

	require.Equal(t, 5, advances)

	last := e.Current()
	states := e.States()

	for range 3 {
		assert.False(t, e.Advance())
	}

	assert.Equal(t, last, e.Current())
	assert.Equal(t, states, e.States())
	assert.Equal(t, pairs("OPT_A", "y", "OPT_B", "3"), last.Assignments)
	assert.Equal(t, 5, last.Index)
}

func TestEnumerator_CountMatchesProduct(t *testing.T) {
	shapes := [][]int{
		{1},
		{3},
		{0},
		{0, 0},
		{2, 3, 4},
		{4, 0, 1, 2},
		{1, 1, 1},
		{0, 5, 0},
		{3, 3, 3, 3},
	}

	for _, shape := range shapes {
		t.Run(fmt.Sprint(shape), func(t *testing.T) {
			set := make(m.OptionSet, len(shape))
			want := 1

			for i, c := range shape {
				set[i] = m.Option{Name: fmt.Sprintf("OPT_%d", i)}
				for v := range c {
					set[i].Values = append(set[i].Values, fmt.Sprintf("v%d", v))
				}

				want *= max(c, 1)
			}

			e, err := NewEnumerator(set)
			require.NoError(t, err)

			seen := make(map[string]bool)
			count := 0

			for c := range e.All() {
				key := c.Render(m.KeyRule{})
				assert.False(t, seen[key], "duplicate combination %q", key)
				seen[key] = true

				assert.Equal(t, count, c.Index)
				assert.Len(t, c.Assignments, nonEmpty(shape))

				for _, st := range e.States() {
					if st.Cardinality > 0 {
						assert.GreaterOrEqual(t, st.Index, 1)
						assert.LessOrEqual(t, st.Index, st.Cardinality)
					} else {
						assert.Equal(t, 0, st.Index)
					}
				}

				count++
			}

			assert.Equal(t, want, count)
			assert.Equal(t, want, e.Count())
			assert.False(t, e.Advance())
		})
	}
}

func nonEmpty(shape []int) int {
	n := 0

	for _, c := range shape {
		if c > 0 {
			n++
		}
	}

	return n
}

func TestEnumerator_OrderIsReproducible(t *testing.T) {
	set := m.OptionSet{
		{Name: "OPT_CLOCK", Values: []string{"8", "16", "32"}},
		{Name: "OPT_LIN", Values: []string{"on", "off"}},
		{Name: "OPT_DEBUG"},
		{Name: "OPT_PWM", Values: []string{"a", "b"}},
	}

	first := collect(t, set)
	second := collect(t, set)

	assert.Equal(t, first, second)
	assert.Len(t, first, 12)
}

func TestEnumerator_OrderIsLexicographic(t *testing.T) {
	set := m.OptionSet{
		{Name: "A", Values: []string{"0", "1", "2"}},
		{Name: "B", Values: []string{"0", "1"}},
		{Name: "C", Values: []string{"0", "1", "2", "3"}},
	}

	var got []string
	for _, c := range collect(t, set) {
		var digits strings.Builder
		for _, a := range c {
			digits.WriteString(a.Value)
		}

		got = append(got, digits.String())
	}

	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i])
	}

	assert.Equal(t, "000", got[0])
	assert.Equal(t, "213", got[len(got)-1])
}

func TestEnumerator_Reset(t *testing.T) {
	e, err := NewEnumerator(m.OptionSet{{Name: "OPT_A", Values: []string{"x", "y"}}})
	require.NoError(t, err)

	require.True(t, e.Advance())
	require.False(t, e.Advance())

	e.Reset()

	assert.Equal(t, 0, e.Current().Index)
	assert.Equal(t, pairs("OPT_A", "x"), e.Current().Assignments)
}

func TestEnumerator_AllStopsWhenConsumerStops(t *testing.T) {
	e, err := NewEnumerator(m.OptionSet{{Name: "OPT_A", Values: []string{"x", "y", "z"}}})
	require.NoError(t, err)

	for c := range e.All() {
		if c.Index == 1 {
			break
		}
	}

	assert.Equal(t, 1, e.Current().Index)
}
