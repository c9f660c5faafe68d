package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyRule_Key(t *testing.T) {
	rule := KeyRule{From: "OPT_", To: "SEL_"}

	assert.Equal(t, "SEL_CLOCK", rule.Key("OPT_CLOCK"))
	assert.Equal(t, "CLOCK", rule.Key("CLOCK"))
	assert.Equal(t, "SEL_A_OPT_B", rule.Key("OPT_A_OPT_B"))
	assert.Equal(t, "OPT_A", KeyRule{}.Key("OPT_A"))
}

func TestCombination_ArgsAndRender(t *testing.T) {
	rule := KeyRule{From: "OPT_", To: "SEL_"}
	c := Combination{Assignments: []Assignment{
		{Option: "OPT_A", Value: "x"},
		{Option: "OPT_B", Value: "1"},
	}}

	assert.Equal(t, []string{"SEL_A=x", "SEL_B=1"}, c.Args(rule))
	assert.Equal(t, `SEL_A="x" SEL_B="1"`, c.Render(rule))
}

func TestCombination_Empty(t *testing.T) {
	c := Combination{}

	assert.Empty(t, c.Args(KeyRule{}))
	assert.Equal(t, "", c.Render(KeyRule{}))
}

func TestOptionSet_Count(t *testing.T) {
	tests := []struct {
		name string
		set  OptionSet
		want int
	}{
		{name: "empty set", set: nil, want: 0},
		{name: "single empty option", set: OptionSet{{Name: "OPT_A"}}, want: 1},
		{name: "two by one", set: OptionSet{{Name: "OPT_A", Values: []string{"x", "y"}}, {Name: "OPT_B", Values: []string{"1"}}}, want: 2},
		{name: "empty option does not multiply", set: OptionSet{
			{Name: "OPT_A", Values: []string{"x", "y", "z"}},
			{Name: "OPT_B"},
			{Name: "OPT_C", Values: []string{"1", "2"}},
		}, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.set.Count())
		})
	}
}
