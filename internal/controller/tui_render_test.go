package controller

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestTruncateToWidth(t *testing.T) {
	assert.Equal(t, "", truncateToWidth("hello", 0))
	assert.Equal(t, "…", truncateToWidth("hello", 1))
	assert.Equal(t, "hello", truncateToWidth("hello", 10))
	assert.Equal(t, "hel…", truncateToWidth("hello world", 4))
}

func TestAnimateScroll(t *testing.T) {
	assert.Equal(t, "", animateScroll("abcdef", 0, 0))
	assert.Equal(t, "abc", animateScroll("abc", 5, 20))
	assert.Equal(t, "ab…", animateScroll("abcdef", 3, 0))

	got := animateScroll("abcdef", 3, 10)
	assert.NotEqual(t, "ab…", got)
	assert.Len(t, []rune(got), 3)
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("2"), statusColor("PASSED"))
	assert.Equal(t, lipgloss.Color("1"), statusColor("FAILED"))
	assert.Equal(t, lipgloss.Color("8"), statusColor("PENDING"))
}
