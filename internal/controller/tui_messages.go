package controller

import (
	"strings"
	"time"
)

// Message types.
type optionsMsg struct {
	items       []optionItem
	passthrough []string
	total       int
}

type startRunMsg struct {
	index     int
	total     int
	rendering string
}

type completedRunMsg struct {
	index     int
	rendering string
	status    string
	exitCode  int
	duration  time.Duration
	output    string
}

type summaryMsg struct {
	passed   int
	failed   int
	exitCode int
}

type tickMsg time.Time

// List item types.
type optionItem struct {
	name   string
	values []string
}

func (o optionItem) FilterValue() string {
	return o.name + " " + strings.Join(o.values, " ")
}

type runItem struct {
	index     int
	rendering string
	status    string
	exitCode  int
	duration  time.Duration
	output    string
}

func (r runItem) FilterValue() string {
	return r.status + " " + r.rendering
}
