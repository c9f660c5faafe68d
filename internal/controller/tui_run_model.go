package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// runDelegate renders one build result per line.
type runDelegate struct {
	offset int
}

func (d runDelegate) Height() int  { return 1 }
func (d runDelegate) Spacing() int { return 0 }
func (d runDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d runDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	run, ok := item.(runItem)
	if !ok {
		return
	}

	// index (6) + status (8) + exit (6) + spacing (6)
	width := m.Width() - 26

	var indexStyle, statusStyle, exitStyle, renderingStyle lipgloss.Style

	rendering := displayRendering(run.rendering)

	if index == m.Index() {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		indexStyle = selected.Width(6).Align(lipgloss.Right)
		statusStyle = selected.Width(8)
		exitStyle = selected.Width(6).Align(lipgloss.Right)
		renderingStyle = selected
		rendering = animateScroll(rendering, width, d.offset)
	} else {
		indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)
		statusStyle = lipgloss.NewStyle().
			Foreground(statusColor(run.status)).
			Bold(true).
			Width(8)
		exitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Width(6).
			Align(lipgloss.Right)
		renderingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		rendering = truncateToWidth(rendering, width)
	}

	line := fmt.Sprintf("%s  %s  %s  %s",
		indexStyle.Render(fmt.Sprintf("%d", run.index+1)),
		statusStyle.Render(run.status),
		exitStyle.Render(fmt.Sprintf("%d", run.exitCode)),
		renderingStyle.Render(rendering),
	)
	_, _ = fmt.Fprint(w, line)
}

// runModel handles the TUI display while combinations are being built.
type runModel struct {
	width            int
	height           int
	progressBar      progress.Model
	total            int
	completed        int
	passed           int
	failed           int
	exitCode         int
	progressPercent  float64
	current          string
	currentIndex     int
	currentStarted   time.Time
	passthrough      []string
	rendered         bool
	finished         bool
	resultsList      list.Model
	delegate         runDelegate
	animOffset       int
	lastSelected     int
	showOutput       bool
	selectedOutput   string
	selectedOutputOf string
}

func newRunModel() runModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	delegate := runDelegate{}
	resultsList := list.New([]list.Item{}, delegate, 80, 20)
	resultsList.SetShowPagination(false)
	resultsList.SetShowFilter(true)
	resultsList.SetShowHelp(false)
	resultsList.SetShowTitle(false)
	resultsList.SetShowStatusBar(false)
	resultsList.FilterInput.Placeholder = "Filter results…"

	return runModel{
		progressBar:  prog,
		resultsList:  resultsList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m runModel) Init() tea.Cmd {
	return tick(time.Millisecond * 100)
}

func (m runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)

	case tea.MouseMsg:
		m, cmd = m.handleMouseMsg(msg)

	case tickMsg:
		return m.handleTickMsg(msg)

	case optionsMsg:
		m.total = msg.total
		m.passthrough = msg.passthrough
		m.rendered = true

	case startRunMsg:
		m = m.handleStartRun(msg)

	case completedRunMsg:
		m = m.handleCompletedRun(msg)

	case summaryMsg:
		m.passed = msg.passed
		m.failed = msg.failed
		m.exitCode = msg.exitCode
		m.current = ""
		m.finished = true
		m.rendered = true
	}

	return m, cmd
}

func (m runModel) View() string {
	if !m.rendered {
		return "Querying build options…\n"
	}

	if m.finished {
		return m.viewResults()
	}

	return m.viewProgress()
}

func (m runModel) viewProgress() string {
	accentColor := lipgloss.Color("6")

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	title := titleStyle.Render("Build Matrix")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Progress: %s / %s  •  Passed: %s  •  Failed: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.completed)),
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
		lipgloss.NewStyle().Foreground(statusColor("PASSED")).Render(fmt.Sprintf("%d", m.passed)),
		lipgloss.NewStyle().Foreground(statusColor("FAILED")).Render(fmt.Sprintf("%d", m.failed)),
	))

	progressView := lipgloss.NewStyle().
		Padding(0, 2).
		Render(m.progressBar.ViewAs(m.progressPercent))

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Render("Press q to quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		progressView,
		m.renderCurrentBox(accentColor),
		footer,
	)
}

func (m runModel) renderCurrentBox(accentColor lipgloss.Color) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1).
		Margin(1, 1, 1, 0).
		Width(m.width - 4)

	if m.current == "" {
		return boxStyle.Render("idle")
	}

	// border (2) + padding (2) + margin (2)
	available := m.width - 8
	label := fmt.Sprintf("#%d ", m.currentIndex+1)

	elapsed := ""
	if !m.currentStarted.IsZero() {
		elapsed = fmt.Sprintf(" %s", time.Since(m.currentStarted).Round(time.Second))
	}

	remaining := available - len(label) - len(elapsed)
	if remaining < 10 {
		remaining = 10
	}

	return boxStyle.Render(fmt.Sprintf("%s%s%s",
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render(label),
		lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Render(truncateToWidth(m.current, remaining)),
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render(elapsed),
	))
}

func (m runModel) viewResults() string {
	accentColor := lipgloss.Color("6")

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	title := titleStyle.Render("Configurations Build Summary")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Total: %s  •  Passed: %s  •  Failed: %s  •  Exit code: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.completed)),
		lipgloss.NewStyle().Foreground(statusColor("PASSED")).Render(fmt.Sprintf("%d", m.passed)),
		lipgloss.NewStyle().Foreground(statusColor("FAILED")).Render(fmt.Sprintf("%d", m.failed)),
		accentStyle.Render(fmt.Sprintf("%d", m.exitCode)),
	))

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width).
		Render("↑/k up • ↓/j down • g/G top/bottom • / filter • enter/space/click output • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		m.renderResultsBox(accentColor),
		footer,
	)
}

func (m runModel) renderResultsBox(accentColor lipgloss.Color) string {
	listWidth := m.width - 4

	listHeight := m.height - 9 - m.outputBoxHeight()
	if listHeight < 5 {
		listHeight = 5
	}

	m.resultsList.SetHeight(listHeight)
	m.resultsList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%6s  %-8s  %6s  %s", "#", "Result", "Exit", "Configuration"))

	resultsBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.resultsList.View(),
		))

	outputBox := m.renderOutputBox(accentColor, listWidth)
	if outputBox == "" {
		return resultsBox
	}

	return lipgloss.JoinVertical(lipgloss.Left, resultsBox, outputBox)
}

func (m runModel) handleStartRun(msg startRunMsg) runModel {
	m.current = displayRendering(msg.rendering)
	m.currentIndex = msg.index
	m.currentStarted = time.Now()

	if msg.total > 0 {
		m.total = msg.total
	}

	m.rendered = true

	return m
}

func (m runModel) handleCompletedRun(msg completedRunMsg) runModel {
	m.completed++

	switch msg.status {
	case "PASSED":
		m.passed++
	case "FAILED":
		m.failed++
		m.exitCode = msg.exitCode
	}

	items := make([]list.Item, 0, len(m.resultsList.Items())+1)
	items = append(items, m.resultsList.Items()...)
	items = append(items, runItem(msg))
	m.resultsList.SetItems(items)

	if m.total > 0 {
		m.progressPercent = float64(m.completed) / float64(m.total)
	}

	return m
}

func (m runModel) handleKeyMsg(msg tea.KeyMsg) (runModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	default:
		if !m.finished {
			return m, nil
		}

		if m.resultsList.FilterState() != list.Filtering && (msg.String() == "enter" || msg.String() == " ") {
			m.toggleSelectedOutput()
			return m, nil
		}

		m.resultsList, cmd = m.resultsList.Update(msg)
		m.trackSelection()

		return m, cmd
	}
}

func (m runModel) handleMouseMsg(msg tea.MouseMsg) (runModel, tea.Cmd) {
	var cmd tea.Cmd

	if !m.finished {
		return m, nil
	}

	m.resultsList, cmd = m.resultsList.Update(msg)
	m.trackSelection()

	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease && m.resultsList.FilterState() != list.Filtering {
		m.toggleSelectedOutput()
	}

	return m, cmd
}

func (m *runModel) trackSelection() {
	if m.resultsList.Index() == m.lastSelected {
		return
	}

	m.lastSelected = m.resultsList.Index()
	m.animOffset = 0
	m.delegate.offset = 0
	m.resultsList.SetDelegate(m.delegate)
	m.showOutput = false
	m.selectedOutput = ""
	m.selectedOutputOf = ""
}

func (m *runModel) toggleSelectedOutput() {
	run, ok := m.resultsList.SelectedItem().(runItem)
	if !ok {
		return
	}

	output := strings.TrimSpace(run.output)
	if output == "" || (m.showOutput && m.selectedOutput == output) {
		m.showOutput = false
		m.selectedOutput = ""
		m.selectedOutputOf = ""

		return
	}

	m.showOutput = true
	m.selectedOutput = output
	m.selectedOutputOf = displayRendering(run.rendering)
}

func (m runModel) outputMaxLines() int {
	return min(max(m.height/3, 6), 20)
}

func (m runModel) outputBoxHeight() int {
	if !m.showOutput || m.selectedOutput == "" {
		return 0
	}

	lines := strings.Count(m.selectedOutput, "\n") + 1

	return min(lines, m.outputMaxLines()) + 3
}

// renderOutputBox shows the tail of the selected build output; the last lines carry the error.
func (m runModel) renderOutputBox(accentColor lipgloss.Color, width int) string {
	if !m.showOutput || m.selectedOutput == "" {
		return ""
	}

	lines := strings.Split(m.selectedOutput, "\n")
	maxLines := m.outputMaxLines()
	truncated := false

	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines+1:]
		truncated = true
	}

	contentWidth := max(width-4, 10)

	bodyLines := make([]string, 0, len(lines)+1)
	if truncated {
		bodyLines = append(bodyLines, lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(ellipsis))
	}

	lineStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	for _, line := range lines {
		bodyLines = append(bodyLines, lineStyle.Render(truncateToWidth(line, contentWidth)))
	}

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Render(truncateToWidth(fmt.Sprintf("Output • %s", m.selectedOutputOf), contentWidth))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, lipgloss.JoinVertical(lipgloss.Left, bodyLines...)))
}

func (m runModel) handleWindowSize(msg tea.WindowSizeMsg) runModel {
	m.width = msg.Width
	m.height = msg.Height

	m.progressBar.Width = max(m.width-8, 20)

	return m
}

func (m runModel) handleTickMsg(_ tickMsg) (runModel, tea.Cmd) {
	if m.finished && m.resultsList.FilterState() != list.Filtering {
		m.animOffset++
		m.delegate.offset = m.animOffset
		m.resultsList.SetDelegate(m.delegate)
	}

	return m, tick(time.Millisecond * 150)
}
