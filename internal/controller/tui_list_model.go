package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const nameColumnWidth = 24

type optionDelegate struct {
	offset int
}

func (d optionDelegate) Height() int  { return 1 }
func (d optionDelegate) Spacing() int { return 0 }
func (d optionDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d optionDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	opt, ok := item.(optionItem)
	if !ok {
		return
	}

	// count (6) + name + spacing (4)
	width := m.Width() - 6 - nameColumnWidth - 4
	values := strings.Join(opt.values, " ")

	if values == "" {
		values = "-"
	}

	var countStyle, nameStyle, valuesStyle lipgloss.Style

	if index == m.Index() {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		countStyle = selected.Width(6).Align(lipgloss.Right)
		nameStyle = selected.Width(nameColumnWidth)
		valuesStyle = selected
		values = animateScroll(values, width, d.offset)
	} else {
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)
		nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Width(nameColumnWidth)
		valuesStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		values = truncateToWidth(values, width)
	}

	line := fmt.Sprintf("%s  %s  %s",
		countStyle.Render(fmt.Sprintf("%d", len(opt.values))),
		nameStyle.Render(truncateToWidth(opt.name, nameColumnWidth)),
		valuesStyle.Render(values),
	)
	_, _ = fmt.Fprint(w, line)
}

// optionListModel shows the discovered options without building anything.
type optionListModel struct {
	width        int
	height       int
	optionList   list.Model
	delegate     optionDelegate
	total        int
	passthrough  []string
	rendered     bool
	animOffset   int
	lastSelected int
}

func newOptionListModel() optionListModel {
	delegate := optionDelegate{}
	optionList := list.New([]list.Item{}, delegate, 80, 20)
	optionList.SetShowPagination(false)
	optionList.SetShowFilter(true)
	optionList.SetShowHelp(false)
	optionList.SetShowTitle(false)
	optionList.SetShowStatusBar(false)
	optionList.FilterInput.Placeholder = "Filter options…"

	return optionListModel{
		optionList:   optionList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m optionListModel) Init() tea.Cmd {
	return tick(time.Second / 2)
}

func (m optionListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.optionList.SetWidth(m.width)

	case tickMsg:
		if m.optionList.FilterState() != list.Filtering && m.rendered {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.optionList.SetDelegate(m.delegate)

			return m, tick(time.Millisecond * 150)
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			m.optionList, cmd = m.optionList.Update(msg)

			if m.optionList.Index() != m.lastSelected {
				m.lastSelected = m.optionList.Index()
				m.animOffset = 0
				m.delegate.offset = 0
				m.optionList.SetDelegate(m.delegate)
			}

			return m, cmd
		}

	case optionsMsg:
		m = m.handleOptionsMsg(msg)
	}

	return m, cmd
}

func (m optionListModel) handleOptionsMsg(msg optionsMsg) optionListModel {
	m.total = msg.total
	m.passthrough = msg.passthrough

	items := make([]list.Item, 0, len(msg.items))
	for _, item := range msg.items {
		items = append(items, item)
	}

	m.optionList.SetItems(items)
	m.rendered = true

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m optionListModel) View() string {
	if !m.rendered {
		return "Querying build options…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("Build Matrix Options")

	summaryText := fmt.Sprintf(
		"Options: %s   Combinations: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(m.optionList.Items()))),
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
	)
	if len(m.passthrough) > 0 {
		summaryText += "   Make args: " + accentStyle.Render(strings.Join(m.passthrough, " "))
	}

	summary := summaryStyle.Render(summaryText)

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		m.renderTable(),
		footer,
	)
}

func (m optionListModel) renderTable() string {
	// title (2) + summary (2) + footer (1) + border (2) + header (2)
	listHeight := m.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	// margin (2) + border (2) + padding (2)
	listWidth := m.width - 6

	m.optionList.SetHeight(listHeight)
	m.optionList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%6s  %-*s  %s", "Count", nameColumnWidth, "Option", "Values"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.optionList.View(),
		),
	)
}
