// Package tui is the interactive activity browser: a filterable list of
// records on the left, a detail pane on the right. Selecting a record
// copies its identifier for use with amend/delete commands.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/rpillai/babylog/internal/activity"
	"github.com/rpillai/babylog/internal/render"
)

type model struct {
	records  []activity.Record // full set, newest first
	visible  []activity.Record // after filter
	filter   string
	cursor   int
	offset   int
	input    textinput.Model
	detail   viewport.Model
	width    int
	height   int
	ready    bool
	quitting bool
	selected *activity.Record
}

func initialModel(records []activity.Record) model {
	ti := textinput.New()
	ti.Placeholder = "Filter..."
	ti.Focus()
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = 256

	return model{
		records: records,
		visible: records,
		input:   ti,
		detail:  viewport.New(0, 0),
	}
}

// Run starts the browser and blocks until it exits. When the user selects
// a record its id is copied to the clipboard.
func Run(records []activity.Record) error {
	p := tea.NewProgram(initialModel(records), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	fm := finalModel.(model)
	if fm.selected != nil {
		id := fm.selected.ID
		if err := clipboard.WriteAll(id); err != nil {
			fmt.Printf("%s\n", id)
			return nil
		}
		fmt.Printf("Copied to clipboard: %s\n", id)
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.detail = viewport.New(m.detailWidth(), m.panelHeight())
		m.refreshDetail()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Enter):
			if len(m.visible) > 0 && m.cursor < len(m.visible) {
				r := m.visible[m.cursor]
				m.selected = &r
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.adjustScroll()
				m.refreshDetail()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
				m.adjustScroll()
				m.refreshDetail()
			}
			return m, nil

		case key.Matches(msg, keys.DetailUp):
			m.detail.LineUp(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.DetailDn):
			m.detail.LineDown(m.panelHeight() / 2)
			return m, nil
		}

		var tiCmd tea.Cmd
		m.input, tiCmd = m.input.Update(msg)

		if f := m.input.Value(); f != m.filter {
			m.filter = f
			m.applyFilter()
			m.refreshDetail()
		}
		return m, tiCmd
	}

	return m, nil
}

// applyFilter narrows the visible records to those whose description,
// category, type, sender, or tags contain the filter text.
func (m *model) applyFilter() {
	m.cursor = 0
	m.offset = 0
	if m.filter == "" {
		m.visible = m.records
		return
	}

	needle := strings.ToLower(m.filter)
	var out []activity.Record
	for _, r := range m.records {
		hay := strings.ToLower(strings.Join([]string{
			r.Description,
			string(r.Category),
			string(r.Type),
			r.Sender,
			strings.Join(r.Tags, " "),
		}, " "))
		if strings.Contains(hay, needle) {
			out = append(out, r)
		}
	}
	m.visible = out
}

func (m *model) refreshDetail() {
	if !m.ready {
		return
	}
	if len(m.visible) == 0 || m.cursor >= len(m.visible) {
		m.detail.SetContent("")
		return
	}
	m.detail.SetContent(render.Record(m.visible[m.cursor], m.detailWidth()-2))
	m.detail.GotoTop()
}

func (m *model) adjustScroll() {
	h := m.panelHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

func (m model) listWidth() int   { return m.width * 55 / 100 }
func (m model) detailWidth() int { return m.width - m.listWidth() - 4 }
func (m model) panelHeight() int { return m.height - 5 }

func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	listW := m.listWidth()
	detailW := m.detailWidth()
	panelH := m.panelHeight()

	inputRow := m.input.View()

	listPanel := stylePanelBorder.
		Width(listW).
		Height(panelH).
		Render(m.renderList(listW, panelH))

	m.detail.Width = detailW
	m.detail.Height = panelH
	detailPanel := styleActiveBorder.
		Width(detailW).
		Height(panelH).
		Render(m.detail.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)
	status := styleStatusBar.Render(fmt.Sprintf(
		"%d/%d activities | up/dn move | enter copy id | C-u/C-d detail | esc quit",
		len(m.visible), len(m.records)))

	return lipgloss.JoinVertical(lipgloss.Left, inputRow, panels, status)
}

func (m model) renderList(width, height int) string {
	if len(m.visible) == 0 {
		return lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No activities")
	}

	var lines []string
	for i := m.offset; i < len(m.visible) && len(lines) < height; i++ {
		lines = append(lines, m.formatItem(m.visible[i], width, i == m.cursor))
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func (m model) formatItem(r activity.Record, width int, selected bool) string {
	marker := "  "
	if selected {
		marker = "> "
	}

	cat := categoryStyle(r.Category).Render(fmt.Sprintf("%-11s", r.Category))
	ts := r.DisplayTime()

	used := lipgloss.Width(marker) + lipgloss.Width(ts) + 11 + 3
	desc := runewidth.Truncate(strings.ReplaceAll(r.Description, "\n", " "), max(width-used, 0), "...")

	line := fmt.Sprintf("%s%s  %s %s", marker, ts, cat, desc)
	if selected {
		return styleListSelected.Render(line)
	}
	return styleListNormal.Render(line)
}

func categoryStyle(cat activity.Category) lipgloss.Style {
	switch cat {
	case activity.CategoryFeeding:
		return styleCatFeeding
	case activity.CategorySleep:
		return styleCatSleep
	case activity.CategoryHealth, activity.CategoryMedicine, activity.CategoryVaccine:
		return styleCatHealth
	default:
		return styleCatOther
	}
}
