package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/CompassHB/Google-Drive-Inventory-Manager/app"
	"github.com/CompassHB/Google-Drive-Inventory-Manager/models"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	inputStyle = lipgloss.NewStyle().
			Margin(1, 0, 1, 0)
	tableStyle = lipgloss.NewStyle().
			Margin(0, 0, 1, 0)
	markedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("172"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

const (
	inventoryMode   = "inventory"
	suggestionsMode = "suggestions"
)

type model struct {
	textInput       textinput.Model
	table           table.Model
	suggestionTable table.Model
	records         []models.Record
	filtered        []models.Record
	suggestions     []models.SuggestionGroup
	marked          map[string]bool
	mode            string
	err             error
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	var enter = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("⏎", "filter/mark"),
	)
	var toggleFocus = key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "toggle focus"),
	)
	var suggestionsKey = key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "toggle suggestions"),
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, suggestionsKey):
			if m.mode == suggestionsMode {
				m.mode = inventoryMode
				m.suggestionTable.Blur()
				m.textInput.Focus()
			} else {
				m.mode = suggestionsMode
				m.textInput.Blur()
				m.table.Blur()
				m.suggestions = app.Suggest(m.filtered)
				m.updateSuggestionTable()
				m.suggestionTable.Focus()
			}
			return m, nil

		case key.Matches(msg, enter):
			if m.mode == suggestionsMode {
				// Mark the whole selected group.
				idx := m.suggestionTable.Cursor()
				if idx < len(m.suggestions) {
					for _, name := range m.suggestions[idx].Items {
						m.marked[name] = true
					}
				}
				return m, nil
			}
			if m.textInput.Focused() {
				m.applyFilter(m.textInput.Value())
				m.textInput.Blur()
				m.table.Focus()
				return m, nil
			}
			if m.table.Focused() && len(m.filtered) > 0 {
				idx := m.table.Cursor()
				if idx < len(m.filtered) {
					name := m.filtered[idx].Name
					m.marked[name] = !m.marked[name]
					m.updateTable()
				}
				return m, nil
			}

		case key.Matches(msg, toggleFocus):
			if m.mode != inventoryMode {
				return m, nil
			}
			if m.textInput.Focused() {
				m.textInput.Blur()
				m.table.Focus()
			} else {
				m.table.Blur()
				m.textInput.Focus()
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("esc"))):
			if m.mode == suggestionsMode {
				m.mode = inventoryMode
				m.suggestionTable.Blur()
				m.textInput.Focus()
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c"))):
			return m, tea.Quit
		}

		if m.mode == suggestionsMode {
			m.suggestionTable, cmd = m.suggestionTable.Update(msg)
			return m, cmd
		}
		if m.textInput.Focused() {
			m.textInput, cmd = m.textInput.Update(msg)
			return m, cmd
		}
		if m.table.Focused() {
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		var tiCmd, tCmd tea.Cmd
		m.textInput, tiCmd = m.textInput.Update(msg)
		m.table, tCmd = m.table.Update(msg)
		return m, tea.Batch(tiCmd, tCmd)

	case tea.WindowSizeMsg:
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(msg.Height - 8)
		m.suggestionTable.SetWidth(msg.Width)
		m.suggestionTable.SetHeight(msg.Height - 6)
		return m, nil
	}

	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	if m.mode == suggestionsMode {
		b.WriteString("Archive Suggestions\n")
		b.WriteString(tableStyle.Render(m.suggestionTable.View()))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Enter marks the whole group. Ctrl+S or Esc returns to the inventory."))
		return baseStyle.Render(b.String())
	}

	inputView := inputStyle.Width(m.table.Width() - 4).Render(m.textInput.View())
	b.WriteString(inputView)
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(fmt.Sprintf("Error: %v\n", m.err))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}

	status := fmt.Sprintf("%d of %d items", len(m.filtered), len(m.records))
	if count := len(m.markedNames()); count > 0 {
		status += markedStyle.Render(fmt.Sprintf("  •  %d marked for archiving", count))
	}
	b.WriteString(status)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Enter filters (in input) or toggles a mark (in table), Tab toggles focus, Ctrl+S shows suggestions, Esc quits."))

	return baseStyle.Render(b.String())
}

func (m *model) applyFilter(search string) {
	filter := &app.Filter{Search: search}
	m.filtered = filter.Apply(m.records)
	m.updateTable()
}

func (m *model) updateTable() {
	rows := make([]table.Row, 0, len(m.filtered))
	for _, r := range m.filtered {
		updated := "unknown"
		if !r.LastUpdated.IsZero() {
			updated = humanize.Time(r.LastUpdated)
		}
		name := r.Name
		if m.marked[name] {
			name = "* " + name
		}
		rows = append(rows, table.Row{name, string(r.Kind), string(r.AgeBucket), updated, r.FolderPath})
	}
	m.table.SetRows(rows)
}

func (m *model) updateSuggestionTable() {
	rows := make([]table.Row, 0, len(m.suggestions))
	for _, g := range m.suggestions {
		sample := strings.Join(g.Items, ", ")
		rows = append(rows, table.Row{g.Category, strconv.Itoa(g.Count), string(g.Confidence), sample})
	}
	m.suggestionTable.SetRows(rows)
}

func (m *model) markedNames() []string {
	var names []string
	for name, on := range m.marked {
		if on {
			names = append(names, name)
		}
	}
	return names
}
