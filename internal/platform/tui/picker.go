package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pico/internal/registry"
)

// PickerKeyMap defines key bindings for the cartridge picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultPickerKeyMap returns the default picker bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " ", "z"),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PickerModel is the Bubble Tea model for the cartridge picker.
type PickerModel struct {
	carts    []registry.Info
	table    table.Model
	help     help.Model
	keys     PickerKeyMap
	width    int
	height   int
	quitting bool
	selected string
}

// NewPickerModel lists every registered cartridge.
func NewPickerModel(width, height int) PickerModel {
	m := PickerModel{
		carts:  registry.List(),
		help:   help.New(),
		keys:   DefaultPickerKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the cartridge table.
func (m *PickerModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Cart", Width: 12},
		{Title: "Title", Width: 24},
	}

	rows := make([]table.Row, len(m.carts))
	for i, c := range m.carts {
		rows[i] = table.Row{c.ID, c.Title}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(min(len(rows)+1, m.height-8), 2)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#fff1e8")).
		Background(lipgloss.Color("#ff004d")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the picker.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.carts) > 0 {
				m.selected = m.carts[m.table.Cursor()].ID
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ff77a8"))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("P I C O", m.width)))
	b.WriteString("\n\n")

	if len(m.carts) == 0 {
		b.WriteString(centerText("No cartridges installed", m.width))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the chosen cartridge ID, or "" if none was chosen.
func (m PickerModel) Selected() string {
	return m.selected
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunPicker shows the picker and returns the chosen cartridge ID. An empty
// ID means the user quit.
func RunPicker(width, height int) (string, error) {
	p := tea.NewProgram(NewPickerModel(width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("tui: picker: %w", err)
	}

	m, ok := final.(PickerModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
