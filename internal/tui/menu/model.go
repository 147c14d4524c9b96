// Package menu provides the interactive menu picker shown when shipit
// runs with no arguments on a terminal.
package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pyframe/shipit/internal/domain"
)

// Model is the menu picker model.
type Model struct {
	manifest *domain.Manifest
	choices  []domain.MenuChoice
	keys     KeyMap
	styles   Styles
	cursor   int
	selected domain.MenuChoice // zero until a choice is confirmed
	quitting bool
}

// New creates a new menu picker model.
func New(m *domain.Manifest) *Model {
	return &Model{
		manifest: m,
		choices:  domain.AllChoices(),
		keys:     DefaultKeyMap(),
		styles:   DefaultStyles(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Select):
		m.selected = m.choices[m.cursor]
		return m, tea.Quit
	default:
		// The number keys select directly, mirroring the plain prompt.
		if choice, err := domain.ParseMenuChoice(keyMsg.String()); err == nil {
			m.cursor = int(choice) - 1
			m.selected = choice
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting || m.selected != 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("shipit: publishing %s", m.manifest.Name)))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("What would you like to do?"))
	b.WriteString("\n\n")

	for i, choice := range m.choices {
		line := fmt.Sprintf("%d. %s", choice, choice.Label())
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render(line))
		} else {
			b.WriteString(m.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("↑/↓ move · enter select · 1-4 choose · q quit"))
	b.WriteString("\n")
	return b.String()
}

// Choice returns the confirmed choice and whether the user quit instead.
func (m *Model) Choice() (domain.MenuChoice, bool) {
	if m.selected == 0 {
		return 0, true
	}
	return m.selected, false
}

// Run shows the menu picker and blocks until a choice is made or the user
// quits. The boolean reports a quit without a selection.
func Run(manifest *domain.Manifest) (domain.MenuChoice, bool, error) {
	p := tea.NewProgram(New(manifest))
	final, err := p.Run()
	if err != nil {
		return 0, false, fmt.Errorf("run menu: %w", err)
	}
	model, ok := final.(*Model)
	if !ok {
		return 0, true, nil
	}
	choice, quit := model.Choice()
	return choice, quit, nil
}
