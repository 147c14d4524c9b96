package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pyframe/shipit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel() *Model {
	return New(&domain.Manifest{Name: "pyframe"})
}

func keyPress(m *Model, keys ...string) *Model {
	for _, k := range keys {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		}
		updated, _ := m.Update(msg)
		m = updated.(*Model)
	}
	return m
}

func TestModel_SelectWithCursor(t *testing.T) {
	m := keyPress(testModel(), "down", "enter")

	choice, quit := m.Choice()
	assert.False(t, quit)
	assert.Equal(t, domain.ChoicePublishStaging, choice)
}

func TestModel_SelectWithNumberKey(t *testing.T) {
	m := keyPress(testModel(), "4")

	choice, quit := m.Choice()
	assert.False(t, quit)
	assert.Equal(t, domain.ChoiceCleanOnly, choice)
}

func TestModel_CursorStaysInBounds(t *testing.T) {
	m := keyPress(testModel(), "up", "up", "enter")
	choice, _ := m.Choice()
	assert.Equal(t, domain.ChoiceBuildOnly, choice)

	m = keyPress(testModel(), "down", "down", "down", "down", "down", "enter")
	choice, _ = m.Choice()
	assert.Equal(t, domain.ChoiceCleanOnly, choice)
}

func TestModel_Quit(t *testing.T) {
	m := keyPress(testModel(), "q")

	_, quit := m.Choice()
	assert.True(t, quit)
	assert.Empty(t, m.View(), "view clears on quit")
}

func TestModel_EscQuits(t *testing.T) {
	m := keyPress(testModel(), "esc")

	_, quit := m.Choice()
	assert.True(t, quit)
}

func TestModel_IgnoresUnknownKeys(t *testing.T) {
	m := keyPress(testModel(), "x", "7")

	_, quit := m.Choice()
	assert.True(t, quit, "no selection yet")
	assert.Equal(t, 0, m.cursor)
}

func TestModel_View(t *testing.T) {
	m := testModel()
	view := m.View()

	require.NotEmpty(t, view)
	assert.Contains(t, view, "pyframe")
	assert.Contains(t, view, "1. Build package only")
	assert.Contains(t, view, "4. Clean build artifacts")
}
