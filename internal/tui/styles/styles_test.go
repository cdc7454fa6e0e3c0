package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestLookup_EarlierClassWins(t *testing.T) {
	s := Lookup("weekday-tab-item", "active", "today")

	assert.True(t, s.GetBold())
	assert.Equal(t, lipgloss.TerminalColor(Highlight), s.GetForeground())
	assert.Equal(t, 1, s.GetPaddingLeft())
	assert.Equal(t, 1, s.GetPaddingRight())
}

func TestLookup_BoxComesFromFirstClass(t *testing.T) {
	root := Lookup("weekday-tab")
	assert.True(t, root.GetBorderBottom())
	assert.False(t, root.GetBorderTop())
	assert.Equal(t, 1, LeftFrame(root))
	assert.Equal(t, 0, TopFrame(root))

	today := Lookup("today", "weekday-tab")
	assert.False(t, today.GetBorderBottom())
	assert.Equal(t, 0, LeftFrame(today))
}

func TestLookup_UnknownClassesIgnored(t *testing.T) {
	s := Lookup("no-such-class")
	assert.Equal(t, 0, LeftFrame(s))
	assert.False(t, Has("no-such-class"))
}

func TestRegister(t *testing.T) {
	Register("test-roomy", lipgloss.NewStyle().PaddingLeft(4).Italic(true))
	t.Cleanup(func() { delete(sheet, "test-roomy") })

	assert.True(t, Has("test-roomy"))

	// The root class keeps the box; the extra class only adds attributes.
	s := Lookup("weekday-tab", "test-roomy")
	assert.True(t, s.GetItalic())
	assert.Equal(t, 1, s.GetPaddingLeft())

	assert.Equal(t, 4, Lookup("test-roomy").GetPaddingLeft())
}

func TestLeftFrame(t *testing.T) {
	s := lipgloss.NewStyle().MarginLeft(2).PaddingLeft(3).BorderStyle(lipgloss.NormalBorder()).BorderLeft(true)
	assert.Equal(t, 6, LeftFrame(s))
	assert.Equal(t, 0, LeftFrame(lipgloss.NewStyle()))
}
