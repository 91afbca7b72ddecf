package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMapNavigation(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyTab}, km.Tab))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, km.Tab))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyShiftTab}, km.ShiftTab))
	assert.Equal(t, "tab/enter", km.Tab.Help().Key)

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlR}, km.Clear))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, km.Quit))
}
