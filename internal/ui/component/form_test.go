package component

import (
	"regexp"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

var digits = regexp.MustCompile(`^\d+(\.\d*)?$`)

func typeText(f *Form, s string) {
	for _, r := range s {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func newTestForm() *Form {
	f := NewForm().
		AddField("price", FieldTypeNumber, "Price", "").
		AddField("side", FieldTypeSelect, "Side", "")
	f.SetFieldOptions("side", []string{"Buy", "Sell", "Hold"})
	f.SetFieldFilter("price", digits.MatchString)
	return f
}

func TestFormTypingAndFilter(t *testing.T) {
	f := newTestForm()
	assert.Equal(t, "price", f.FocusedField())

	typeText(f, "1a2.5x")
	assert.Equal(t, "12.5", f.GetValue("price"))

	typeText(f, ".")
	assert.Equal(t, "12.5", f.GetValue("price"), "second dot is rejected")

	f.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "12.", f.GetValue("price"))
}

func TestFormWithoutFilterAcceptsAnyText(t *testing.T) {
	f := NewForm().AddField("price", FieldTypeNumber, "Price", "")
	typeText(f, "abc")
	assert.Equal(t, "abc", f.GetValue("price"))
}

func TestFormFocusCycles(t *testing.T) {
	f := newTestForm()

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "side", f.FocusedField())

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "price", f.FocusedField())

	f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "side", f.FocusedField())
}

func TestFormSelectOptions(t *testing.T) {
	f := newTestForm()
	assert.Equal(t, "Buy", f.GetValue("side"))
	assert.Equal(t, 0, f.SelectedIndex("side"))

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "Sell", f.GetValue("side"))

	f.Update(tea.KeyMsg{Type: tea.KeyLeft})
	f.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "Hold", f.GetValue("side"), "wraps backwards")
	assert.Equal(t, 2, f.SelectedIndex("side"))

	// typing on a select field changes nothing
	typeText(f, "7")
	assert.Equal(t, "", f.GetValue("price"))

	assert.Equal(t, -1, f.SelectedIndex("price"))
	assert.Equal(t, -1, f.SelectedIndex("missing"))
}

func TestFormSetValueAndReset(t *testing.T) {
	f := newTestForm()
	f.SetFieldValue("price", "3.14").SetFieldValue("side", "Sell")
	assert.Equal(t, "3.14", f.GetValue("price"))
	assert.Equal(t, 1, f.SelectedIndex("side"))

	f.SetFieldValue("side", "Short")
	assert.Equal(t, "Sell", f.GetValue("side"), "unknown option ignored")

	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f.Reset()
	assert.Equal(t, "", f.GetValue("price"))
	assert.Equal(t, "Buy", f.GetValue("side"))
	assert.Equal(t, "price", f.FocusedField())
}

func TestFormView(t *testing.T) {
	f := newTestForm()
	f.SetFieldValue("side", "Sell")

	view := f.View()
	assert.Contains(t, view, "Price")
	assert.Contains(t, view, "(•) Sell")
	assert.Contains(t, view, "( ) Buy")

	assert.Equal(t, "No fields defined", NewForm().View())
}
