package component

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/marginal/internal/ui/style"
)

// FieldType represents the type of form field
type FieldType int

const (
	FieldTypeNumber FieldType = iota
	FieldTypeSelect
)

// FormField represents a single form field
type FormField struct {
	Name        string
	Label       string
	Type        FieldType
	Value       string
	Options     []string // For select fields
	Placeholder string

	// Filter, when set, vetoes edits that would leave a non-empty value
	// it does not accept. The field keeps its previous text.
	Filter func(string) bool

	// Internal state
	textInput   textinput.Model
	selectedIdx int
}

// Form is a vertical list of number inputs and option selectors
type Form struct {
	fields     []FormField
	focusIndex int
	width      int

	// Styling
	labelStyle    lipgloss.Style
	inputStyle    lipgloss.Style
	focusedStyle  lipgloss.Style
	optionStyle   lipgloss.Style
	selectedStyle lipgloss.Style
}

// NewForm creates a new form component
func NewForm() *Form {
	palette := style.DefaultPalette()

	return &Form{
		fields: make([]FormField, 0),

		labelStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Bold(true).
			MarginRight(1),

		inputStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.TextMuted),

		focusedStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Primary),

		optionStyle: lipgloss.NewStyle().
			Foreground(palette.TextSecondary),

		selectedStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true),
	}
}

// AddField adds a field to the form
func (f *Form) AddField(name string, fieldType FieldType, label, placeholder string) *Form {
	ti := textinput.New()
	ti.Width = 30
	ti.Prompt = ""
	ti.Placeholder = placeholder
	if fieldType == FieldTypeNumber && placeholder == "" {
		ti.Placeholder = "0"
	}

	f.fields = append(f.fields, FormField{
		Name:        name,
		Label:       label,
		Type:        fieldType,
		Placeholder: placeholder,
		textInput:   ti,
	})

	// Focus first field
	if len(f.fields) == 1 {
		f.focus(0)
	}

	return f
}

// SetFieldOptions sets options for a select field and selects the first one
func (f *Form) SetFieldOptions(name string, options []string) *Form {
	if field := f.field(name); field != nil && field.Type == FieldTypeSelect {
		field.Options = options
		field.selectedIdx = 0
		field.Value = ""
		if len(options) > 0 {
			field.Value = options[0]
		}
	}
	return f
}

// SetFieldFilter installs an edit filter on a number field
func (f *Form) SetFieldFilter(name string, filter func(string) bool) *Form {
	if field := f.field(name); field != nil {
		field.Filter = filter
	}
	return f
}

// SetFieldValue sets the text of a number field, or selects the matching
// option of a select field. Unknown options are ignored.
func (f *Form) SetFieldValue(name, value string) *Form {
	field := f.field(name)
	if field == nil {
		return f
	}

	switch field.Type {
	case FieldTypeNumber:
		field.textInput.SetValue(value)
		field.Value = field.textInput.Value()
	case FieldTypeSelect:
		for i, opt := range field.Options {
			if opt == value {
				field.selectedIdx = i
				field.Value = opt
				break
			}
		}
	}
	return f
}

// GetValue returns the value of a specific field
func (f *Form) GetValue(name string) string {
	if field := f.field(name); field != nil {
		return field.Value
	}
	return ""
}

// SelectedIndex returns the selected option index of a select field, or -1
func (f *Form) SelectedIndex(name string) int {
	field := f.field(name)
	if field == nil || field.Type != FieldTypeSelect {
		return -1
	}
	return field.selectedIdx
}

// FocusedField returns the name of the focused field
func (f *Form) FocusedField() string {
	if len(f.fields) == 0 {
		return ""
	}
	return f.fields[f.focusIndex].Name
}

// Init initializes the form
func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles form input and updates
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if len(f.fields) == 0 {
		return f, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		field := &f.fields[f.focusIndex]

		switch msg.String() {
		case "tab", "enter":
			return f, f.nextField()
		case "shift+tab":
			return f, f.prevField()
		case "left", "up":
			if field.Type == FieldTypeSelect {
				f.shiftOption(field, -1)
				return f, nil
			}
		case "right", "down", " ":
			if field.Type == FieldTypeSelect {
				f.shiftOption(field, 1)
				return f, nil
			}
		}
	}

	field := &f.fields[f.focusIndex]
	if field.Type != FieldTypeNumber {
		return f, nil
	}

	previous := field.textInput.Value()
	var cmd tea.Cmd
	field.textInput, cmd = field.textInput.Update(msg)

	if current := field.textInput.Value(); current != "" && field.Filter != nil && !field.Filter(current) {
		field.textInput.SetValue(previous)
	}
	field.Value = field.textInput.Value()

	return f, cmd
}

// View renders the form
func (f *Form) View() string {
	if len(f.fields) == 0 {
		return "No fields defined"
	}

	var content strings.Builder

	for i, field := range f.fields {
		content.WriteString(f.labelStyle.Render(field.Label))
		content.WriteString("\n")

		fieldStyle := f.inputStyle
		if i == f.focusIndex {
			fieldStyle = f.focusedStyle
		}

		switch field.Type {
		case FieldTypeNumber:
			content.WriteString(fieldStyle.Render(field.textInput.View()))

		case FieldTypeSelect:
			options := make([]string, len(field.Options))
			for j, opt := range field.Options {
				if j == field.selectedIdx {
					options[j] = f.selectedStyle.Render("(•) " + opt)
				} else {
					options[j] = f.optionStyle.Render("( ) " + opt)
				}
			}
			content.WriteString(fieldStyle.Render(strings.Join(options, "  ")))
		}
		content.WriteString("\n")
	}

	return content.String()
}

// Reset clears number fields, selects the first option of every select
// field and focuses the first field
func (f *Form) Reset() *Form {
	for i := range f.fields {
		field := &f.fields[i]
		field.selectedIdx = 0
		field.Value = ""
		field.textInput.SetValue("")
		if field.Type == FieldTypeSelect && len(field.Options) > 0 {
			field.Value = field.Options[0]
		}
	}

	if len(f.fields) > 0 {
		f.focus(0)
	}
	return f
}

// SetWidth sets the form width
func (f *Form) SetWidth(width int) *Form {
	f.width = width
	inputWidth := width - 4 // padding and borders
	if inputWidth > 10 {
		for i := range f.fields {
			f.fields[i].textInput.Width = inputWidth
		}
	}
	return f
}

func (f *Form) field(name string) *FormField {
	for i := range f.fields {
		if f.fields[i].Name == name {
			return &f.fields[i]
		}
	}
	return nil
}

func (f *Form) focus(idx int) tea.Cmd {
	f.fields[f.focusIndex].textInput.Blur()
	f.focusIndex = idx
	if f.fields[idx].Type == FieldTypeNumber {
		return f.fields[idx].textInput.Focus()
	}
	return nil
}

// nextField moves focus to the next field
func (f *Form) nextField() tea.Cmd {
	return f.focus((f.focusIndex + 1) % len(f.fields))
}

// prevField moves focus to the previous field
func (f *Form) prevField() tea.Cmd {
	idx := f.focusIndex - 1
	if idx < 0 {
		idx = len(f.fields) - 1
	}
	return f.focus(idx)
}

func (f *Form) shiftOption(field *FormField, delta int) {
	if len(field.Options) == 0 {
		return
	}
	n := len(field.Options)
	field.selectedIdx = ((field.selectedIdx+delta)%n + n) % n
	field.Value = field.Options[field.selectedIdx]
}
