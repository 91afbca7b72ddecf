package component

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/marginal/internal/ui/style"
)

// HelpBar represents a help bar component showing keyboard shortcuts
type HelpBar struct {
	keyBindings []key.Binding
	width       int

	// Styling
	keyStyle       lipgloss.Style
	descStyle      lipgloss.Style
	sepStyle       lipgloss.Style
	containerStyle lipgloss.Style

	compact bool
}

// NewHelpBar creates a new help bar component
func NewHelpBar() *HelpBar {
	palette := style.DefaultPalette()

	return &HelpBar{
		keyBindings: make([]key.Binding, 0),
		width:       80,

		keyStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true),

		descStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted),

		sepStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted),

		containerStyle: lipgloss.NewStyle().
			Padding(0, 1).
			Margin(1, 0, 0, 0),
	}
}

// SetKeyBindings sets the key bindings to display
func (h *HelpBar) SetKeyBindings(bindings []key.Binding) *HelpBar {
	h.keyBindings = bindings
	return h
}

// SetWidth sets the help bar width
func (h *HelpBar) SetWidth(width int) *HelpBar {
	h.width = width
	return h
}

// SetCompact enables/disables compact mode
func (h *HelpBar) SetCompact(compact bool) *HelpBar {
	h.compact = compact
	return h
}

// View renders the help bar
func (h *HelpBar) View() string {
	if len(h.keyBindings) == 0 {
		return ""
	}

	availableWidth := h.width - 4 // padding
	var helpItems []string
	if h.compact {
		helpItems = h.renderCompact(availableWidth)
	} else {
		helpItems = h.renderFull()
	}

	separator := h.sepStyle.Render(" • ")
	content := strings.Join(helpItems, separator)
	if lipgloss.Width(content) > availableWidth {
		content = h.wrapContent(helpItems, availableWidth, separator)
	}

	return h.containerStyle.Render(content)
}

// renderCompact renders help items in compact mode (keys only)
func (h *HelpBar) renderCompact(maxWidth int) []string {
	items := make([]string, 0, len(h.keyBindings))
	currentWidth := 0

	for _, binding := range h.keyBindings {
		if !binding.Enabled() {
			continue
		}

		help := binding.Help()
		if help.Key == "" {
			continue
		}

		keyText := h.keyStyle.Render(help.Key)
		itemWidth := lipgloss.Width(keyText) + 3 // separator

		if currentWidth+itemWidth > maxWidth && len(items) > 0 {
			break
		}

		items = append(items, keyText)
		currentWidth += itemWidth
	}

	return items
}

// renderFull renders help items as "key description"; wrapping is left to View
func (h *HelpBar) renderFull() []string {
	items := make([]string, 0, len(h.keyBindings))

	for _, binding := range h.keyBindings {
		if !binding.Enabled() {
			continue
		}

		help := binding.Help()
		if help.Key == "" || help.Desc == "" {
			continue
		}

		items = append(items, h.keyStyle.Render(help.Key)+" "+h.descStyle.Render(help.Desc))
	}

	return items
}

// wrapContent wraps content to fit within the available width
func (h *HelpBar) wrapContent(items []string, maxWidth int, separator string) string {
	var lines []string
	var currentLine []string
	currentWidth := 0
	sepWidth := lipgloss.Width(separator)

	for _, item := range items {
		itemWidth := lipgloss.Width(item) + sepWidth

		if currentWidth+itemWidth > maxWidth && len(currentLine) > 0 {
			lines = append(lines, strings.Join(currentLine, separator))
			currentLine = []string{item}
			currentWidth = itemWidth
		} else {
			currentLine = append(currentLine, item)
			currentWidth += itemWidth
		}
	}

	if len(currentLine) > 0 {
		lines = append(lines, strings.Join(currentLine, separator))
	}

	return strings.Join(lines, "\n")
}
