package screen

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/marginal/internal/margin"
	"github.com/rovshanmuradov/marginal/internal/ui"
	"github.com/rovshanmuradov/marginal/internal/ui/component"
	"github.com/rovshanmuradov/marginal/internal/ui/style"
	"go.uber.org/zap"
)

// entryPattern is what a numeric field may hold while typing.
var entryPattern = regexp.MustCompile(`^\d+(\.\d*)?$`)

// CalculatorScreen is the margin calculator form. Every update re-reads the
// form and recomputes the margin and result lines.
type CalculatorScreen struct {
	width  int
	height int
	keyMap ui.KeyMap
	logger *zap.Logger

	form    *component.Form
	helpBar *component.HelpBar

	defaults margin.Form
	display  margin.Display

	fullHelp bool

	// Styling
	titleStyle     lipgloss.Style
	marginStyle    lipgloss.Style
	resultStyles   map[margin.Tone]lipgloss.Style
	containerStyle lipgloss.Style
}

// NewCalculatorScreen creates the calculator primed with defaults. Only the
// order type and leverage of defaults are used; numeric fields start empty.
func NewCalculatorScreen(defaults margin.Form, logger *zap.Logger) *CalculatorScreen {
	palette := style.DefaultPalette()
	keyMap := ui.DefaultKeyMap()

	orderOptions := make([]string, len(margin.OrderTypes))
	for i, o := range margin.OrderTypes {
		orderOptions[i] = o.String()
	}
	leverageOptions := make([]string, len(margin.Leverages))
	for i, l := range margin.Leverages {
		leverageOptions[i] = l.String()
	}

	form := component.NewForm().
		AddField(margin.FieldBuyPrice, component.FieldTypeNumber, "Buy price", "e.g. 1.1000").
		AddField(margin.FieldSellPrice, component.FieldTypeNumber, "Sell price", "e.g. 1.2000").
		AddField(margin.FieldLotSize, component.FieldTypeNumber, "Lot size (0.01–500.00)", "e.g. 1").
		AddField(margin.FieldOrderType, component.FieldTypeSelect, "Order type", "").
		AddField(margin.FieldLeverage, component.FieldTypeSelect, "Leverage", "")
	form.SetFieldOptions(margin.FieldOrderType, orderOptions)
	form.SetFieldOptions(margin.FieldLeverage, leverageOptions)
	for _, name := range []string{margin.FieldBuyPrice, margin.FieldSellPrice, margin.FieldLotSize} {
		form.SetFieldFilter(name, entryPattern.MatchString)
	}

	s := &CalculatorScreen{
		keyMap:   keyMap,
		logger:   logger.Named("calculator"),
		form:     form,
		defaults: defaults,
		helpBar: component.NewHelpBar().
			SetKeyBindings(keyMap.ShortHelp()),

		titleStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			MarginBottom(1),

		marginStyle: lipgloss.NewStyle().
			Foreground(palette.TextSecondary),

		resultStyles: map[margin.Tone]lipgloss.Style{
			margin.ToneNeutral:  lipgloss.NewStyle().Foreground(palette.Text).Bold(true),
			margin.TonePositive: lipgloss.NewStyle().Foreground(palette.Positive).Bold(true),
			margin.ToneNegative: lipgloss.NewStyle().Foreground(palette.Negative).Bold(true),
			margin.ToneError:    lipgloss.NewStyle().Foreground(palette.Error),
		},

		containerStyle: lipgloss.NewStyle().Padding(1, 2),
	}

	s.applyDefaults()
	s.recalculate()
	return s
}

// Init initializes the screen
func (s *CalculatorScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update handles key input, then recomputes from the current form state
func (s *CalculatorScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keyMap.Quit):
			return s, tea.Quit
		case key.Matches(msg, s.keyMap.Clear):
			s.ClearAll()
			return s, nil
		case key.Matches(msg, s.keyMap.Help):
			s.toggleHelp()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)
	s.recalculate()
	return s, cmd
}

// View renders the screen
func (s *CalculatorScreen) View() string {
	var content strings.Builder

	content.WriteString(s.titleStyle.Render("Marginal Trading Calculator"))
	content.WriteString("\n")
	content.WriteString(s.form.View())
	content.WriteString("\n")
	content.WriteString(s.marginStyle.Render(s.display.MarginLabel()))
	content.WriteString("\n")
	content.WriteString(s.resultStyles[s.display.Tone].Render(s.display.ResultLabel()))
	content.WriteString("\n")
	content.WriteString(s.helpBar.View())

	return s.containerStyle.Render(content.String())
}

// SetSize sets the screen dimensions
func (s *CalculatorScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.form.SetWidth(min(width-8, 44))
	s.helpBar.SetWidth(width - 4).SetCompact(width < 60)
}

// Snapshot returns the current form state as calculator input
func (s *CalculatorScreen) Snapshot() margin.Form {
	f := margin.Form{
		BuyPrice:  s.form.GetValue(margin.FieldBuyPrice),
		SellPrice: s.form.GetValue(margin.FieldSellPrice),
		LotSize:   s.form.GetValue(margin.FieldLotSize),
	}
	if idx := s.form.SelectedIndex(margin.FieldOrderType); idx >= 0 && idx < len(margin.OrderTypes) {
		f.Order = margin.OrderTypes[idx]
	}
	if idx := s.form.SelectedIndex(margin.FieldLeverage); idx >= 0 && idx < len(margin.Leverages) {
		f.Leverage = margin.Leverages[idx]
	}
	return f
}

// Display returns the strings currently shown
func (s *CalculatorScreen) Display() margin.Display {
	return s.display
}

// ClearAll empties the numeric fields and restores the default order type
// and leverage
func (s *CalculatorScreen) ClearAll() {
	s.form.Reset()
	s.applyDefaults()
	s.recalculate()
	s.logger.Info("Form cleared")
}

func (s *CalculatorScreen) applyDefaults() {
	if s.defaults.Order != margin.OrderUnset {
		s.form.SetFieldValue(margin.FieldOrderType, s.defaults.Order.String())
	}
	if s.defaults.Leverage != margin.LeverageUnset {
		s.form.SetFieldValue(margin.FieldLeverage, s.defaults.Leverage.String())
	}
}

func (s *CalculatorScreen) toggleHelp() {
	s.fullHelp = !s.fullHelp
	if s.fullHelp {
		s.helpBar.SetKeyBindings(s.keyMap.FullHelp())
	} else {
		s.helpBar.SetKeyBindings(s.keyMap.ShortHelp())
	}
}

func (s *CalculatorScreen) recalculate() {
	snapshot := s.Snapshot()
	res, err := margin.Evaluate(snapshot)
	next := margin.Render(res, err)
	if next == s.display {
		return
	}
	s.display = next

	s.logger.Debug("Recalculated",
		zap.String("buy_price", snapshot.BuyPrice),
		zap.String("sell_price", snapshot.SellPrice),
		zap.String("lot_size", snapshot.LotSize),
		zap.Stringer("order_type", snapshot.Order),
		zap.Stringer("leverage", snapshot.Leverage),
		zap.String("margin", next.Margin),
		zap.String("result", next.Result),
		zap.Error(err))
}
