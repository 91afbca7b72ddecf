package margin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Placeholder is shown in both labels while there is no result.
const Placeholder = "--"

// Tone selects how the result line is coloured.
type Tone int

const (
	ToneNeutral Tone = iota
	TonePositive
	ToneNegative
	ToneError
)

// Display is the pair of strings the calculator shows.
type Display struct {
	Margin string
	Result string
	Tone   Tone
}

// MarginLabel returns the labelled margin line.
func (d Display) MarginLabel() string {
	return "Margin: " + d.Margin
}

// ResultLabel returns the labelled result line.
func (d Display) ResultLabel() string {
	return "Result: " + d.Result
}

// Render turns the outcome of Evaluate into display text.
func Render(res *Result, err error) Display {
	if err != nil {
		return Display{Margin: Placeholder, Result: DisplayText(err), Tone: ToneError}
	}
	if res == nil {
		return Display{Margin: Placeholder, Result: Placeholder, Tone: ToneNeutral}
	}

	tone := TonePositive
	if !res.Positive() {
		tone = ToneNegative
	}
	return Display{
		Margin: FormatMargin(*res),
		Result: formatPnL(res.PnL),
		Tone:   tone,
	}
}

// formatPnL keeps the minus sign on losses that round to zero, so the text
// agrees with the tone.
func formatPnL(pnl decimal.Decimal) string {
	s := pnl.StringFixed(4)
	if pnl.IsNegative() && !strings.HasPrefix(s, "-") {
		s = "-" + s
	}
	return s
}

// FormatMargin renders the buy, sell and difference at 4 decimal places.
func FormatMargin(r Result) string {
	return fmt.Sprintf("Buy: %s | Sell: %s | Diff: %s",
		r.BuyPrice.StringFixed(4),
		r.SellPrice.StringFixed(4),
		r.MarginDifference.StringFixed(4))
}

// DisplayText maps calculator errors to the message shown to the user.
func DisplayText(err error) string {
	switch {
	case errors.Is(err, ErrNonPositive):
		return "Invalid input, must be > 0"
	case errors.Is(err, ErrLotSizeRange):
		return "Lot size must be 0.01–500.00"
	case errors.Is(err, ErrNumberFormat):
		return "Invalid number format"
	case errors.Is(err, ErrUnsupportedLeverage):
		return "Unsupported leverage"
	case errors.Is(err, ErrUnknownOrderType):
		return "Unknown order type"
	default:
		return "Error - " + err.Error()
	}
}
