package margin

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var numberPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// Calculate validates q and derives the margin difference and P/L.
func Calculate(q Quote) (Result, error) {
	if q.Order != BuyOrder && q.Order != SellOrder {
		return Result{}, &ValidationError{Field: FieldOrderType, Err: ErrUnknownOrderType}
	}
	if !q.Leverage.Valid() {
		return Result{}, &ValidationError{Field: FieldLeverage, Err: ErrUnsupportedLeverage}
	}

	for _, f := range []struct {
		name  string
		value decimal.Decimal
	}{
		{FieldBuyPrice, q.BuyPrice},
		{FieldSellPrice, q.SellPrice},
		{FieldLotSize, q.LotSize},
	} {
		if !f.value.IsPositive() {
			return Result{}, &ValidationError{Field: f.name, Err: ErrNonPositive}
		}
	}
	if !lotSizeInRange(q.LotSize) {
		return Result{}, &ValidationError{Field: FieldLotSize, Err: ErrLotSizeRange}
	}

	spread := q.SellPrice.Sub(q.BuyPrice)
	pnl := spread.Mul(q.LotSize).Mul(q.Leverage.Multiplier())
	if q.Order == SellOrder {
		pnl = pnl.Neg()
	}

	return Result{
		Quote:            q,
		MarginDifference: spread.Abs(),
		PnL:              pnl,
	}, nil
}

// Evaluate runs the full validation chain over raw form text.
//
// A nil Result with a nil error means the form is incomplete and there is
// nothing to show yet. Otherwise the first failing check wins, in order:
// non-positive value, lot size out of range, non-numeric text. Range checks
// apply to whichever fields did parse, so "abc" in one field does not hide
// a zero in another.
func Evaluate(f Form) (*Result, error) {
	if blank(f.BuyPrice) || blank(f.SellPrice) || blank(f.LotSize) ||
		f.Order == OrderUnset || f.Leverage == LeverageUnset {
		return nil, nil
	}

	fields := []parsedField{
		parseField(FieldBuyPrice, f.BuyPrice),
		parseField(FieldSellPrice, f.SellPrice),
		parseField(FieldLotSize, f.LotSize),
	}

	for _, pf := range fields {
		if pf.err == nil && !pf.value.IsPositive() {
			return nil, &ValidationError{Field: pf.name, Err: ErrNonPositive}
		}
	}
	if lot := fields[2]; lot.err == nil && !lotSizeInRange(lot.value) {
		return nil, &ValidationError{Field: FieldLotSize, Err: ErrLotSizeRange}
	}
	for _, pf := range fields {
		if pf.err != nil {
			return nil, pf.err
		}
	}

	res, err := Calculate(Quote{
		BuyPrice:  fields[0].value,
		SellPrice: fields[1].value,
		LotSize:   fields[2].value,
		Order:     f.Order,
		Leverage:  f.Leverage,
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// MarginDifference returns |sell - buy|.
func MarginDifference(buy, sell decimal.Decimal) decimal.Decimal {
	return sell.Sub(buy).Abs()
}

type parsedField struct {
	name  string
	value decimal.Decimal
	err   error
}

func parseField(name, raw string) parsedField {
	s := strings.TrimSpace(raw)
	if !numberPattern.MatchString(s) {
		return parsedField{name: name, err: &FormatError{Field: name, Value: raw}}
	}
	// decimal rejects a trailing dot such as "1."
	s = strings.TrimSuffix(s, ".")
	v, err := decimal.NewFromString(s)
	if err != nil {
		return parsedField{name: name, err: &FormatError{Field: name, Value: raw}}
	}
	return parsedField{name: name, value: v}
}

func lotSizeInRange(lot decimal.Decimal) bool {
	return !lot.LessThan(MinLotSize) && !lot.GreaterThan(MaxLotSize)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
