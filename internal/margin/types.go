package margin

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// OrderType is the side of the position.
type OrderType int

const (
	// OrderUnset is the zero value and means no order type was chosen.
	OrderUnset OrderType = iota
	BuyOrder
	SellOrder
)

// OrderTypes lists the selectable order types in display order.
var OrderTypes = []OrderType{BuyOrder, SellOrder}

func (o OrderType) String() string {
	switch o {
	case BuyOrder:
		return "Buy Order"
	case SellOrder:
		return "Sell Order"
	default:
		return "unset"
	}
}

// ParseOrderType accepts "buy", "sell" and the display names.
func ParseOrderType(s string) (OrderType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy", "buy order":
		return BuyOrder, nil
	case "sell", "sell order":
		return SellOrder, nil
	}
	return OrderUnset, fmt.Errorf("%w: %q", ErrUnknownOrderType, s)
}

// Leverage is a 1/N ratio stored as its denominator N.
type Leverage int

const (
	LeverageUnset Leverage = 0
	Leverage10    Leverage = 10
	Leverage20    Leverage = 20
	Leverage30    Leverage = 30
	Leverage50    Leverage = 50
	Leverage100   Leverage = 100
	Leverage200   Leverage = 200
	Leverage500   Leverage = 500

	DefaultLeverage = Leverage10
)

// Leverages lists the supported ratios in display order.
var Leverages = []Leverage{
	Leverage10, Leverage20, Leverage30, Leverage50,
	Leverage100, Leverage200, Leverage500,
}

// Valid reports whether l is one of the supported ratios.
func (l Leverage) Valid() bool {
	for _, v := range Leverages {
		if v == l {
			return true
		}
	}
	return false
}

func (l Leverage) String() string {
	return fmt.Sprintf("1/%d", int(l))
}

// Multiplier returns 1/ratio, i.e. N. Using the denominator directly keeps
// 1/30 exact.
func (l Leverage) Multiplier() decimal.Decimal {
	return decimal.NewFromInt(int64(l))
}

// ParseLeverage accepts "1/100" or a bare "100".
func ParseLeverage(s string) (Leverage, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, "1/")
	for _, l := range Leverages {
		if raw == fmt.Sprintf("%d", int(l)) {
			return l, nil
		}
	}
	return LeverageUnset, fmt.Errorf("%w: %q", ErrUnsupportedLeverage, s)
}

// Field names used in errors and by the form.
const (
	FieldBuyPrice  = "buy_price"
	FieldSellPrice = "sell_price"
	FieldLotSize   = "lot_size"
	FieldOrderType = "order_type"
	FieldLeverage  = "leverage"
)

// Lot size bounds, inclusive.
var (
	MinLotSize = decimal.RequireFromString("0.01")
	MaxLotSize = decimal.RequireFromString("500.00")
)

// Quote is a fully parsed set of calculator inputs.
type Quote struct {
	BuyPrice  decimal.Decimal
	SellPrice decimal.Decimal
	LotSize   decimal.Decimal
	Order     OrderType
	Leverage  Leverage
}

// Form is the raw, as-typed form state. Numeric fields are kept as text so
// that emptiness and format errors can be told apart.
type Form struct {
	BuyPrice  string
	SellPrice string
	LotSize   string
	Order     OrderType
	Leverage  Leverage
}

// NewForm returns an empty form with the default order type and leverage.
func NewForm() Form {
	return Form{Order: BuyOrder, Leverage: DefaultLeverage}
}

// Result holds the derived outputs for a quote.
type Result struct {
	Quote
	MarginDifference decimal.Decimal
	PnL              decimal.Decimal
}

// Positive reports whether the P/L is shown with the positive tone.
func (r Result) Positive() bool {
	return !r.PnL.IsNegative()
}
