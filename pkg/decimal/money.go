package decimal

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ErrNonFinite is returned when a float or string cannot be represented as a finite decimal.
var ErrNonFinite = errors.New("value is not a finite number")

// ErrOutOfRange is returned by Parse for values whose exponent or digit count
// cannot be carried through a projection.
var ErrOutOfRange = errors.New("value is out of range")

// Parse limits. A projection multiplies by a rate once per year, so exponents
// must start far from the int32 bounds.
const (
	maxExponent = 1000
	maxDigits   = 1000
)

// DefaultCurrency is used when no currency code is configured.
const DefaultCurrency = money.USD

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Format renders the amount in the given ISO currency with grouping, e.g. "$1,234.56".
// Unknown codes fall back to USD. Amounts too large for minor-unit int64 are rendered
// with a plain fixed representation.
func (m Money) Format(code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		cur = money.GetCurrency(DefaultCurrency)
	}
	minor := m.Decimal.Shift(int32(cur.Fraction)).Round(0)
	if minor.Abs().GreaterThan(maxMinorUnits) {
		return cur.Grapheme + m.Decimal.StringFixed(int32(cur.Fraction))
	}
	return money.New(minor.IntPart(), cur.Code).Display()
}

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64 / 10)

// Symbol returns the display symbol of an ISO currency, "$" for unknown codes.
func Symbol(code string) string {
	if cur := money.GetCurrency(code); cur != nil {
		return cur.Grapheme
	}
	return money.GetCurrency(DefaultCurrency).Grapheme
}

// PercentToRate converts a percentage (4 means 4%) into a rate (0.04). The shift is exact.
func PercentToRate(pct decimal.Decimal) decimal.Decimal {
	return pct.Shift(-2)
}

// GrowthFactor returns 1 + pct/100.
func GrowthFactor(pct decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(PercentToRate(pct))
}

// MaxZero clamps negative values to zero.
func MaxZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// FromFloat converts a float64, rejecting NaN and infinities.
func FromFloat(v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrNonFinite, v)
	}
	return decimal.NewFromFloat(v), nil
}

// Parse reads a user-entered number. Currency symbols, thousands separators,
// underscores and a trailing percent sign are ignored.
func Parse(value string) (decimal.Decimal, error) {
	s := strings.TrimSpace(value)
	s = strings.TrimSuffix(s, "%")
	s = strings.NewReplacer("$", "", ",", "", "_", "", " ", "").Replace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", ErrNonFinite)
	}
	switch strings.ToLower(strings.TrimLeft(s, "+-")) {
	case "nan", "inf", "infinity":
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNonFinite, value)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNonFinite, value)
	}
	if err := CheckRange(d); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", err, value)
	}
	return d, nil
}

// CheckRange reports ErrOutOfRange for decimals with an extreme exponent or
// coefficient. Decoders that bypass Parse, such as TOML, should call it.
func CheckRange(d decimal.Decimal) error {
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return ErrOutOfRange
	}
	if c := d.Coefficient(); len(c.Abs(c).Text(10)) > maxDigits {
		return ErrOutOfRange
	}
	return nil
}
