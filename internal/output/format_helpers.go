package output

import (
	"strconv"

	money "github.com/rpgo/retirement-planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal in the given ISO currency with grouping, e.g. "$1,234.57".
// An empty or unknown code renders as USD.
func FormatCurrency(amount decimal.Decimal, code string) string {
	if code == "" {
		code = money.DefaultCurrency
	}
	return money.NewMoneyFromDecimal(amount).Format(code)
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

// ageOrDash renders an age that was never reached as "-".
func ageOrDash(age int, reached bool) string {
	if !reached {
		return "-"
	}
	return intToString(age)
}

// ageOrBlank is ageOrDash for CSV, where a missing age is an empty field.
func ageOrBlank(age int, reached bool) string {
	if !reached {
		return ""
	}
	return intToString(age)
}
