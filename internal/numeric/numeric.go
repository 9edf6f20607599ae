// Package numeric normalizes the heterogeneous numeric values the calculator
// front-ends send (plain numbers, "1,234,567", "$450,000", "6.5%", empty) and
// formats results for report display. Parsing never fails outward: bad input
// degrades to a caller-supplied default so report generation stays best-effort.
package numeric

import (
	"encoding/json"
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotNumeric is returned by the strict parser for input that is empty or
// not a number once display characters are stripped.
var ErrNotNumeric = errors.New("value is not numeric")

// parseStrict parses a display-formatted numeric string. It strips thousands
// separators and currency/percent adornments; anything left that is not a
// number is an error. The lenient entry points below map that error to a
// default, which keeps the never-throw contract explicit here rather than
// scattered across call sites.
func parseStrict(s string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer(",", "", "$", "", "%", "", " ", "").Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return decimal.Zero, ErrNotNumeric
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, ErrNotNumeric
	}
	return d, nil
}

// ParseDecimal normalizes any raw calculator value to a decimal, returning
// def for nil, malformed, or non-finite input.
func ParseDecimal(v any, def decimal.Decimal) decimal.Decimal {
	switch x := v.(type) {
	case nil:
		return def
	case decimal.Decimal:
		return x
	case string:
		d, err := parseStrict(x)
		if err != nil {
			return def
		}
		return d
	case json.Number:
		d, err := parseStrict(x.String())
		if err != nil {
			return def
		}
		return d
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return def
		}
		return decimal.NewFromFloat(x)
	case float32:
		return ParseDecimal(float64(x), def)
	case int:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	default:
		return def
	}
}

// ParseNumber is the float64 twin of ParseDecimal, kept for callers that do
// not carry decimals (timeline counts, flag thresholds).
func ParseNumber(v any, def float64) float64 {
	d := ParseDecimal(v, decimal.NewFromFloat(def))
	f, _ := d.Float64()
	return f
}

// FormatCurrency renders a value as whole dollars with thousands grouping,
// e.g. 1234.56 -> "$1,235". Negative values render as "-$1,235". Zero and
// anything unparseable render as "$0".
func FormatCurrency(v decimal.Decimal) string {
	rounded := v.Round(0)
	if rounded.IsNegative() {
		return "-$" + groupThousands(rounded.Abs().StringFixed(0))
	}
	return "$" + groupThousands(rounded.StringFixed(0))
}

// FormatCurrencyValue is FormatCurrency over a raw, possibly-unparsed value.
func FormatCurrencyValue(v any) string {
	return FormatCurrency(ParseDecimal(v, decimal.Zero))
}

// FormatPercentage renders a value with two decimal places and a trailing
// percent sign, e.g. 7.5 -> "7.50%". Zero and unparseable input render as
// "0.00%".
func FormatPercentage(v decimal.Decimal) string {
	return v.StringFixed(2) + "%"
}

// FormatPercentageValue is FormatPercentage over a raw, possibly-unparsed value.
func FormatPercentageValue(v any) string {
	return FormatPercentage(ParseDecimal(v, decimal.Zero))
}

// FormatCount renders a non-negative whole number with thousands grouping,
// used for day counts and similar non-currency figures.
func FormatCount(v decimal.Decimal) string {
	rounded := v.Round(0)
	if rounded.IsNegative() {
		return "-" + groupThousands(rounded.Abs().StringFixed(0))
	}
	return groupThousands(rounded.StringFixed(0))
}

// groupThousands inserts commas into a plain digit string.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var sb strings.Builder
	rem := n % 3
	if rem > 0 {
		sb.WriteString(digits[:rem])
	}
	for i := rem; i < n; i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}
