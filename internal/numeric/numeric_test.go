package numeric

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseNumber_Strings(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{"comma grouped", "1,234,567", 1234567.0},
		{"plain integer string", "450000", 450000.0},
		{"decimal string", "1234.56", 1234.56},
		{"currency prefix", "$450,000", 450000.0},
		{"percent suffix", "6.5%", 6.5},
		{"surrounding whitespace", "  7.25 ", 7.25},
		{"empty string", "", 0.0},
		{"nil", nil, 0.0},
		{"garbage", "abc", 0.0},
		{"double decimal point", "1.2.3", 0.0},
		{"negative", "-1,500", -1500.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNumber(tt.input, 0))
		})
	}
}

func TestParseNumber_NumericTypes(t *testing.T) {
	assert.Equal(t, 42.0, ParseNumber(42, 0))
	assert.Equal(t, 42.0, ParseNumber(int64(42), 0))
	assert.Equal(t, 3.5, ParseNumber(3.5, 0))
	assert.Equal(t, 0.0, ParseNumber(math.NaN(), 0))
	assert.Equal(t, 0.0, ParseNumber(math.Inf(1), 0))
	assert.Equal(t, 9.0, ParseNumber(struct{}{}, 9), "unsupported types fall back to the default")
}

func TestParseNumber_Idempotent(t *testing.T) {
	inputs := []string{"1,234,567", "$12,000", "6.5%", "0", "-42.25"}
	for _, in := range inputs {
		first := ParseDecimal(in, decimal.Zero)
		second := ParseDecimal(first.String(), decimal.Zero)
		assert.True(t, first.Equal(second), "reparsing %s changed the value: %s vs %s", in, first, second)
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{1234.56, "$1,235"},
		{1234.4, "$1,234"},
		{0, "$0"},
		{450000, "$450,000"},
		{999, "$999"},
		{1000, "$1,000"},
		{1234567.89, "$1,234,568"},
		{-1234.56, "-$1,235"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(decimal.NewFromFloat(tt.input)), "input %v", tt.input)
	}
}

func TestFormatCurrencyValue_BadInput(t *testing.T) {
	assert.Equal(t, "$0", FormatCurrencyValue(nil))
	assert.Equal(t, "$0", FormatCurrencyValue("not a number"))
	assert.Equal(t, "$450,000", FormatCurrencyValue("$450,000"), "already-formatted values survive a second pass")
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "7.50%", FormatPercentage(decimal.NewFromFloat(7.5)))
	assert.Equal(t, "0.00%", FormatPercentage(decimal.Zero))
	assert.Equal(t, "12.30%", FormatPercentage(decimal.NewFromFloat(12.3)))
	assert.Equal(t, "0.00%", FormatPercentageValue(nil))
	assert.Equal(t, "7.50%", FormatPercentageValue("7.5%"), "already-formatted values survive a second pass")
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "3", FormatCount(decimal.NewFromInt(3)))
	assert.Equal(t, "1,200", FormatCount(decimal.NewFromInt(1200)))
	assert.Equal(t, "0", FormatCount(decimal.Zero))
}
