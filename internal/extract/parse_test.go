package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitColumnPair(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		preferFirst bool
		wantLeft    string
		wantRight   string
		rightAbsent bool
	}{
		{
			name:      "double space splits columns",
			value:     "Net 30  Net 15",
			wantLeft:  "Net 30",
			wantRight: "Net 15",
		},
		{
			name:        "prefer first token",
			value:       "Monthly In Arrears",
			preferFirst: true,
			wantLeft:    "Monthly",
			wantRight:   "In Arrears",
		},
		{
			name:      "even token count splits at midpoint",
			value:     "Annual Quarterly",
			wantLeft:  "Annual",
			wantRight: "Quarterly",
		},
		{
			name:        "single token has no right column",
			value:       "Monthly",
			wantLeft:    "Monthly",
			rightAbsent: true,
		},
		{
			name:        "odd token count without preference stays whole",
			value:       "Due Upon Receipt",
			wantLeft:    "Due Upon Receipt",
			rightAbsent: true,
		},
		{
			name:        "double space wins over preference",
			value:       "Monthly  In Arrears",
			preferFirst: true,
			wantLeft:    "Monthly",
			wantRight:   "In Arrears",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := SplitColumnPair(tt.value, tt.preferFirst)
			require.NotNil(t, left)
			assert.Equal(t, tt.wantLeft, *left)
			if tt.rightAbsent {
				assert.Nil(t, right)
			} else {
				require.NotNil(t, right)
				assert.Equal(t, tt.wantRight, *right)
			}
		})
	}
}

func TestSplitColumnPairEmpty(t *testing.T) {
	left, right := SplitColumnPair("   ", false)
	assert.Nil(t, left)
	assert.Nil(t, right)
}

func TestParseCurrencyAmount(t *testing.T) {
	currency, amount := ParseCurrencyAmount("USD 12,345.67 due")
	require.NotNil(t, currency)
	require.NotNil(t, amount)
	assert.Equal(t, "USD", *currency)
	assert.Equal(t, 12345.67, *amount)

	currency, amount = ParseCurrencyAmount("no currency here")
	assert.Nil(t, currency)
	assert.Nil(t, amount)

	// No space between code and amount.
	currency, amount = ParseCurrencyAmount("EUR50,000")
	require.NotNil(t, currency)
	require.NotNil(t, amount)
	assert.Equal(t, "EUR", *currency)
	assert.Equal(t, 50000.0, *amount)
}

func TestParseFloat(t *testing.T) {
	f := ParseFloat("1,234.5")
	require.NotNil(t, f)
	assert.Equal(t, 1234.5, *f)

	assert.Nil(t, ParseFloat("n/a"))
	assert.Nil(t, ParseFloat(""))
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	got := ParseDate("01 January 2024")
	require.NotNil(t, got)
	assert.Equal(t, want, *got)

	got = ParseDate("January 1 2024")
	require.NotNil(t, got)
	assert.Equal(t, want, *got)

	assert.Nil(t, ParseDate("garbage"))
}

func TestFirstInt(t *testing.T) {
	n := FirstInt("36 months")
	require.NotNil(t, n)
	assert.Equal(t, 36, *n)

	assert.Nil(t, FirstInt("none"))
}

func TestFirstNumber(t *testing.T) {
	f := FirstNumber("10% discount")
	require.NotNil(t, f)
	assert.Equal(t, 10.0, *f)

	f = FirstNumber("1,250.75 applies")
	require.NotNil(t, f)
	assert.Equal(t, 1250.75, *f)

	assert.Nil(t, FirstNumber("no digits"))
}
