package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	currencyAmountRe = regexp.MustCompile(`([A-Z]{3})\s*([\d,]+(?:\.\d+)?)`)
	firstIntRe       = regexp.MustCompile(`\d+`)
	firstNumberRe    = regexp.MustCompile(`[\d.,]+`)
)

// Order forms carry dates as either "15 March 2024" or "March 15 2024".
var dateLayouts = []string{"2 January 2006", "January 2 2006"}

// ParseCurrencyAmount scans value for a 3-uppercase-letter currency code
// followed by a numeric amount. Either side of the result may be nil; a
// malformed amount does not discard the currency code.
func ParseCurrencyAmount(value string) (*string, *float64) {
	m := currencyAmountRe.FindStringSubmatch(value)
	if m == nil {
		return nil, nil
	}
	currency := m[1]
	return &currency, ParseFloat(m[2])
}

// ParseFloat converts value to a float after stripping thousands separators.
// Returns nil for malformed numbers.
func ParseFloat(value string) *float64 {
	f, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
	if err != nil {
		return nil
	}
	return &f
}

// ParseDate tries both order-form date layouts and returns a midnight-UTC
// date, or nil when neither layout matches.
func ParseDate(value string) *time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}
	return nil
}

// FirstInt returns the first run of digits in value as an int.
func FirstInt(value string) *int {
	m := firstIntRe.FindString(value)
	if m == "" {
		return nil
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &n
}

// FirstNumber returns the first numeric substring in value (commas stripped)
// as a float.
func FirstNumber(value string) *float64 {
	m := firstNumberRe.FindString(value)
	if m == "" {
		return nil
	}
	return ParseFloat(m)
}

// SplitColumnPair splits a flattened two-column cell into left and right
// values. A double-space is the strong signal: the text layer preserves the
// visual gap between columns as a run of spaces. preferFirstToken covers
// one-word left columns such as "Monthly"; an even token count falls back to
// a midpoint split; otherwise the whole value is the left column. Either
// side may come back nil.
func SplitColumnPair(value string, preferFirstToken bool) (*string, *string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if i := strings.Index(value, "  "); i >= 0 {
		return nonEmpty(value[:i]), nonEmpty(value[i+2:])
	}

	tokens := strings.Fields(value)
	if preferFirstToken && len(tokens) > 0 {
		return nonEmpty(tokens[0]), nonEmpty(strings.Join(tokens[1:], " "))
	}
	if len(tokens) > 0 && len(tokens)%2 == 0 {
		mid := len(tokens) / 2
		return nonEmpty(strings.Join(tokens[:mid], " ")), nonEmpty(strings.Join(tokens[mid:], " "))
	}
	return nonEmpty(value), nil
}

func nonEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
