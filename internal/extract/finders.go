package extract

import (
	"regexp"
	"strings"
)

// CleanLines splits text into trimmed, non-empty lines. A trailing
// "United StatesX" token (a form checkbox glyph glued onto the country name
// by the PDF text layer) is trimmed back to "United States".
func CleanLines(text string) []string {
	var cleaned []string
	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		if strings.HasSuffix(stripped, "United StatesX") {
			stripped = strings.TrimSpace(stripped[:len(stripped)-1])
		}
		cleaned = append(cleaned, stripped)
	}
	return cleaned
}

// ExtractBlock returns the span between startMarker and endMarker,
// case-insensitive and spanning line breaks. Reports false when either
// marker is missing.
func ExtractBlock(text, startMarker, endMarker string) (string, bool) {
	pattern := regexp.MustCompile(
		`(?is)` + regexp.QuoteMeta(startMarker) + `\s*(.*?)\s*` + regexp.QuoteMeta(endMarker),
	)
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// SearchLabeledLine finds the first line that begins with label followed by a
// space (case-insensitive) and returns the remainder after the label.
// Remainders starting with one of skipPrefixes are passed over; this
// disambiguates labels that are prefixes of other labels, e.g.
// "Subscription Term" vs "Subscription Term Start Date".
func SearchLabeledLine(text, label string, skipPrefixes ...string) (string, bool) {
	target := strings.ToLower(label) + " "
	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(line)
		if !strings.HasPrefix(strings.ToLower(stripped), target) {
			continue
		}
		remainder := strings.TrimSpace(stripped[len(label):])
		if hasAnyPrefix(remainder, skipPrefixes) {
			continue
		}
		return remainder, true
	}
	return "", false
}

// SearchLine returns the first line containing label anywhere, trimmed.
func SearchLine(text, label string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, label) {
			return strings.TrimSpace(line), true
		}
	}
	return "", false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	lower := strings.ToLower(s)
	for _, p := range prefixes {
		if strings.HasPrefix(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}
