// Package dateutil parses report dates and resolves "auto" date values.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for date operations.
var (
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrUnparseableDate   = errors.New("unrecognized date")
)

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when "auto" is specified without a format.
// Reports print dates long-form ("December 8, 2025").
const DefaultDateFormat = "MMMM D, YYYY"

// CompactLayout is the layout used in generated filenames.
const CompactLayout = "20060102"

// reportLayouts lists accepted report date layouts, tried in order.
var reportLayouts = []string{
	"January 2, 2006",
	"2006-01-02",
	"01/02/2006",
	"02-01-2006",
	"Jan 2, 2006",
}

// dateTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// ParseReportDate parses a report date written in any accepted layout.
// Surrounding whitespace is ignored.
func ParseReportDate(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrUnparseableDate)
	}
	for _, layout := range reportLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q (expected e.g. \"December 8, 2025\" or \"2025-12-08\")", ErrUnparseableDate, value)
}

// Compact converts a report date to its YYYYMMDD form.
func Compact(value string) (string, error) {
	t, err := ParseReportDate(value)
	if err != nil {
		return "", err
	}
	return t.Format(CompactLayout), nil
}

// ParseDateFormat converts a user-friendly format string to Go's time format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D. Text inside brackets is kept
// literally; other non-token characters pass through unchanged.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	b.Grow(len(format) + 10)

	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			b.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		n := matchToken(format[i:], &b)
		if n == 0 {
			b.WriteByte(format[i])
			n = 1
		}
		i += n
	}

	return b.String(), nil
}

// matchToken writes the Go layout for the token at the start of s and
// returns its length, or 0 when s does not start with a token.
func matchToken(s string, b *strings.Builder) int {
	for _, t := range dateTokens {
		if strings.HasPrefix(s, t.token) {
			b.WriteString(t.goFmt)
			return len(t.token)
		}
	}
	return 0
}

// ResolveDate handles "auto" and "auto:FORMAT" syntax for date values.
//   - "auto" → t in DefaultDateFormat
//   - "auto:FORMAT" or "auto:preset" → t in that format
//   - anything else → returned unchanged
func ResolveDate(value string, t time.Time) (string, error) {
	lower := strings.ToLower(value)
	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}

	formatPart := DefaultDateFormat
	if lower != "auto" {
		if !strings.HasPrefix(lower, "auto:") {
			return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
		}
		formatPart = value[len("auto:"):]
		if formatPart == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		if preset, ok := DatePresets[strings.ToLower(formatPart)]; ok {
			formatPart = preset
		}
	}

	goFmt, err := ParseDateFormat(formatPart)
	if err != nil {
		return "", err
	}
	return t.Format(goFmt), nil
}
