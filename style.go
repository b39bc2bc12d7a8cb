package sprintreport

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/alnah/go-sprintreport/internal/yamlutil"
)

// StyleToken names a value in a StyleConfig.
type StyleToken string

// Color tokens.
const (
	PrimaryBlue   StyleToken = "primaryBlue"
	SecondaryBlue StyleToken = "secondaryBlue"
	LightBlue     StyleToken = "lightBlue"
	SuccessGreen  StyleToken = "successGreen"
	WarningYellow StyleToken = "warningYellow"
	DangerRed     StyleToken = "dangerRed"
	Gray          StyleToken = "gray"
	DarkGray      StyleToken = "darkGray"
	LightGray     StyleToken = "lightGray"
	White         StyleToken = "white"
	Black         StyleToken = "black"
	BorderGray    StyleToken = "borderGray"
)

// Border and font tokens.
const (
	BorderStyle StyleToken = "borderStyle"
	BorderSize  StyleToken = "borderSize"
	FontFamily  StyleToken = "fontFamily"
)

// Size tokens, in points.
const (
	TitleSize      StyleToken = "titleSize"
	SubtitleSize   StyleToken = "subtitleSize"
	TaglineSize    StyleToken = "taglineSize"
	AssessmentSize StyleToken = "assessmentSize"
	Heading1Size   StyleToken = "heading1Size"
	Heading2Size   StyleToken = "heading2Size"
	Heading3Size   StyleToken = "heading3Size"
	BodySize       StyleToken = "bodySize"
	MetadataSize   StyleToken = "metadataSize"
)

// tokenKind classifies tokens for value validation.
type tokenKind int

const (
	kindColor tokenKind = iota
	kindSize
	kindBorderStyle
	kindBorderSize
	kindFont
)

var knownTokens = map[StyleToken]tokenKind{
	PrimaryBlue:    kindColor,
	SecondaryBlue:  kindColor,
	LightBlue:      kindColor,
	SuccessGreen:   kindColor,
	WarningYellow:  kindColor,
	DangerRed:      kindColor,
	Gray:           kindColor,
	DarkGray:       kindColor,
	LightGray:      kindColor,
	White:          kindColor,
	Black:          kindColor,
	BorderGray:     kindColor,
	BorderStyle:    kindBorderStyle,
	BorderSize:     kindBorderSize,
	FontFamily:     kindFont,
	TitleSize:      kindSize,
	SubtitleSize:   kindSize,
	TaglineSize:    kindSize,
	AssessmentSize: kindSize,
	Heading1Size:   kindSize,
	Heading2Size:   kindSize,
	Heading3Size:   kindSize,
	BodySize:       kindSize,
	MetadataSize:   kindSize,
}

// Validation limits.
const (
	maxFontFamilyLength = 64
	maxPointSize        = 200
	maxBorderSize       = 96
)

var (
	hexColorPattern = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)
	borderStyles    = map[string]bool{"single": true, "double": true, "dashed": true, "dotted": true, "none": true}
)

// StyleConfig maps style tokens to literal values: 6-hex colors, point
// sizes, a border style name and a font family. Treat it as immutable;
// Merge returns a copy.
type StyleConfig map[StyleToken]string

// DefaultStyle returns the reference palette and typography.
func DefaultStyle() StyleConfig {
	return StyleConfig{
		PrimaryBlue:    "1E3A5F",
		SecondaryBlue:  "2E5A7F",
		LightBlue:      "E8F4F8",
		SuccessGreen:   "28A745",
		WarningYellow:  "FFC107",
		DangerRed:      "DC3545",
		Gray:           "6C757D",
		DarkGray:       "343A40",
		LightGray:      "F8F9FA",
		White:          "FFFFFF",
		Black:          "000000",
		BorderGray:     "CCCCCC",
		BorderStyle:    "single",
		BorderSize:     "4",
		FontFamily:     "Arial",
		TitleSize:      "28",
		SubtitleSize:   "22",
		TaglineSize:    "14",
		AssessmentSize: "12",
		Heading1Size:   "16",
		Heading2Size:   "14",
		Heading3Size:   "12",
		BodySize:       "11",
		MetadataSize:   "9",
	}
}

// Validate checks every value against its token kind. Tokens not known
// to the assembler are rejected so typos in overrides surface early.
func (s StyleConfig) Validate() error {
	for _, tok := range s.sortedTokens() {
		kind, ok := knownTokens[tok]
		if !ok {
			return &UnknownStyleTokenError{Token: tok, Where: "style configuration"}
		}
		if err := validateValue(kind, s[tok]); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidStyleValue, tok, err)
		}
	}
	return nil
}

func validateValue(kind tokenKind, v string) error {
	switch kind {
	case kindColor:
		if !hexColorPattern.MatchString(v) {
			return fmt.Errorf("%q is not a 6-digit hex color", v)
		}
	case kindSize:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 || f > maxPointSize {
			return fmt.Errorf("%q is not a point size in (0, %d]", v, maxPointSize)
		}
	case kindBorderSize:
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > maxBorderSize {
			return fmt.Errorf("%q is not a border size in [0, %d]", v, maxBorderSize)
		}
	case kindBorderStyle:
		if !borderStyles[v] {
			return fmt.Errorf("%q is not one of single, double, dashed, dotted, none", v)
		}
	case kindFont:
		if strings.TrimSpace(v) == "" || len(v) > maxFontFamilyLength {
			return fmt.Errorf("font family must be 1-%d characters", maxFontFamilyLength)
		}
	}
	return nil
}

// Merge returns a copy of s with overrides applied. Keys are token names;
// empty values are ignored. The result is validated.
func (s StyleConfig) Merge(overrides map[string]string) (StyleConfig, error) {
	out := make(StyleConfig, len(s)+len(overrides))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range overrides {
		if v == "" {
			continue
		}
		tok := StyleToken(k)
		if _, ok := knownTokens[tok]; !ok {
			return nil, &UnknownStyleTokenError{Token: tok, Where: "style overrides"}
		}
		out[tok] = strings.TrimPrefix(strings.TrimSpace(v), "#")
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// Has reports whether the token is defined.
func (s StyleConfig) Has(tok StyleToken) bool {
	_, ok := s[tok]
	return ok
}

// Color returns the upper-cased hex value of a color token.
func (s StyleConfig) Color(tok StyleToken) (string, error) {
	v, ok := s[tok]
	if !ok {
		return "", &UnknownStyleTokenError{Token: tok}
	}
	return strings.ToUpper(v), nil
}

// Points returns the numeric value of a size token.
func (s StyleConfig) Points(tok StyleToken) (float64, error) {
	v, ok := s[tok]
	if !ok {
		return 0, &UnknownStyleTokenError{Token: tok}
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q", ErrInvalidStyleValue, tok, v)
	}
	return f, nil
}

// Value returns the raw value of a token.
func (s StyleConfig) Value(tok StyleToken) (string, error) {
	v, ok := s[tok]
	if !ok {
		return "", &UnknownStyleTokenError{Token: tok}
	}
	return v, nil
}

func (s StyleConfig) sortedTokens() []StyleToken {
	toks := make([]StyleToken, 0, len(s))
	for k := range s {
		toks = append(toks, k)
	}
	sort.Slice(toks, func(i, j int) bool { return toks[i] < toks[j] })
	return toks
}

// ParseStyle decodes a flat YAML map of token names to values and merges
// it over DefaultStyle. Unknown keys are rejected. Numeric values are
// accepted for sizes; colors made only of digits must be quoted.
func ParseStyle(data []byte) (StyleConfig, error) {
	var raw map[string]any
	if err := yamlutil.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing style: %w", err)
	}
	overrides := make(map[string]string, len(raw))
	for k, v := range raw {
		if v != nil {
			overrides[k] = fmt.Sprint(v)
		}
	}
	return DefaultStyle().Merge(overrides)
}
