package sprintreport

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestDefaultStyle - Every known token has a valid default
// ---------------------------------------------------------------------------

func TestDefaultStyle(t *testing.T) {
	t.Parallel()

	style := DefaultStyle()
	if err := style.Validate(); err != nil {
		t.Fatalf("DefaultStyle().Validate() = %v", err)
	}
	for tok := range knownTokens {
		if !style.Has(tok) {
			t.Errorf("DefaultStyle() missing token %q", tok)
		}
	}

	// Each call returns an independent map.
	style[PrimaryBlue] = "000000"
	if DefaultStyle()[PrimaryBlue] != "1E3A5F" {
		t.Error("DefaultStyle() shares state between calls")
	}
}

// ---------------------------------------------------------------------------
// TestStyleConfig_Validate - Value checks per token kind
// ---------------------------------------------------------------------------

func TestStyleConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		token   StyleToken
		value   string
		wantErr error
	}{
		{name: "lower-case hex", token: PrimaryBlue, value: "1e3a5f"},
		{name: "fractional size", token: BodySize, value: "10.5"},
		{name: "dashed border", token: BorderStyle, value: "dashed"},
		{name: "zero border size", token: BorderSize, value: "0"},
		{name: "short hex", token: DangerRed, value: "F00", wantErr: ErrInvalidStyleValue},
		{name: "hash prefix kept verbatim", token: DangerRed, value: "#DC3545", wantErr: ErrInvalidStyleValue},
		{name: "zero size", token: TitleSize, value: "0", wantErr: ErrInvalidStyleValue},
		{name: "huge size", token: TitleSize, value: "500", wantErr: ErrInvalidStyleValue},
		{name: "unknown border style", token: BorderStyle, value: "wavy", wantErr: ErrInvalidStyleValue},
		{name: "fractional border size", token: BorderSize, value: "1.5", wantErr: ErrInvalidStyleValue},
		{name: "blank font", token: FontFamily, value: " ", wantErr: ErrInvalidStyleValue},
		{name: "unknown token", token: "accentPurple", value: "800080", wantErr: ErrUnknownStyleToken},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			style := DefaultStyle()
			style[tt.token] = tt.value
			err := style.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestStyleConfig_Merge - Overrides produce a validated copy
// ---------------------------------------------------------------------------

func TestStyleConfig_Merge(t *testing.T) {
	t.Parallel()

	t.Run("overrides applied to a copy", func(t *testing.T) {
		t.Parallel()

		base := DefaultStyle()
		merged, err := base.Merge(map[string]string{
			"primaryBlue": "#003366",
			"fontFamily":  "Calibri",
			"bodySize":    "",
		})
		if err != nil {
			t.Fatalf("Merge() unexpected error: %v", err)
		}
		if merged[PrimaryBlue] != "003366" {
			t.Errorf("primaryBlue = %q, want %q", merged[PrimaryBlue], "003366")
		}
		if merged[FontFamily] != "Calibri" {
			t.Errorf("fontFamily = %q, want %q", merged[FontFamily], "Calibri")
		}
		if merged[BodySize] != "11" {
			t.Errorf("empty override should be ignored, bodySize = %q", merged[BodySize])
		}
		if base[PrimaryBlue] != "1E3A5F" {
			t.Error("Merge() modified the receiver")
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		t.Parallel()

		_, err := DefaultStyle().Merge(map[string]string{"primaryBlu": "003366"})
		var ute *UnknownStyleTokenError
		if !errors.As(err, &ute) || ute.Token != "primaryBlu" {
			t.Errorf("Merge() error = %v, want UnknownStyleTokenError for primaryBlu", err)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()

		_, err := DefaultStyle().Merge(map[string]string{"titleSize": "huge"})
		if !errors.Is(err, ErrInvalidStyleValue) {
			t.Errorf("Merge() error = %v, want ErrInvalidStyleValue", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestStyleConfig_Lookups - Color, Points and Value
// ---------------------------------------------------------------------------

func TestStyleConfig_Lookups(t *testing.T) {
	t.Parallel()

	style := DefaultStyle()
	style[LightBlue] = "e8f4f8"

	if got, err := style.Color(LightBlue); err != nil || got != "E8F4F8" {
		t.Errorf("Color(lightBlue) = %q, %v; want E8F4F8", got, err)
	}
	if got, err := style.Points(Heading1Size); err != nil || got != 16 {
		t.Errorf("Points(heading1Size) = %v, %v; want 16", got, err)
	}
	if got, err := style.Value(BorderStyle); err != nil || got != "single" {
		t.Errorf("Value(borderStyle) = %q, %v; want single", got, err)
	}

	delete(style, Gray)
	if _, err := style.Color(Gray); !errors.Is(err, ErrUnknownStyleToken) {
		t.Errorf("Color(missing) error = %v, want ErrUnknownStyleToken", err)
	}
	if _, err := style.Points("nope"); !errors.Is(err, ErrUnknownStyleToken) {
		t.Errorf("Points(missing) error = %v, want ErrUnknownStyleToken", err)
	}
}

// ---------------------------------------------------------------------------
// TestParseStyle - YAML overrides over the defaults
// ---------------------------------------------------------------------------

func TestParseStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		check   func(t *testing.T, s StyleConfig)
		wantErr error
	}{
		{
			name: "partial override",
			data: "primaryBlue: \"#222222\"\nbodySize: 10\n",
			check: func(t *testing.T, s StyleConfig) {
				if s[PrimaryBlue] != "222222" || s[BodySize] != "10" {
					t.Errorf("overrides not applied: primaryBlue=%q bodySize=%q", s[PrimaryBlue], s[BodySize])
				}
				if s[DangerRed] != "DC3545" {
					t.Errorf("defaults lost: dangerRed=%q", s[DangerRed])
				}
			},
		},
		{
			name: "comment only keeps defaults",
			data: "# nothing to change\n",
			check: func(t *testing.T, s StyleConfig) {
				if diff := cmp.Diff(DefaultStyle(), s); diff != "" {
					t.Errorf("style mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{name: "unknown token", data: "accentPurple: 800080\n", wantErr: ErrUnknownStyleToken},
		{name: "bad value", data: "borderStyle: wavy\n", wantErr: ErrInvalidStyleValue},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseStyle([]byte(tt.data))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseStyle() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStyle() unexpected error: %v", err)
			}
			tt.check(t, got)
		})
	}
}
