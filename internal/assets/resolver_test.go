package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewResolver(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses embedded only", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewResolver("")
		if err != nil {
			t.Fatalf("NewResolver(\"\") error = %v", err)
		}
		if resolver.HasCustomLoader() {
			t.Error("expected no custom loader for empty path")
		}
	})

	t.Run("valid custom path", func(t *testing.T) {
		t.Parallel()

		resolver, err := NewResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewResolver() error = %v", err)
		}
		if !resolver.HasCustomLoader() {
			t.Error("expected custom loader for valid path")
		}
	})

	t.Run("invalid custom path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewResolver(filepath.Join(t.TempDir(), "absent"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestResolver_Fallback(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, "styles", "print", "fontFamily: Garamond\n")
	writeAsset(t, dir, "content", "acme", "projectName: Acme\n")

	resolver, err := NewResolver(dir)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		load     func() ([]byte, error)
		contains string
		wantErr  error
	}{
		{
			name:     "custom style overrides embedded",
			load:     func() ([]byte, error) { return resolver.LoadStyle("print") },
			contains: "Garamond",
		},
		{
			name:     "missing custom style falls back",
			load:     func() ([]byte, error) { return resolver.LoadStyle("default") },
			contains: "primaryBlue:",
		},
		{
			name:     "custom content",
			load:     func() ([]byte, error) { return resolver.LoadContent("acme") },
			contains: "Acme",
		},
		{
			name:     "missing custom content falls back",
			load:     func() ([]byte, error) { return resolver.LoadContent(SampleContentName) },
			contains: "IRDose",
		},
		{
			name:    "missing everywhere",
			load:    func() ([]byte, error) { return resolver.LoadContent("nowhere") },
			wantErr: ErrContentNotFound,
		},
		{
			name:    "validation errors do not fall back",
			load:    func() ([]byte, error) { return resolver.LoadStyle("../print") },
			wantErr: ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.load()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(string(got), tt.contains) {
				t.Errorf("content %q missing %q", got, tt.contains)
			}
		})
	}
}

func TestResolver_ReadErrorDoesNotFallBack(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	// A directory where a file is expected makes the read fail with
	// something other than not-exist.
	if err := os.MkdirAll(filepath.Join(dir, "styles", "default.yaml"), 0o750); err != nil {
		t.Fatal(err)
	}

	resolver, err := NewResolver(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := resolver.LoadStyle("default"); !errors.Is(err, ErrAssetRead) {
		t.Errorf("LoadStyle() error = %v, want ErrAssetRead", err)
	}
}
