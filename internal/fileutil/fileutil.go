// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Sentinel errors for file utility operations.
var (
	ErrEmptyName     = errors.New("name has no filename-safe characters")
	ErrPathTraversal = errors.New("name contains path separator or null byte")
)

// SafeName converts a display name to a filename component.
// Spaces become underscores; anything other than letters, digits,
// underscores and hyphens is dropped. Capitalization is kept.
func SafeName(name string) (string, error) {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '_'
		case r == '_' || r == '-':
			return r
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return r
		default:
			return -1
		}
	}, strings.TrimSpace(name))

	if strings.Trim(mapped, "_-") == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyName, name)
	}
	return mapped, nil
}

// ValidateBaseName checks that name can be joined to a directory
// without escaping it.
func ValidateBaseName(name string) error {
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrEmptyName, name)
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("%w: %q", ErrPathTraversal, name)
	}
	return nil
}

// WriteFileAtomic writes data to path through a temporary file in the
// same directory, so readers never observe a partially written file.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
//
// Examples:
//   - "print" -> false (name)
//   - "./styles/print.yaml" -> true
//   - "C:\reports\irdose.yaml" -> true
//   - "irdose.yaml" -> true (has a YAML extension)
func IsFilePath(s string) bool {
	if strings.ContainsAny(s, "/\\") {
		return true
	}
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}
