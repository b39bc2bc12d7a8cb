package main

import (
	"errors"
	"fmt"
	"os"

	sprintreport "github.com/alnah/go-sprintreport"
	"github.com/alnah/go-sprintreport/internal/assets"
	"github.com/alnah/go-sprintreport/internal/config"
	"github.com/alnah/go-sprintreport/internal/dateutil"
	"github.com/alnah/go-sprintreport/internal/yamlutil"
)

// Exit codes for the sprintreport CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess       = 0 // Report(s) generated
	ExitGeneral       = 1 // General/unexpected error
	ExitUsage         = 2 // Invalid flags, config, content, or style
	ExitIO            = 3 // File not found, permission denied, write failure
	ExitSerialization = 4 // The document writer failed
)

// ErrUsage marks command-line usage errors.
var ErrUsage = errors.New("usage error")

// usageError wraps a flag or argument error so it maps to ExitUsage.
func usageError(err error) error {
	return fmt.Errorf("%w: %w", ErrUsage, err)
}

// errUnknownCommand reports an unrecognized first argument.
func errUnknownCommand(name string) error {
	return fmt.Errorf("%w: unknown command: %s", ErrUsage, name)
}

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Serialization first: a SerializationError also carries the writer's
	// own error, which may look like anything.
	if errors.Is(err, sprintreport.ErrSerialization) {
		return ExitSerialization
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadContent) ||
		errors.Is(err, ErrReadStyle) ||
		errors.Is(err, ErrReadReport) ||
		errors.Is(err, ErrWriteReport) ||
		errors.Is(err, ErrCreateOutputDir) ||
		errors.Is(err, ErrNoContent) ||
		errors.Is(err, assets.ErrAssetRead) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrParseContent) ||
		errors.Is(err, ErrDuplicateOutput) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, sprintreport.ErrNilContent) ||
		errors.Is(err, sprintreport.ErrMissingField) ||
		errors.Is(err, sprintreport.ErrUnknownStatus) ||
		errors.Is(err, sprintreport.ErrUnknownStyleToken) ||
		errors.Is(err, sprintreport.ErrInvalidDimensions) ||
		errors.Is(err, sprintreport.ErrInvalidReportDate) ||
		errors.Is(err, sprintreport.ErrInvalidStyleValue) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrContentNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, yamlutil.ErrInputTooLarge) {
		return ExitUsage
	}

	return ExitGeneral
}
