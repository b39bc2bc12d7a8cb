package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	sprintreport "github.com/alnah/go-sprintreport"
	"github.com/alnah/go-sprintreport/internal/assets"
	"github.com/alnah/go-sprintreport/internal/hints"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string

	// Logger overrides the logger built from --quiet/--verbose.
	Logger *zap.Logger
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Getenv:  os.Getenv,
		Environ: os.Environ,
	}
}

// logger returns the injected logger or builds a console logger writing
// to Stderr: errors only with quiet, debug with verbose, info otherwise.
func (e *Environment) logger(f commonFlags) *zap.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	level := zapcore.InfoLevel
	switch {
	case f.quiet:
		level = zapcore.ErrorLevel
	case f.verbose:
		level = zapcore.DebugLevel
	}
	return newLogger(e.Stderr, level)
}

// newLogger builds a compact console logger without timestamps or callers.
func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

// printError writes err and any matching hint to Stderr.
func (e *Environment) printError(err error) {
	fmt.Fprintf(e.Stderr, "error: %v%s\n", err, hintFor(err))
}

// hintFor returns an actionable hint for known error kinds.
func hintFor(err error) string {
	var missing *sprintreport.MissingFieldError
	var status *sprintreport.UnknownStatusError
	switch {
	case errors.As(err, &missing):
		return hints.ForMissingField(missing.Field)
	case errors.As(err, &status):
		return hints.ForUnknownStatus(status.Accepted)
	case errors.Is(err, sprintreport.ErrInvalidReportDate):
		return hints.ForInvalidReportDate()
	case errors.Is(err, sprintreport.ErrInvalidDimensions):
		return hints.ForInvalidDimensions()
	case errors.Is(err, assets.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.NewEmbeddedLoader().StyleNames())
	case errors.Is(err, assets.ErrContentNotFound):
		return hints.ForContentNotFound(assets.NewEmbeddedLoader().ContentNames())
	case errors.Is(err, ErrCreateOutputDir):
		return hints.ForOutputDirectory()
	}
	return ""
}
