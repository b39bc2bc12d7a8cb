package main

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/alnah/go-sprintreport/internal/config"
	"github.com/alnah/go-sprintreport/internal/hints"
)

// Environment variable names.
const (
	envPrefix    = "SPRINTREPORT_"
	envConfig    = hints.ConfigEnv
	envStyle     = envPrefix + "STYLE"
	envOutputDir = envPrefix + "OUTPUT_DIR"
	envAssetPath = envPrefix + "ASSET_PATH"
	envDate      = envPrefix + "DATE"
	envWorkers   = envPrefix + "WORKERS"
)

// envSettings holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envSettings struct {
	ConfigPath string // SPRINTREPORT_CONFIG: config name or path
	Style      string // SPRINTREPORT_STYLE: style set name or path
	OutputDir  string // SPRINTREPORT_OUTPUT_DIR: default output directory
	AssetPath  string // SPRINTREPORT_ASSET_PATH: custom asset directory
	Date       string // SPRINTREPORT_DATE: report date override
	Workers    int    // SPRINTREPORT_WORKERS: parallel workers
}

// knownEnvVars lists valid SPRINTREPORT_* environment variables.
var knownEnvVars = map[string]bool{
	envConfig:    true,
	envStyle:     true,
	envOutputDir: true,
	envAssetPath: true,
	envDate:      true,
	envWorkers:   true,
}

// loadEnvSettings reads configuration from environment variables.
// Invalid or non-positive worker counts are ignored.
func loadEnvSettings(getenv func(string) string) *envSettings {
	s := &envSettings{
		ConfigPath: getenv(envConfig),
		Style:      getenv(envStyle),
		OutputDir:  getenv(envOutputDir),
		AssetPath:  getenv(envAssetPath),
		Date:       getenv(envDate),
	}
	if w, err := strconv.Atoi(getenv(envWorkers)); err == nil && w > 0 {
		s.Workers = w
	}
	return s
}

// warnUnknownEnvVars logs warnings for unrecognized SPRINTREPORT_* variables.
func warnUnknownEnvVars(environ []string, log *zap.Logger) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			log.Warn("unknown environment variable (typo?)", zap.String("name", name))
		}
	}
}

// applyEnvSettings fills config values that are still empty.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvSettings(env *envSettings, cfg *config.Config) {
	if env.Style != "" && cfg.Style.Name == "" {
		cfg.Style.Name = env.Style
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.Date != "" && cfg.Content.ReportDate == "" {
		cfg.Content.ReportDate = env.Date
	}
	if env.Workers > 0 && cfg.Batch.Workers == 0 {
		cfg.Batch.Workers = env.Workers
	}
}
