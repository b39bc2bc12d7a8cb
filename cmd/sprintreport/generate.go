package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	sprintreport "github.com/alnah/go-sprintreport"
	"github.com/alnah/go-sprintreport/internal/assets"
	"github.com/alnah/go-sprintreport/internal/config"
	"github.com/alnah/go-sprintreport/internal/dateutil"
	"github.com/alnah/go-sprintreport/internal/fileutil"
	"github.com/alnah/go-sprintreport/internal/hints"
)

// Sentinel errors for generate operations.
var (
	ErrReadStyle          = errors.New("failed to read style file")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// generateParams groups values shared by every job in a batch.
type generateParams struct {
	outputDir  string
	reportDate string // overrides each record's reportDate when set
	dryRun     bool
}

// runGenerateCommand parses flags and runs generation with signal handling.
func runGenerateCommand(args []string, env *Environment) error {
	flags, positional, err := parseGenerateFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	return runGenerate(ctx, positional, flags, env)
}

// runGenerate orchestrates report generation.
func runGenerate(ctx context.Context, positional []string, flags *generateFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	log := env.logger(flags.common)
	defer func() { _ = log.Sync() }()

	envSet := loadEnvSettings(env.Getenv)
	if env.Environ != nil {
		warnUnknownEnvVars(env.Environ(), log)
	}

	cfg, err := loadConfig(flags.common.config, envSet)
	if err != nil {
		return err
	}
	applyEnvSettings(envSet, cfg)
	mergeFlags(flags, cfg)

	resolver, err := assets.NewResolver(cfg.Assets.BasePath)
	if err != nil {
		return fmt.Errorf("loading assets: %w", err)
	}

	style, err := resolveStyle(cfg, resolver)
	if err != nil {
		return err
	}
	log.Debug("style resolved", zap.String("name", styleName(cfg)), zap.Int("tokens", len(style)))

	reportDate, err := dateutil.ResolveDate(cfg.Content.ReportDate, env.Now())
	if err != nil {
		return fmt.Errorf("invalid report date: %w", err)
	}

	jobs, err := discoverJobs(positional, cfg.Content.Default)
	if err != nil {
		return err
	}

	workers := sprintreport.ResolveWorkers(cfg.Batch.Workers)
	log.Debug("generating",
		zap.Int("reports", len(jobs)),
		zap.Int("workers", workers),
		zap.Bool("dryRun", flags.dryRun))

	gen := sprintreport.NewGenerator(sprintreport.WithStyle(style))
	params := &generateParams{
		outputDir:  outputDir(cfg),
		reportDate: reportDate,
		dryRun:     flags.dryRun,
	}

	results := generateBatch(ctx, gen, resolver, jobs, params, workers, log)
	return reportResults(results, flags.common, flags.dryRun, env)
}

// loadConfig loads the config named by flag or environment, if any.
func loadConfig(name string, envSet *envSettings) (*config.Config, error) {
	if name == "" {
		name = envSet.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *generateFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}
	if flags.style != "" {
		cfg.Style.Name = flags.style
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
	if flags.date != "" {
		cfg.Content.ReportDate = flags.date
	}
	if flags.workers > 0 {
		cfg.Batch.Workers = flags.workers
	}
	if len(flags.set) > 0 {
		if cfg.Style.Overrides == nil {
			cfg.Style.Overrides = make(map[string]any, len(flags.set))
		}
		for k, v := range flags.set {
			cfg.Style.Overrides[k] = v
		}
	}
}

// resolveStyle loads the configured style set, by name through the asset
// loader or from a YAML path, then applies the config overrides.
func resolveStyle(cfg *config.Config, loader assets.Loader) (sprintreport.StyleConfig, error) {
	style := sprintreport.DefaultStyle()
	name := cfg.Style.Name

	if name != "" {
		var data []byte
		var err error
		if fileutil.IsFilePath(name) {
			data, err = os.ReadFile(name) // #nosec G304 -- user-provided style path
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrReadStyle, err)
			}
		} else {
			data, err = loader.LoadStyle(name)
			if err != nil {
				return nil, fmt.Errorf("loading style: %w", err)
			}
		}
		style, err = sprintreport.ParseStyle(data)
		if err != nil {
			return nil, fmt.Errorf("style %s: %w", name, err)
		}
	}

	merged, err := style.Merge(cfg.StyleOverrides())
	if err != nil {
		return nil, fmt.Errorf("style overrides: %w", err)
	}
	return merged, nil
}

func styleName(cfg *config.Config) string {
	if cfg.Style.Name == "" {
		return assets.DefaultStyleName
	}
	return cfg.Style.Name
}

func outputDir(cfg *config.Config) string {
	if cfg.Output.DefaultDir == "" {
		return "."
	}
	return cfg.Output.DefaultDir
}

// validateWorkers checks the --workers flag range.
func validateWorkers(n int) error {
	if n < 0 || n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}
