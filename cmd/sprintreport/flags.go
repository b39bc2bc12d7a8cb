package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common    commonFlags
	output    string
	style     string
	assetPath string
	date      string
	workers   int
	set       map[string]string
	dryRun    bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string, stderr io.Writer) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet(cmdGenerate, flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &generateFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVar(&f.style, "style", "", "style set name or YAML path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.date, "date", "", "report date override (\"auto\" = today)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringToStringVar(&f.set, "set", nil, "style token override, e.g. --set primaryBlue=003366")
	fs.BoolVar(&f.dryRun, "dry-run", false, "validate and assemble without writing files")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printGenerateUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}

	return f, fs.Args(), nil
}
