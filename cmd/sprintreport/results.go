package main

import (
	"fmt"
	"path/filepath"
	"time"
)

// batchError summarizes failed jobs. It unwraps to the first failure so
// the exit code reflects its kind.
type batchError struct {
	failed int
	total  int
	first  error
}

func (e *batchError) Error() string {
	if e.total == 1 {
		return e.first.Error()
	}
	return fmt.Sprintf("%d of %d report(s) failed", e.failed, e.total)
}

func (e *batchError) Unwrap() error {
	return e.first
}

// resultSummary holds the count of succeeded and failed generations.
type resultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed generations.
func countResults(results []jobResult) resultSummary {
	var summary resultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// reportResults prints results and returns a *batchError when any failed.
// A single failed job is left for the caller to print.
func reportResults(results []jobResult, flags commonFlags, dryRun bool, env *Environment) error {
	summary := countResults(results)
	var first error

	for _, r := range results {
		if r.Err != nil {
			if first == nil {
				first = r.Err
			}
			if len(results) > 1 {
				fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.Source, r.Err, hintFor(r.Err))
			}
			continue
		}

		if flags.quiet {
			continue
		}

		switch {
		case dryRun:
			fmt.Fprintf(env.Stdout, "Validated %s -> %s (%s)\n", r.Source, filepath.Base(r.OutputPath), shortFingerprint(r.Fingerprint))
		case flags.verbose:
			fmt.Fprintf(env.Stdout, "%s -> %s (%v, %s)\n", r.Source, r.OutputPath, r.Duration.Round(time.Millisecond), shortFingerprint(r.Fingerprint))
		default:
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !flags.quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	if summary.Failed > 0 {
		return &batchError{failed: summary.Failed, total: len(results), first: first}
	}
	return nil
}

func shortFingerprint(fp string) string {
	if len(fp) > 12 {
		return fp[:12]
	}
	return fp
}
