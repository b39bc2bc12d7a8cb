package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	sprintreport "github.com/alnah/go-sprintreport"
	"github.com/alnah/go-sprintreport/internal/assets"
	"github.com/alnah/go-sprintreport/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrReadContent     = errors.New("failed to read content file")
	ErrParseContent    = errors.New("failed to parse content file")
	ErrCreateOutputDir = errors.New("failed to create output directory")
	ErrWriteReport     = errors.New("failed to write report")
	ErrDuplicateOutput = errors.New("another record produces the same report filename")
)

// ReportGenerator is the interface for the generation service.
type ReportGenerator interface {
	Generate(ctx context.Context, content *sprintreport.Content) (*sprintreport.Result, error)
}

// Compile-time interface implementation check.
var _ ReportGenerator = (*sprintreport.Generator)(nil)

// jobResult holds the outcome of a single generation.
type jobResult struct {
	Source      string
	OutputPath  string
	Fingerprint string
	Err         error
	Duration    time.Duration

	document []byte
}

// generateBatch generates every job concurrently, then writes the
// documents. Nothing is written for a job that failed, and two jobs that
// would write the same file both fail.
func generateBatch(ctx context.Context, gen ReportGenerator, loader assets.Loader, jobs []contentJob, params *generateParams, workers int, log *zap.Logger) []jobResult {
	if len(jobs) == 0 {
		return nil
	}

	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]jobResult, len(jobs))
	var wg sync.WaitGroup
	queue := make(chan int, len(jobs))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				if err := ctx.Err(); err != nil {
					results[idx] = jobResult{Source: jobs[idx].Source(), Err: err}
					continue
				}
				results[idx] = generateOne(ctx, gen, loader, jobs[idx], params)
				log.Debug("generated",
					zap.String("source", results[idx].Source),
					zap.Duration("duration", results[idx].Duration),
					zap.Error(results[idx].Err))
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)
	wg.Wait()

	markDuplicates(results)
	if !params.dryRun {
		writeResults(results, params.outputDir)
	}
	return results
}

// generateOne loads, generates and holds one report in memory.
func generateOne(ctx context.Context, gen ReportGenerator, loader assets.Loader, job contentJob, params *generateParams) jobResult {
	start := time.Now()
	result := jobResult{Source: job.Source()}

	content, err := loadJobContent(loader, job)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	if params.reportDate != "" {
		content.ReportDate = params.reportDate
	}

	res, err := gen.Generate(ctx, content)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	result.OutputPath = filepath.Join(params.outputDir, res.Filename)
	result.Fingerprint = res.Fingerprint
	result.document = res.Document
	result.Duration = time.Since(start)
	return result
}

// loadJobContent reads and decodes a job's content record.
func loadJobContent(loader assets.Loader, job contentJob) (*sprintreport.Content, error) {
	var data []byte
	var err error
	if job.Path != "" {
		data, err = os.ReadFile(job.Path) // #nosec G304 -- user-provided content path
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadContent, err)
		}
	} else {
		data, err = loader.LoadContent(job.Name)
		if err != nil {
			return nil, err
		}
	}

	content, err := sprintreport.ParseContent(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseContent, err)
	}
	return content, nil
}

// markDuplicates fails every successful result whose output path is
// shared with another.
func markDuplicates(results []jobResult) {
	seen := make(map[string][]int, len(results))
	for i, r := range results {
		if r.Err == nil {
			seen[r.OutputPath] = append(seen[r.OutputPath], i)
		}
	}
	for path, idxs := range seen {
		if len(idxs) < 2 {
			continue
		}
		for _, i := range idxs {
			results[i].Err = fmt.Errorf("%w: %s", ErrDuplicateOutput, filepath.Base(path))
			results[i].document = nil
		}
	}
}

// writeResults writes successful documents atomically.
func writeResults(results []jobResult, outputDir string) {
	var dirErr error
	dirReady := false

	for i := range results {
		r := &results[i]
		if r.Err != nil {
			continue
		}
		if !dirReady && dirErr == nil {
			if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
				dirErr = fmt.Errorf("%w: %w", ErrCreateOutputDir, err)
			} else {
				dirReady = true
			}
		}
		if dirErr != nil {
			r.Err = dirErr
			continue
		}
		if err := fileutil.WriteFileAtomic(r.OutputPath, r.document, filePermissions); err != nil {
			r.Err = fmt.Errorf("%w: %w", ErrWriteReport, err)
		}
		r.document = nil
	}
}
