package main

// Notes:
// - WriteFileAtomic failures after the directory exists are not simulated;
//   they depend on disk state.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	sprintreport "github.com/alnah/go-sprintreport"
	"github.com/alnah/go-sprintreport/internal/assets"
)

// stubGenerator returns a fixed result or error and counts calls.
type stubGenerator struct {
	filename string
	err      error
	calls    atomic.Int32
}

func (s *stubGenerator) Generate(_ context.Context, c *sprintreport.Content) (*sprintreport.Result, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	name := s.filename
	if name == "" {
		name = c.ProjectName + ".docx"
	}
	return &sprintreport.Result{Filename: name, Document: []byte("PK"), Fingerprint: "abc"}, nil
}

func TestGenerateBatch(t *testing.T) {
	t.Parallel()

	loader := assets.NewEmbeddedLoader()

	t.Run("writes every successful report", func(t *testing.T) {
		t.Parallel()

		in, out := t.TempDir(), filepath.Join(t.TempDir(), "reports")
		jobs := []contentJob{
			{Path: writeFile(t, in, "a.yaml", []byte("projectName: Acme\n"))},
			{Path: writeFile(t, in, "b.yaml", []byte("projectName: Beta\n"))},
		}
		gen := &stubGenerator{}

		results := generateBatch(context.Background(), gen, loader, jobs, &generateParams{outputDir: out}, 4, zap.NewNop())

		for _, r := range results {
			if r.Err != nil {
				t.Errorf("%s: unexpected error: %v", r.Source, r.Err)
			}
		}
		if got := listDir(t, out); len(got) != 2 {
			t.Errorf("output dir = %v, want 2 files", got)
		}
	})

	t.Run("duplicate filenames fail both and write nothing", func(t *testing.T) {
		t.Parallel()

		in, out := t.TempDir(), t.TempDir()
		jobs := []contentJob{
			{Path: writeFile(t, in, "a.yaml", []byte("projectName: Acme\n"))},
			{Path: writeFile(t, in, "b.yaml", []byte("projectName: Beta\n"))},
		}
		gen := &stubGenerator{filename: "same.docx"}

		results := generateBatch(context.Background(), gen, loader, jobs, &generateParams{outputDir: out}, 2, zap.NewNop())

		for _, r := range results {
			if !errors.Is(r.Err, ErrDuplicateOutput) {
				t.Errorf("%s: error = %v, want ErrDuplicateOutput", r.Source, r.Err)
			}
		}
		if got := listDir(t, out); len(got) != 0 {
			t.Errorf("output dir = %v, want empty", got)
		}
	})

	t.Run("dry run writes nothing", func(t *testing.T) {
		t.Parallel()

		out := t.TempDir()
		jobs := []contentJob{{Name: assets.SampleContentName}}
		gen := &stubGenerator{}

		results := generateBatch(context.Background(), gen, loader, jobs, &generateParams{outputDir: out, dryRun: true}, 1, zap.NewNop())

		if results[0].Err != nil {
			t.Fatalf("unexpected error: %v", results[0].Err)
		}
		if results[0].OutputPath != filepath.Join(out, "IRDose.docx") {
			t.Errorf("OutputPath = %q", results[0].OutputPath)
		}
		if got := listDir(t, out); len(got) != 0 {
			t.Errorf("output dir = %v, want empty", got)
		}
	})

	t.Run("report date override reaches the generator", func(t *testing.T) {
		t.Parallel()

		var seen string
		gen := generatorFunc(func(_ context.Context, c *sprintreport.Content) (*sprintreport.Result, error) {
			seen = c.ReportDate
			return &sprintreport.Result{Filename: "x.docx"}, nil
		})
		jobs := []contentJob{{Name: assets.SampleContentName}}

		generateBatch(context.Background(), gen, loader, jobs, &generateParams{outputDir: t.TempDir(), reportDate: "March 2, 2026", dryRun: true}, 1, zap.NewNop())

		if seen != "March 2, 2026" {
			t.Errorf("ReportDate = %q, want override", seen)
		}
	})

	t.Run("generator error is kept per job", func(t *testing.T) {
		t.Parallel()

		gen := &stubGenerator{err: sprintreport.ErrInvalidDimensions}
		jobs := []contentJob{{Name: assets.SampleContentName}}

		results := generateBatch(context.Background(), gen, loader, jobs, &generateParams{outputDir: t.TempDir()}, 1, zap.NewNop())

		if !errors.Is(results[0].Err, sprintreport.ErrInvalidDimensions) {
			t.Errorf("error = %v, want ErrInvalidDimensions", results[0].Err)
		}
	})

	t.Run("parse failure", func(t *testing.T) {
		t.Parallel()

		in := t.TempDir()
		jobs := []contentJob{{Path: writeFile(t, in, "bad.yaml", []byte("projectName: [unclosed"))}}
		gen := &stubGenerator{}

		results := generateBatch(context.Background(), gen, loader, jobs, &generateParams{outputDir: t.TempDir()}, 1, zap.NewNop())

		if !errors.Is(results[0].Err, ErrParseContent) {
			t.Errorf("error = %v, want ErrParseContent", results[0].Err)
		}
		if gen.calls.Load() != 0 {
			t.Error("generator called for unparseable content")
		}
	})

	t.Run("canceled context skips jobs", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		gen := &stubGenerator{}
		jobs := []contentJob{{Name: assets.SampleContentName}, {Name: assets.SampleContentName}}

		results := generateBatch(ctx, gen, loader, jobs, &generateParams{outputDir: t.TempDir()}, 2, zap.NewNop())

		for _, r := range results {
			if !errors.Is(r.Err, context.Canceled) {
				t.Errorf("error = %v, want context.Canceled", r.Err)
			}
		}
		if gen.calls.Load() != 0 {
			t.Errorf("generator called %d times after cancel", gen.calls.Load())
		}
	})

	t.Run("empty job list", func(t *testing.T) {
		t.Parallel()

		if got := generateBatch(context.Background(), &stubGenerator{}, loader, nil, &generateParams{}, 1, zap.NewNop()); got != nil {
			t.Errorf("generateBatch(nil) = %v, want nil", got)
		}
	})
}

// generatorFunc adapts a function to ReportGenerator.
type generatorFunc func(context.Context, *sprintreport.Content) (*sprintreport.Result, error)

func (f generatorFunc) Generate(ctx context.Context, c *sprintreport.Content) (*sprintreport.Result, error) {
	return f(ctx, c)
}
