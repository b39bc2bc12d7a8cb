package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-sprintreport/internal/assets"
)

// fixedNow is the clock used by CLI tests.
var fixedNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

// testEnv returns an environment with captured output, an empty process
// environment and a no-op logger.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: func(k string) string { return vars[k] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			return out
		},
		Logger: zap.NewNop(),
	}
	return env, &stdout, &stderr
}

// sampleYAML returns the embedded sample content record.
func sampleYAML(t *testing.T) []byte {
	t.Helper()
	data, err := assets.LoadContent(assets.SampleContentName)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

// writeFile writes data under dir and returns the path.
func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// listDir returns the names of the files in dir.
func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

const sampleFilename = "IRDose_Vianeo_Sprint_Executive_Report_20251208.docx"
