package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alnah/go-sprintreport/internal/assets"
	"github.com/alnah/go-sprintreport/internal/fileutil"
)

// ErrNoContent indicates a directory argument held no content files.
var ErrNoContent = errors.New("no content files found")

// contentJob is one content record to generate. Exactly one of Path and
// Name is set: Path for a file on disk, Name for an asset record.
type contentJob struct {
	Path string
	Name string
}

// Source describes the job for messages.
func (j contentJob) Source() string {
	if j.Path != "" {
		return j.Path
	}
	return "asset:" + j.Name
}

// discoverJobs expands positional arguments into jobs. Directories are
// walked for .yaml and .yml files. With no arguments, the default content
// record is used: a name or path from config, else the embedded sample.
func discoverJobs(args []string, defaultContent string) ([]contentJob, error) {
	if len(args) == 0 {
		switch {
		case defaultContent == "":
			return []contentJob{{Name: assets.SampleContentName}}, nil
		case fileutil.IsFilePath(defaultContent):
			return []contentJob{{Path: defaultContent}}, nil
		default:
			return []contentJob{{Name: defaultContent}}, nil
		}
	}

	var jobs []contentJob
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadContent, err)
		}
		if !info.IsDir() {
			jobs = append(jobs, contentJob{Path: arg})
			continue
		}
		found, err := walkContentDir(arg)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("%w in %s", ErrNoContent, arg)
		}
		jobs = append(jobs, found...)
	}
	return jobs, nil
}

// walkContentDir returns the YAML files under dir in lexical order.
func walkContentDir(dir string) ([]contentJob, error) {
	var jobs []contentJob
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			jobs = append(jobs, contentJob{Path: path})
		}
		return nil
	})
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Path < jobs[j].Path })
	return jobs, err
}
