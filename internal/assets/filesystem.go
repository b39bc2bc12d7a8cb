package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader loads assets from a directory on the filesystem.
// Implements Loader interface.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader for the given base path.
// Returns ErrInvalidBasePath if the path is not a valid, readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	// Containment checks compare real paths, so the base must be resolved too.
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}
	if _, err := os.ReadDir(absPath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{basePath: absPath}, nil
}

// BasePath returns the resolved absolute base directory.
func (f *FilesystemLoader) BasePath() string {
	return f.basePath
}

// LoadStyle loads a style set from the filesystem.
// Looks for {basePath}/styles/{name}.yaml
func (f *FilesystemLoader) LoadStyle(name string) ([]byte, error) {
	return f.load(kindStyles, name, ErrStyleNotFound)
}

// LoadContent loads a content record from the filesystem.
// Looks for {basePath}/content/{name}.yaml
func (f *FilesystemLoader) LoadContent(name string) ([]byte, error) {
	return f.load(kindContent, name, ErrContentNotFound)
}

func (f *FilesystemLoader) load(kind, name string, notFound error) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	filePath := filepath.Join(f.basePath, kind, name+assetExt)
	if err := f.verifyPathContainment(filePath); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- path validated above
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", notFound, name)
		}
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}

	return data, nil
}

// verifyPathContainment ensures the resolved file path is within basePath.
// Symlinks are resolved so a link pointing outside basePath is rejected.
func (f *FilesystemLoader) verifyPathContainment(filePath string) error {
	absFilePath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	// A missing file fails to resolve; the prefix check still applies and
	// the read reports not found.
	if realPath, err := filepath.EvalSymlinks(absFilePath); err == nil {
		absFilePath = realPath
	}

	// Trailing separator rejects sibling prefixes (/base/path vs /base/pathevil).
	if !strings.HasPrefix(absFilePath, f.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes base directory", ErrPathTraversal)
	}

	return nil
}

// Compile-time interface check.
var _ Loader = (*FilesystemLoader)(nil)
