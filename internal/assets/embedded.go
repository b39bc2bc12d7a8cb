package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed styles/*.yaml
var styles embed.FS

//go:embed content/*.yaml
var content embed.FS

// EmbeddedLoader loads assets from embedded filesystem.
// Implements Loader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a style set from embedded assets by name.
// The name should not include the .yaml extension.
func (e *EmbeddedLoader) LoadStyle(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	data, err := styles.ReadFile(kindStyles + "/" + name + assetExt)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return data, nil
}

// LoadContent loads a content record from embedded assets by name.
// The name should not include the .yaml extension.
func (e *EmbeddedLoader) LoadContent(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	data, err := content.ReadFile(kindContent + "/" + name + assetExt)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrContentNotFound, name)
	}

	return data, nil
}

// StyleNames returns the embedded style set names, sorted.
func (e *EmbeddedLoader) StyleNames() []string {
	return names(styles, kindStyles)
}

// ContentNames returns the embedded content record names, sorted.
func (e *EmbeddedLoader) ContentNames() []string {
	return names(content, kindContent)
}

func names(fsys embed.FS, dir string) []string {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), assetExt) {
			out = append(out, strings.TrimSuffix(e.Name(), assetExt))
		}
	}
	sort.Strings(out)
	return out
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
