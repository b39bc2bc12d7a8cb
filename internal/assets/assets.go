package assets

// Built-in asset names.
const (
	// DefaultStyleName is the reference palette and typography.
	DefaultStyleName = "default"

	// SampleContentName is the embedded sample report.
	SampleContentName = "irdose"
)

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a style set by name using the default embedded loader.
// The name should not include the .yaml extension or path components.
// Returns ErrStyleNotFound if the style does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadStyle(name string) ([]byte, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadContent loads a content record by name using the default embedded loader.
// Returns ErrContentNotFound if the record does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadContent(name string) ([]byte, error) {
	return defaultLoader.LoadContent(name)
}
