package assets

// Loader defines the contract for loading style sets and content records.
// Implementations may load from embedded assets, filesystem, S3, database, etc.
type Loader interface {
	// LoadStyle loads a style set by name (without .yaml extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) ([]byte, error)

	// LoadContent loads a content record by name (without .yaml extension).
	// Returns ErrContentNotFound if the record doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadContent(name string) ([]byte, error)
}

// Asset kinds, which are also the directory names under a base path.
const (
	kindStyles  = "styles"
	kindContent = "content"
)

// assetExt is the file extension of every asset.
const assetExt = ".yaml"
