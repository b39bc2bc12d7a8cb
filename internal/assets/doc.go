// Package assets provides named style sets and sample content records.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in sets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in style sets (default, print) and the
// irdose sample content record, embedded at compile time.
//
// FilesystemLoader allows users to provide their own style sets and content
// records from a directory, with path traversal protection and symlink
// resolution.
//
// Resolver is the loader used by the CLI. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader if the asset is
// not found. This enables overriding specific assets while keeping defaults.
//
// # Directory Structure
//
// Assets are organized by type:
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.yaml          # token: value overrides (e.g., print.yaml)
//	└── content/
//	    └── {name}.yaml          # content records (e.g., irdose.yaml)
//
// Loaders return raw YAML; decoding belongs to the caller.
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
