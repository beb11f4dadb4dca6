package settings

// Kind identifies the sort of configuration source.
type Kind string

const (
	KindFile        Kind = "file"
	KindDirectory   Kind = "directory"
	KindEnvironment Kind = "environment"
)

// Format identifies a supported configuration file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Document is one parsed configuration unit produced by a source.
// A directory source yields one Document per discovered file, in filename
// order, so the Loader can interleave them with other sources under a single
// ordering policy.
type Document struct {
	Path string // originating file path, empty for non-file sources
	Data Mapping
}

// Source interface for configuration data sources.
// All configuration sources (files, directories, environment variables)
// implement this interface.
type Source interface {
	// Data source name (for provenance and diagnostics)
	Name() string

	// Kind of the source; KindEnvironment marks the position in the
	// pipeline where substitution applies instead of contributing mappings
	Kind() Kind

	// Priority (higher numerical value overrides lower)
	// Suggested values:
	// - Base configuration file (config.yaml): 10
	// - Override directory (conf.d): 20
	// - Environment variable mapping: 50
	// - Environment substitution: 60
	Priority() int

	// Load configuration documents, in override order
	Load() ([]Document, error)
}
