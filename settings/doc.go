// Package settings resolves application configuration from layered sources
// (YAML/TOML files, directories of override files, process environment
// variables) into a single merged mapping with deterministic precedence.
//
// The pipeline: each mapping source loads its documents, the documents are
// deep-merged in ascending priority order (later sources override earlier
// ones), environment substitution rewrites ${VAR} / ${VAR:-default} tokens in
// string leaves, and the result is reconciled against a target schema's field
// names with case-insensitive matching before being handed to a validator.
//
// Typical usage:
//
//	loader, err := settings.NewLoaderBuilder().
//	    WithFile("config.yaml", settings.FormatYAML).
//	    WithDirectory("conf.d", settings.FormatYAML).
//	    WithEnvironment().
//	    Build()
package settings
