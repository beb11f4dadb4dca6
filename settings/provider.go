package settings

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/samber/do/v2"
	"go.uber.org/zap"
)

// ProvideLoaderOptions configures the Loader provider.
type ProvideLoaderOptions struct {
	ConfigFile          string  // base configuration file (optional-missing)
	ConfigDir           string  // override directory, e.g. "conf.d"
	Format              Format  // file format, defaults to yaml
	EnvPrefix           string  // environment mapping prefix, e.g. "APP"
	DisableSubstitution bool    // skip the ${VAR} substitution stage
	Schema              *Schema // reconciliation schema
	Logger              *zap.Logger
}

// providerDefaults are merged into caller options; mergo fills only the
// zero-valued fields.
var providerDefaults = ProvideLoaderOptions{
	Format: FormatYAML,
}

// ProvideLoader creates a Loader provider for samber/do injectors.
//
// Usage:
//
//	do.Provide(injector, settings.ProvideLoader(settings.ProvideLoaderOptions{
//	    ConfigFile: "configs/config.yaml",
//	    ConfigDir:  "configs/conf.d",
//	    EnvPrefix:  "APP",
//	}))
//	loader := do.MustInvoke[*settings.Loader](injector)
func ProvideLoader(opts ProvideLoaderOptions) func(do.Injector) (*Loader, error) {
	return func(i do.Injector) (*Loader, error) {
		if err := mergo.Merge(&opts, providerDefaults); err != nil {
			return nil, fmt.Errorf("apply loader option defaults: %w", err)
		}

		builder := NewLoaderBuilder()
		if opts.ConfigFile != "" {
			builder.WithOptionalFile(opts.ConfigFile, opts.Format)
		}
		if opts.ConfigDir != "" {
			builder.WithDirectory(opts.ConfigDir, opts.Format)
		}
		if opts.EnvPrefix != "" {
			builder.WithEnvPrefix(opts.EnvPrefix)
		}
		if !opts.DisableSubstitution {
			builder.WithEnvironment()
		}
		if opts.Schema != nil {
			builder.WithSchema(opts.Schema)
		}
		if opts.Logger != nil {
			builder.WithLogger(opts.Logger)
		}

		loader, err := builder.Build()
		if err != nil {
			return nil, fmt.Errorf("settings loader build failed: %w", err)
		}
		return loader, nil
	}
}

// ProvideLoaderValue registers an already-built Loader (tests or special
// wiring).
func ProvideLoaderValue(loader *Loader) func(do.Injector) (*Loader, error) {
	return func(i do.Injector) (*Loader, error) {
		return loader, nil
	}
}
