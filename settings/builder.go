package settings

import (
	"fmt"

	"go.uber.org/zap"
)

// Priority ranks assigned by the builder. Each added source gets the next
// free rank above the previous one, so precedence follows call order.
const (
	priorityStep = 10
)

// LoaderBuilder assembles a Loader from an ordered list of source
// specifications. Later additions override earlier ones.
type LoaderBuilder struct {
	sources []Source
	schema  *Schema
	logger  *zap.Logger
	next    int
	err     error
}

// NewLoaderBuilder creates a loader builder.
func NewLoaderBuilder() *LoaderBuilder {
	return &LoaderBuilder{
		sources: make([]Source, 0, 4),
		next:    priorityStep,
	}
}

func (b *LoaderBuilder) nextPriority() int {
	p := b.next
	b.next += priorityStep
	return p
}

// WithFile adds a required configuration file.
func (b *LoaderBuilder) WithFile(path string, format Format) *LoaderBuilder {
	b.sources = append(b.sources, NewFileSource(path, format, b.nextPriority()))
	return b
}

// WithOptionalFile adds a configuration file that may be absent.
func (b *LoaderBuilder) WithOptionalFile(path string, format Format) *LoaderBuilder {
	b.sources = append(b.sources, NewOptionalFileSource(path, format, b.nextPriority()))
	return b
}

// WithDirectory adds a directory of override files.
func (b *LoaderBuilder) WithDirectory(path string, format Format) *LoaderBuilder {
	b.sources = append(b.sources, NewDirSource(path, format, b.nextPriority()))
	return b
}

// WithEnvPrefix adds an environment mapping source scanning PREFIX_*
// variables.
func (b *LoaderBuilder) WithEnvPrefix(prefix string) *LoaderBuilder {
	b.sources = append(b.sources, NewEnvPrefixSource(prefix, b.nextPriority()))
	return b
}

// WithEnvironment adds the substitution stage at the current position:
// ${VAR} / ${VAR:-default} tokens in everything added before it are
// resolved against the process environment.
func (b *LoaderBuilder) WithEnvironment() *LoaderBuilder {
	b.sources = append(b.sources, NewEnvSource(b.nextPriority()))
	return b
}

// WithSource adds a pre-built source with its own priority.
func (b *LoaderBuilder) WithSource(source Source) *LoaderBuilder {
	b.sources = append(b.sources, source)
	return b
}

// WithSchema sets the reconciliation schema.
func (b *LoaderBuilder) WithSchema(schema *Schema) *LoaderBuilder {
	b.schema = schema
	return b
}

// WithSchemaOf reflects the reconciliation schema from a settings struct.
func (b *LoaderBuilder) WithSchemaOf(target any) *LoaderBuilder {
	schema, err := SchemaOf(target)
	if err != nil {
		b.err = err
		return b
	}
	b.schema = schema
	return b
}

// WithLogger sets the logger handed to the Loader.
func (b *LoaderBuilder) WithLogger(logger *zap.Logger) *LoaderBuilder {
	b.logger = logger
	return b
}

// Build assembles the loader and runs the first resolution.
func (b *LoaderBuilder) Build() (*Loader, error) {
	if b.err != nil {
		return nil, fmt.Errorf("build settings loader: %w", b.err)
	}

	loader := NewLoader()
	loader.SetSchema(b.schema)
	loader.SetLogger(b.logger)
	for _, source := range b.sources {
		loader.AddSource(source)
	}

	if _, err := loader.Resolve(); err != nil {
		return nil, err
	}
	return loader, nil
}
