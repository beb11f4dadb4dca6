package settings

import (
	"fmt"
	"sort"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Loader resolves configuration from multiple data sources.
//
// Each Resolve call runs the full pipeline over the configured sources:
// load -> deep-merge in ascending priority order -> environment substitution
// at every KindEnvironment marker position -> schema reconciliation. The
// pipeline is fail-fast: any stage failure aborts the attempt with no
// partial result. Resolution is stateless per call, so independent loaders
// may run concurrently without coordination.
type Loader struct {
	sources     []Source
	schema      *Schema
	lookup      LookupFunc
	logger      *zap.Logger
	result      *MergedResult
	v           *viper.Viper // resolved mapping synced here for typed access
	loadedFiles []string
}

// NewLoader creates a configuration loader.
func NewLoader() *Loader {
	return &Loader{
		sources: make([]Source, 0),
		logger:  zap.NewNop(),
		v:       viper.New(),
	}
}

// AddSource adds a configuration data source.
func (l *Loader) AddSource(source Source) {
	l.sources = append(l.sources, source)
}

// SetSchema sets the target schema for case reconciliation. Without a
// schema, merged keys are handed over as-is.
func (l *Loader) SetSchema(schema *Schema) {
	l.schema = schema
}

// SetLogger sets the logger used for the post-resolution debug record.
// The pipeline itself never logs.
func (l *Loader) SetLogger(logger *zap.Logger) {
	if logger != nil {
		l.logger = logger
	}
}

// SetLookup replaces the environment used for substitution. Defaults to the
// process environment; tests can inject a fixed variable set.
func (l *Loader) SetLookup(lookup LookupFunc) {
	l.lookup = lookup
}

// Schema returns the configured schema, if any.
func (l *Loader) Schema() *Schema {
	return l.schema
}

// Resolve loads, merges, substitutes and reconciles all sources.
func (l *Loader) Resolve() (*MergedResult, error) {
	// Stable sort: equal-priority sources keep registration order
	ordered := make([]Source, len(l.sources))
	copy(ordered, l.sources)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority() < ordered[j].Priority()
	})

	result := &MergedResult{
		Data:       Mapping{},
		Provenance: make(map[string]ProvenanceRecord),
	}
	loadedFiles := make([]string, 0)

	for _, source := range ordered {
		// A plain environment source marks the substitution position:
		// it rewrites everything merged so far instead of contributing
		// a mapping of its own.
		if _, marker := source.(*EnvSource); marker {
			substituted, err := l.substituteStage(result.Data)
			if err != nil {
				return nil, err
			}
			result.Data = substituted
			continue
		}

		docs, err := source.Load()
		if err != nil {
			return nil, fmt.Errorf("load source %s: %w", source.Name(), err)
		}
		for _, doc := range docs {
			result.mergeDocument(source, doc)
			if doc.Path != "" {
				loadedFiles = append(loadedFiles, doc.Path)
			}
		}
	}

	if l.schema != nil {
		reconciled, err := reconcile(result.Data, l.schema, "")
		if err != nil {
			return nil, err
		}
		result.Data = reconciled
	}

	l.result = result
	l.loadedFiles = loadedFiles
	l.syncToViper()

	l.logger.Debug("settings resolved",
		zap.Int("sources", len(ordered)),
		zap.Strings("files", loadedFiles),
		zap.Int("keys", len(result.Data)),
	)
	return result, nil
}

func (l *Loader) substituteStage(m Mapping) (Mapping, error) {
	if l.lookup != nil {
		return substitute(m, l.lookup)
	}
	return Substitute(m)
}

// syncToViper mirrors the resolved mapping into a fresh viper instance for
// the typed access methods and Unmarshal. Values go in as plain nested maps;
// viper's cast layer does not traverse named map types.
func (l *Loader) syncToViper() {
	v := viper.New()
	for key, value := range l.result.Data {
		v.Set(key, plainValue(value))
	}
	l.v = v
}

// Result returns the last resolved result (nil before the first Resolve).
func (l *Loader) Result() *MergedResult {
	return l.result
}

// Unmarshal parses the resolved configuration into a struct.
func (l *Loader) Unmarshal(target any) error {
	return l.v.Unmarshal(target)
}

// UnmarshalKey parses one configuration section into a struct.
func (l *Loader) UnmarshalKey(key string, target any) error {
	return l.v.UnmarshalKey(key, target)
}

// Get returns a configuration value.
func (l *Loader) Get(key string) any {
	return l.v.Get(key)
}

// GetString returns a string configuration value.
func (l *Loader) GetString(key string) string {
	return l.v.GetString(key)
}

// GetInt returns an integer configuration value.
func (l *Loader) GetInt(key string) int {
	return l.v.GetInt(key)
}

// GetBool returns a boolean configuration value.
func (l *Loader) GetBool(key string) bool {
	return l.v.GetBool(key)
}

// IsSet reports whether a configuration key is present.
func (l *Loader) IsSet(key string) bool {
	return l.v.IsSet(key)
}

// AllSettings returns the resolved configuration as a plain nested map.
func (l *Loader) AllSettings() map[string]any {
	return l.v.AllSettings()
}

// LoadedFiles returns the file paths that contributed to the last Resolve,
// in merge order.
func (l *Loader) LoadedFiles() []string {
	return l.loadedFiles
}

// Viper returns the underlying viper instance.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// Resolve runs a one-shot pipeline over the given sources. Sources merge in
// ascending priority; list order breaks ties, so sources built with equal
// priorities apply in the order given.
func Resolve(schema *Schema, sources ...Source) (*MergedResult, error) {
	loader := NewLoader()
	loader.SetSchema(schema)
	for _, s := range sources {
		loader.AddSource(s)
	}
	return loader.Resolve()
}
