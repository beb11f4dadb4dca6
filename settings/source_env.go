package settings

import (
	"os"
	"strings"
)

// EnvSource marks the position in the source list where environment
// substitution applies. It contributes no mapping of its own: the Loader
// rewrites ${VAR} / ${VAR:-default} tokens in everything merged before it.
type EnvSource struct {
	priority int
}

// NewEnvSource creates a substitution marker source.
func NewEnvSource(priority int) *EnvSource {
	return &EnvSource{priority: priority}
}

// Name data source name
func (s *EnvSource) Name() string {
	return "env"
}

// Kind source kind
func (s *EnvSource) Kind() Kind {
	return KindEnvironment
}

// Priority source priority
func (s *EnvSource) Priority() int {
	return s.priority
}

// Load contributes no documents; substitution is applied by the Loader.
func (s *EnvSource) Load() ([]Document, error) {
	return nil, nil
}

// EnvPrefixSource scans prefixed process environment variables into a nested
// mapping that participates in the merge like any file-derived source.
// APP_SERVER_PORT=9002 with prefix "APP" becomes {server: {port: "9002"}}.
type EnvPrefixSource struct {
	prefix   string
	priority int
}

// NewEnvPrefixSource creates an environment mapping source.
func NewEnvPrefixSource(prefix string, priority int) *EnvPrefixSource {
	return &EnvPrefixSource{
		prefix:   prefix,
		priority: priority,
	}
}

// Name data source name
func (s *EnvPrefixSource) Name() string {
	return "env:" + s.prefix
}

// Kind source kind
func (s *EnvPrefixSource) Kind() Kind {
	return KindEnvironment
}

// Priority source priority
func (s *EnvPrefixSource) Priority() int {
	return s.priority
}

// Load scans prefixed environment variables.
// APP_GRPC_SERVER_PORT -> grpc.server.port (values stay strings; typed
// coercion belongs to the schema validator).
func (s *EnvPrefixSource) Load() ([]Document, error) {
	data := Mapping{}
	if s.prefix == "" {
		return nil, nil
	}

	prefix := s.prefix + "_"
	for _, env := range os.Environ() {
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := parts[0]
		value := parts[1]

		if !strings.HasPrefix(key, prefix) {
			continue
		}
		segments := strings.Split(strings.ToLower(strings.TrimPrefix(key, prefix)), "_")
		setNested(data, segments, value)
	}

	if len(data) == 0 {
		return nil, nil
	}
	return []Document{{Data: data}}, nil
}

// setNested sets a value at a nested key path, creating intermediate
// mappings. A non-mapping intermediate value is replaced.
func setNested(m Mapping, keys []string, value any) {
	if len(keys) == 0 {
		return
	}
	current := m
	for i := 0; i < len(keys)-1; i++ {
		k := keys[i]
		nested, ok := current[k].(Mapping)
		if !ok {
			nested = Mapping{}
			current[k] = nested
		}
		current = nested
	}
	current[keys[len(keys)-1]] = value
}
