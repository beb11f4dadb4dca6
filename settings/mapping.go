package settings

// Mapping is a nested configuration structure of string keys to values.
// Values are scalars (string, number, bool, nil), []any sequences, or nested
// Mappings. Loaders normalize parser output into this closed shape so the
// merge and substitution stages never see foreign map types.
type Mapping map[string]any

// DeepClone returns a structurally independent copy of the mapping.
func (m Mapping) DeepClone() Mapping {
	if m == nil {
		return Mapping{}
	}
	out := make(Mapping, len(m))
	for k, v := range m {
		out[k] = deepCloneValue(v)
	}
	return out
}

func deepCloneValue(v any) any {
	switch t := v.(type) {
	case Mapping:
		return t.DeepClone()
	case map[string]any:
		return normalizeMapping(t).DeepClone()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = deepCloneValue(e)
		}
		return out
	default:
		return v
	}
}

// Plain converts the mapping into untyped nested maps, for interop with
// libraries that type-switch on map[string]any rather than reflecting over
// map kinds.
func (m Mapping) Plain() map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = plainValue(v)
	}
	return out
}

func plainValue(v any) any {
	switch t := v.(type) {
	case Mapping:
		return t.Plain()
	case map[string]any:
		return normalizeMapping(t).Plain()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plainValue(e)
		}
		return out
	default:
		return v
	}
}

// normalizeMapping converts raw parser output (nested map[string]any) into
// the Mapping shape, recursively.
func normalizeMapping(raw map[string]any) Mapping {
	out := make(Mapping, len(raw))
	for k, v := range raw {
		out[k] = normalizeValue(v)
	}
	return out
}

// normalizeValue also canonicalizes numeric scalars (int64/float64) so
// equivalent YAML and TOML documents produce structurally identical
// mappings regardless of parser-specific integer widths.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case Mapping:
		return normalizeMapping(t)
	case map[string]any:
		return normalizeMapping(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeValue(e)
		}
		return out
	case int:
		return int64(t)
	case int32:
		return int64(t)
	case uint64:
		return int64(t)
	case float32:
		return float64(t)
	default:
		return v
	}
}

// joinPath builds a dotted key path for diagnostics.
func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}
