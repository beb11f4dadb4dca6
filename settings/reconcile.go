package settings

import (
	"fmt"
	"reflect"
	"strings"
)

// Schema describes the recognized field names of a settings struct, so
// merged keys can be rewritten to their canonical spelling irrespective of
// case. Nested schemas reconcile nested mappings recursively.
type Schema struct {
	fields     map[string]*Schema // canonical name -> nested schema (nil for leaves)
	aliases    map[string]string  // lowercased alias -> canonical name
	allowExtra bool
}

// NewSchema creates a schema recognizing the given canonical field names.
func NewSchema(names ...string) *Schema {
	s := &Schema{
		fields:  make(map[string]*Schema, len(names)),
		aliases: make(map[string]string),
	}
	for _, name := range names {
		s.fields[name] = nil
	}
	return s
}

// WithNested attaches a nested schema under a canonical field name.
func (s *Schema) WithNested(name string, nested *Schema) *Schema {
	s.fields[name] = nested
	return s
}

// WithAlias maps an alternative spelling (e.g. "apiKey") onto a canonical
// field name. Alias matching is case-insensitive like field matching.
func (s *Schema) WithAlias(alias, canonical string) *Schema {
	s.aliases[strings.ToLower(alias)] = canonical
	return s
}

// PermitExtra marks the schema as accepting unrecognized keys. The
// reconciler passes unmatched keys through either way; the flag is consumed
// by the schema validator, which owns extra-field rejection.
func (s *Schema) PermitExtra() *Schema {
	s.allowExtra = true
	return s
}

// ExtraPermitted reports the extra-fields policy.
func (s *Schema) ExtraPermitted() bool {
	return s.allowExtra
}

// Fields returns the canonical field names.
func (s *Schema) Fields() []string {
	names := make([]string, 0, len(s.fields))
	for name := range s.fields {
		names = append(names, name)
	}
	return names
}

// match resolves an input key to its canonical field name.
func (s *Schema) match(key string) (string, bool) {
	lower := strings.ToLower(key)
	if canonical, ok := s.aliases[lower]; ok {
		return canonical, true
	}
	for canonical := range s.fields {
		if strings.ToLower(canonical) == lower {
			return canonical, true
		}
	}
	return "", false
}

// reconcile rewrites keys of m to the schema's canonical spelling on
// case-insensitive (or alias) match, recursing into nested schemas. Two
// distinct input keys colliding onto one canonical name fail with
// ErrAmbiguousKey. Unmatched keys pass through unchanged.
func reconcile(m Mapping, s *Schema, keyPath string) (Mapping, error) {
	out := make(Mapping, len(m))
	matchedBy := make(map[string]string, len(m)) // canonical -> input key

	for key, value := range m {
		canonical, ok := s.match(key)
		if !ok {
			out[key] = value
			continue
		}

		if prev, dup := matchedBy[canonical]; dup {
			first, second := prev, key
			if second < first {
				first, second = second, first
			}
			return nil, ErrAmbiguousKey.
				WithMsgf("keys %q and %q both match field %q (at %s)",
					first, second, canonical, joinPath(keyPath, canonical)).
				WithData("keys", []string{first, second}).
				WithData("canonical", canonical).
				WithData("key_path", joinPath(keyPath, canonical))
		}
		matchedBy[canonical] = key

		if nested := s.fields[canonical]; nested != nil {
			if nm, isMapping := value.(Mapping); isMapping {
				reconciled, err := reconcile(nm, nested, joinPath(keyPath, canonical))
				if err != nil {
					return nil, err
				}
				out[canonical] = reconciled
				continue
			}
		}
		out[canonical] = value
	}
	return out, nil
}

// SchemaOf reflects a schema from a settings struct. Field names come from
// the mapstructure tag when present (the tag viper uses for Unmarshal),
// otherwise from the lowercased field name. Struct-typed fields contribute
// nested schemas.
func SchemaOf(target any) (*Schema, error) {
	t := reflect.TypeOf(target)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema target must be a struct or pointer to struct, got %T", target)
	}
	return schemaOfStruct(t), nil
}

func schemaOfStruct(t reflect.Type) *Schema {
	s := NewSchema()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := strings.ToLower(field.Name)
		if tag := field.Tag.Get("mapstructure"); tag != "" {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
		}

		ft := field.Type
		for ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct {
			s.fields[name] = schemaOfStruct(ft)
			continue
		}
		s.fields[name] = nil
	}
	return s
}
