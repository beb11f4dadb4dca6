package settings

import (
	"reflect"
	"testing"
)

// TestEnvSource tests the substitution marker source
func TestEnvSource(t *testing.T) {
	source := NewEnvSource(60)

	if source.Name() != "env" {
		t.Errorf("Name() = %s, want env", source.Name())
	}
	if source.Kind() != KindEnvironment {
		t.Errorf("Kind() = %s, want environment", source.Kind())
	}

	docs, err := source.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("marker source should contribute no documents, got %d", len(docs))
	}
}

// TestEnvPrefixSource tests scanning prefixed variables into a nested mapping
func TestEnvPrefixSource(t *testing.T) {
	t.Setenv("MYAPP_SERVER_PORT", "9002")
	t.Setenv("MYAPP_SERVER_HOST", "0.0.0.0")
	t.Setenv("MYAPP_DEBUG", "true")
	t.Setenv("OTHERAPP_SERVER_PORT", "1234")

	docs, err := NewEnvPrefixSource("MYAPP", 50).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("got %d documents, want 1", len(docs))
	}

	want := Mapping{
		"server": Mapping{
			"port": "9002",
			"host": "0.0.0.0",
		},
		"debug": "true",
	}
	if !reflect.DeepEqual(docs[0].Data, want) {
		t.Errorf("Load() = %#v, want %#v", docs[0].Data, want)
	}
}

// TestEnvPrefixSource_NoMatches tests that an unmatched prefix contributes
// nothing
func TestEnvPrefixSource_NoMatches(t *testing.T) {
	docs, err := NewEnvPrefixSource("DEFINITELY_NOT_SET_PREFIX", 50).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("got %d documents, want 0", len(docs))
	}
}

// TestEnvPrefixSource_EmptyPrefix tests that scanning is disabled without a
// prefix
func TestEnvPrefixSource_EmptyPrefix(t *testing.T) {
	docs, err := NewEnvPrefixSource("", 50).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if docs != nil {
		t.Errorf("got %v, want nil", docs)
	}
}

// TestSetNested tests nested path construction
func TestSetNested(t *testing.T) {
	m := Mapping{}
	setNested(m, []string{"grpc", "server", "port"}, "9002")
	setNested(m, []string{"grpc", "server", "host"}, "::1")
	setNested(m, []string{"name"}, "demo")

	want := Mapping{
		"grpc": Mapping{
			"server": Mapping{"port": "9002", "host": "::1"},
		},
		"name": "demo",
	}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("setNested built %#v, want %#v", m, want)
	}
}
