package settings

import (
	"errors"
	"os"
	"testing"

	"github.com/KOMKZ/go-yogan-settings/errcode"
)

// writeFile writes a test fixture, failing the test on error
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// mkdir creates a directory tree for fixtures
func mkdir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// errData extracts the context data of an errcode error
func errData(t *testing.T, err error) map[string]any {
	t.Helper()
	var coded *errcode.Error
	if !errors.As(err, &coded) {
		t.Fatalf("error %v is not an errcode error", err)
	}
	return coded.Data()
}

// lookupFromMap builds a LookupFunc over a fixed variable set
func lookupFromMap(vars map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}
