package settings

import (
	"path/filepath"
	"testing"

	"github.com/samber/do/v2"
)

func TestProvideLoader(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.yaml"), "app:\n  name: provided-app\n")

	injector := do.New()
	do.Provide(injector, ProvideLoader(ProvideLoaderOptions{
		ConfigFile: filepath.Join(dir, "config.yaml"),
	}))

	loader, err := do.Invoke[*Loader](injector)
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if loader == nil {
		t.Fatal("loader is nil")
	}

	if got := loader.GetString("app.name"); got != "provided-app" {
		t.Errorf("app.name = %s, want provided-app", got)
	}
}

func TestProvideLoader_Defaults(t *testing.T) {
	dir := t.TempDir()
	// Format defaults to yaml via the merged option defaults
	writeFile(t, filepath.Join(dir, "config.yaml"), "port: \"${PROVIDER_PORT:-5000}\"\n")

	injector := do.New()
	do.Provide(injector, ProvideLoader(ProvideLoaderOptions{
		ConfigFile: filepath.Join(dir, "config.yaml"),
	}))

	loader, err := do.Invoke[*Loader](injector)
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if got := loader.GetString("port"); got != "5000" {
		t.Errorf("port = %s, want 5000 (substitution enabled by default)", got)
	}
}

func TestProvideLoader_DisableSubstitution(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.yaml"), "port: \"${PROVIDER_PORT:-5000}\"\n")

	injector := do.New()
	do.Provide(injector, ProvideLoader(ProvideLoaderOptions{
		ConfigFile:          filepath.Join(dir, "config.yaml"),
		DisableSubstitution: true,
	}))

	loader, err := do.Invoke[*Loader](injector)
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if got := loader.GetString("port"); got != "${PROVIDER_PORT:-5000}" {
		t.Errorf("port = %s, want the unresolved literal", got)
	}
}

func TestProvideLoaderValue(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.yaml"), "key: value\n")

	loader, err := NewLoaderBuilder().
		WithFile(filepath.Join(dir, "config.yaml"), FormatYAML).
		Build()
	if err != nil {
		t.Fatalf("Build loader failed: %v", err)
	}

	injector := do.New()
	do.Provide(injector, ProvideLoaderValue(loader))

	gotLoader, err := do.Invoke[*Loader](injector)
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if gotLoader != loader {
		t.Fatal("loader mismatch")
	}
}
