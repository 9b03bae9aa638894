package driver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "package.yml")
	if err := os.WriteFile(path, []byte(strings.TrimSpace(contents)+"\n"), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadManifestBasic(t *testing.T) {
	path := writeManifest(t, `
name: greeter
entry: main.mml
vendor:
  strutil: https://example.com/strutil.git
`)

	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	if manifest.Name != "greeter" {
		t.Fatalf("Name = %q, want greeter", manifest.Name)
	}
	if manifest.Entry != "main.mml" {
		t.Fatalf("Entry = %q, want main.mml", manifest.Entry)
	}
	if manifest.Vendor["strutil"] != "https://example.com/strutil.git" {
		t.Fatalf("Vendor[strutil] = %q, unexpected", manifest.Vendor["strutil"])
	}
	if want := filepath.Join(filepath.Dir(path), "main.mml"); manifest.EntryPath() != want {
		t.Fatalf("EntryPath() = %q, want %q", manifest.EntryPath(), want)
	}
}

func TestLoadManifestSourcesResolveRelativeToManifestDir(t *testing.T) {
	path := writeManifest(t, `
name: greeter
entry: main.mml
sources:
  - lib/shapes.mml
  - lib/colors.mml
`)
	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}
	want := []string{
		filepath.Join(filepath.Dir(path), "lib", "shapes.mml"),
		filepath.Join(filepath.Dir(path), "lib", "colors.mml"),
	}
	got := manifest.SourcePaths()
	if len(got) != len(want) {
		t.Fatalf("SourcePaths() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SourcePaths()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoadManifestEmptySourceEntryFails(t *testing.T) {
	path := writeManifest(t, `
name: greeter
entry: main.mml
sources:
  - ""
`)
	if _, err := LoadManifest(path); err == nil {
		t.Fatalf("expected a validation error for an empty sources entry")
	}
}

func TestLoadManifestMissingNameFails(t *testing.T) {
	path := writeManifest(t, `
entry: main.mml
`)
	if _, err := LoadManifest(path); err == nil {
		t.Fatalf("expected a validation error for missing name")
	}
}

func TestLoadManifestMissingEntryFails(t *testing.T) {
	path := writeManifest(t, `
name: greeter
`)
	if _, err := LoadManifest(path); err == nil {
		t.Fatalf("expected a validation error for missing entry")
	}
}

func TestLoadManifestRejectsUnknownFields(t *testing.T) {
	path := writeManifest(t, `
name: greeter
entry: main.mml
bogus: true
`)
	if _, err := LoadManifest(path); err == nil {
		t.Fatalf("expected an error for an unknown manifest field")
	}
}

func TestFindManifestWalksUpward(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "package.yml"), []byte("name: a\nentry: main.mml\n"), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	found, err := FindManifest(nested)
	if err != nil {
		t.Fatalf("FindManifest returned error: %v", err)
	}
	if found != filepath.Join(root, "package.yml") {
		t.Fatalf("FindManifest = %q, want %q", found, filepath.Join(root, "package.yml"))
	}
}

func TestFindManifestNotFound(t *testing.T) {
	dir := t.TempDir()
	if _, err := FindManifest(dir); err != ErrManifestNotFound {
		t.Fatalf("expected ErrManifestNotFound, got %v", err)
	}
}
