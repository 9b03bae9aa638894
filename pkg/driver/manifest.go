// Package driver carries the small amount of ambient machinery around the
// language core: reading a project manifest and vendoring shared script
// libraries it names. Grounded on the teacher's pkg/driver/manifest.go
// (YAML decode via gopkg.in/yaml.v3, ValidationError aggregation) scaled
// down to this language's needs (no targets/workspaces/lockfiles — one
// entry script and a flat vendor map).
package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest is the parsed contents of a project's package.yml: which file
// to run and which vendored script libraries to fetch before running it.
type Manifest struct {
	Path    string
	Name    string
	Entry   string
	Sources []string          // bundled before Entry, in order
	Vendor  map[string]string // name -> git remote URL
}

// ValidationError aggregates manifest validation failures, same shape as
// the teacher's.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

type manifestFile struct {
	Name    string            `yaml:"name"`
	Entry   string            `yaml:"entry"`
	Sources []string          `yaml:"sources"`
	Vendor  map[string]string `yaml:"vendor"`
}

// LoadManifest parses package.yml from disk, returning a validated
// manifest.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw manifestFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("manifest: %s is empty", absPath)
		}
		return nil, fmt.Errorf("manifest: parse %s: %w", absPath, err)
	}

	manifest := &Manifest{
		Path:    absPath,
		Name:    strings.TrimSpace(raw.Name),
		Entry:   strings.TrimSpace(raw.Entry),
		Sources: raw.Sources,
		Vendor:  raw.Vendor,
	}
	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}

func (m *Manifest) validate() error {
	var errs ValidationError
	if m.Name == "" {
		errs.Issues = append(errs.Issues, "name must be provided")
	}
	if m.Entry == "" {
		errs.Issues = append(errs.Issues, "entry must name the script to run")
	}
	for idx, src := range m.Sources {
		if strings.TrimSpace(src) == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("sources[%d] must not be empty", idx))
		}
	}
	for name, url := range m.Vendor {
		if strings.TrimSpace(name) == "" {
			errs.Issues = append(errs.Issues, "vendor entries must not use empty keys")
		}
		if strings.TrimSpace(url) == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("vendor.%s: url must not be empty", name))
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// EntryPath resolves the manifest's entry script relative to the
// manifest's own directory.
func (m *Manifest) EntryPath() string {
	return filepath.Join(filepath.Dir(m.Path), m.Entry)
}

// SourcePaths resolves Sources, in order, relative to the manifest's own
// directory. These are bundled ahead of Entry, not loaded through an
// in-language import.
func (m *Manifest) SourcePaths() []string {
	dir := filepath.Dir(m.Path)
	paths := make([]string, len(m.Sources))
	for i, src := range m.Sources {
		paths[i] = filepath.Join(dir, src)
	}
	return paths
}

// ErrManifestNotFound is returned by FindManifest when no package.yml
// exists between dir and the filesystem root.
var ErrManifestNotFound = errors.New("package.yml not found")

// FindManifest walks upward from dir looking for package.yml, the way the
// teacher's cmd/able locates its own manifest from an arbitrary starting
// directory.
func FindManifest(dir string) (string, error) {
	cur, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(cur, "package.yml")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", ErrManifestNotFound
		}
		cur = parent
	}
}
