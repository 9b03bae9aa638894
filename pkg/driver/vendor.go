package driver

import (
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
)

// FetchVendor clones url into <projectDir>/.vendor/<name> the way the
// teacher's cmd/able ensureGitCheckout does (git.PlainClone into a fresh
// directory), but without the version-pinning/checkout-by-revision
// machinery that package needs and this manifest shape doesn't expose: a
// vendored entry here is always the remote's default branch tip, re-fetched
// only when the directory doesn't already exist.
func FetchVendor(projectDir, name, url string) (string, error) {
	dest := filepath.Join(projectDir, ".vendor", name)
	if info, err := os.Stat(dest); err == nil && info.IsDir() {
		return dest, nil
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("vendor: prepare %s: %w", dest, err)
	}
	if _, err := git.PlainClone(dest, false, &git.CloneOptions{
		URL:   url,
		Depth: 1,
	}); err != nil {
		_ = os.RemoveAll(dest)
		return "", fmt.Errorf("vendor: clone %s -> %s: %w", url, dest, err)
	}
	return dest, nil
}

// FetchAll vendors every dependency named in the manifest, stopping at the
// first failure.
func FetchAll(m *Manifest) error {
	projectDir := filepath.Dir(m.Path)
	for name, url := range m.Vendor {
		if _, err := FetchVendor(projectDir, name, url); err != nil {
			return err
		}
	}
	return nil
}
