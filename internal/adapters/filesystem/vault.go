// Package filesystem provides the vault file listing by walking a real
// vault directory on disk.
package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"tabnav/internal/ports"
)

// Vault implements ports.Vault over an on-disk vault directory. The
// listing is loaded eagerly and refreshed by Reload (or the watcher);
// Files itself never touches the disk.
type Vault struct {
	root string

	mu    sync.RWMutex
	files []ports.VaultFile
}

// NewVault creates a Vault rooted at path. A leading ~ expands to the
// user's home directory.
func NewVault(path string) *Vault {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return &Vault{root: path}
}

// Root returns the absolute vault root.
func (v *Vault) Root() string { return v.root }

// Load walks the vault and (re)builds the listing. Hidden directories
// are skipped. Paths are vault-relative with forward slashes, sorted
// lexicographically so scan-order resolution is deterministic.
func (v *Vault) Load() error {
	var files []ports.VaultFile
	err := filepath.WalkDir(v.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != v.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(v.root, path)
		if err != nil {
			return nil
		}
		files = append(files, fileEntry(filepath.ToSlash(rel)))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk vault %s: %w", v.root, err)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	v.mu.Lock()
	v.files = files
	v.mu.Unlock()
	return nil
}

// Files returns the current listing.
func (v *Vault) Files() []ports.VaultFile {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]ports.VaultFile, len(v.files))
	copy(out, v.files)
	return out
}

func fileEntry(rel string) ports.VaultFile {
	name := rel
	if i := strings.LastIndex(rel, "/"); i >= 0 {
		name = rel[i+1:]
	}
	base := name
	if dot := strings.LastIndex(name, "."); dot > 0 {
		base = name[:dot]
	}
	return ports.VaultFile{Path: rel, Name: name, Basename: base}
}

var _ ports.Vault = (*Vault)(nil)
