// Package sqlite caches the vault file listing in SQLite, for vaults
// large enough that rescanning the disk per query hurts. It implements
// the same Vault port as the filesystem adapter; the engine still
// treats the listing as a flat scan.
package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"tabnav/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// Index implements ports.Vault backed by a SQLite listing cache.
type Index struct {
	db        *sql.DB
	vaultPath string
	dbPath    string

	mu    sync.RWMutex
	files []ports.VaultFile
}

var _ ports.ListingIndex = (*Index)(nil)

// NewIndex creates an unopened Index.
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the cache for the given vault path and loads the
// stored listing into memory.
func (idx *Index) Open(vaultPath string) error {
	if len(vaultPath) > 0 && vaultPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		vaultPath = filepath.Join(home, vaultPath[1:])
	}

	idx.vaultPath = vaultPath
	idx.dbPath = databasePath(vaultPath)

	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", idx.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS files (
			path TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			basename TEXT NOT NULL,
			mtime INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_files_basename ON files(basename);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if err := idx.updateMeta(); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return idx.Reload()
}

// Close closes the database connection.
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// NeedsFullRebuild reports whether the stored cache belongs to another
// schema version or vault.
func (idx *Index) NeedsFullRebuild() bool {
	var version, vaultHash string

	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)
	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'vault_path_hash'").Scan(&vaultHash)

	return version != schemaVersion || vaultHash != hashVaultPath(idx.vaultPath)
}

// Files returns the cached listing, lexicographic by path.
func (idx *Index) Files() []ports.VaultFile {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]ports.VaultFile, len(idx.files))
	copy(out, idx.files)
	return out
}

// Reload repopulates the in-memory listing from the database.
func (idx *Index) Reload() error {
	rows, err := idx.db.Query("SELECT path, name, basename FROM files ORDER BY path")
	if err != nil {
		return fmt.Errorf("failed to load listing: %w", err)
	}
	defer rows.Close()

	var files []ports.VaultFile
	for rows.Next() {
		var f ports.VaultFile
		if err := rows.Scan(&f.Path, &f.Name, &f.Basename); err != nil {
			return err
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	idx.mu.Lock()
	idx.files = files
	idx.mu.Unlock()
	return nil
}

// databasePath returns the cache location under the XDG data dir, one
// database per vault.
func databasePath(vaultPath string) string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "tabnav", hashVaultPath(vaultPath)+".db")
}

func hashVaultPath(vaultPath string) string {
	h := sha256.Sum256([]byte(vaultPath))
	return hex.EncodeToString(h[:8])
}

func (idx *Index) updateMeta() error {
	_, err := idx.db.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('vault_path_hash', ?);
	`, schemaVersion, hashVaultPath(idx.vaultPath))
	return err
}
