package sqlite

import (
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"tabnav/internal/domain"
	"tabnav/internal/ports"
)

// SyncFull rebuilds the listing cache by walking the vault, then
// reloads the in-memory listing.
func (idx *Index) SyncFull() (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM files`); err != nil {
		return nil, err
	}

	insert, err := tx.Prepare(`INSERT OR REPLACE INTO files (path, name, basename, mtime) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return nil, err
	}
	defer insert.Close()

	err = filepath.WalkDir(idx.vaultPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != idx.vaultPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		stats.FilesScanned++

		rel, err := filepath.Rel(idx.vaultPath, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		name := rel
		if i := strings.LastIndex(rel, "/"); i >= 0 {
			name = rel[i+1:]
		}
		base := name
		if dot := strings.LastIndex(name, "."); dot > 0 {
			base = name[:dot]
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		if _, err := insert.Exec(rel, name, base, info.ModTime().Unix()); err != nil {
			return nil
		}
		stats.FilesIndexed++
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	stats.Duration = time.Since(start)
	return stats, idx.Reload()
}

// SyncIncremental reconciles the cache with the disk by mtime: new and
// changed files are upserted, entries for vanished files removed.
func (idx *Index) SyncIncremental() (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	stored, err := idx.storedMtimes()
	if err != nil {
		return nil, err
	}

	tx, err := idx.BeginTx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	seen := make(map[string]bool, len(stored))
	err = filepath.WalkDir(idx.vaultPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != idx.vaultPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		stats.FilesScanned++

		rel, err := filepath.Rel(idx.vaultPath, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		seen[rel] = true

		info, err := d.Info()
		if err != nil {
			return nil
		}
		mtime := info.ModTime().Unix()
		if old, ok := stored[rel]; ok && old == mtime {
			return nil
		}

		name := rel
		if i := strings.LastIndex(rel, "/"); i >= 0 {
			name = rel[i+1:]
		}
		base := name
		if dot := strings.LastIndex(name, "."); dot > 0 {
			base = name[:dot]
		}
		file := ports.VaultFile{Path: rel, Name: name, Basename: base}
		if err := tx.UpsertFile(file, mtime); err != nil {
			return nil
		}
		stats.FilesIndexed++
		return nil
	})
	if err != nil {
		return nil, err
	}

	for path := range stored {
		if !seen[path] {
			if err := tx.DeleteFile(path); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	stats.Duration = time.Since(start)
	return stats, idx.Reload()
}

func (idx *Index) storedMtimes() (map[string]int64, error) {
	rows, err := idx.db.Query("SELECT path, mtime FROM files")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var path string
		var mtime int64
		if err := rows.Scan(&path, &mtime); err != nil {
			return nil, err
		}
		out[path] = mtime
	}
	return out, rows.Err()
}
