package sqlite

import (
	"database/sql"

	"tabnav/internal/ports"
)

// listingTx implements ports.ListingTx over a files-table transaction.
type listingTx struct {
	tx *sql.Tx
}

var _ ports.ListingTx = (*listingTx)(nil)

// BeginTx starts a batch update of the listing cache.
func (idx *Index) BeginTx() (ports.ListingTx, error) {
	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	return &listingTx{tx: tx}, nil
}

// UpsertFile inserts or refreshes a listing entry.
func (t *listingTx) UpsertFile(file ports.VaultFile, mtime int64) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO files (path, name, basename, mtime)
		VALUES (?, ?, ?, ?)
	`, file.Path, file.Name, file.Basename, mtime)
	return err
}

// DeleteFile removes a listing entry by path.
func (t *listingTx) DeleteFile(path string) error {
	_, err := t.tx.Exec(`DELETE FROM files WHERE path = ?`, path)
	return err
}

// Commit commits the transaction.
func (t *listingTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction.
func (t *listingTx) Rollback() error {
	return t.tx.Rollback()
}
