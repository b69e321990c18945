package ports

import "tabnav/internal/domain"

// ListingIndex is a persistent cache of the vault file listing. Query
// operations serve from memory; sync operations reconcile the cache
// with the disk.
type ListingIndex interface {
	Vault

	Open(vaultPath string) error
	Close() error

	// NeedsFullRebuild reports whether the stored cache belongs to
	// another schema version or vault.
	NeedsFullRebuild() bool
	SyncFull() (*domain.SyncStats, error)
	SyncIncremental() (*domain.SyncStats, error)
}

// ListingTx batches cache updates atomically.
type ListingTx interface {
	UpsertFile(file VaultFile, mtime int64) error
	DeleteFile(path string) error

	Commit() error
	Rollback() error
}
