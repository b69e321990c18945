package domain

import "time"

// SyncStats reports what a listing-cache rebuild did.
type SyncStats struct {
	FilesScanned int
	FilesIndexed int
	Duration     time.Duration
}
