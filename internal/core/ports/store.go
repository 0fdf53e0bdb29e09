package ports

import "go.trai.ch/swan/internal/core/domain"

// FingerprintStore persists per-node change-detection state between runs.
type FingerprintStore interface {
	// Get retrieves the record for a task ID, or nil if none is stored.
	Get(taskID string) (*domain.BuildRecord, error)

	// Put stores the record.
	Put(record domain.BuildRecord) error
}

// FingerprintStoreFactory opens the store for a source tree. The store
// lives inside the tree's build cache, so it can only be opened once the
// project configuration is known.
type FingerprintStoreFactory func(path string) (FingerprintStore, error)
