package ports

import "go.trai.ch/freighter/internal/core/domain"

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// PushStore persists witnesses of completed pushes, keyed by tree hash.
type PushStore interface {
	// Get returns the record for the given tree hash, or (nil, nil) when
	// no record exists.
	Get(treeHash string) (*domain.PushRecord, error)

	// Put stores a record, replacing any previous record for its tree hash.
	Put(record *domain.PushRecord) error
}
