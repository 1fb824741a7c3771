// Package storage defines the relational store the export pipeline writes to.
// It abstracts persistence of zip codes, tabulation areas, boundary points and
// bounding boxes together with transaction management, so SQLite and
// PostgreSQL backends can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is the composite of all record-type capabilities.
type AllStorage interface {
	ZipCodeStorage
	AreaStorage
	PointStorage
	BoxStorage
}

// TxStorage is a storage handle bound to an open transaction. It becomes
// unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage is a non-transactional handle able to start transactions.
type Storage interface {
	AllStorage

	// Close releases the underlying connection pool.
	Close() error

	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with it, then commits when cb
	// returns nil and rolls back otherwise. The connection is released in both
	// cases.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
