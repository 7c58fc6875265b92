// Package store owns loading, holding, and durably saving the content
// document. The durable slot is a single whole-document blob: one write
// replaces the entire snapshot, one read returns it.
package store

import (
	"context"
	"errors"
)

var (
	// ErrNoSnapshot means the durable slot is empty. Load falls through to
	// the static file and then the hardcoded default.
	ErrNoSnapshot = errors.New("no snapshot")

	// ErrStorageWrite is the one failure surfaced loudly: a failed save can
	// silently destroy user edits if swallowed.
	ErrStorageWrite = errors.New("storage write failed")

	ErrNoCredential = errors.New("no credential")
)

// Snapshotter is a durable whole-document slot plus the admin credential
// slot, backed by Redis or Postgres.
type Snapshotter interface {
	LoadSnapshot(ctx context.Context) ([]byte, error)
	SaveSnapshot(ctx context.Context, data []byte) error
	LoadCredential(ctx context.Context) (string, error)
	SaveCredential(ctx context.Context, passwordHash string) error
	Ping(ctx context.Context) error
	Close() error
}
