// Package session provides storage backends for active admin session
// tokens, keyed by token hash.
package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrNotFound = errors.New("session not found or expired")

// Record is the data stored for each active session.
type Record struct {
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is implemented by the Redis backend and the in-memory fallback.
type Store interface {
	Save(ctx context.Context, tokenHash string, record Record, expiresAt time.Time) error
	Lookup(ctx context.Context, tokenHash string) (Record, error)
	Revoke(ctx context.Context, tokenHash string) error
	Close() error
}

// MemoryStore keeps sessions in process memory. Used when Redis is not
// configured; sessions do not survive a restart.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]memoryRecord
}

type memoryRecord struct {
	record    Record
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]memoryRecord)}
}

func (s *MemoryStore) Save(ctx context.Context, tokenHash string, record Record, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[tokenHash] = memoryRecord{record: record, expiresAt: expiresAt}
	return nil
}

func (s *MemoryStore) Lookup(ctx context.Context, tokenHash string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.records[tokenHash]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(s.records, tokenHash)
		return Record{}, ErrNotFound
	}
	return entry.record, nil
}

func (s *MemoryStore) Revoke(ctx context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, tokenHash)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
