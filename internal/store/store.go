package store

import (
	"context"
	"sync"

	"gorm.io/gorm"
)

// Store owns the process-wide database handle. It starts open and moves to
// closed exactly once; every operation after that fails with ErrStoreClosed.
type Store struct {
	mu      sync.RWMutex
	db      *gorm.DB
	dialect string
	closed  bool
}

func New(db *gorm.DB) *Store {
	return &Store{db: db, dialect: db.Dialector.Name()}
}

// Dialect is the gorm dialector name, "sqlite" or "postgres".
func (s *Store) Dialect() string {
	return s.dialect
}

// Do runs fn against the handle. Close waits for in-flight calls.
func (s *Store) Do(ctx context.Context, fn func(tx *gorm.DB) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return ErrStoreClosed
	}
	return translate(fn(s.db.WithContext(ctx)))
}

func (s *Store) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// Close releases the handle. Calling it again is a no-op.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
