// Package store persists named record collections as JSON documents in a
// key/value backend. Reads never fail: a missing or malformed document loads
// as an empty collection.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jask/smartattend/internal/database/repository"
)

// Fixed namespaces.
const (
	EventsKey   = "events"
	FeedbackKey = "feedback"
)

// Backend is a durable key/value area. *repository.KVRepo satisfies it.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Store is the persistent store adapter.
type Store struct {
	backend Backend
	log     *slog.Logger
}

func New(backend Backend, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{backend: backend, log: log.With("component", "store")}
}

// Load returns the event records stored under key, newest first.
func (s *Store) Load(ctx context.Context, key string) []repository.EventRecord {
	return load[repository.EventRecord](ctx, s, key)
}

// Save replaces the event records stored under key.
func (s *Store) Save(ctx context.Context, key string, events []repository.EventRecord) error {
	return save(ctx, s, key, events)
}

// LoadFeedback returns the feedback records, newest first.
func (s *Store) LoadFeedback(ctx context.Context) []repository.FeedbackRecord {
	return load[repository.FeedbackRecord](ctx, s, FeedbackKey)
}

// SaveFeedback replaces the feedback records.
func (s *Store) SaveFeedback(ctx context.Context, fb []repository.FeedbackRecord) error {
	return save(ctx, s, FeedbackKey, fb)
}

func load[T any](ctx context.Context, s *Store, key string) []T {
	out := []T{}
	raw, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		s.log.Warn("load failed, using empty collection", "key", key, "error", err)
		return out
	}
	if !ok || len(raw) == 0 {
		return out
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		s.log.Warn("malformed collection, using empty collection", "key", key, "error", err)
		return out
	}
	if items == nil {
		return out
	}
	return items
}

func save[T any](ctx context.Context, s *Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.backend.Put(ctx, key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	s.log.Debug("collection saved", "key", key, "count", len(items))
	return nil
}
