package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jask/smartattend/internal/database"
	"github.com/jask/smartattend/internal/database/repository"
)

// Backend kinds accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Memory is an in-process backend.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemory() *Memory { return &Memory{data: map[string][]byte{}} }

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

// Dir stores one JSON file per key.
type Dir struct {
	Path string
}

func (d Dir) file(key string) string {
	return filepath.Join(d.Path, key+".json")
}

func (d Dir) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(d.file(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (d Dir) Put(_ context.Context, key string, value []byte) error {
	if err := os.MkdirAll(d.Path, 0o755); err != nil {
		return err
	}
	path := d.file(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open builds the backend named by kind. The returned closer releases any
// underlying resources.
func Open(kind, dbPath, dir string) (Backend, io.Closer, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case BackendSQLite, "":
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, nil, fmt.Errorf("mkdir db dir: %w", err)
		}
		db, err := database.OpenMigrated(dbPath)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewKVRepo(db), db, nil
	case BackendFile:
		return Dir{Path: dir}, nopCloser{}, nil
	case BackendMemory:
		return NewMemory(), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", kind)
	}
}
