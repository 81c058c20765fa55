// Package storage persists widget state in a key-value store.
package storage

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Keys used by the widget.
const (
	KeyConfig     = "pomodoroConfig"
	KeyTodos      = "todos"
	KeyStats      = "pomodoroStats"
	KeyBackground = "background"
	KeyCoffee     = "coffeeCount"
)

// Backend names accepted by Open.
const (
	BackendYAML   = "yaml"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Store is a key-value store with structured values.
type Store interface {
	// Get decodes the value stored under key into out. It reports false
	// when the key is absent.
	Get(key string, out any) (bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key string, value any) error
	Close() error
}

// Value reads key into a T. Missing keys yield fallback with a nil error;
// malformed values yield fallback and the decode error.
func Value[T any](store Store, key string, fallback T) (T, error) {
	var value T
	found, err := store.Get(key, &value)
	if err != nil {
		return fallback, fmt.Errorf("read %s: %w", key, err)
	}
	if !found {
		return fallback, nil
	}
	return value, nil
}

// Open creates the store for backend inside dataDir. With the YAML backend a
// non-nil Store may come back together with an error wrapping
// ErrCorruptState.
func Open(backend, dataDir string) (Store, error) {
	switch backend {
	case "", BackendYAML:
		store, err := OpenYAML(filepath.Join(dataDir, stateFileName))
		if store == nil {
			return nil, err
		}
		// A corrupt file still yields a usable empty store.
		return store, err
	case BackendSQLite:
		store, err := OpenSQLite(filepath.Join(dataDir, databaseFileName))
		if err != nil {
			return nil, err
		}
		return store, nil
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
