package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"focusdeck/internal/core/model"
)

func TestYAMLStoreMissingFileIsEmpty(t *testing.T) {
	store, err := OpenYAML(filepath.Join(t.TempDir(), "nested", stateFileName))
	if err != nil {
		t.Fatalf("OpenYAML: %v", err)
	}
	var config model.Config
	found, err := store.Get(KeyConfig, &config)
	if err != nil || found {
		t.Fatalf("expected missing key, got found=%v err=%v", found, err)
	}
}

func TestYAMLStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", stateFileName)
	store, err := OpenYAML(path)
	if err != nil {
		t.Fatalf("OpenYAML: %v", err)
	}

	config := model.DefaultConfig()
	config.WorkDuration = 50
	config.AutoStartBreak = true
	if err := store.Set(KeyConfig, config); err != nil {
		t.Fatalf("Set config: %v", err)
	}
	if err := store.Set(KeyCoffee, 3); err != nil {
		t.Fatalf("Set coffee: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read state file: %v", err)
	}
	if !strings.Contains(string(raw), "work_duration: 50") {
		t.Fatalf("expected readable yaml, got:\n%s", raw)
	}

	reopened, err := OpenYAML(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	loaded, err := Value(reopened, KeyConfig, model.DefaultConfig())
	if err != nil {
		t.Fatalf("Value config: %v", err)
	}
	if loaded != config {
		t.Fatalf("expected %+v, got %+v", config, loaded)
	}
	coffee, err := Value(reopened, KeyCoffee, 0)
	if err != nil || coffee != 3 {
		t.Fatalf("expected 3 cups, got %d (%v)", coffee, err)
	}
}

func TestYAMLStoreCorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), stateFileName)
	if err := os.WriteFile(path, []byte("todos: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	store, err := OpenYAML(path)
	if !errors.Is(err, ErrCorruptState) {
		t.Fatalf("expected ErrCorruptState, got %v", err)
	}
	if store == nil {
		t.Fatalf("expected usable store")
	}
	if err := store.Set(KeyCoffee, 1); err != nil {
		t.Fatalf("Set after corruption: %v", err)
	}
	if _, err := OpenYAML(path); err != nil {
		t.Fatalf("file not repaired: %v", err)
	}
}

func TestValueMalformedReturnsFallback(t *testing.T) {
	store := NewMemoryStore()
	store.SetRaw(KeyConfig, []byte("work_duration: [1, 2]\n"))

	fallback := model.DefaultConfig()
	got, err := Value(store, KeyConfig, fallback)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if got != fallback {
		t.Fatalf("expected fallback, got %+v", got)
	}
}

func TestOpenBackends(t *testing.T) {
	dir := t.TempDir()
	for _, backend := range []string{"", BackendYAML, BackendSQLite, BackendMemory} {
		store, err := Open(backend, dir)
		if err != nil {
			t.Fatalf("Open(%q): %v", backend, err)
		}
		if err := store.Set(KeyCoffee, 2); err != nil {
			t.Fatalf("Set on %q: %v", backend, err)
		}
		if got, err := Value(store, KeyCoffee, 0); err != nil || got != 2 {
			t.Fatalf("%q: expected 2, got %d (%v)", backend, got, err)
		}
		if err := store.Close(); err != nil {
			t.Fatalf("Close %q: %v", backend, err)
		}
	}

	if _, err := Open("etcd", dir); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
}

func TestOpenCorruptYAMLReturnsUsableStore(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, stateFileName), []byte("coffeeCount: [\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	store, err := Open(BackendYAML, dir)
	if !errors.Is(err, ErrCorruptState) || store == nil {
		t.Fatalf("expected store with ErrCorruptState, got %v %v", store, err)
	}
	if got, err := Value(store, KeyCoffee, 5); err != nil || got != 5 {
		t.Fatalf("expected fallback 5, got %d (%v)", got, err)
	}
}
