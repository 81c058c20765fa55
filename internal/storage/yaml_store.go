package storage

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

const stateFileName = "state.yaml"

// ErrCorruptState indicates the state file exists but cannot be parsed.
var ErrCorruptState = errors.New("corrupt state file")

// YAMLStore keeps every key in a single YAML document on disk.
type YAMLStore struct {
	mu       sync.Mutex
	path     string
	document map[string]yaml.Node
}

// OpenYAML reads the state file at path.
// A missing file yields an empty store. An unparsable file yields an empty
// store together with an error wrapping ErrCorruptState; the file is
// replaced on the next Set.
func OpenYAML(path string) (*YAMLStore, error) {
	store := &YAMLStore{
		path:     path,
		document: make(map[string]yaml.Node),
	}

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return store, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}
	if len(bytes.TrimSpace(rawData)) == 0 {
		return store, nil
	}

	var document map[string]yaml.Node
	if err := yaml.Unmarshal(rawData, &document); err != nil {
		return store, fmt.Errorf("%w: parse %s: %v", ErrCorruptState, path, err)
	}
	if document != nil {
		store.document = document
	}
	return store, nil
}

// Get decodes the node stored under key into out.
func (store *YAMLStore) Get(key string, out any) (bool, error) {
	store.mu.Lock()
	node, ok := store.document[key]
	store.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := node.Decode(out); err != nil {
		return true, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Set encodes value under key and rewrites the state file.
func (store *YAMLStore) Set(key string, value any) error {
	var node yaml.Node
	if err := node.Encode(value); err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	store.document[key] = node
	return store.saveLocked()
}

// Close is a no-op; every Set is already on disk.
func (store *YAMLStore) Close() error {
	return nil
}

func (store *YAMLStore) saveLocked() error {
	serialized, err := yaml.Marshal(store.document)
	if err != nil {
		return fmt.Errorf("marshal state yaml: %w", err)
	}

	dir := filepath.Dir(store.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, ".state-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tempPath := tempFile.Name()
	if _, err := tempFile.Write(serialized); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("write state file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("close state file: %w", err)
	}
	if err := os.Rename(tempPath, store.path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
