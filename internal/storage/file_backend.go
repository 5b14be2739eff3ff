package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileBackend stores all keys in a single human-readable JSON document,
// rewriting the whole file on every mutation. Values must themselves be
// valid JSON so the document stays readable and diffable.
type FileBackend struct {
	path string
	mu   sync.Mutex
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (b *FileBackend) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse storage: %w", err)
	}
	return doc, nil
}

func (b *FileBackend) save(doc map[string]json.RawMessage) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(b.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (b *FileBackend) Get(key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	doc, err := b.load()
	if err != nil {
		return nil, false, err
	}
	value, ok := doc[key]
	if !ok {
		return nil, false, nil
	}
	return value, true, nil
}

func (b *FileBackend) Set(key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("value for key %q is not valid JSON", key)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	doc, err := b.load()
	if err != nil {
		return err
	}
	doc[key] = json.RawMessage(value)
	return b.save(doc)
}

func (b *FileBackend) Remove(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	doc, err := b.load()
	if err != nil {
		return err
	}
	if _, ok := doc[key]; !ok {
		return nil
	}
	delete(doc, key)
	return b.save(doc)
}

func (b *FileBackend) Close() error {
	return nil
}
