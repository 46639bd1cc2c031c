package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Storage keys shared with the web clients' local storage.
const (
	KeyAccessToken  = "ga_access_token"
	KeyRefreshToken = "ga_refresh_token"
	KeyUser         = "ga_user"
	KeyLocale       = "ga_locale"
)

// Store is the persisted key/value surface the session manager writes through.
// Values are plain strings; there is no encryption and no expiry enforcement.
type Store interface {
	Get(key string) string
	Set(key, value string) error
	Delete(key string) error
}

// FileStore keeps the keys in a single JSON file, the CLI analogue of browser
// local storage. There is no cross-process locking; two processes sharing the
// file can race, the same way two browser tabs can.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStore{path: filepath.Join(dir, "state.json")}, nil
}

func (f *FileStore) Get(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return ""
	}
	return values[key]
}

func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return err
	}
	values[key] = value
	return f.write(values)
}

func (f *FileStore) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return err
	}
	delete(values, key)
	return f.write(values)
}

func (f *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		// Corrupt state file: start over rather than refuse to run.
		return map[string]string{}, nil
	}
	return values, nil
}

func (f *FileStore) write(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o600)
}

// MemoryStore backs tests and throwaway sessions.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (m *MemoryStore) Get(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key]
}

func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
