package cart

import (
	"errors"
	"io/fs"
	"os"
	"sync"
)

// Storage persists the serialized cart under a single key, mirroring
// browser local storage: one opaque JSON blob, no versioning.
type Storage interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// FileStorage keeps the cart blob in a single file.
type FileStorage struct {
	Path string
}

func (s FileStorage) Load() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func (s FileStorage) Save(data []byte) error {
	return os.WriteFile(s.Path, data, 0o644)
}

// MemoryStorage keeps the cart blob in memory. Used in tests and for
// throwaway sessions.
type MemoryStorage struct {
	mu   sync.Mutex
	data []byte
}

func (s *MemoryStorage) Load() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data, nil
}

func (s *MemoryStorage) Save(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	return nil
}
