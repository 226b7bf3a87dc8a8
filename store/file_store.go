package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps all key-value pairs in a single JSON file, rewriting the
// file on every mutation. Reads are served from memory after the initial
// load. A file that is missing or cannot be decoded starts the store empty.
type FileStore struct {
	path string
	mu   sync.Mutex
	data map[string]string
}

func OpenFileStore(path string) (*FileStore, error) {
	fs := &FileStore{
		path: path,
		data: make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(raw, &fs.data); err != nil {
		// Treat a corrupt file as empty rather than failing startup
		fs.data = make(map[string]string)
	}
	return fs, nil
}

func (fs *FileStore) Get(key string) (string, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	value, ok := fs.data[key]
	return value, ok
}

func (fs *FileStore) Set(key, value string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.data[key] = value
	return fs.flush()
}

func (fs *FileStore) Delete(key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	delete(fs.data, key)
	return fs.flush()
}

// flush writes the full map back to disk. Caller holds the lock.
func (fs *FileStore) flush() error {
	raw, err := json.MarshalIndent(fs.data, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(fs.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(fs.path, raw, 0644)
}
