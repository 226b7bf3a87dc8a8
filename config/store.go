package config

import (
	"os"

	"kifkif-backend/store"
)

// OpenStore opens the file-backed key-value store at DATA_FILE and returns it
// together with the namespace prefix collections are stored under.
func OpenStore() (*store.FileStore, string) {
	path := os.Getenv("DATA_FILE")
	if path == "" {
		path = "data/store.json"
	}

	prefix := os.Getenv("STORAGE_PREFIX")
	if prefix == "" {
		prefix = "kifkif_"
	}

	fs, err := store.OpenFileStore(path)
	if err != nil {
		panic("Failed to open data store: " + err.Error())
	}
	return fs, prefix
}
