package store

// Store is a persistent string key-value medium. Collections are kept as
// JSON-serialized arrays under prefixed keys, one entry per collection.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}
