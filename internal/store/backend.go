package store

// Backend whole-document key/value storage.
// Save always overwrites the full value stored under key.
type Backend interface {
	Load(key string) (data []byte, found bool, err error)
	Save(key string, data []byte) error
	Close() error
}
