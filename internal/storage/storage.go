// internal/storage/storage.go
package storage

// Store is the key-value adapter the collections sit on: get/set/remove of
// a named blob of serialized records. Implementations carry no domain
// logic; every rule lives above this interface.
type Store interface {
	// Get returns the blob stored under key. The second return is false
	// when the key has never been written or has been removed.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Remove(key string) error
}
