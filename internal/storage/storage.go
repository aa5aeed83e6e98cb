package storage

// KV is the durable substrate both the credential store and the note
// repository persist into. Keys and values are plain strings; a missing
// key is reported through the bool, not an error.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}
