package storage

// Provider is the key-value persistence contract. Each key holds one
// serialized JSON value; writes replace the whole value (last write wins).
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the raw value for key and false when the key is absent.
	Get(key string) ([]byte, bool, error)
	// Set replaces the value stored under key.
	Set(key string, raw []byte) error
	// Keys lists the stored keys in lexical order.
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}
