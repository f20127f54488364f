package repository

// CacheRepository caches serialized calculation responses by key.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
