package cache

type Cache interface {
	// Get decodes the cached value for key into dst; false if absent or expired.
	Get(key string, dst any) (bool, error)
	Set(key string, value any) error
	Del(key string)
	Clear()
}
