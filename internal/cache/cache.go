package cache

// Cache defines the key-value API shared by every eviction policy.
// Implementations may or may not be goroutine-safe depending on configuration.
type Cache[K comparable, V any] interface {
	// Put stores value under key, evicting one entry first when the cache is full.
	// An absent (nil) key or value makes Put a no-op.
	Put(key K, value V)

	// Get returns the value and whether it was present. It never changes eviction order.
	Get(key K) (V, bool)

	// Delete removes a key if present. It is not reported as an eviction.
	Delete(key K)

	// Len returns the number of entries currently stored.
	Len() int

	// Keys returns the tracked keys in arrival order.
	Keys() []K

	// Clear removes all entries.
	Clear()
}
