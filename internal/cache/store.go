package cache

// entryStore is the key to value mapping backing a cache. It is the ground
// truth for Get.
type entryStore[K comparable, V any] struct {
	items map[K]V
}

func newEntryStore[K comparable, V any]() *entryStore[K, V] {
	return &entryStore[K, V]{items: make(map[K]V)}
}

func (s *entryStore[K, V]) set(key K, value V) {
	s.items[key] = value
}

func (s *entryStore[K, V]) get(key K) (V, bool) {
	v, ok := s.items[key]
	return v, ok
}

func (s *entryStore[K, V]) has(key K) bool {
	_, ok := s.items[key]
	return ok
}

func (s *entryStore[K, V]) remove(key K) {
	delete(s.items, key)
}

func (s *entryStore[K, V]) size() int {
	return len(s.items)
}

func (s *entryStore[K, V]) reset() {
	s.items = make(map[K]V)
}
