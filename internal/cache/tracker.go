package cache

import "container/list"

// arrivalTracker keeps the order in which keys arrived. A doubly-linked list
// holds the order and an index map gives O(1) lookup of a key's node.
//
// Front is the oldest arrival, Back the newest.
type arrivalTracker[K comparable] struct {
	order *list.List
	index map[K]*list.Element

	// refresh makes a repeated arrival move the key to the back instead of
	// leaving it where it first arrived.
	refresh bool
}

func newArrivalTracker[K comparable](refresh bool) *arrivalTracker[K] {
	return &arrivalTracker[K]{
		order:   list.New(),
		index:   make(map[K]*list.Element),
		refresh: refresh,
	}
}

// recordArrival appends key unless it is already tracked. In refresh mode an
// existing key is moved to the back instead.
func (t *arrivalTracker[K]) recordArrival(key K) {
	if el, ok := t.index[key]; ok {
		if t.refresh {
			t.order.MoveToBack(el)
		}
		return
	}
	t.index[key] = t.order.PushBack(key)
}

func (t *arrivalTracker[K]) oldest() (K, bool) {
	return t.keyAt(t.order.Front())
}

// newest returns the current tail. It is called before the incoming key is
// recorded, so the incoming key is never the answer.
func (t *arrivalTracker[K]) newest() (K, bool) {
	return t.keyAt(t.order.Back())
}

func (t *arrivalTracker[K]) popFront() (K, bool) {
	return t.pop(t.order.Front())
}

func (t *arrivalTracker[K]) popBack() (K, bool) {
	return t.pop(t.order.Back())
}

func (t *arrivalTracker[K]) remove(key K) {
	if el, ok := t.index[key]; ok {
		t.order.Remove(el)
		delete(t.index, key)
	}
}

func (t *arrivalTracker[K]) len() int {
	return t.order.Len()
}

func (t *arrivalTracker[K]) keys() []K {
	out := make([]K, 0, t.order.Len())
	for el := t.order.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(K))
	}
	return out
}

func (t *arrivalTracker[K]) reset() {
	t.order.Init()
	t.index = make(map[K]*list.Element)
}

func (t *arrivalTracker[K]) keyAt(el *list.Element) (K, bool) {
	if el == nil {
		var zero K
		return zero, false
	}
	return el.Value.(K), true
}

func (t *arrivalTracker[K]) pop(el *list.Element) (K, bool) {
	key, ok := t.keyAt(el)
	if ok {
		t.order.Remove(el)
		delete(t.index, key)
	}
	return key, ok
}
