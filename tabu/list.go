package tabu

import "container/list"

// List is a bounded FIFO set of tabu keys.
//
// Insertion order is kept in a doubly linked list (oldest at the front) and a
// map indexes the list elements for O(1) membership. Adding a key that is
// already present moves it to the back instead of storing it twice, so the
// list always holds the Cap() most recently added distinct keys.
//
// A List is not safe for concurrent use. Search creates one per run.
type List[K comparable] struct {
	order    *list.List
	index    map[K]*list.Element
	capacity int
}

// NewList returns an empty List holding at most capacity keys.
// capacity < 1 yields ErrInvalidCapacity.
func NewList[K comparable](capacity int) (*List[K], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	return &List[K]{
		order:    list.New(),
		index:    make(map[K]*list.Element, capacity),
		capacity: capacity,
	}, nil
}

// Cap returns the configured capacity.
func (l *List[K]) Cap() int { return l.capacity }

// Len returns the number of keys currently tabu.
func (l *List[K]) Len() int { return len(l.index) }

// Contains reports whether k is tabu.
func (l *List[K]) Contains(k K) bool {
	_, ok := l.index[k]
	return ok
}

// Add marks k as tabu. Re-adding a present key refreshes it to the newest
// position; otherwise the oldest key is evicted when the list is full.
func (l *List[K]) Add(k K) {
	if e, ok := l.index[k]; ok {
		l.order.MoveToBack(e)
		return
	}
	if len(l.index) == l.capacity {
		oldest := l.order.Front()
		delete(l.index, oldest.Value.(K))
		l.order.Remove(oldest)
	}
	l.index[k] = l.order.PushBack(k)
}

// Keys returns the tabu keys from oldest to newest.
func (l *List[K]) Keys() []K {
	out := make([]K, 0, len(l.index))
	for e := l.order.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(K))
	}

	return out
}
