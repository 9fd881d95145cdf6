// Package library tracks the releases the user owns.
package library

import (
	"sync"

	"github.com/handiism/groover/internal/model"
)

// Stats summarizes the library for the dashboard.
type Stats struct {
	Vinyl int
	CD    int
	Total int
}

// Library is the ordered set of owned items. Items keep insertion order and
// an id appears at most once.
type Library struct {
	mu    sync.RWMutex
	items []model.Item
	index map[int]int
}

// New creates a library seeded with items. Duplicate ids after the first
// occurrence are ignored.
func New(items ...model.Item) *Library {
	l := &Library{index: make(map[int]int, len(items))}
	for _, it := range items {
		l.Add(it)
	}
	return l
}

// Add promotes item into the library and marks it owned. Adding an id that
// is already present is a no-op and returns false.
func (l *Library) Add(item model.Item) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.index[item.ID]; ok {
		return false
	}
	item.Owned = true
	l.index[item.ID] = len(l.items)
	l.items = append(l.items, item)
	return true
}

// Contains reports whether the id is in the library.
func (l *Library) Contains(id int) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.index[id]
	return ok
}

// Get returns the library copy of an item.
func (l *Library) Get(id int) (model.Item, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx, ok := l.index[id]
	if !ok {
		return model.Item{}, false
	}
	return l.items[idx], true
}

// Items returns a snapshot of the library in insertion order.
func (l *Library) Items() []model.Item {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]model.Item(nil), l.items...)
}

// Filter returns the items matching f in insertion order.
func (l *Library) Filter(f model.KindFilter) []model.Item {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []model.Item
	for _, it := range l.items {
		if f.Matches(it.Kind) {
			out = append(out, it)
		}
	}
	return out
}

// Recent returns up to n of the most recently added items, oldest first.
func (l *Library) Recent(n int) []model.Item {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n <= 0 {
		return nil
	}
	start := len(l.items) - n
	if start < 0 {
		start = 0
	}
	return append([]model.Item(nil), l.items[start:]...)
}

// Stats counts items per kind.
func (l *Library) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := Stats{Total: len(l.items)}
	for _, it := range l.items {
		switch it.Kind {
		case model.KindVinyl:
			s.Vinyl++
		case model.KindCD:
			s.CD++
		}
	}
	return s
}

// Len returns the number of items in the library.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.items)
}
