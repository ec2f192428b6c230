package client

import (
	"strings"
	"sync"
)

// WorkingSet is an in-memory view over a list of records, with
// case-insensitive substring filtering and reconciliation from server
// echoes. The id function extracts a record's primary key; the display
// function lists the fields filtering should search.
type WorkingSet[T any] struct {
	mu      sync.RWMutex
	items   []T
	id      func(T) int64
	display func(T) []string
}

// NewWorkingSet creates an empty WorkingSet.
func NewWorkingSet[T any](id func(T) int64, display func(T) []string) *WorkingSet[T] {
	return &WorkingSet[T]{
		id:      id,
		display: display,
	}
}

// Replace swaps in a full listing, e.g. from ListAll.
func (w *WorkingSet[T]) Replace(items []T) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.items = append([]T(nil), items...)
}

// Items returns a copy of the current records.
func (w *WorkingSet[T]) Items() []T {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return append([]T(nil), w.items...)
}

// Len returns the number of records held.
func (w *WorkingSet[T]) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.items)
}

// Filter returns the records whose display fields contain the query,
// case-insensitively. An empty query matches everything.
func (w *WorkingSet[T]) Filter(query string) []T {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if query == "" {
		return append([]T(nil), w.items...)
	}

	needle := strings.ToLower(query)
	var matched []T
	for _, item := range w.items {
		for _, field := range w.display(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}

// ApplyCreated appends rows the server echoed back from a create.
func (w *WorkingSet[T]) ApplyCreated(rows []T) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.items = append(w.items, rows...)
}

// ApplyUpdated replaces records in place with the rows the server echoed
// back from an update. Unknown ids are appended.
func (w *WorkingSet[T]) ApplyUpdated(rows []T) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, row := range rows {
		replaced := false
		for i, item := range w.items {
			if w.id(item) == w.id(row) {
				w.items[i] = row
				replaced = true
				break
			}
		}
		if !replaced {
			w.items = append(w.items, row)
		}
	}
}

// ApplyDeleted removes the records with the given ids.
func (w *WorkingSet[T]) ApplyDeleted(ids []int64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	deleted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		deleted[id] = true
	}

	kept := w.items[:0]
	for _, item := range w.items {
		if !deleted[w.id(item)] {
			kept = append(kept, item)
		}
	}
	w.items = kept
}
