package memory

import (
	"context"
	"errors"
	"iter"
	"sync"
)

var ErrDuplicateID = errors.New("duplicate id")

// table is one collection. Rows are kept in insertion order and scanned
// newest first.
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) insert(id string, v T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.rows[id]; exists {
		return ErrDuplicateID
	}
	t.rows[id] = v
	t.order = append(t.order, id)
	return nil
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.rows[id]
	return v, ok
}

// update applies fn to the stored row under the write lock.
func (t *table[T]) update(id string, fn func(*T)) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	v, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	fn(&v)
	t.rows[id] = v
	return v, true
}

func (t *table[T]) remove(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, k := range t.order {
		if k == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// scan snapshots the matching rows and yields them lazily. The sequence
// stops with ctx.Err() once ctx is done.
func (t *table[T]) scan(ctx context.Context, match func(T) bool) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		t.mu.RLock()
		snapshot := make([]T, 0, len(t.order))
		for i := len(t.order) - 1; i >= 0; i-- {
			v := t.rows[t.order[i]]
			if match(v) {
				snapshot = append(snapshot, v)
			}
		}
		t.mu.RUnlock()

		for _, v := range snapshot {
			if err := ctx.Err(); err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}
