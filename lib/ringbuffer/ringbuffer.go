package ringbuffer

import (
	"fmt"
	"iter"

	"golang.org/x/xerrors"
)

// DefaultCapacity is the capacity used when the caller has no preference.
const DefaultCapacity = 10

// ErrInvalidArgument is wrapped by New when the capacity is not positive.
var ErrInvalidArgument = xerrors.New("invalid argument")

// RingBuffer is a fixed-capacity FIFO container. Pushing into a full buffer
// drops the oldest item. It is not safe for concurrent use.
type RingBuffer[T comparable] struct {
	items     []T
	nextIndex int
	count     int
}

// New creates an empty ring buffer that holds at most capacity items.
func New[T comparable](capacity int) (*RingBuffer[T], error) {
	if capacity <= 0 {
		return nil, xerrors.Errorf("capacity must be positive, got %d: %w", capacity, ErrInvalidArgument)
	}
	return &RingBuffer[T]{
		items: make([]T, capacity),
	}, nil
}

// head is the slot index of the oldest item.
func (r *RingBuffer[T]) head() int {
	return (r.nextIndex - r.count + len(r.items)) % len(r.items)
}

// Push adds item as the newest element, evicting the oldest one if the
// buffer is full.
func (r *RingBuffer[T]) Push(item T) {
	r.items[r.nextIndex] = item
	r.nextIndex = (r.nextIndex + 1) % len(r.items)
	if r.count < len(r.items) {
		r.count++
	}
}

// Pop removes and returns the oldest item.
func (r *RingBuffer[T]) Pop() Optional[T] {
	if r.count == 0 {
		return None[T]()
	}
	idx := r.head()
	item := r.items[idx]
	var zero T
	r.items[idx] = zero
	r.count--
	return Some(item)
}

// Peek returns the oldest item without removing it.
func (r *RingBuffer[T]) Peek() Optional[T] {
	if r.count == 0 {
		return None[T]()
	}
	return Some(r.items[r.head()])
}

// IsEmpty reports whether the buffer holds no items.
func (r *RingBuffer[T]) IsEmpty() bool {
	return r.count == 0
}

// IsFull reports whether the next Push will evict the oldest item.
func (r *RingBuffer[T]) IsFull() bool {
	return r.count == len(r.items)
}

// Clear drops every item. The capacity is kept.
func (r *RingBuffer[T]) Clear() {
	clear(r.items)
	r.nextIndex = 0
	r.count = 0
}

// Len returns the number of items currently held.
func (r *RingBuffer[T]) Len() int {
	return r.count
}

// Cap returns the fixed capacity.
func (r *RingBuffer[T]) Cap() int {
	return len(r.items)
}

// Contains reports whether an item equal to item is currently held.
func (r *RingBuffer[T]) Contains(item T) bool {
	for v := range r.All() {
		if v == item {
			return true
		}
	}
	return false
}

// All iterates over the held items, oldest first. The buffer must not be
// modified during iteration.
func (r *RingBuffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		head := r.head()
		for i := 0; i < r.count; i++ {
			if !yield(r.items[(head+i)%len(r.items)]) {
				return
			}
		}
	}
}

// Snapshot returns a copy of all items in the buffer, oldest first.
func (r *RingBuffer[T]) Snapshot() []T {
	result := make([]T, 0, r.count)
	for v := range r.All() {
		result = append(result, v)
	}
	return result
}

func (r *RingBuffer[T]) String() string {
	return fmt.Sprintf("RingBuffer(capacity=%d, size=%d, items=%v)", len(r.items), r.count, r.Snapshot())
}
