// Package bounded provides a fixed-capacity sequence that evicts one entry
// before an insertion that would exceed its capacity.
package bounded

import "iter"

// EvictEnd selects which end of a full sequence loses an entry on Push.
type EvictEnd int

const (
	// EvictOldest drops the earliest pushed entry (queue discipline).
	EvictOldest EvictEnd = iota
	// EvictNewest drops the most recently pushed entry (stack discipline).
	EvictNewest
)

// Seq is a ring buffer holding at most Cap entries in push order.
// It is not safe for concurrent use.
type Seq[T any] struct {
	buf   []T
	head  int // index of the oldest entry
	n     int
	evict EvictEnd
}

// New returns an empty Seq. It panics if capacity is not positive.
func New[T any](capacity int, evict EvictEnd) *Seq[T] {
	if capacity <= 0 {
		panic("bounded: capacity must be positive")
	}
	return &Seq[T]{
		buf:   make([]T, capacity),
		evict: evict,
	}
}

// Len returns the number of entries held.
func (s *Seq[T]) Len() int { return s.n }

// Cap returns the fixed capacity.
func (s *Seq[T]) Cap() int { return len(s.buf) }

// Push appends v as the newest entry. When the sequence is full it first
// removes the entry at the configured eviction end and returns it with
// evicted set to true.
func (s *Seq[T]) Push(v T) (old T, evicted bool) {
	if s.n == len(s.buf) {
		old = s.removeAt(s.evict)
		evicted = true
	}
	s.buf[s.index(s.n)] = v
	s.n++
	return old, evicted
}

func (s *Seq[T]) removeAt(end EvictEnd) T {
	var zero T
	if end == EvictOldest {
		v := s.buf[s.head]
		s.buf[s.head] = zero
		s.head = (s.head + 1) % len(s.buf)
		s.n--
		return v
	}
	i := s.index(s.n - 1)
	v := s.buf[i]
	s.buf[i] = zero
	s.n--
	return v
}

// index maps a logical position (0 = oldest) to a buffer slot.
func (s *Seq[T]) index(pos int) int {
	return (s.head + pos) % len(s.buf)
}

// Oldest yields entries from the oldest to the newest.
func (s *Seq[T]) Oldest() iter.Seq[T] {
	return func(yield func(T) bool) {
		for pos := 0; pos < s.n; pos++ {
			if !yield(s.buf[s.index(pos)]) {
				return
			}
		}
	}
}

// Newest yields entries from the newest to the oldest.
func (s *Seq[T]) Newest() iter.Seq[T] {
	return func(yield func(T) bool) {
		for pos := s.n - 1; pos >= 0; pos-- {
			if !yield(s.buf[s.index(pos)]) {
				return
			}
		}
	}
}

// Collect copies the entries produced by it into a new slice that is
// never nil, so empty sequences marshal as [].
func Collect[T any](it iter.Seq[T], size int) []T {
	out := make([]T, 0, size)
	for v := range it {
		out = append(out, v)
	}
	return out
}
