// Package history implements the two bounded views kept beside the
// catalog: the recently added stack and the borrow log. Both hold
// types.LogEntry values, never references to catalog records.
package history

import (
	"github.com/mesh-intelligence/libraflow/internal/bounded"
	"github.com/mesh-intelligence/libraflow/pkg/types"
)

// Capacities of the two logs.
const (
	RecencyCapacity = 5
	BorrowCapacity  = 10
)

// RecencyLog is a stack of entries for recently added books.
//
// When full, Push drops the entry currently on top before installing the
// new one, so the bottom entries survive sustained pushes. After A..E and
// then F the log reads F, D, C, B, A.
type RecencyLog struct {
	seq *bounded.Seq[types.LogEntry]
}

// NewRecencyLog returns an empty RecencyLog with capacity RecencyCapacity.
func NewRecencyLog() *RecencyLog {
	return &RecencyLog{seq: bounded.New[types.LogEntry](RecencyCapacity, bounded.EvictNewest)}
}

// Push places entry on top, evicting the current top first when full.
// It reports whether an entry was evicted.
func (l *RecencyLog) Push(entry types.LogEntry) bool {
	_, evicted := l.seq.Push(entry)
	return evicted
}

// List returns the entries from top (most recent) to bottom.
func (l *RecencyLog) List() []types.LogEntry {
	return bounded.Collect(l.seq.Newest(), l.seq.Len())
}

// Len returns the number of entries held.
func (l *RecencyLog) Len() int { return l.seq.Len() }

// Cap returns RecencyCapacity.
func (l *RecencyLog) Cap() int { return l.seq.Cap() }

// BorrowLog is a queue of borrow events. When full, Push drops the oldest
// entry, so the log always holds the latest BorrowCapacity borrows.
type BorrowLog struct {
	seq *bounded.Seq[types.LogEntry]
}

// NewBorrowLog returns an empty BorrowLog with capacity BorrowCapacity.
func NewBorrowLog() *BorrowLog {
	return &BorrowLog{seq: bounded.New[types.LogEntry](BorrowCapacity, bounded.EvictOldest)}
}

// Push appends entry at the rear, evicting the front first when full.
// It reports whether an entry was evicted.
func (l *BorrowLog) Push(entry types.LogEntry) bool {
	_, evicted := l.seq.Push(entry)
	return evicted
}

// List returns the entries from front (oldest) to rear (newest).
func (l *BorrowLog) List() []types.LogEntry {
	return bounded.Collect(l.seq.Oldest(), l.seq.Len())
}

// Len returns the number of entries held.
func (l *BorrowLog) Len() int { return l.seq.Len() }

// Cap returns BorrowCapacity.
func (l *BorrowLog) Cap() int { return l.seq.Cap() }
