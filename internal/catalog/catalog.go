// Package catalog owns the live book records and feeds snapshots of add
// and borrow events into the bounded history logs.
//
// A Catalog is not safe for concurrent use; callers serialise access.
package catalog

import (
	"fmt"
	"io"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/libraflow/internal/history"
	"github.com/mesh-intelligence/libraflow/pkg/types"
)

// Catalog is the sole owner of live book records.
type Catalog struct {
	books    map[string]types.Book
	order    []string // ISBNs in insertion order
	recent   *history.RecencyLog
	borrowed *history.BorrowLog

	log      logrus.FieldLogger
	observer Observer
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger routes operation logs to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.log = l
		}
	}
}

// WithObserver registers o to receive an Event after every operation.
func WithObserver(o Observer) Option {
	return func(c *Catalog) {
		c.observer = o
	}
}

// New returns an empty Catalog with empty history logs.
func New(opts ...Option) *Catalog {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Catalog{
		books:    make(map[string]types.Book),
		recent:   history.NewRecencyLog(),
		borrowed: history.NewBorrowLog(),
		log:      discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddBook creates a record and pushes its snapshot onto the recently
// added log. Returns ErrDuplicateISBN if a live record already has isbn,
// or ErrInvalidCategory if category is not fiction or nonfiction
// (case-insensitive). Nothing changes on failure.
func (c *Catalog) AddBook(category, title, author, isbn string) error {
	if _, ok := c.books[isbn]; ok {
		return c.fail(OpAdd, isbn, fmt.Errorf("%w: %q", types.ErrDuplicateISBN, isbn))
	}
	cat, err := types.ParseCategory(category)
	if err != nil {
		return c.fail(OpAdd, isbn, fmt.Errorf("%w: %q", err, category))
	}

	book := types.Book{
		ISBN:     isbn,
		Title:    title,
		Author:   author,
		Category: cat,
	}
	c.books[isbn] = book
	c.order = append(c.order, isbn)
	evicted := c.recent.Push(book.Snapshot())

	c.log.WithFields(logrus.Fields{
		"op":       OpAdd,
		"isbn":     isbn,
		"category": cat.String(),
		"evicted":  evicted,
	}).Debug("book added")
	c.notify(OpAdd, nil)
	return nil
}

// RemoveBook deletes the record with isbn. History logs are left as they
// are. Returns ErrNotFound if no live record has isbn.
func (c *Catalog) RemoveBook(isbn string) error {
	if _, ok := c.books[isbn]; !ok {
		return c.fail(OpRemove, isbn, fmt.Errorf("%w: %q", types.ErrNotFound, isbn))
	}

	delete(c.books, isbn)
	if i := slices.Index(c.order, isbn); i >= 0 {
		c.order = slices.Delete(c.order, i, i+1)
	}

	c.log.WithFields(logrus.Fields{"op": OpRemove, "isbn": isbn}).Debug("book removed")
	c.notify(OpRemove, nil)
	return nil
}

// BorrowBook records a borrow of isbn in the borrow log and returns the
// record. Borrowing never reserves the book; the same ISBN may be borrowed
// any number of times. Returns ErrNotFound if no live record has isbn.
func (c *Catalog) BorrowBook(isbn string) (types.Book, error) {
	book, ok := c.books[isbn]
	if !ok {
		return types.Book{}, c.fail(OpBorrow, isbn, fmt.Errorf("%w: %q", types.ErrNotFound, isbn))
	}

	evicted := c.borrowed.Push(book.Snapshot())

	c.log.WithFields(logrus.Fields{
		"op":      OpBorrow,
		"isbn":    isbn,
		"evicted": evicted,
	}).Debug("book borrowed")
	c.notify(OpBorrow, nil)
	return book, nil
}

// SearchBook returns the record whose ISBN equals key. Failing that it
// returns the earliest added record whose title equals key exactly.
func (c *Catalog) SearchBook(key string) (types.Book, bool) {
	book, ok := c.books[key]
	if !ok {
		for _, isbn := range c.order {
			if b := c.books[isbn]; b.Title == key {
				book, ok = b, true
				break
			}
		}
	}

	c.log.WithFields(logrus.Fields{"op": OpSearch, "key": key, "found": ok}).Debug("book search")
	if ok {
		c.notify(OpSearch, nil)
	} else {
		c.notify(OpSearch, types.ErrNotFound)
	}
	return book, ok
}

// RecentlyAdded lists up to history.RecencyCapacity snapshots, top first.
func (c *Catalog) RecentlyAdded() []types.LogEntry {
	return c.recent.List()
}

// BorrowHistory lists up to history.BorrowCapacity snapshots, oldest first.
func (c *Catalog) BorrowHistory() []types.LogEntry {
	return c.borrowed.List()
}

// Books returns copies of the live records in insertion order.
func (c *Catalog) Books() []types.Book {
	out := make([]types.Book, 0, len(c.order))
	for _, isbn := range c.order {
		out = append(out, c.books[isbn])
	}
	return out
}

// Len returns the number of live records.
func (c *Catalog) Len() int { return len(c.books) }

// fail logs a rejected operation, notifies the observer and returns err.
func (c *Catalog) fail(op, isbn string, err error) error {
	c.log.WithFields(logrus.Fields{
		"op":      op,
		"isbn":    isbn,
		"outcome": Outcome(err),
	}).WithError(err).Info("operation rejected")
	c.notify(op, err)
	return err
}

func (c *Catalog) notify(op string, err error) {
	if c.observer == nil {
		return
	}
	c.observer.CatalogEvent(Event{
		Op:       op,
		Outcome:  Outcome(err),
		Books:    len(c.books),
		Recent:   c.recent.Len(),
		Borrowed: c.borrowed.Len(),
	})
}
