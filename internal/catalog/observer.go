package catalog

import (
	"errors"

	"github.com/mesh-intelligence/libraflow/pkg/types"
)

// Operation names reported in logs and events.
const (
	OpAdd    = "add"
	OpRemove = "remove"
	OpBorrow = "borrow"
	OpSearch = "search"
)

// Operation outcomes.
const (
	OutcomeOK              = "ok"
	OutcomeDuplicateISBN   = "duplicate_isbn"
	OutcomeInvalidCategory = "invalid_category"
	OutcomeNotFound        = "not_found"
	OutcomeError           = "error"
)

// Event describes a finished catalog operation and the sizes of the
// catalog and its logs afterwards.
type Event struct {
	Op       string
	Outcome  string
	Books    int
	Recent   int
	Borrowed int
}

// Observer receives an Event after every catalog operation, including
// rejected ones. Implementations must not call back into the Catalog.
type Observer interface {
	CatalogEvent(Event)
}

// Outcome classifies err into one of the Outcome constants.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, types.ErrDuplicateISBN):
		return OutcomeDuplicateISBN
	case errors.Is(err, types.ErrInvalidCategory):
		return OutcomeInvalidCategory
	case errors.Is(err, types.ErrNotFound):
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}
