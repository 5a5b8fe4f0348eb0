package types

import "errors"

// Catalog operation errors.
var (
	ErrDuplicateISBN   = errors.New("isbn already exists")
	ErrInvalidCategory = errors.New("invalid book category")
	ErrNotFound        = errors.New("book not found")
)

// Configuration errors.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
)
