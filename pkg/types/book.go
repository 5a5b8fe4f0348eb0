package types

import "strings"

// Category is the enumerated label stored on a book. It carries no
// behavior beyond its name.
type Category int

// Book categories accepted by ParseCategory.
const (
	CategoryFiction Category = iota + 1
	CategoryNonFiction
)

// categoryNames maps the lowercase spelling accepted on input to a Category.
var categoryNames = map[string]Category{
	"fiction":    CategoryFiction,
	"nonfiction": CategoryNonFiction,
}

// ParseCategory converts s to a Category, ignoring case.
// Returns ErrInvalidCategory if s is neither "fiction" nor "nonfiction".
func ParseCategory(s string) (Category, error) {
	c, ok := categoryNames[strings.ToLower(s)]
	if !ok {
		return 0, ErrInvalidCategory
	}
	return c, nil
}

// String returns the display name of the category.
func (c Category) String() string {
	switch c {
	case CategoryFiction:
		return "Fiction"
	case CategoryNonFiction:
		return "NonFiction"
	default:
		return "Unknown"
	}
}

// MarshalText renders the category by name so JSON output stays readable.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Book is one catalog record. ISBN is the identity key; two books with the
// same ISBN are the same book. Books are never edited after creation.
type Book struct {
	ISBN     string   `json:"isbn"`
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Category Category `json:"category"`
}

// Snapshot copies the display fields of the book into a LogEntry.
func (b Book) Snapshot() LogEntry {
	return LogEntry{
		ISBN:   b.ISBN,
		Title:  b.Title,
		Author: b.Author,
	}
}

// LogEntry is an immutable copy of a book's display fields taken when an
// event happened. Entries do not refer back to the catalog and outlive the
// removal of the book they describe.
type LogEntry struct {
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`
}
