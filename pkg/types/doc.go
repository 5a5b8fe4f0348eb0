// Package types defines the book record, history entry and configuration
// types, and the standard error values for the LibraFlow catalog.
package types
