package store

import (
	"errors"
	"fmt"
)

// MalformedSourceError reports a corpus that cannot be partitioned into the
// fixed category enumeration. It is fatal: no partial store is built.
type MalformedSourceError struct {
	// File is the source filename.
	File string

	// Line is the 1-based line number of the offending content, 0 if the
	// problem concerns the document as a whole.
	Line int

	// Reason describes what failed.
	Reason string
}

func (e *MalformedSourceError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed source %s:%d: %s", e.File, e.Line, e.Reason)
	}
	return fmt.Sprintf("malformed source %s: %s", e.File, e.Reason)
}

// InvalidCategoryError reports a category string outside the fixed
// enumeration. Recoverable: callers should validate against Categories first.
type InvalidCategoryError struct {
	// Category is the rejected string.
	Category string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid category: %q", e.Category)
}

// IsMalformedSource returns true if the error is a MalformedSourceError.
func IsMalformedSource(err error) bool {
	var malformed *MalformedSourceError
	return errors.As(err, &malformed)
}

// IsInvalidCategory returns true if the error is an InvalidCategoryError.
func IsInvalidCategory(err error) bool {
	var invalid *InvalidCategoryError
	return errors.As(err, &invalid)
}
