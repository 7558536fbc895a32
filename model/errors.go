package model

import "errors"

// Validation failures for the shared value types. These are returned wrapped
// with detail; test with errors.Is.
var (
	// ErrInvalidMarginSpec indicates caller-supplied margins lie outside
	// [0, 1] or an opposing pair sums to 1 or more, which would produce a
	// crop with non-positive area.
	ErrInvalidMarginSpec = errors.New("invalid margin spec")

	// ErrInvalidPageRange indicates a requested page selection falls
	// outside the document's actual page count, or the document has no
	// pages at all.
	ErrInvalidPageRange = errors.New("invalid page range")
)
