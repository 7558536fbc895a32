package detect

import "errors"

// Detection failures. These are deterministic properties of the input
// document and configuration, so callers should not retry them. Test with
// errors.Is.
var (
	// ErrNoContentDetected indicates every page in the target range
	// reduced to a degenerate bounding box. Callers must not fall back to
	// a default crop silently.
	ErrNoContentDetected = errors.New("no content detected in page range")

	// ErrDegenerateMargins indicates the computed margins violate the
	// positive-area invariant after buffer subtraction, which happens on
	// pathological documents with near-full-bleed content.
	ErrDegenerateMargins = errors.New("computed margins leave no visible area")
)
