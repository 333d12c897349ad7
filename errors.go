package contour

import "errors"

// Sentinel errors returned by terminal operations. Callers should test
// with errors.Is since errors may be wrapped with page or size context.
var (
	// ErrInputTooLarge is returned when a document exceeds the configured
	// page limit. A minimal outline is still produced.
	ErrInputTooLarge = errors.New("input exceeds configured limits")

	// ErrUnreadableDocument is returned when a document carries no usable
	// positioned text.
	ErrUnreadableDocument = errors.New("document has no readable text")
)
