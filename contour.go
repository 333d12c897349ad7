// Package contour provides a fluent API for extracting a document title
// and a hierarchical heading outline (H1-H3, with page numbers) from
// positioned text spans.
//
// Basic usage:
//
//	outline, warnings, err := contour.FromDocument(doc).Outline()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", contour.FormatWarnings(warnings))
//	}
//
// With options:
//
//	outline, _, err := contour.FromDocument(doc).
//	    MaxPages(10).
//	    HeadingSizeFactor(1.2).
//	    KeepLevels().
//	    Outline()
//
// For advanced use cases, the lower-level layout, profile, and tables
// packages are also available.
package contour

import (
	"github.com/tsawler/contour/model"
)

// FromDocument returns an Extractor for fluent configuration over an
// already-decoded document. The document is not modified.
//
// Example:
//
//	outline, warnings, err := contour.FromDocument(doc).Outline()
func FromDocument(doc *model.Document) *Extractor {
	return &Extractor{
		doc:     doc,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	prof := contour.Must(contour.FromDocument(doc).Profile())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustOutline is a helper that wraps a call to Outline() and panics if
// the error is non-nil. It discards warnings and returns just the
// outline.
//
// Example:
//
//	outline := contour.MustOutline(contour.FromDocument(doc).Outline())
func MustOutline(outline *model.Outline, _ []Warning, err error) *model.Outline {
	if err != nil {
		panic(err)
	}
	return outline
}
