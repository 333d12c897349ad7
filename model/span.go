package model

import "strings"

// Span is a single positioned text run as delivered by the external
// decoder: text content, bounding box, originating page and typographic
// attributes. Spans are treated as immutable once normalized.
type Span struct {
	// Text is the Unicode text content of the run
	Text string

	// BBox is the bounding box in page coordinates
	BBox BBox

	// Page is the 1-based page number the span belongs to
	Page int

	// FontName is the decoder-reported font name (e.g. "Helvetica-Bold")
	FontName string

	// FontSize is the font size in points
	FontSize float64

	// Bold and Italic are the decoder-reported style flags
	Bold   bool
	Italic bool
}

// IsEmpty returns true if the span carries no visible text.
func (s Span) IsEmpty() bool {
	return strings.TrimSpace(s.Text) == ""
}

// CharCount returns the number of runes in the span text.
func (s Span) CharCount() int {
	return len([]rune(s.Text))
}

// Page holds the ordered spans of a single page together with the page
// geometry needed by the layout detectors.
type Page struct {
	// Number is the 1-based page number
	Number int

	// Width and Height are the page dimensions in page units
	Width  float64
	Height float64

	// Spans are the text runs in decoder reading order
	Spans []Span
}

// Document is the decoder-side input: an ordered list of pages.
type Document struct {
	Pages []Page
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	if d == nil {
		return 0
	}
	return len(d.Pages)
}

// SpanCount returns the total number of spans across all pages.
func (d *Document) SpanCount() int {
	if d == nil {
		return 0
	}
	total := 0
	for _, p := range d.Pages {
		total += len(p.Spans)
	}
	return total
}

// IsEmpty returns true if the document has no pages or no spans at all.
func (d *Document) IsEmpty() bool {
	return d.SpanCount() == 0
}
