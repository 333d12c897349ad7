package model

import "strings"

// Line is a logical line of text: one or more spans merged by vertical and
// horizontal proximity and shared style. All spans in a line belong to the
// same page and are reading-order contiguous.
type Line struct {
	// Spans are the merged spans, left to right
	Spans []Span

	// Text is the assembled text content of the line
	Text string

	// Page is the 1-based page number
	Page int

	// BBox is the union of the span bounding boxes
	BBox BBox

	// FontSize is the dominant font size, weighted by character count
	FontSize float64

	// Bold is true if the dominant style of the line is bold
	Bold bool

	// FontName is the font name of the first span
	FontName string
}

// CharCount returns the number of runes in the line text, spaces excluded.
func (l *Line) CharCount() int {
	if l == nil {
		return 0
	}
	count := 0
	for _, r := range l.Text {
		if r != ' ' {
			count++
		}
	}
	return count
}

// WordCount returns the whitespace-separated word count of the line.
func (l *Line) WordCount() int {
	if l == nil {
		return 0
	}
	return len(strings.Fields(l.Text))
}

// IsEmpty returns true if the line has no text content.
func (l *Line) IsEmpty() bool {
	if l == nil {
		return true
	}
	return strings.TrimSpace(l.Text) == ""
}

// HasLargerFont returns true if this line's font is larger than the given size.
func (l *Line) HasLargerFont(size float64) bool {
	if l == nil {
		return false
	}
	return l.FontSize > size
}

// RelativeTop returns the line's top edge as a fraction of the page height.
// Page height must be positive; zero height yields 0.
func (l *Line) RelativeTop(pageHeight float64) float64 {
	if l == nil || pageHeight <= 0 {
		return 0
	}
	return l.BBox.Top() / pageHeight
}
