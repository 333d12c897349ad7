package model

import (
	"encoding/json"
	"fmt"
)

// HeadingLevel represents the hierarchical level of a heading (H1-H3).
type HeadingLevel int

const (
	LevelUnknown HeadingLevel = iota
	Level1                    // H1 - Main section/chapter
	Level2                    // H2 - Subsection
	Level3                    // H3 - Sub-subsection
)

// String returns the wire representation of the level ("H1", "H2", "H3").
func (l HeadingLevel) String() string {
	switch l {
	case Level1:
		return "H1"
	case Level2:
		return "H2"
	case Level3:
		return "H3"
	default:
		return "unknown"
	}
}

// Valid returns true if the level is one of H1-H3.
func (l HeadingLevel) Valid() bool {
	return l >= Level1 && l <= Level3
}

// MarshalJSON encodes the level as its string form to match the
// output contract.
func (l HeadingLevel) MarshalJSON() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("cannot marshal heading level %d", int(l))
	}
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes "H1".."H3" back into a HeadingLevel.
func (l *HeadingLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "H1":
		*l = Level1
	case "H2":
		*l = Level2
	case "H3":
		*l = Level3
	default:
		return fmt.Errorf("unknown heading level %q", s)
	}
	return nil
}

// OutlineEntry is one final outline item. Entries are immutable and ordered
// by (page ascending, then top-of-bbox ascending) of their origin line.
type OutlineEntry struct {
	Level HeadingLevel `json:"level"`
	Text  string       `json:"text"`
	Page  int          `json:"page"`
}

// Outline is the final result for one document: a title plus the ordered
// heading entries. Constructed once per document and never mutated after.
type Outline struct {
	Title   string         `json:"title"`
	Entries []OutlineEntry `json:"outline"`
}

// NewOutline builds an Outline, normalizing a nil entry slice to an empty
// one so the JSON form always carries an "outline" array.
func NewOutline(title string, entries []OutlineEntry) *Outline {
	if entries == nil {
		entries = []OutlineEntry{}
	}
	return &Outline{Title: title, Entries: entries}
}

// EntryCount returns the number of outline entries.
func (o *Outline) EntryCount() int {
	if o == nil {
		return 0
	}
	return len(o.Entries)
}

// EntriesAtLevel returns all entries at a specific level, in order.
func (o *Outline) EntriesAtLevel(level HeadingLevel) []OutlineEntry {
	if o == nil {
		return nil
	}
	var result []OutlineEntry
	for _, e := range o.Entries {
		if e.Level == level {
			result = append(result, e)
		}
	}
	return result
}
