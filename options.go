package contour

import "github.com/tsawler/contour/text"

// ExtractOptions holds configuration for outline extraction.
type ExtractOptions struct {
	// Limits
	maxPages int

	// Profiling
	headingSizeFactor float64
	forceLanguage     text.Language
	languageForced    bool

	// Layout filtering
	verticalMargin float64

	// Heading plausibility bounds
	minHeadingChars int
	maxHeadingWords int

	// Noise detection
	minRepeatPages int
	minGridRows    int

	// Hierarchy
	keepLevels bool
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		maxPages:          50,
		headingSizeFactor: 1.15,
		verticalMargin:    0.08,
		minHeadingChars:   2,
		maxHeadingWords:   20,
		minRepeatPages:    3,
		minGridRows:       3,
		keepLevels:        false,
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		maxPages:          o.maxPages,
		headingSizeFactor: o.headingSizeFactor,
		forceLanguage:     o.forceLanguage,
		languageForced:    o.languageForced,
		verticalMargin:    o.verticalMargin,
		minHeadingChars:   o.minHeadingChars,
		maxHeadingWords:   o.maxHeadingWords,
		minRepeatPages:    o.minRepeatPages,
		minGridRows:       o.minGridRows,
		keepLevels:        o.keepLevels,
	}
}

// MaxPages sets the page limit. Documents with more pages yield
// ErrInputTooLarge from terminal operations. Values below 1 are ignored.
func (e *Extractor) MaxPages(n int) *Extractor {
	newExt := e.clone()
	if n >= 1 {
		newExt.options.maxPages = n
	}
	return newExt
}

// HeadingSizeFactor sets the multiple of the body font size at which a
// line counts as "larger than normal text". Values at or below 1 are
// ignored.
func (e *Extractor) HeadingSizeFactor(f float64) *Extractor {
	newExt := e.clone()
	if f > 1 {
		newExt.options.headingSizeFactor = f
	}
	return newExt
}

// VerticalMargin sets the fraction of the page height treated as the
// header and footer bands. Values outside (0, 0.5) are ignored.
func (e *Extractor) VerticalMargin(f float64) *Extractor {
	newExt := e.clone()
	if f > 0 && f < 0.5 {
		newExt.options.verticalMargin = f
	}
	return newExt
}

// HeadingCharBounds sets the minimum character count and maximum word
// count for plausible heading text. Non-positive values leave the
// corresponding bound unchanged.
func (e *Extractor) HeadingCharBounds(minChars, maxWords int) *Extractor {
	newExt := e.clone()
	if minChars > 0 {
		newExt.options.minHeadingChars = minChars
	}
	if maxWords > 0 {
		newExt.options.maxHeadingWords = maxWords
	}
	return newExt
}

// MinRepeatPages sets how many distinct pages the same text must recur
// on, inside the margin band, to count as a header or footer. Values
// below 2 are ignored.
func (e *Extractor) MinRepeatPages(n int) *Extractor {
	newExt := e.clone()
	if n >= 2 {
		newExt.options.minRepeatPages = n
	}
	return newExt
}

// MinGridRows sets the minimum run of aligned rows for table detection.
// Values below 2 are ignored.
func (e *Extractor) MinGridRows(n int) *Extractor {
	newExt := e.clone()
	if n >= 2 {
		newExt.options.minGridRows = n
	}
	return newExt
}

// ForceLanguage skips language detection and uses the given language for
// numbering patterns and plausibility rules.
func (e *Extractor) ForceLanguage(lang text.Language) *Extractor {
	newExt := e.clone()
	newExt.options.forceLanguage = lang
	newExt.options.languageForced = true
	return newExt
}

// KeepLevels disables hierarchy coercion: heading levels are emitted as
// classified, even when a level skips past its predecessor.
func (e *Extractor) KeepLevels() *Extractor {
	newExt := e.clone()
	newExt.options.keepLevels = true
	return newExt
}
