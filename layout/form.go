package layout

import (
	"regexp"
	"strings"

	"github.com/tsawler/contour/model"
)

// FormConfig holds configuration for form-likeness detection.
type FormConfig struct {
	// IndicatorRatio is the fraction of first-page lines that must look
	// like form fields for the document to classify as a form
	// Default: 0.4
	IndicatorRatio float64

	// MaxLabelWords is the word count at or below which a colon-terminated
	// line counts as a field label (default: 3)
	MaxLabelWords int
}

// DefaultFormConfig returns sensible default configuration.
func DefaultFormConfig() FormConfig {
	return FormConfig{
		IndicatorRatio: 0.4,
		MaxLabelWords:  3,
	}
}

// Form field patterns: bare item numbers, numbered short labels, and
// labels followed by fill-in rules or box glyphs.
var (
	bareNumberRe    = regexp.MustCompile(`^\d+\.?\s*$`)
	numberedLabelRe = regexp.MustCompile(`^\d+\.\s*\S(.{0,29})$`)
	fillInRe        = regexp.MustCompile(`[_]{3,}|[□☐▢]+\s*$`)
)

// FormDetector classifies a document as form-like when a high proportion
// of its first-page lines match label/blank/box field patterns. Form-like
// documents short-circuit to title-only output: fields never make sound
// headings.
type FormDetector struct {
	config FormConfig
}

// NewFormDetector creates a form detector with default configuration.
func NewFormDetector() *FormDetector {
	return &FormDetector{config: DefaultFormConfig()}
}

// NewFormDetectorWithConfig creates a form detector with custom configuration.
func NewFormDetectorWithConfig(config FormConfig) *FormDetector {
	return &FormDetector{config: config}
}

// Detect reports whether the document reads as a form, judged from its
// first-page lines. Returns the indicator ratio alongside the verdict so
// callers can log borderline cases.
func (d *FormDetector) Detect(lines []*model.Line) (bool, float64) {
	var firstPage []*model.Line
	for _, line := range lines {
		if line.Page == 1 {
			firstPage = append(firstPage, line)
		}
	}
	if len(firstPage) == 0 {
		return false, 0
	}

	indicators := 0.0
	for _, line := range firstPage {
		indicators += d.score(line)
	}

	ratio := indicators / float64(len(firstPage))
	return ratio > d.config.IndicatorRatio, ratio
}

// score returns the form-indicator weight of one line.
func (d *FormDetector) score(line *model.Line) float64 {
	t := strings.TrimSpace(line.Text)
	lower := strings.ToLower(t)

	switch {
	case bareNumberRe.MatchString(t):
		return 1
	case strings.Contains(lower, "application") && strings.Contains(lower, "form"):
		return 3
	case fillInRe.MatchString(t):
		return 1
	case numberedLabelRe.MatchString(t):
		return 1
	case line.WordCount() <= d.config.MaxLabelWords && strings.Contains(t, ":"):
		return 1
	}
	return 0
}
