package contour

import (
	"fmt"
	"strings"
)

// WarningCode identifies a class of non-fatal processing issue.
type WarningCode string

const (
	// WarnProfilingUnderflow means the document had too few lines to
	// profile and default language/body-size assumptions were used.
	WarnProfilingUnderflow WarningCode = "profiling-underflow"

	// WarnFormDocument means the first page read as a form and only a
	// title was extracted.
	WarnFormDocument WarningCode = "form-document"

	// WarnSampleTruncated means language detection saw only a bounded
	// prefix of the document text.
	WarnSampleTruncated WarningCode = "sample-truncated"

	// WarnHeaderFooterSkipped means the document had too few pages for
	// repeated header/footer detection.
	WarnHeaderFooterSkipped WarningCode = "header-footer-skipped"

	// WarnPagesTruncated means pages beyond the configured limit were
	// ignored.
	WarnPagesTruncated WarningCode = "pages-truncated"
)

// Warning describes a non-fatal issue encountered during extraction.
// Warnings never abort processing; they explain why output may be
// degraded.
type Warning struct {
	// Code classifies the warning
	Code WarningCode

	// Message is a human-readable description
	Message string

	// Page is the 1-based page the warning applies to, 0 for
	// document-level warnings
	Page int
}

// String returns a human-readable representation of the warning.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("%s (page %d): %s", w.Code, w.Page, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// FormatWarnings joins warnings into a single printable string, one
// warning per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}
