package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/text"
)

// LineConfig holds configuration for logical line assembly.
type LineConfig struct {
	// LineTolerance is the Y-distance tolerance for grouping spans into
	// the same line, as a fraction of span height (default: 0.5)
	LineTolerance float64

	// GapFactor is the horizontal gap, as a multiple of font size, beyond
	// which adjacent spans start a new logical line even when vertically
	// aligned. Keeps table cells from merging into one line.
	// Default: 1.5
	GapFactor float64

	// SizeTolerance is the max font size difference for spans to share a
	// line (default: 0.51 points)
	SizeTolerance float64

	// SpaceGapFactor is the horizontal gap, as a multiple of font size,
	// beyond which a space is inserted between merged spans (default: 0.3)
	SpaceGapFactor float64
}

// DefaultLineConfig returns sensible default configuration.
func DefaultLineConfig() LineConfig {
	return LineConfig{
		LineTolerance:  0.5,
		GapFactor:      1.5,
		SizeTolerance:  0.51,
		SpaceGapFactor: 0.3,
	}
}

// LineDetector merges raw spans into logical lines. It normalizes span
// text (NFC, whitespace collapse), drops empty spans, and groups the rest
// by vertical proximity, splitting on large horizontal gaps or style
// mismatches. Input spans are never mutated.
type LineDetector struct {
	config LineConfig
}

// NewLineDetector creates a line detector with default configuration.
func NewLineDetector() *LineDetector {
	return &LineDetector{config: DefaultLineConfig()}
}

// NewLineDetectorWithConfig creates a line detector with custom configuration.
func NewLineDetectorWithConfig(config LineConfig) *LineDetector {
	return &LineDetector{config: config}
}

// DetectPage assembles the logical lines of one page, ordered top to
// bottom and left to right.
func (d *LineDetector) DetectPage(page model.Page) []*model.Line {
	spans := d.normalizeSpans(page)
	if len(spans) == 0 {
		return nil
	}

	rows := d.groupIntoRows(spans)

	var lines []*model.Line
	for _, row := range rows {
		lines = append(lines, d.splitRow(row)...)
	}

	return lines
}

// DetectDocument assembles logical lines for every page in order.
func (d *LineDetector) DetectDocument(doc *model.Document) []*model.Line {
	if doc == nil {
		return nil
	}
	var lines []*model.Line
	for _, page := range doc.Pages {
		lines = append(lines, d.DetectPage(page)...)
	}
	return lines
}

// normalizeSpans copies the page spans with normalized text, dropping
// whitespace-only and zero-width spans.
func (d *LineDetector) normalizeSpans(page model.Page) []model.Span {
	out := make([]model.Span, 0, len(page.Spans))
	for _, span := range page.Spans {
		normalized := text.Normalize(span.Text)
		if normalized == "" || span.BBox.Width <= 0 {
			continue
		}
		span.Text = normalized
		if span.Page == 0 {
			span.Page = page.Number
		}
		out = append(out, span)
	}
	return out
}

// groupIntoRows groups spans into visual rows by Y proximity. Sorting is
// by raw top only; Y tolerance is applied in the grouping scan below so
// the comparator stays a strict ordering. Stable sort keeps decoder
// reading order for exact ties.
func (d *LineDetector) groupIntoRows(spans []model.Span) [][]model.Span {
	sorted := make([]model.Span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BBox.Top() < sorted[j].BBox.Top()
	})

	var rows [][]model.Span
	var current []model.Span

	for _, span := range sorted {
		if len(current) == 0 {
			current = append(current, span)
			continue
		}

		rowY := averageTop(current)
		if absFloat(span.BBox.Top()-rowY) <= d.tolerance(span) {
			current = append(current, span)
		} else {
			rows = append(rows, sortRowByX(current))
			current = []model.Span{span}
		}
	}
	if len(current) > 0 {
		rows = append(rows, sortRowByX(current))
	}

	return rows
}

// splitRow breaks one visual row into logical lines wherever the
// horizontal gap is too large or the style changes, then builds the Line
// values.
func (d *LineDetector) splitRow(row []model.Span) []*model.Line {
	if len(row) == 0 {
		return nil
	}

	var lines []*model.Line
	current := []model.Span{row[0]}

	for _, span := range row[1:] {
		prev := current[len(current)-1]
		gap := span.BBox.Left() - prev.BBox.Right()

		sameStyle := absFloat(span.FontSize-prev.FontSize) <= d.config.SizeTolerance &&
			span.Bold == prev.Bold
		maxGap := span.FontSize * d.config.GapFactor

		if sameStyle && gap <= maxGap {
			current = append(current, span)
		} else {
			lines = append(lines, d.buildLine(current))
			current = []model.Span{span}
		}
	}
	lines = append(lines, d.buildLine(current))

	return lines
}

// buildLine assembles one logical line from its spans: gap-aware text
// joining, union bbox, and character-weighted dominant style.
func (d *LineDetector) buildLine(spans []model.Span) *model.Line {
	line := &model.Line{
		Spans:    spans,
		Page:     spans[0].Page,
		FontName: spans[0].FontName,
		BBox:     spans[0].BBox,
	}

	var sb strings.Builder
	for i, span := range spans {
		if i > 0 {
			prev := spans[i-1]
			gap := span.BBox.Left() - prev.BBox.Right()
			if gap > span.FontSize*d.config.SpaceGapFactor {
				sb.WriteByte(' ')
			}
			line.BBox = line.BBox.Union(span.BBox)
		}
		sb.WriteString(span.Text)
	}
	line.Text = strings.TrimSpace(sb.String())

	line.FontSize, line.Bold = dominantStyle(spans)

	return line
}

// dominantStyle returns the font size and boldness carrying the most
// characters across the spans.
func dominantStyle(spans []model.Span) (float64, bool) {
	sizeWeight := make(map[float64]int)
	boldChars := 0
	totalChars := 0

	for _, span := range spans {
		chars := span.CharCount()
		sizeWeight[span.FontSize] += chars
		totalChars += chars
		if span.Bold {
			boldChars += chars
		}
	}

	bestSize := spans[0].FontSize
	bestWeight := 0
	for size, weight := range sizeWeight {
		if weight > bestWeight || (weight == bestWeight && size > bestSize) {
			bestWeight = weight
			bestSize = size
		}
	}

	return bestSize, totalChars > 0 && boldChars*2 >= totalChars
}

func (d *LineDetector) tolerance(span model.Span) float64 {
	height := span.BBox.Height
	if height <= 0 {
		height = span.FontSize
	}
	tol := height * d.config.LineTolerance
	if tol < 1.0 {
		tol = 1.0
	}
	return tol
}

func sortRowByX(row []model.Span) []model.Span {
	sort.SliceStable(row, func(i, j int) bool {
		return row[i].BBox.Left() < row[j].BBox.Left()
	})
	return row
}

func averageTop(spans []model.Span) float64 {
	if len(spans) == 0 {
		return 0
	}
	total := 0.0
	for _, s := range spans {
		total += s.BBox.Top()
	}
	return total / float64(len(spans))
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
