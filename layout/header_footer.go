package layout

import (
	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/text"
)

// HeaderFooterConfig holds configuration for header/footer detection.
type HeaderFooterConfig struct {
	// VerticalMargin is the fraction of page height from the top (and
	// from the bottom) treated as the header and footer bands
	// Default: 0.08
	VerticalMargin float64

	// MinRepeatPages is the number of pages the same (text, band) pair
	// must recur on before it is marked a header or footer
	// Default: 3
	MinRepeatPages int

	// BandTolerance is the maximum difference in relative vertical
	// position for two occurrences to count as the same band position
	// Default: 0.02 (2% of page height)
	BandTolerance float64
}

// DefaultHeaderFooterConfig returns sensible default configuration.
func DefaultHeaderFooterConfig() HeaderFooterConfig {
	return HeaderFooterConfig{
		VerticalMargin: 0.08,
		MinRepeatPages: 3,
		BandTolerance:  0.02,
	}
}

// HeaderFooterDetector finds text that repeats at the same vertical
// position in the top or bottom margin band across pages. Matching lines
// carry no document structure and are excluded from all downstream stages.
type HeaderFooterDetector struct {
	config HeaderFooterConfig
}

// NewHeaderFooterDetector creates a detector with default configuration.
func NewHeaderFooterDetector() *HeaderFooterDetector {
	return &HeaderFooterDetector{config: DefaultHeaderFooterConfig()}
}

// NewHeaderFooterDetectorWithConfig creates a detector with custom configuration.
func NewHeaderFooterDetectorWithConfig(config HeaderFooterConfig) *HeaderFooterDetector {
	return &HeaderFooterDetector{config: config}
}

// HeaderFooterResult contains the detected regions and a membership test
// for individual lines.
type HeaderFooterResult struct {
	// Regions are the detected header and footer regions
	Regions []model.NoiseRegion

	// Config used for detection
	Config HeaderFooterConfig

	repeated map[bandKey]bool
}

// bandKey identifies a candidate repeating line: its folded text plus its
// quantized relative vertical position and band side.
type bandKey struct {
	text   string
	band   int
	footer bool
}

// occurrence tracks the pages a candidate appeared on, with each page's
// own bounds. Vertical position may drift between pages while staying in
// the same band, so one shared bbox would miss lines on earlier pages.
type occurrence struct {
	pages map[int]model.BBox
}

// Detect scans all pages' lines for repeating margin-band text. pageHeights
// maps 1-based page numbers to their heights. Detection is linear in the
// number of lines: candidates are tracked in a rolling map keyed by text
// and band, never compared pairwise.
func (d *HeaderFooterDetector) Detect(lines []*model.Line, pageHeights map[int]float64) *HeaderFooterResult {
	result := &HeaderFooterResult{
		Config:   d.config,
		repeated: make(map[bandKey]bool),
	}

	pageCount := len(pageHeights)
	if pageCount < d.config.MinRepeatPages {
		return result
	}

	seen := make(map[bandKey]*occurrence)

	for _, line := range lines {
		height := pageHeights[line.Page]
		if height <= 0 || line.IsEmpty() {
			continue
		}

		key, ok := d.keyFor(line, height)
		if !ok {
			continue
		}

		occ := seen[key]
		if occ == nil {
			occ = &occurrence{pages: make(map[int]model.BBox)}
			seen[key] = occ
		}
		if prev, ok := occ.pages[line.Page]; ok {
			occ.pages[line.Page] = prev.Union(line.BBox)
		} else {
			occ.pages[line.Page] = line.BBox
		}
	}

	for key, occ := range seen {
		if len(occ.pages) < d.config.MinRepeatPages {
			continue
		}
		result.repeated[key] = true

		kind := model.RegionHeader
		if key.footer {
			kind = model.RegionFooter
		}
		for page, bbox := range occ.pages {
			result.Regions = append(result.Regions, model.NoiseRegion{
				Kind: kind,
				Page: page,
				BBox: bbox,
			})
		}
	}

	return result
}

// keyFor returns the candidate key for a line, or ok=false when the line
// lies outside both margin bands.
func (d *HeaderFooterDetector) keyFor(line *model.Line, pageHeight float64) (bandKey, bool) {
	rel := line.RelativeTop(pageHeight)
	relBottom := line.BBox.Bottom() / pageHeight

	var footer bool
	switch {
	case rel < d.config.VerticalMargin:
		footer = false
	case relBottom > 1-d.config.VerticalMargin:
		footer = true
	default:
		return bandKey{}, false
	}

	band := int(rel / d.config.BandTolerance)
	return bandKey{
		text:   text.Fold(line.Text),
		band:   band,
		footer: footer,
	}, true
}

// IsRepeating reports whether the line was identified as header or footer
// text. Position tolerance is the same quantization used during detection,
// so slight per-page drift within the band still matches.
func (r *HeaderFooterResult) IsRepeating(line *model.Line, pageHeight float64) bool {
	if r == nil || len(r.repeated) == 0 || pageHeight <= 0 {
		return false
	}

	d := HeaderFooterDetector{config: r.Config}
	key, ok := d.keyFor(line, pageHeight)
	if !ok {
		return false
	}
	if r.repeated[key] {
		return true
	}
	// Check the adjacent quantization buckets to absorb band-edge jitter.
	for _, delta := range []int{-1, 1} {
		key2 := key
		key2.band += delta
		if r.repeated[key2] {
			return true
		}
	}
	return false
}

// RegionCount returns the number of detected header/footer regions.
func (r *HeaderFooterResult) RegionCount() int {
	if r == nil {
		return 0
	}
	return len(r.Regions)
}
