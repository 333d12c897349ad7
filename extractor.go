package contour

import (
	"fmt"
	"sort"

	"github.com/tsawler/contour/layout"
	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/profile"
	"github.com/tsawler/contour/tables"
	"github.com/tsawler/contour/text"
)

// Extractor provides a fluent interface for extracting outlines from
// decoded documents. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method
// chaining.
type Extractor struct {
	// Source
	doc *model.Document

	// Configuration
	options ExtractOptions
}

// clone creates a copy of the Extractor with a copy of options. This
// ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		doc:     e.doc,
		options: e.options.clone(),
	}
}

// pipeline holds intermediate state shared by terminal operations.
// titlePool excludes only repeated headers and footers; residual also
// excludes table grids and is the pool heading candidates draw from.
// Table cells stay eligible as title text, so a page that is all grid
// still yields a title.
type pipeline struct {
	lines     []*model.Line
	prof      *profile.Profile
	regions   []model.NoiseRegion
	titlePool []*model.Line
	residual  []*model.Line
	warnings  []Warning
}

// Outline runs the full pipeline and returns the document title plus the
// ordered heading outline.
//
// An empty document yields an empty outline and no error. A document over
// the page limit yields ErrInputTooLarge together with a minimal,
// title-only outline built from the first page. A form-like first page
// short-circuits to a title-only outline with a warning.
func (e *Extractor) Outline() (*model.Outline, []Warning, error) {
	if e.doc == nil || e.doc.IsEmpty() {
		return model.NewOutline("", nil), nil, nil
	}

	if pages := e.doc.PageCount(); pages > e.options.maxPages {
		title, warnings := e.minimalTitle()
		warnings = append(warnings, Warning{
			Code:    WarnPagesTruncated,
			Message: fmt.Sprintf("document has %d pages, limit is %d", pages, e.options.maxPages),
		})
		return model.NewOutline(title, nil), warnings,
			fmt.Errorf("%w: %d pages over limit %d", ErrInputTooLarge, pages, e.options.maxPages)
	}

	p := e.prepare()
	if len(p.lines) == 0 {
		return model.NewOutline("", nil), p.warnings, nil
	}

	firstPage := e.doc.Pages[0]

	// Form-like first pages carry labels and fill-in boxes, not prose;
	// anything heading-shaped on them is a field label.
	if formLike, _ := layout.NewFormDetector().Detect(pageLines(p.residual, firstPage.Number)); formLike {
		title := e.selectTitle(p.titlePool, firstPage)
		p.warnings = append(p.warnings, Warning{
			Code:    WarnFormDocument,
			Message: "first page looks like a form, emitting title only",
			Page:    firstPage.Number,
		})
		return model.NewOutline(title, nil), p.warnings, nil
	}

	titleLine := e.titleLine(p.titlePool, firstPage)
	title := ""
	if titleLine != nil {
		title = titleLine.Text
	}

	detector := e.headingDetector()
	candidateLines := make([]*model.Line, 0, len(p.residual))
	for _, line := range p.residual {
		if line != titleLine {
			candidateLines = append(candidateLines, line)
		}
	}

	candidates := detector.Classify(candidateLines, p.prof)
	candidates = e.hierarchyResolver().Resolve(candidates)

	entries := e.emit(candidates, detector, p.prof, title)

	return model.NewOutline(title, entries), p.warnings, nil
}

// Profile runs profiling only and returns the detected language and
// typographic baseline.
func (e *Extractor) Profile() (*profile.Profile, error) {
	if e.doc == nil || e.doc.IsEmpty() {
		return nil, fmt.Errorf("cannot profile: %w", ErrUnreadableDocument)
	}
	p := e.prepare()
	if p.prof == nil {
		return nil, fmt.Errorf("cannot profile: %w", ErrUnreadableDocument)
	}
	return p.prof, nil
}

// Lines returns the document's logical lines in reading order, before
// noise-region filtering.
func (e *Extractor) Lines() ([]*model.Line, error) {
	if e.doc == nil {
		return nil, ErrUnreadableDocument
	}
	return layout.NewLineDetector().DetectDocument(e.doc), nil
}

// Candidates returns the accepted heading candidates with their
// per-signal sub-scores, before hierarchy resolution and deduplication.
// Useful for threshold tuning.
func (e *Extractor) Candidates() ([]layout.Candidate, error) {
	if e.doc == nil || e.doc.IsEmpty() {
		return nil, ErrUnreadableDocument
	}
	p := e.prepare()
	return e.headingDetector().Classify(p.residual, p.prof), nil
}

// prepare runs the shared front half of the pipeline: line detection,
// profiling, and noise-region filtering.
func (e *Extractor) prepare() *pipeline {
	p := &pipeline{}

	p.lines = layout.NewLineDetector().DetectDocument(e.doc)
	if len(p.lines) == 0 {
		return p
	}

	profCfg := profile.DefaultConfig()
	profCfg.SizeFactor = e.options.headingSizeFactor
	p.prof = profile.NewProfilerWithConfig(profCfg).Detect(p.lines)

	if p.prof.Underflow {
		p.warnings = append(p.warnings, Warning{
			Code:    WarnProfilingUnderflow,
			Message: "too few lines to profile, using defaults",
		})
	}
	if p.prof.SampledChars >= profCfg.MaxSampleChars {
		p.warnings = append(p.warnings, Warning{
			Code:    WarnSampleTruncated,
			Message: fmt.Sprintf("language detected from first %d characters only", profCfg.MaxSampleChars),
		})
	}
	if e.options.languageForced {
		p.prof.Language = e.options.forceLanguage
	}

	gridCfg := tables.DefaultConfig()
	gridCfg.MinGridRows = e.options.minGridRows
	tableRegions := tables.NewGridDetectorWithConfig(gridCfg).Detect(p.lines)

	var hfRegions []model.NoiseRegion
	hfCfg := layout.DefaultHeaderFooterConfig()
	hfCfg.VerticalMargin = e.options.verticalMargin
	hfCfg.MinRepeatPages = e.options.minRepeatPages
	if e.doc.PageCount() < hfCfg.MinRepeatPages {
		p.warnings = append(p.warnings, Warning{
			Code:    WarnHeaderFooterSkipped,
			Message: fmt.Sprintf("fewer than %d pages, skipping repeated header/footer detection", hfCfg.MinRepeatPages),
		})
	} else {
		hf := layout.NewHeaderFooterDetectorWithConfig(hfCfg).Detect(p.lines, e.pageHeights())
		hfRegions = hf.Regions
	}

	p.regions = append(tableRegions, hfRegions...)

	p.titlePool = make([]*model.Line, 0, len(p.lines))
	for _, line := range p.lines {
		if !coveredByAny(hfRegions, line) {
			p.titlePool = append(p.titlePool, line)
		}
	}

	p.residual = make([]*model.Line, 0, len(p.titlePool))
	for _, line := range p.titlePool {
		if !coveredByAny(tableRegions, line) {
			p.residual = append(p.residual, line)
		}
	}

	return p
}

// emit deduplicates, re-checks plausibility, and orders the final
// entries. Level coercion runs here against the previous emitted entry,
// not the previous candidate, so dropping a duplicate cannot reopen a
// level skip in the surviving sequence.
func (e *Extractor) emit(candidates []layout.Candidate, detector *layout.HeadingDetector, prof *profile.Profile, title string) []model.OutlineEntry {
	sorted := make([]layout.Candidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Line.Page != sorted[j].Line.Page {
			return sorted[i].Line.Page < sorted[j].Line.Page
		}
		return sorted[i].Line.BBox.Top() < sorted[j].Line.BBox.Top()
	})

	coerce := e.coercion()
	titleKey := text.Fold(title)
	seenLevel := make(map[string]bool)
	seenPage := make(map[string]bool)

	entries := make([]model.OutlineEntry, 0, len(sorted))
	prev := model.LevelUnknown
	for _, c := range sorted {
		if !detector.Plausible(c.Line, prof) {
			continue
		}
		folded := text.Fold(c.Line.Text)
		if folded == "" || folded == titleKey {
			continue
		}

		level := c.Level
		if prev != model.LevelUnknown {
			level = coerce(prev, level)
			if level > model.Level3 {
				level = model.Level3
			}
		}

		levelKey := level.String() + "\x00" + folded
		pageKey := fmt.Sprintf("%s\x00%d", folded, c.Line.Page)
		if seenLevel[levelKey] || seenPage[pageKey] {
			continue
		}
		seenLevel[levelKey] = true
		seenPage[pageKey] = true

		entries = append(entries, model.OutlineEntry{Level: level, Text: c.Line.Text, Page: c.Line.Page})
		prev = level
	}
	return entries
}

// minimalTitle extracts a title from the first page only, for documents
// rejected by the page limit.
func (e *Extractor) minimalTitle() (string, []Warning) {
	firstPage := e.doc.Pages[0]
	lines := layout.NewLineDetector().DetectPage(firstPage)
	return e.selectTitle(lines, firstPage), nil
}

// titleLine picks the title line off the first page, falling back to the
// first non-empty line anywhere.
func (e *Extractor) titleLine(lines []*model.Line, firstPage model.Page) *model.Line {
	return layout.NewTitleSelector().Select(lines, firstPage.Width, firstPage.Height)
}

// selectTitle is titleLine flattened to its text.
func (e *Extractor) selectTitle(lines []*model.Line, firstPage model.Page) string {
	if line := e.titleLine(lines, firstPage); line != nil {
		return line.Text
	}
	return ""
}

// headingDetector builds a detector carrying the chain's plausibility
// bounds.
func (e *Extractor) headingDetector() *layout.HeadingDetector {
	cfg := layout.DefaultHeadingConfig()
	cfg.MinHeadingChars = e.options.minHeadingChars
	cfg.MaxHeadingWords = e.options.maxHeadingWords
	return layout.NewHeadingDetectorWithConfig(cfg)
}

// hierarchyResolver builds a resolver honoring KeepLevels.
func (e *Extractor) hierarchyResolver() *layout.HierarchyResolver {
	cfg := layout.DefaultHierarchyConfig()
	cfg.Coerce = e.coercion()
	return layout.NewHierarchyResolverWithConfig(cfg)
}

// coercion returns the level-adjustment rule selected by the chain.
func (e *Extractor) coercion() layout.CoercionFunc {
	if e.options.keepLevels {
		return layout.KeepLevels
	}
	return layout.OneStepCoercion
}

// pageHeights maps page numbers to page heights for band math.
func (e *Extractor) pageHeights() map[int]float64 {
	heights := make(map[int]float64, len(e.doc.Pages))
	for _, page := range e.doc.Pages {
		heights[page.Number] = page.Height
	}
	return heights
}

// pageLines filters lines down to one page.
func pageLines(lines []*model.Line, page int) []*model.Line {
	var out []*model.Line
	for _, line := range lines {
		if line.Page == page {
			out = append(out, line)
		}
	}
	return out
}

// coveredByAny reports whether any region claims the line.
func coveredByAny(regions []model.NoiseRegion, line *model.Line) bool {
	for _, r := range regions {
		if r.Covers(line) {
			return true
		}
	}
	return false
}
