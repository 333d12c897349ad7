package layout

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/profile"
	"github.com/tsawler/contour/text"
)

// SignalScores carries the four sub-scores of one candidate. Keeping them
// separate (rather than folding into a single opaque number) lets each
// signal be tested in isolation and the combiner regression-tested.
type SignalScores struct {
	// Numbering is the contribution of a matched numbering pattern
	Numbering float64

	// FontSize is the contribution of size above the heading threshold
	// plus boldness bonuses
	FontSize float64

	// Position is the isolation bonus or mid-paragraph penalty
	Position float64

	// Plausibility is 0 when the line passes the junk filters and a veto
	// value below any acceptance threshold when it does not
	Plausibility float64
}

// Total returns the combined score.
func (s SignalScores) Total() float64 {
	return s.Numbering + s.FontSize + s.Position + s.Plausibility
}

// Candidate is a logical line provisionally judged to be a heading,
// pending hierarchy normalization.
type Candidate struct {
	// Line is the underlying logical line
	Line *model.Line

	// Scores are the per-signal sub-scores
	Scores SignalScores

	// Score is the combined score
	Score float64

	// Level is the provisional level (Unknown until numbering or
	// font-size ranking assigns one)
	Level model.HeadingLevel

	// Pattern is the matched numbering pattern source, empty if none
	Pattern string
}

// HeadingConfig holds configuration for heading candidate scoring.
type HeadingConfig struct {
	// NumberingWeight is the score for a matched numbering pattern;
	// the strongest single signal (default: 0.4)
	NumberingWeight float64

	// FontSizeWeight is the base score for size at or above the profile
	// threshold (default: 0.25)
	FontSizeWeight float64

	// FontSizeSlope scales the extra bonus per unit of size ratio above
	// the threshold factor (default: 0.5)
	FontSizeSlope float64

	// FontSizeBonusCap caps that extra bonus (default: 0.15)
	FontSizeBonusCap float64

	// BoldBonus is added for dominantly bold lines (default: 0.1)
	BoldBonus float64

	// SmallBoldBonus is the reduced size score for bold text below the
	// threshold but above body size (default: 0.1)
	SmallBoldBonus float64

	// IsolationBonus rewards lines preceded by a blank gap and followed
	// by body-sized text (default: 0.15)
	IsolationBonus float64

	// EmbeddedPenalty is subtracted from lines sitting tight inside a
	// same-size paragraph (default: 0.2)
	EmbeddedPenalty float64

	// AcceptThreshold is the minimum combined score for candidacy
	// (default: 0.35)
	AcceptThreshold float64

	// MinHeadingChars and MaxHeadingWords bound plausible heading length
	// (defaults: 2 and 20)
	MinHeadingChars int
	MaxHeadingWords int

	// MaxHeadingRunes bounds heading length for languages without word
	// spacing (default: 50)
	MaxHeadingRunes int

	// GapRatio is the multiple of the median line gap above which a line
	// counts as isolated (default: 1.5)
	GapRatio float64
}

// DefaultHeadingConfig returns sensible default configuration.
func DefaultHeadingConfig() HeadingConfig {
	return HeadingConfig{
		NumberingWeight:  0.4,
		FontSizeWeight:   0.25,
		FontSizeSlope:    0.5,
		FontSizeBonusCap: 0.15,
		BoldBonus:        0.1,
		SmallBoldBonus:   0.1,
		IsolationBonus:   0.15,
		EmbeddedPenalty:  0.2,
		AcceptThreshold:  0.35,
		MinHeadingChars:  2,
		MaxHeadingWords:  20,
		MaxHeadingRunes:  50,
		GapRatio:         1.5,
	}
}

// plausibilityVeto is low enough that no combination of positive signals
// can rescue a vetoed line.
const plausibilityVeto = -2.0

// numberingPattern pairs a compiled pattern with the level it implies.
// Patterns whose level is Unknown derive the level from the dotted-segment
// depth of the match instead.
type numberingPattern struct {
	re    *regexp.Regexp
	level model.HeadingLevel
}

// dottedNumberRe matches academic numbering like "1.", "2.3" or "4.1.2",
// capturing the numeric prefix so the segment depth can be counted.
// RE2 has no lookahead; counting captured dots replaces the original
// pattern family.
var dottedNumberRe = regexp.MustCompile(`^(\d+(?:\.\d+){0,2})[.)]?\s+\S`)

var (
	englishWordPatterns = []numberingPattern{
		{regexp.MustCompile(`^(?i)(chapter|part|appendix)\s+[0-9IVXLCDM]+`), model.Level1},
		{regexp.MustCompile(`^(?i)section\s+\d+`), model.Level2},
	}
	spanishWordPatterns = []numberingPattern{
		{regexp.MustCompile(`^(?i)(capítulo|apéndice|parte)\s+[0-9IVXLCDM]+`), model.Level1},
		{regexp.MustCompile(`^(?i)sección\s+\d+`), model.Level2},
	}
	frenchWordPatterns = []numberingPattern{
		{regexp.MustCompile(`^(?i)(chapitre|partie|annexe)\s+[0-9IVXLCDM]+`), model.Level1},
		{regexp.MustCompile(`^(?i)section\s+\d+`), model.Level2},
	}
	japanesePatterns = []numberingPattern{
		{regexp.MustCompile(`^第\d+章`), model.Level1},
		{regexp.MustCompile(`^第\d+[節条]`), model.Level2},
		{regexp.MustCompile(`^第\d+[項目]`), model.Level3},
	}
	romanNumeralRe = regexp.MustCompile(`^[IVXLCDM]+\.\s`)
	letterPrefixRe = regexp.MustCompile(`^[A-Z][.)]\s`)
)

// junkPatterns reject text that mimics heading shape but never is one:
// serial-number column headers, page markers, figure and table captions,
// bare numbers or letters, URLs and addresses.
var junkPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(?i)s\.?\s*no\.?($|\s)`),
	regexp.MustCompile(`^(?i)sr\.?\s*no\.?($|\s)`),
	regexp.MustCompile(`^(?i)page\s+\d+`),
	regexp.MustCompile(`^(?i)fig(\.|ure)?\s*\d+`),
	regexp.MustCompile(`^(?i)table\s*\d+`),
	regexp.MustCompile(`^\d+\s*$`),
	regexp.MustCompile(`^[A-Za-z]\s*$`),
	regexp.MustCompile(`(?i)www\.`),
	regexp.MustCompile(`@`),
}

// HeadingDetector scores logical lines into heading candidates.
type HeadingDetector struct {
	config HeadingConfig
}

// NewHeadingDetector creates a heading detector with default configuration.
func NewHeadingDetector() *HeadingDetector {
	return &HeadingDetector{config: DefaultHeadingConfig()}
}

// NewHeadingDetectorWithConfig creates a heading detector with custom configuration.
func NewHeadingDetectorWithConfig(config HeadingConfig) *HeadingDetector {
	return &HeadingDetector{config: config}
}

// Classify scores every line against the document profile and returns the
// accepted candidates in document order. Lines must already be in reading
// order; noise-region lines are expected to have been filtered out by the
// caller.
func (d *HeadingDetector) Classify(lines []*model.Line, prof *profile.Profile) []Candidate {
	if len(lines) == 0 || prof == nil {
		return nil
	}

	median := medianLineGap(lines)

	var candidates []Candidate
	for i, line := range lines {
		scores := SignalScores{}

		level, pattern := d.DetectNumbering(line.Text, prof.Language)
		if pattern != "" {
			scores.Numbering = d.config.NumberingWeight
		}

		scores.FontSize = d.FontScore(line, prof)
		scores.Position = d.PositionScore(lines, i, median, prof)
		if !d.Plausible(line, prof) {
			scores.Plausibility = plausibilityVeto
		}

		total := scores.Total()
		if total < d.config.AcceptThreshold {
			continue
		}

		candidates = append(candidates, Candidate{
			Line:    line,
			Scores:  scores,
			Score:   total,
			Level:   level,
			Pattern: pattern,
		})
	}

	d.rankUnknownLevels(candidates)

	return candidates
}

// DetectNumbering matches the line against the language's ordered pattern
// table. A match returns the implied level and the pattern source; no
// match returns LevelUnknown and an empty string.
func (d *HeadingDetector) DetectNumbering(s string, lang text.Language) (model.HeadingLevel, string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.LevelUnknown, ""
	}

	if lang == text.Japanese {
		for _, p := range japanesePatterns {
			if p.re.MatchString(s) {
				return p.level, p.re.String()
			}
		}
	}

	var wordPatterns []numberingPattern
	switch lang {
	case text.Spanish:
		wordPatterns = spanishWordPatterns
	case text.French:
		wordPatterns = frenchWordPatterns
	default:
		wordPatterns = englishWordPatterns
	}
	for _, p := range wordPatterns {
		if p.re.MatchString(s) {
			return p.level, p.re.String()
		}
	}

	if m := dottedNumberRe.FindStringSubmatch(s); m != nil {
		depth := strings.Count(m[1], ".") + 1
		level := model.HeadingLevel(depth)
		if level > model.Level3 {
			level = model.Level3
		}
		return level, dottedNumberRe.String()
	}

	if romanNumeralRe.MatchString(s) {
		return model.Level1, romanNumeralRe.String()
	}
	if letterPrefixRe.MatchString(s) {
		return model.Level2, letterPrefixRe.String()
	}

	return model.LevelUnknown, ""
}

// FontScore computes the size/boldness contribution: proportional score
// above the profile threshold, a reduced bonus for bold text below it,
// plus a flat bold bonus.
func (d *HeadingDetector) FontScore(line *model.Line, prof *profile.Profile) float64 {
	if prof.BodyFontSize <= 0 {
		return 0
	}

	ratio := line.FontSize / prof.BodyFontSize
	thresholdRatio := prof.HeadingThreshold / prof.BodyFontSize

	score := 0.0
	if line.FontSize >= prof.HeadingThreshold {
		over := (ratio - thresholdRatio) * d.config.FontSizeSlope
		if over > d.config.FontSizeBonusCap {
			over = d.config.FontSizeBonusCap
		}
		score = d.config.FontSizeWeight + over
	} else if line.Bold && ratio > 1.0 {
		score = d.config.SmallBoldBonus
	}

	if line.Bold {
		score += d.config.BoldBonus
	}

	return score
}

// PositionScore rewards isolated lines followed by body-sized text and
// penalizes lines embedded mid-paragraph. lines[i] must be on the same
// slice the median gap was computed from.
func (d *HeadingDetector) PositionScore(lines []*model.Line, i int, medianGap float64, prof *profile.Profile) float64 {
	line := lines[i]

	var prev, next *model.Line
	if i > 0 && lines[i-1].Page == line.Page {
		prev = lines[i-1]
	}
	if i+1 < len(lines) && lines[i+1].Page == line.Page {
		next = lines[i+1]
	}

	gapBefore := -1.0
	if prev != nil {
		gapBefore = line.BBox.Top() - prev.BBox.Bottom()
	}
	gapAfter := -1.0
	if next != nil {
		gapAfter = next.BBox.Top() - line.BBox.Bottom()
	}

	isolated := prev == nil || (medianGap > 0 && gapBefore > medianGap*d.config.GapRatio)
	followedByBody := next == nil || next.FontSize <= prof.BodyFontSize*1.05

	if isolated && followedByBody {
		return d.config.IsolationBonus
	}

	// Embedded: tight gaps on both sides with same-size neighbors.
	if prev != nil && next != nil && medianGap > 0 &&
		gapBefore >= 0 && gapBefore <= medianGap*1.2 &&
		gapAfter >= 0 && gapAfter <= medianGap*1.2 &&
		sameSize(prev.FontSize, line.FontSize) && sameSize(next.FontSize, line.FontSize) {
		return -d.config.EmbeddedPenalty
	}

	return 0
}

// Plausible applies the hard junk filters. A false result vetoes the line
// regardless of the other signals.
func (d *HeadingDetector) Plausible(line *model.Line, prof *profile.Profile) bool {
	t := strings.TrimSpace(line.Text)
	runes := []rune(t)

	if len(runes) < d.config.MinHeadingChars {
		return false
	}

	if prof.Language == text.Japanese && text.HasJapanese(t) {
		if len(runes) > d.config.MaxHeadingRunes {
			return false
		}
	} else {
		words := len(strings.Fields(t))
		if words < 1 || words > d.config.MaxHeadingWords {
			return false
		}
		// Sentence punctuation: headings do not end mid-list or, when
		// long, with a full stop.
		if strings.HasSuffix(t, ",") || strings.HasSuffix(t, ";") {
			return false
		}
		if strings.HasSuffix(t, ".") && words > 8 {
			return false
		}
		if isAllCaps(t) && words > 5 {
			return false
		}
	}

	if text.IsNumericOnly(t) {
		return false
	}

	for _, re := range junkPatterns {
		if re.MatchString(t) {
			return false
		}
	}

	return true
}

// rankUnknownLevels assigns levels to accepted candidates that carry no
// numbering level: distinct font sizes in descending order map onto the
// next unused levels, capped at H3.
func (d *HeadingDetector) rankUnknownLevels(candidates []Candidate) {
	fontSizes := make([]float64, 0)
	seen := make(map[int]bool)

	for _, c := range candidates {
		if c.Level != model.LevelUnknown {
			continue
		}
		bucket := int(c.Line.FontSize * 10) // 0.1pt precision
		if !seen[bucket] {
			seen[bucket] = true
			fontSizes = append(fontSizes, c.Line.FontSize)
		}
	}
	if len(fontSizes) == 0 {
		return
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(fontSizes)))

	sizeToLevel := make(map[int]model.HeadingLevel)
	for i, size := range fontSizes {
		level := model.HeadingLevel(i + 1)
		if level > model.Level3 {
			level = model.Level3
		}
		sizeToLevel[int(size*10)] = level
	}

	for i := range candidates {
		if candidates[i].Level != model.LevelUnknown {
			continue
		}
		if level, ok := sizeToLevel[int(candidates[i].Line.FontSize*10)]; ok {
			candidates[i].Level = level
		} else {
			candidates[i].Level = model.Level3
		}
	}
}

// medianLineGap computes the median vertical gap between consecutive lines
// on the same page.
func medianLineGap(lines []*model.Line) float64 {
	var gaps []float64
	for i := 1; i < len(lines); i++ {
		if lines[i].Page != lines[i-1].Page {
			continue
		}
		gap := lines[i].BBox.Top() - lines[i-1].BBox.Bottom()
		if gap > 0 {
			gaps = append(gaps, gap)
		}
	}
	if len(gaps) == 0 {
		return 0
	}
	sort.Float64s(gaps)
	return gaps[len(gaps)/2]
}

func sameSize(a, b float64) bool {
	return absFloat(a-b) <= 0.51
}

// isAllCaps reports whether the text is 90%+ uppercase letters with at
// least three letters total.
func isAllCaps(s string) bool {
	upper := 0
	lower := 0
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			upper++
		} else if r >= 'a' && r <= 'z' {
			lower++
		}
	}
	if upper+lower < 3 {
		return false
	}
	return lower == 0 || float64(upper)/float64(upper+lower) > 0.9
}
