// Package profile builds the per-document baseline the heading classifier
// scores against: the detected language and the body text font size.
package profile

import (
	"strings"

	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/text"
)

// Profile describes a document's typographic baseline.
type Profile struct {
	// Language is the detected primary language
	Language text.Language

	// BodyFontSize is the dominant font size, the mode over all lines
	// weighted by character count
	BodyFontSize float64

	// HeadingThreshold is BodyFontSize scaled by the configured factor;
	// lines at or above this size count as "larger than normal text"
	HeadingThreshold float64

	// SampledChars is the number of characters the language detector saw
	SampledChars int

	// Underflow is true when the document had too few lines to profile
	// and defaults were used instead
	Underflow bool
}

// Config holds configuration for document profiling.
type Config struct {
	// SizeFactor scales the body font size into the heading threshold
	// Default: 1.15
	SizeFactor float64

	// MaxSampleChars bounds the language-detection sample
	// Default: 4000
	MaxSampleChars int

	// MinLines is the minimum line count for a reliable profile; below it
	// the profiler falls back to defaults
	// Default: 4
	MinLines int

	// DefaultBodySize is the body font size used when profiling underflows
	// Default: 12
	DefaultBodySize float64

	// BodyWindowMin and BodyWindowMax bound the sizes considered plausible
	// body text when computing the mode; sizes outside the window are only
	// used when nothing falls inside it
	// Defaults: 8 and 20
	BodyWindowMin float64
	BodyWindowMax float64
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		SizeFactor:      1.15,
		MaxSampleChars:  4000,
		MinLines:        4,
		DefaultBodySize: 12.0,
		BodyWindowMin:   8.0,
		BodyWindowMax:   20.0,
	}
}

// Profiler computes document profiles.
type Profiler struct {
	config Config
}

// NewProfiler creates a profiler with default configuration.
func NewProfiler() *Profiler {
	return &Profiler{config: DefaultConfig()}
}

// NewProfilerWithConfig creates a profiler with custom configuration.
func NewProfilerWithConfig(config Config) *Profiler {
	return &Profiler{config: config}
}

// Detect profiles the document from its logical lines. It never fails: a
// document with too little text yields the default English/12pt profile
// with Underflow set.
func (p *Profiler) Detect(lines []*model.Line) *Profile {
	if len(lines) < p.config.MinLines {
		return &Profile{
			Language:         text.English,
			BodyFontSize:     p.config.DefaultBodySize,
			HeadingThreshold: p.config.DefaultBodySize * p.config.SizeFactor,
			Underflow:        true,
		}
	}

	sample, sampled := p.sampleText(lines)

	body := p.bodyFontSize(lines)

	return &Profile{
		Language:         text.DetectLanguage(sample),
		BodyFontSize:     body,
		HeadingThreshold: body * p.config.SizeFactor,
		SampledChars:     sampled,
	}
}

// sampleText concatenates line text up to the configured sample bound.
func (p *Profiler) sampleText(lines []*model.Line) (string, int) {
	var sb strings.Builder
	count := 0

	for _, line := range lines {
		for _, r := range line.Text {
			if count >= p.config.MaxSampleChars {
				return sb.String(), count
			}
			sb.WriteRune(r)
			count++
		}
		sb.WriteByte(' ')
		count++
	}

	return sb.String(), count
}

// bodyFontSize computes the character-weighted mode of line font sizes,
// bucketed at half-point precision. Weighting by character count keeps a
// few large headings from skewing the result the way an average would.
func (p *Profiler) bodyFontSize(lines []*model.Line) float64 {
	const bucketSize = 0.5

	weights := make(map[int]int)
	windowWeights := make(map[int]int)
	smallest := 0.0

	for _, line := range lines {
		if line.IsEmpty() || line.FontSize <= 0 {
			continue
		}
		bucket := int(line.FontSize/bucketSize + 0.5)
		chars := line.CharCount()
		weights[bucket] += chars
		if line.FontSize > p.config.BodyWindowMin && line.FontSize < p.config.BodyWindowMax {
			windowWeights[bucket] += chars
		}
		if smallest == 0 || line.FontSize < smallest {
			smallest = line.FontSize
		}
	}

	// Prefer sizes inside the plausible body window; a slide deck whose
	// smallest text is 22pt falls back to the overall mode.
	best := pickMode(windowWeights)
	if best == 0 {
		best = pickMode(weights)
	}
	if best == 0 {
		if smallest > 0 {
			return smallest
		}
		return p.config.DefaultBodySize
	}

	return float64(best) * bucketSize
}

func pickMode(weights map[int]int) int {
	bestBucket := 0
	bestWeight := 0
	for bucket, weight := range weights {
		if weight > bestWeight || (weight == bestWeight && bucket < bestBucket) {
			bestWeight = weight
			bestBucket = bucket
		}
	}
	return bestBucket
}
