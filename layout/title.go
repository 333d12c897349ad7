package layout

import "github.com/tsawler/contour/model"

// TitleConfig holds configuration for title selection.
type TitleConfig struct {
	// UpperFraction is the top portion of page 1 where titles live
	// Default: 0.3
	UpperFraction float64

	// CenterMin and CenterMax bound the relative left-edge position for
	// the centered-text bonus (defaults: 0.2 and 0.8)
	CenterMin float64
	CenterMax float64

	// FontMeanFactor is the multiple of the page-1 mean font size above
	// which a line earns the large-font bonus (default: 1.2)
	FontMeanFactor float64

	// MinWords and MaxWords bound the word count earning the length
	// bonus (defaults: 3 and 15)
	MinWords int
	MaxWords int
}

// DefaultTitleConfig returns sensible default configuration.
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{
		UpperFraction:  0.3,
		CenterMin:      0.2,
		CenterMax:      0.8,
		FontMeanFactor: 1.2,
		MinWords:       3,
		MaxWords:       15,
	}
}

// TitleSelector picks the document title from page-1 lines.
type TitleSelector struct {
	config TitleConfig
}

// NewTitleSelector creates a title selector with default configuration.
func NewTitleSelector() *TitleSelector {
	return &TitleSelector{config: DefaultTitleConfig()}
}

// NewTitleSelectorWithConfig creates a title selector with custom configuration.
func NewTitleSelectorWithConfig(config TitleConfig) *TitleSelector {
	return &TitleSelector{config: config}
}

// Select scores the page-1 lines and returns the best title line. Scoring
// favors the upper portion of the page, horizontally centered placement,
// boldness, size above the page mean, and a plausible title length. When
// no line scores at all, the largest-font page-1 line wins outright, so
// any document with at least one line gets a non-empty title.
func (s *TitleSelector) Select(lines []*model.Line, pageWidth, pageHeight float64) *model.Line {
	var firstPage []*model.Line
	for _, line := range lines {
		if line.Page == 1 && !line.IsEmpty() {
			firstPage = append(firstPage, line)
		}
	}
	if len(firstPage) == 0 {
		// Title pages are occasionally dropped by the decoder; fall back
		// to the earliest page that produced any text.
		for _, line := range lines {
			if !line.IsEmpty() {
				return line
			}
		}
		return nil
	}

	meanSize := 0.0
	for _, line := range firstPage {
		meanSize += line.FontSize
	}
	meanSize /= float64(len(firstPage))

	best := firstPage[0]
	bestScore := -1
	for _, line := range firstPage {
		score := s.score(line, meanSize, pageWidth, pageHeight)
		if score > bestScore {
			bestScore = score
			best = line
		}
	}

	if bestScore > 0 {
		return best
	}

	// Nothing scored: take the largest font on page 1.
	largest := firstPage[0]
	for _, line := range firstPage[1:] {
		if line.FontSize > largest.FontSize {
			largest = line
		}
	}
	return largest
}

func (s *TitleSelector) score(line *model.Line, meanSize, pageWidth, pageHeight float64) int {
	score := 0

	if pageHeight > 0 && line.RelativeTop(pageHeight) < s.config.UpperFraction {
		score += 3
	}
	if pageWidth > 0 {
		relX := line.BBox.Left() / pageWidth
		if relX > s.config.CenterMin && relX < s.config.CenterMax {
			score += 2
		}
	}
	if line.Bold {
		score += 2
	}
	if meanSize > 0 && line.FontSize > meanSize*s.config.FontMeanFactor {
		score++
	}
	words := line.WordCount()
	if words >= s.config.MinWords && words <= s.config.MaxWords {
		score++
	}

	return score
}
