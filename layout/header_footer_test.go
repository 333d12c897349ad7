package layout

import (
	"testing"

	"github.com/tsawler/contour/model"
)

func threePageHeights() map[int]float64 {
	return map[int]float64{1: 792, 2: 792, 3: 792}
}

func TestDetectRepeatingFooter(t *testing.T) {
	var lines []*model.Line
	for page := 1; page <= 3; page++ {
		lines = append(lines,
			testLine("Body text for this page", page, 72, 300, 400, 312, 12, false),
			testLine("Confidential", page, 250, 770, 360, 780, 9, false),
		)
	}

	result := NewHeaderFooterDetector().Detect(lines, threePageHeights())

	if result.RegionCount() != 3 {
		t.Fatalf("RegionCount = %d, want 3 (one per page)", result.RegionCount())
	}
	for _, r := range result.Regions {
		if r.Kind != model.RegionFooter {
			t.Errorf("Kind = %v, want footer", r.Kind)
		}
	}

	footer := testLine("Confidential", 2, 250, 770, 360, 780, 9, false)
	if !result.IsRepeating(footer, 792) {
		t.Error("footer line should be repeating")
	}
	body := testLine("Body text for this page", 2, 72, 300, 400, 312, 12, false)
	if result.IsRepeating(body, 792) {
		t.Error("body line must not be repeating")
	}
}

func TestDetectRepeatingHeader(t *testing.T) {
	var lines []*model.Line
	for page := 1; page <= 4; page++ {
		lines = append(lines,
			testLine("ACME Corp Annual Report", page, 72, 20, 250, 32, 9, false),
			testLine("Section body content", page, 72, 300, 350, 312, 12, false),
		)
	}

	result := NewHeaderFooterDetector().Detect(lines, map[int]float64{1: 792, 2: 792, 3: 792, 4: 792})

	if result.RegionCount() != 4 {
		t.Fatalf("RegionCount = %d, want 4", result.RegionCount())
	}
	for _, r := range result.Regions {
		if r.Kind != model.RegionHeader {
			t.Errorf("Kind = %v, want header", r.Kind)
		}
	}
}

func TestDetectFooterDriftCoversEveryPage(t *testing.T) {
	// A footer whose baseline drifts a few points between pages still lands
	// in one band. Each page's region must carry that page's own bounds,
	// otherwise the drifted copies escape coverage.
	tops := map[int]float64{1: 761, 2: 768, 3: 776}
	var lines []*model.Line
	for page := 1; page <= 3; page++ {
		y := tops[page]
		lines = append(lines,
			testLine("Body text for this page", page, 72, 300, 400, 312, 12, false),
			testLine("Confidential Draft", page, 220, y, 390, y+10, 14, true),
		)
	}

	result := NewHeaderFooterDetector().Detect(lines, threePageHeights())

	if result.RegionCount() != 3 {
		t.Fatalf("RegionCount = %d, want 3", result.RegionCount())
	}
	for page := 1; page <= 3; page++ {
		y := tops[page]
		footer := testLine("Confidential Draft", page, 220, y, 390, y+10, 14, true)
		covered := false
		for _, r := range result.Regions {
			if r.Covers(footer) {
				covered = true
				break
			}
		}
		if !covered {
			t.Errorf("page %d footer at y=%v not covered by any region", page, y)
		}
	}
}

func TestDetectIgnoresMidPageRepeats(t *testing.T) {
	// Repetition outside the margin bands is not a header or footer.
	var lines []*model.Line
	for page := 1; page <= 3; page++ {
		lines = append(lines,
			testLine("continued", page, 72, 400, 150, 412, 12, false),
		)
	}

	result := NewHeaderFooterDetector().Detect(lines, threePageHeights())
	if result.RegionCount() != 0 {
		t.Errorf("RegionCount = %d, want 0", result.RegionCount())
	}
}

func TestDetectTooFewPages(t *testing.T) {
	lines := []*model.Line{
		testLine("Confidential", 1, 250, 770, 360, 780, 9, false),
		testLine("Confidential", 2, 250, 770, 360, 780, 9, false),
	}

	result := NewHeaderFooterDetector().Detect(lines, map[int]float64{1: 792, 2: 792})
	if result.RegionCount() != 0 {
		t.Errorf("RegionCount = %d, want 0 with fewer pages than MinRepeatPages", result.RegionCount())
	}
}

func TestDetectTooFewOccurrences(t *testing.T) {
	// Footer on only two of four pages stays.
	lines := []*model.Line{
		testLine("Draft", 1, 250, 770, 300, 780, 9, false),
		testLine("Draft", 2, 250, 770, 300, 780, 9, false),
		testLine("body", 3, 72, 300, 120, 312, 12, false),
		testLine("body", 4, 72, 300, 120, 312, 12, false),
	}

	result := NewHeaderFooterDetector().Detect(lines, map[int]float64{1: 792, 2: 792, 3: 792, 4: 792})
	if result.RegionCount() != 0 {
		t.Errorf("RegionCount = %d, want 0", result.RegionCount())
	}
}

func TestIsRepeatingCaseInsensitive(t *testing.T) {
	var lines []*model.Line
	for page := 1; page <= 3; page++ {
		lines = append(lines,
			testLine("CONFIDENTIAL", page, 250, 770, 360, 780, 9, false),
		)
	}

	result := NewHeaderFooterDetector().Detect(lines, threePageHeights())
	lower := testLine("confidential", 1, 250, 770, 360, 780, 9, false)
	if !result.IsRepeating(lower, 792) {
		t.Error("folded text comparison should match case variants")
	}
}
