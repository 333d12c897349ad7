package layout

import (
	"math"
	"testing"

	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/profile"
	"github.com/tsawler/contour/text"
)

// bodyProfile is the 12pt English baseline used across heading tests.
func bodyProfile() *profile.Profile {
	return &profile.Profile{
		Language:         text.English,
		BodyFontSize:     12,
		HeadingThreshold: 12 * 1.15,
	}
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDetectNumbering(t *testing.T) {
	d := NewHeadingDetector()

	tests := []struct {
		name  string
		input string
		lang  text.Language
		level model.HeadingLevel
	}{
		{"dotted depth one", "1. Introduction", text.English, model.Level1},
		{"dotted depth two", "2.1 Background", text.English, model.Level2},
		{"dotted depth three", "3.1.2 Edge Cases", text.English, model.Level3},
		{"paren variant", "4) Results", text.English, model.Level1},
		{"chapter word", "Chapter 5 The Middle Years", text.English, model.Level1},
		{"section word", "Section 2 Scope", text.English, model.Level2},
		{"roman numeral", "IV. Evaluation", text.English, model.Level1},
		{"letter prefix", "B. Supplementary Data", text.English, model.Level2},
		{"japanese chapter", "第1章 はじめに", text.Japanese, model.Level1},
		{"japanese section", "第2節 背景", text.Japanese, model.Level2},
		{"japanese item", "第3項 詳細", text.Japanese, model.Level3},
		{"spanish chapter", "Capítulo 2 El contexto", text.Spanish, model.Level1},
		{"french chapter", "Chapitre 3 La méthode", text.French, model.Level1},
		{"no numbering", "The quick brown fox", text.English, model.LevelUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, pattern := d.DetectNumbering(tt.input, tt.lang)
			if level != tt.level {
				t.Errorf("DetectNumbering(%q) level = %v, want %v", tt.input, level, tt.level)
			}
			if tt.level != model.LevelUnknown && pattern == "" {
				t.Errorf("DetectNumbering(%q) returned empty pattern for a match", tt.input)
			}
		})
	}
}

func TestFontScore(t *testing.T) {
	d := NewHeadingDetector()
	prof := bodyProfile()

	tests := []struct {
		name     string
		size     float64
		bold     bool
		expected float64
	}{
		// 24pt: base 0.25 plus capped proportional bonus 0.15
		{"double body size", 24, false, 0.4},
		{"double body size bold", 24, true, 0.5},
		// Body-sized regular text earns nothing
		{"body size", 12, false, 0},
		// Bold at body size: flat bold bonus only
		{"body size bold", 12, true, 0.1},
		// Bold slightly above body but under threshold: small bonus + bold bonus
		{"small bold", 13, true, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := testLine("Sample heading", 1, 72, 100, 300, 100+tt.size, tt.size, tt.bold)
			if got := d.FontScore(line, prof); !closeTo(got, tt.expected) {
				t.Errorf("FontScore(size=%v, bold=%v) = %v, want %v", tt.size, tt.bold, got, tt.expected)
			}
		})
	}
}

func TestPlausible(t *testing.T) {
	d := NewHeadingDetector()
	prof := bodyProfile()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"plain heading", "Introduction", true},
		{"numbered heading", "1. Introduction", true},
		{"too short", "x", false},
		{"trailing comma", "First we list the items,", false},
		{"trailing semicolon", "as follows;", false},
		{"long sentence with period", "This sentence is long enough to read as body prose and it ends with a period.", false},
		{"short label with period", "2.1 Scope.", true},
		{"long all caps", "THIS ENTIRE LINE IS SHOUTED TEXT", false},
		{"short all caps", "APPENDIX A", true},
		{"numeric only", "42", false},
		{"page marker", "Page 12", false},
		{"figure caption", "Figure 3 System overview", false},
		{"table caption", "Table 2 Results", false},
		{"serial header", "S.No", false},
		{"url", "www.example.com", false},
		{"email", "info@example.com", false},
		{"too many words", "this line keeps going and going with far too many words to plausibly be a heading of any document at all", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := testLine(tt.input, 1, 72, 100, 400, 112, 12, false)
			if got := d.Plausible(line, prof); got != tt.expected {
				t.Errorf("Plausible(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPlausibleJapaneseRuneBound(t *testing.T) {
	d := NewHeadingDetector()
	prof := &profile.Profile{Language: text.Japanese, BodyFontSize: 12, HeadingThreshold: 13.8}

	short := testLine("第1章 はじめに", 1, 72, 100, 250, 112, 12, false)
	if !d.Plausible(short, prof) {
		t.Error("short Japanese heading should be plausible")
	}

	long := make([]rune, 0, 60)
	for i := 0; i < 60; i++ {
		long = append(long, 'あ')
	}
	tooLong := testLine(string(long), 1, 72, 100, 500, 112, 12, false)
	if d.Plausible(tooLong, prof) {
		t.Error("60-rune Japanese line should not be plausible")
	}
}

func TestClassifyAcademicPage(t *testing.T) {
	d := NewHeadingDetector()
	prof := bodyProfile()

	lines := []*model.Line{
		testLine("1. Introduction", 1, 72, 150, 260, 174, 24, true),
		testLine("This paper examines how structure emerges", 1, 72, 190, 480, 202, 12, false),
		testLine("from positioned text and font information", 1, 72, 206, 470, 218, 12, false),
		testLine("across a small corpus of documents", 1, 72, 222, 420, 234, 12, false),
		testLine("1.1 Background", 1, 72, 260, 220, 278, 18, true),
		testLine("Earlier systems relied on embedded metadata", 1, 72, 292, 485, 304, 12, false),
		testLine("which is frequently absent in practice", 1, 72, 308, 450, 320, 12, false),
	}

	candidates := d.Classify(lines, prof)

	if len(candidates) != 2 {
		t.Fatalf("got %d candidates, want 2: %+v", len(candidates), candidates)
	}
	if candidates[0].Line.Text != "1. Introduction" || candidates[0].Level != model.Level1 {
		t.Errorf("first candidate = %q level %v", candidates[0].Line.Text, candidates[0].Level)
	}
	if candidates[1].Line.Text != "1.1 Background" || candidates[1].Level != model.Level2 {
		t.Errorf("second candidate = %q level %v", candidates[1].Line.Text, candidates[1].Level)
	}

	// Sub-scores are exposed, not folded away.
	if !closeTo(candidates[0].Scores.Numbering, 0.4) {
		t.Errorf("Numbering sub-score = %v, want 0.4", candidates[0].Scores.Numbering)
	}
	if candidates[0].Scores.FontSize <= 0 {
		t.Errorf("FontSize sub-score = %v, want > 0", candidates[0].Scores.FontSize)
	}
	if !closeTo(candidates[0].Score, candidates[0].Scores.Total()) {
		t.Errorf("Score %v != Total() %v", candidates[0].Score, candidates[0].Scores.Total())
	}
}

func TestClassifyNumberingAloneSuffices(t *testing.T) {
	// Japanese chapter markers at body size still clear the threshold:
	// numbering weight plus isolation.
	d := NewHeadingDetector()
	prof := &profile.Profile{Language: text.Japanese, BodyFontSize: 12, HeadingThreshold: 13.8}

	lines := []*model.Line{
		testLine("第1章 はじめに", 1, 72, 150, 250, 162, 12, false),
		testLine("本書はシステムの全体構成を説明します", 1, 72, 180, 420, 192, 12, false),
		testLine("各章は個別の構成要素を扱います", 1, 72, 198, 430, 210, 12, false),
	}

	candidates := d.Classify(lines, prof)
	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(candidates))
	}
	if candidates[0].Level != model.Level1 {
		t.Errorf("Level = %v, want Level1", candidates[0].Level)
	}
}

func TestClassifyRanksUnnumberedBySize(t *testing.T) {
	// No numbering anywhere: distinct candidate sizes map onto levels in
	// descending order.
	d := NewHeadingDetector()
	prof := bodyProfile()

	lines := []*model.Line{
		testLine("Overview", 1, 72, 100, 180, 120, 20, true),
		testLine("running body text at the usual size here", 1, 72, 150, 420, 162, 12, false),
		testLine("and one more paragraph line to anchor gaps", 1, 72, 168, 430, 180, 12, false),
		testLine("Details", 1, 72, 220, 160, 236, 16, true),
		testLine("further body text below the smaller heading", 1, 72, 266, 440, 278, 12, false),
		testLine("closing paragraph line for the page layout", 1, 72, 284, 430, 296, 12, false),
	}

	candidates := d.Classify(lines, prof)
	if len(candidates) != 2 {
		t.Fatalf("got %d candidates, want 2: %+v", len(candidates), candidates)
	}
	if candidates[0].Line.Text != "Overview" || candidates[0].Level != model.Level1 {
		t.Errorf("first = %q level %v, want Overview Level1", candidates[0].Line.Text, candidates[0].Level)
	}
	if candidates[1].Line.Text != "Details" || candidates[1].Level != model.Level2 {
		t.Errorf("second = %q level %v, want Details Level2", candidates[1].Line.Text, candidates[1].Level)
	}
}

func TestClassifyEmbeddedLinePenalized(t *testing.T) {
	// A bold fragment packed tight inside a same-size paragraph earns the
	// embedded penalty and stays out.
	d := NewHeadingDetector()
	prof := bodyProfile()

	lines := []*model.Line{
		testLine("paragraph text above the emphasized words", 1, 72, 100, 430, 112, 12, false),
		testLine("Important Note", 1, 72, 116, 200, 128, 12, true),
		testLine("paragraph text below continues immediately", 1, 72, 132, 440, 144, 12, false),
		testLine("and a final paragraph line for the median", 1, 72, 148, 430, 160, 12, false),
	}

	candidates := d.Classify(lines, prof)
	for _, c := range candidates {
		if c.Line.Text == "Important Note" {
			t.Errorf("embedded line accepted with score %v", c.Score)
		}
	}
}
