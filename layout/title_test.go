package layout

import (
	"testing"

	"github.com/tsawler/contour/model"
)

func TestSelectScoredTitle(t *testing.T) {
	lines := []*model.Line{
		testLine("System Design Document", 1, 150, 80, 460, 108, 28, true),
		testLine("Revision 4, internal draft", 1, 72, 130, 260, 144, 14, false),
		testLine("The first body paragraph starts here", 1, 72, 200, 430, 212, 12, false),
	}

	got := NewTitleSelector().Select(lines, 612, 792)
	if got == nil || got.Text != "System Design Document" {
		t.Fatalf("Select = %v, want the styled top line", got)
	}
}

func TestSelectFallsBackToLargestFont(t *testing.T) {
	// Nothing scores: low on the page, left-aligned, regular weight,
	// short. The largest font wins outright.
	lines := []*model.Line{
		testLine("Notes", 1, 50, 400, 100, 412, 12, false),
		testLine("Appendix", 1, 50, 500, 130, 516, 16, false),
	}

	got := NewTitleSelector().Select(lines, 612, 792)
	if got == nil || got.Text != "Appendix" {
		t.Fatalf("Select = %v, want largest-font line", got)
	}
}

func TestSelectNoFirstPageLines(t *testing.T) {
	lines := []*model.Line{
		testLine("Second page opening line", 2, 72, 100, 300, 112, 12, false),
	}

	got := NewTitleSelector().Select(lines, 612, 792)
	if got == nil || got.Text != "Second page opening line" {
		t.Fatalf("Select = %v, want first non-empty line", got)
	}
}

func TestSelectNoLines(t *testing.T) {
	if got := NewTitleSelector().Select(nil, 612, 792); got != nil {
		t.Errorf("Select(nil) = %v, want nil", got)
	}
}
