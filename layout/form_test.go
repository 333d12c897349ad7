package layout

import (
	"testing"

	"github.com/tsawler/contour/model"
)

func TestDetectFormLike(t *testing.T) {
	lines := []*model.Line{
		testLine("Application Form for Grant of Leave", 1, 150, 72, 460, 92, 16, true),
		testLine("1.", 1, 72, 140, 86, 152, 12, false),
		testLine("Name:", 1, 72, 170, 120, 182, 12, false),
		testLine("Designation:", 1, 72, 200, 160, 212, 12, false),
		testLine("Date: ________", 1, 72, 230, 200, 242, 12, false),
	}

	formLike, ratio := NewFormDetector().Detect(lines)
	if !formLike {
		t.Errorf("expected form-like document, ratio %v", ratio)
	}
	if ratio <= 0.4 {
		t.Errorf("ratio = %v, want > 0.4", ratio)
	}
}

func TestDetectProseNotForm(t *testing.T) {
	lines := []*model.Line{
		testLine("A Study of Document Structure", 1, 150, 72, 460, 100, 28, true),
		testLine("This paper examines how structure emerges", 1, 72, 190, 480, 202, 12, false),
		testLine("from positioned text and font information", 1, 72, 206, 470, 218, 12, false),
		testLine("across a small corpus of documents", 1, 72, 222, 420, 234, 12, false),
	}

	formLike, ratio := NewFormDetector().Detect(lines)
	if formLike {
		t.Errorf("prose document misclassified as form, ratio %v", ratio)
	}
}

func TestDetectIgnoresLaterPages(t *testing.T) {
	// Field-looking lines past page 1 do not make the document a form.
	lines := []*model.Line{
		testLine("Regular opening paragraph text here", 1, 72, 100, 400, 112, 12, false),
		testLine("Another paragraph of running prose", 1, 72, 120, 380, 132, 12, false),
		testLine("Name:", 2, 72, 100, 120, 112, 12, false),
		testLine("Date: ________", 2, 72, 130, 200, 142, 12, false),
	}

	formLike, _ := NewFormDetector().Detect(lines)
	if formLike {
		t.Error("page-2 fields must not classify the document as a form")
	}
}

func TestDetectNoLines(t *testing.T) {
	formLike, ratio := NewFormDetector().Detect(nil)
	if formLike || ratio != 0 {
		t.Errorf("Detect(nil) = %v, %v, want false, 0", formLike, ratio)
	}
}
