package layout

import (
	"testing"

	"github.com/tsawler/contour/model"
)

func levelsOf(candidates []Candidate) []model.HeadingLevel {
	out := make([]model.HeadingLevel, len(candidates))
	for i, c := range candidates {
		out[i] = c.Level
	}
	return out
}

func candidatesAt(levels ...model.HeadingLevel) []Candidate {
	out := make([]Candidate, len(levels))
	for i, l := range levels {
		out[i] = Candidate{Level: l}
	}
	return out
}

func TestOneStepCoercion(t *testing.T) {
	tests := []struct {
		prev, cur, want model.HeadingLevel
	}{
		{model.Level1, model.Level3, model.Level2},
		{model.Level1, model.Level2, model.Level2},
		{model.Level1, model.Level1, model.Level1},
		{model.Level3, model.Level1, model.Level1},
		{model.Level2, model.Level3, model.Level3},
	}

	for _, tt := range tests {
		if got := OneStepCoercion(tt.prev, tt.cur); got != tt.want {
			t.Errorf("OneStepCoercion(%v, %v) = %v, want %v", tt.prev, tt.cur, got, tt.want)
		}
	}
}

func TestResolveCoercesSkippedLevel(t *testing.T) {
	r := NewHierarchyResolver()

	resolved := r.Resolve(candidatesAt(model.Level1, model.Level3, model.Level2))
	want := []model.HeadingLevel{model.Level1, model.Level2, model.Level2}

	got := levelsOf(resolved)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("levels = %v, want %v", got, want)
		}
	}
}

func TestResolveUnknownLevels(t *testing.T) {
	r := NewHierarchyResolver()

	// First unknown becomes H1; later unknowns sit one below their
	// predecessor, capped at H3.
	resolved := r.Resolve(candidatesAt(
		model.LevelUnknown, model.LevelUnknown, model.Level3, model.LevelUnknown))
	want := []model.HeadingLevel{model.Level1, model.Level2, model.Level3, model.Level3}

	got := levelsOf(resolved)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("levels = %v, want %v", got, want)
		}
	}
}

func TestResolveKeepLevels(t *testing.T) {
	cfg := DefaultHierarchyConfig()
	cfg.Coerce = KeepLevels
	r := NewHierarchyResolverWithConfig(cfg)

	resolved := r.Resolve(candidatesAt(model.Level1, model.Level3))
	got := levelsOf(resolved)
	if got[0] != model.Level1 || got[1] != model.Level3 {
		t.Errorf("levels = %v, want [H1 H3]", got)
	}
}

func TestResolveNeverExceedsOneStep(t *testing.T) {
	// Property from the default policy: consecutive levels never jump
	// more than one step down.
	r := NewHierarchyResolver()

	resolved := r.Resolve(candidatesAt(
		model.Level3, model.Level1, model.Level3, model.LevelUnknown,
		model.Level1, model.Level3, model.Level3, model.Level2))

	prev := model.LevelUnknown
	for _, c := range resolved {
		if !c.Level.Valid() {
			t.Fatalf("invalid level %v in output", c.Level)
		}
		if prev != model.LevelUnknown && c.Level > prev+1 {
			t.Fatalf("level %v follows %v, skipping a step", c.Level, prev)
		}
		prev = c.Level
	}
}

func TestResolveEmpty(t *testing.T) {
	r := NewHierarchyResolver()
	if got := r.Resolve(nil); len(got) != 0 {
		t.Errorf("Resolve(nil) = %v, want empty", got)
	}
}
