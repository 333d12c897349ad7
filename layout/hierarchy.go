package layout

import "github.com/tsawler/contour/model"

// CoercionFunc decides the final level of a candidate given the level of
// the immediately preceding accepted heading. Swapping the function swaps
// the nesting policy.
type CoercionFunc func(prev, cur model.HeadingLevel) model.HeadingLevel

// OneStepCoercion is the default policy: a heading cannot sit more than
// one level deeper than its predecessor, so H1 followed directly by H3
// becomes H1 followed by H2. This models missing intermediate numbering,
// the common real-world case; it is a documented approximation for
// documents whose genuine structure skips levels.
func OneStepCoercion(prev, cur model.HeadingLevel) model.HeadingLevel {
	if cur > prev+1 {
		return prev + 1
	}
	return cur
}

// KeepLevels leaves levels untouched, for callers whose documents really
// do nest H3 directly under H1.
func KeepLevels(_, cur model.HeadingLevel) model.HeadingLevel {
	return cur
}

// HierarchyConfig holds configuration for hierarchy resolution.
type HierarchyConfig struct {
	// MaxLevel caps heading depth; deeper levels are flattened
	// Default: Level3
	MaxLevel model.HeadingLevel

	// Coerce is the nesting policy applied between consecutive headings
	// Default: OneStepCoercion
	Coerce CoercionFunc
}

// DefaultHierarchyConfig returns sensible default configuration.
func DefaultHierarchyConfig() HierarchyConfig {
	return HierarchyConfig{
		MaxLevel: model.Level3,
		Coerce:   OneStepCoercion,
	}
}

// HierarchyResolver normalizes provisional candidate levels into a
// consistent ladder.
type HierarchyResolver struct {
	config HierarchyConfig
}

// NewHierarchyResolver creates a resolver with default configuration.
func NewHierarchyResolver() *HierarchyResolver {
	return &HierarchyResolver{config: DefaultHierarchyConfig()}
}

// NewHierarchyResolverWithConfig creates a resolver with custom configuration.
func NewHierarchyResolverWithConfig(config HierarchyConfig) *HierarchyResolver {
	if config.Coerce == nil {
		config.Coerce = OneStepCoercion
	}
	if !config.MaxLevel.Valid() {
		config.MaxLevel = model.Level3
	}
	return &HierarchyResolver{config: config}
}

// Resolve walks the candidates in document order and rewrites their levels
// in place: unknown levels become one step below the previous heading,
// everything is capped at MaxLevel, and the coercion policy enforces the
// nesting rule between consecutive headings.
func (r *HierarchyResolver) Resolve(candidates []Candidate) []Candidate {
	if len(candidates) == 0 {
		return candidates
	}

	prev := model.LevelUnknown
	for i := range candidates {
		level := candidates[i].Level

		if level == model.LevelUnknown {
			if prev == model.LevelUnknown {
				level = model.Level1
			} else {
				level = prev + 1
			}
		}
		if level > r.config.MaxLevel {
			level = r.config.MaxLevel
		}
		if prev != model.LevelUnknown {
			level = r.config.Coerce(prev, level)
			if level > r.config.MaxLevel {
				level = r.config.MaxLevel
			}
		}

		candidates[i].Level = level
		prev = level
	}

	return candidates
}
