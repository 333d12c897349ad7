package model

// RegionKind tags a noise region by what produced it.
type RegionKind int

const (
	RegionTable RegionKind = iota
	RegionForm
	RegionHeader
	RegionFooter
)

// String returns a string representation of the region kind.
func (k RegionKind) String() string {
	switch k {
	case RegionTable:
		return "table"
	case RegionForm:
		return "form"
	case RegionHeader:
		return "header"
	case RegionFooter:
		return "footer"
	default:
		return "unknown"
	}
}

// NoiseRegion is a page area excluded from heading consideration. Table and
// form regions only remove lines from heading candidacy; header and footer
// regions remove lines from all downstream processing. A line is claimed by
// at most one region - exclusion is final and one-directional.
type NoiseRegion struct {
	// Kind is the region type
	Kind RegionKind

	// Page is the 1-based page number the region lies on
	Page int

	// BBox is the region bounds in page coordinates
	BBox BBox
}

// Covers returns true if the line's bounding box intersects this region on
// the same page.
func (r NoiseRegion) Covers(line *Line) bool {
	if line == nil || line.Page != r.Page {
		return false
	}
	return r.BBox.Intersects(line.BBox)
}
