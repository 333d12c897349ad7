package tables

import (
	"sort"

	"github.com/tsawler/contour/model"
)

// Config holds grid detector configuration.
type Config struct {
	// MinGridRows is the minimum run of consecutive aligned rows for a
	// table region (default: 3)
	MinGridRows int

	// MinGridCols is the minimum number of cells per row (default: 3)
	MinGridCols int

	// AlignTolerance is the max X difference for cell starts to count as
	// the same column (default: 4 points)
	AlignTolerance float64

	// MaxCellWords is the word count at or below which cell text reads as
	// "short cell-like text" (default: 6)
	MaxCellWords int

	// RowGapFactor bounds the vertical gap between consecutive grid rows
	// as a multiple of row height (default: 2.5)
	RowGapFactor float64
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		MinGridRows:    3,
		MinGridCols:    3,
		AlignTolerance: 4.0,
		MaxCellWords:   6,
		RowGapFactor:   2.5,
	}
}

// GridDetector finds table regions by looking for runs of consecutive
// rows whose cells start at aligned X positions. Lines inside a detected
// grid are excluded from heading candidacy only - tables may still be
// read, they are just never promoted to headings.
type GridDetector struct {
	config Config
}

// NewGridDetector creates a grid detector with default configuration.
func NewGridDetector() *GridDetector {
	return &GridDetector{config: DefaultConfig()}
}

// NewGridDetectorWithConfig creates a grid detector with custom configuration.
func NewGridDetectorWithConfig(config Config) *GridDetector {
	return &GridDetector{config: config}
}

// gridRow is one visual row of cell-like lines.
type gridRow struct {
	lines  []*model.Line
	top    float64
	bottom float64
	starts []float64
}

// Detect finds table regions across the given lines. Lines must be in
// reading order; pages are handled independently.
func (d *GridDetector) Detect(lines []*model.Line) []model.NoiseRegion {
	byPage := make(map[int][]*model.Line)
	var pages []int
	for _, line := range lines {
		if _, ok := byPage[line.Page]; !ok {
			pages = append(pages, line.Page)
		}
		byPage[line.Page] = append(byPage[line.Page], line)
	}
	sort.Ints(pages)

	var regions []model.NoiseRegion
	for _, page := range pages {
		regions = append(regions, d.detectPage(page, byPage[page])...)
	}
	return regions
}

// detectPage runs grid detection on one page's lines.
func (d *GridDetector) detectPage(page int, lines []*model.Line) []model.NoiseRegion {
	rows := d.buildRows(lines)
	if len(rows) < d.config.MinGridRows {
		return nil
	}

	var regions []model.NoiseRegion

	runStart := -1
	for i := 0; i <= len(rows); i++ {
		ok := false
		if i < len(rows) {
			ok = len(rows[i].lines) >= d.config.MinGridCols &&
				d.shortCells(rows[i]) &&
				(runStart < 0 || i == runStart ||
					(d.aligned(rows[i-1], rows[i]) && d.closeRows(rows[i-1], rows[i])))
		}

		if ok {
			if runStart < 0 {
				runStart = i
			}
			continue
		}

		if runStart >= 0 && i-runStart >= d.config.MinGridRows {
			regions = append(regions, d.regionFor(page, rows[runStart:i]))
		}
		runStart = -1
		// A row that broke a run may still start the next one.
		if i < len(rows) && len(rows[i].lines) >= d.config.MinGridCols && d.shortCells(rows[i]) {
			runStart = i
		}
	}

	return regions
}

// buildRows groups a page's lines into visual rows by shared top position.
func (d *GridDetector) buildRows(lines []*model.Line) []gridRow {
	var rows []gridRow

	for _, line := range lines {
		placed := false
		if n := len(rows); n > 0 {
			row := &rows[n-1]
			if absFloat(line.BBox.Top()-row.top) <= d.config.AlignTolerance {
				row.lines = append(row.lines, line)
				row.starts = append(row.starts, line.BBox.Left())
				if line.BBox.Bottom() > row.bottom {
					row.bottom = line.BBox.Bottom()
				}
				placed = true
			}
		}
		if !placed {
			rows = append(rows, gridRow{
				lines:  []*model.Line{line},
				top:    line.BBox.Top(),
				bottom: line.BBox.Bottom(),
				starts: []float64{line.BBox.Left()},
			})
		}
	}

	for i := range rows {
		sort.Float64s(rows[i].starts)
	}

	return rows
}

// shortCells reports whether every line in the row has cell-like text.
func (d *GridDetector) shortCells(row gridRow) bool {
	for _, line := range row.lines {
		if line.WordCount() > d.config.MaxCellWords {
			return false
		}
	}
	return true
}

// aligned reports whether at least MinGridCols column starts of b match
// column starts of a within tolerance.
func (d *GridDetector) aligned(a, b gridRow) bool {
	matched := 0
	for _, start := range b.starts {
		for _, ref := range a.starts {
			if absFloat(start-ref) <= d.config.AlignTolerance {
				matched++
				break
			}
		}
	}
	return matched >= d.config.MinGridCols
}

// closeRows reports whether two rows are vertically close enough to
// belong to the same grid.
func (d *GridDetector) closeRows(a, b gridRow) bool {
	rowHeight := a.bottom - a.top
	if rowHeight <= 0 {
		rowHeight = b.bottom - b.top
	}
	if rowHeight <= 0 {
		return true
	}
	return b.top-a.bottom <= rowHeight*d.config.RowGapFactor
}

// regionFor unions a run of rows into a table region.
func (d *GridDetector) regionFor(page int, rows []gridRow) model.NoiseRegion {
	bbox := rows[0].lines[0].BBox
	for _, row := range rows {
		for _, line := range row.lines {
			bbox = bbox.Union(line.BBox)
		}
	}
	return model.NoiseRegion{Kind: model.RegionTable, Page: page, BBox: bbox}
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
