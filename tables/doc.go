// Package tables detects table regions from logical lines so that table
// cell text can be excluded from heading candidacy. Detection is purely
// geometric: runs of consecutive visual rows with aligned cell starts
// and short cell text are unioned into table regions.
package tables
