// Package model defines the shared data structures for document outline
// extraction.
//
// The input side mirrors the external decoder's contract: a Document is an
// ordered list of Pages, each carrying positioned Spans with font metrics
// and style flags. The layout detectors merge spans into Lines (logical
// lines of uniform style), and the pipeline's result is an Outline - a
// document title plus ordered OutlineEntry values tagged H1-H3.
//
// Geometry uses top-origin page coordinates (Y grows downward), matching
// the coordinate system spans arrive in. BBox provides the usual box
// algebra (union, intersection tests, edge accessors).
//
// NoiseRegion marks page areas (tables, form blocks, repeating headers and
// footers) that later stages must not promote to headings.
//
// All types in this package are plain values with no behavior beyond
// accessors; the detectors that produce and consume them live in the
// layout, tables and profile packages.
package model
