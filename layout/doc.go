// Package layout implements the per-document layout analysis stages of the
// outline pipeline.
//
// The stages mirror the order they run in:
//
//   - LineDetector merges decoder spans into logical lines (the span
//     normalizer): Unicode normalization, whitespace collapse, vertical
//     grouping with style-aware splits.
//   - HeaderFooterDetector finds text repeating at the same vertical band
//     across pages; matches are excluded from all later stages.
//   - FormDetector classifies form-like documents, which short-circuit to
//     title-only output.
//   - HeadingDetector scores the residual lines against the numbering,
//     font-size, position and plausibility signals, producing Candidates
//     that carry each sub-score.
//   - HierarchyResolver normalizes provisional levels into a consistent
//     H1-H3 ladder with a swappable nesting policy.
//   - TitleSelector picks the document title from page-1 lines.
//
// Every detector follows the same shape: a Config struct with a
// DefaultXConfig constructor, NewX / NewXWithConfig, and a pure Detect or
// Classify method over model values. Detectors hold no per-document state
// and are safe to reuse across documents.
package layout
