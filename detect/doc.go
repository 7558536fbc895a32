// Package detect implements automatic margin detection: reducing each page's
// content regions to a tight bounding box (with footer suppression) and
// aggregating the per-page boxes over a page range into one shared
// [model.MarginSpec].
//
// The engine consumes page geometry through the [Source] interface, so any
// document backend, or a synthetic fixture in tests, can drive it. A run
// is a strict linear pipeline:
//
//	Source → ClassifyFooter → ContentBounds (per page, parallel)
//	       → Aggregate (sequential reduce) → model.MarginSpec
//
// Per-page extraction is fanned out across a bounded worker pool; the
// aggregation step is deterministic because results are collected into a
// slice ordered by page index, never by completion order.
//
// The footer rule is purely positional: a region is excluded only when it
// lies entirely inside the bottom footer zone. A region straddling the zone
// boundary is kept whole. This will misclassify footnotes that sit fully
// inside the zone; that is an accepted trade-off of the policy, not a bug.
package detect
