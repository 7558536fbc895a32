package detect

import "github.com/ananswam/pdfcrop/model"

// ContentBounds reduces one page's geometry to a single tight bounding box
// of its non-footer content.
//
// A blank page, or a page whose every region falls inside the footer zone,
// yields the degenerate rectangle at the page's geometric center. Degenerate
// bounds are kept in the per-page sequence rather than dropped so page
// indices stay aligned; Aggregate discards them explicitly.
//
// No buffer is applied here. The buffer is subtracted once, globally, during
// aggregation; applying it per page would compound inconsistently across
// pages of different sizes.
func ContentBounds(geom model.PageGeometry, cfg model.DetectionConfig) model.Rect {
	kept, _ := ClassifyFooter(geom.Regions, geom.Media, cfg.FooterHeight)
	if len(kept) == 0 {
		return model.DegenerateAt(geom.Media.Center())
	}

	bounds := kept[0]
	for _, r := range kept[1:] {
		bounds = bounds.Union(r)
	}
	return bounds
}
