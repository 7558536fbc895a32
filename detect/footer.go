package detect

import "github.com/ananswam/pdfcrop/model"

// ClassifyFooter splits a page's content regions into those kept for content
// bounds and those excluded as footer material (page numbers, running
// footers).
//
// The footer zone is the horizontal band occupying the bottom footerHeight
// fraction of the media rectangle's height. A region is excluded only when
// it lies entirely inside the zone, i.e. its MaxY is at or below the zone
// ceiling; a region straddling the boundary is kept in full, so genuine text
// near the bottom of the page is never chopped.
//
// The decision is purely positional: no text or shape classification is
// performed. ClassifyFooter is a pure function over its inputs.
func ClassifyFooter(regions []model.Rect, media model.Rect, footerHeight float64) (kept, excluded []model.Rect) {
	if len(regions) == 0 {
		return nil, nil
	}
	if footerHeight <= 0 {
		kept = make([]model.Rect, len(regions))
		copy(kept, regions)
		return kept, nil
	}

	ceiling := media.MinY + media.Height()*footerHeight

	for _, r := range regions {
		if r.MaxY <= ceiling {
			excluded = append(excluded, r)
		} else {
			kept = append(kept, r)
		}
	}
	return kept, excluded
}
