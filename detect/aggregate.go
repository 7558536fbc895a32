package detect

import (
	"fmt"

	"github.com/ananswam/pdfcrop/model"
)

// PageBounds pairs one page's content bounding box with the media rectangle
// it was measured against.
type PageBounds struct {
	Page   int // 1-based page number
	Bounds model.Rect
	Media  model.Rect
}

// Aggregate combines per-page content bounds over a page range into one
// shared MarginSpec.
//
// Pages outside pageRange are ignored entirely; their content never
// constrains the crop. Degenerate (blank-page) bounds are discarded next;
// if that empties the set, Aggregate fails with ErrNoContentDetected rather
// than inventing a full-page or zero crop.
//
// Each remaining page's bounds are normalized to fractional margins against
// its own media rectangle, so pages of differing physical size combine
// meaningfully. Per edge, the minimum fractional margin across pages is
// taken: the shared crop must contain every page's content, and the minimum
// is the tightest margin that still does. The configured buffer is then
// subtracted from all four edges (clamped at zero) and the positive-area
// invariant re-checked, failing with ErrDegenerateMargins on violation.
//
// Given identical inputs the result is bit-for-bit identical: the reduction
// is a plain min per edge, independent of input order.
func Aggregate(bounds []PageBounds, pageRange model.PageRange, cfg model.DetectionConfig) (model.MarginSpec, error) {
	if err := cfg.Validate(); err != nil {
		return model.MarginSpec{}, fmt.Errorf("detection config: %w", err)
	}

	first := true
	var agg model.MarginSpec
	for _, pb := range bounds {
		if !pageRange.Contains(pb.Page) {
			continue
		}
		if pb.Bounds.IsDegenerate() {
			continue
		}
		m := model.MarginsOf(pb.Bounds, pb.Media)
		if first {
			agg = m
			first = false
			continue
		}
		agg.Left = min(agg.Left, m.Left)
		agg.Right = min(agg.Right, m.Right)
		agg.Top = min(agg.Top, m.Top)
		agg.Bottom = min(agg.Bottom, m.Bottom)
	}

	if first {
		return model.MarginSpec{}, ErrNoContentDetected
	}

	agg.Left = clampZero(agg.Left - cfg.Buffer)
	agg.Right = clampZero(agg.Right - cfg.Buffer)
	agg.Top = clampZero(agg.Top - cfg.Buffer)
	agg.Bottom = clampZero(agg.Bottom - cfg.Buffer)

	if agg.Left+agg.Right >= 1 || agg.Top+agg.Bottom >= 1 {
		return model.MarginSpec{}, fmt.Errorf("%w: %s", ErrDegenerateMargins, agg)
	}
	return agg, nil
}

func clampZero(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
