package model

import "fmt"

// MarginSpec describes a uniform crop as four fractional margins, each the
// fraction of page width or height removed from that edge. A MarginSpec is
// page-size independent: the same spec applied to pages of different physical
// sizes removes the same proportion from each.
//
// Both an auto-detected crop and a user-supplied manual selection are
// expressed as a MarginSpec, so the two are interchangeable inputs to crop
// application.
type MarginSpec struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// Validate checks the MarginSpec invariants: every fraction must lie in
// [0, 1], and the opposing pairs must leave positive area
// (Left+Right < 1 and Top+Bottom < 1). A violation is reported as
// ErrInvalidMarginSpec; it is never silently clamped.
func (m MarginSpec) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"left", m.Left},
		{"right", m.Right},
		{"top", m.Top},
		{"bottom", m.Bottom},
	} {
		if f.value < 0 || f.value > 1 {
			return fmt.Errorf("%w: %s margin %v outside [0, 1]", ErrInvalidMarginSpec, f.name, f.value)
		}
	}
	if m.Left+m.Right >= 1 {
		return fmt.Errorf("%w: left+right = %v, must be < 1", ErrInvalidMarginSpec, m.Left+m.Right)
	}
	if m.Top+m.Bottom >= 1 {
		return fmt.Errorf("%w: top+bottom = %v, must be < 1", ErrInvalidMarginSpec, m.Top+m.Bottom)
	}
	return nil
}

// Rect converts the fractional margins into the visible rectangle for a page
// with the given media rectangle.
func (m MarginSpec) Rect(media Rect) Rect {
	w := media.Width()
	h := media.Height()
	return Rect{
		MinX: media.MinX + w*m.Left,
		MinY: media.MinY + h*m.Bottom,
		MaxX: media.MaxX - w*m.Right,
		MaxY: media.MaxY - h*m.Top,
	}
}

// MarginsOf is the inverse of Rect: it expresses a content rectangle as
// fractional margins against the given media rectangle. Negative margins
// (content extending beyond the media box) are clamped to zero.
func MarginsOf(content, media Rect) MarginSpec {
	w := media.Width()
	h := media.Height()
	if w <= 0 || h <= 0 {
		return MarginSpec{}
	}
	clamp := func(f float64) float64 {
		if f < 0 {
			return 0
		}
		return f
	}
	return MarginSpec{
		Left:   clamp((content.MinX - media.MinX) / w),
		Right:  clamp((media.MaxX - content.MaxX) / w),
		Top:    clamp((media.MaxY - content.MaxY) / h),
		Bottom: clamp((content.MinY - media.MinY) / h),
	}
}

func (m MarginSpec) String() string {
	return fmt.Sprintf("left=%.4f right=%.4f top=%.4f bottom=%.4f", m.Left, m.Right, m.Top, m.Bottom)
}
