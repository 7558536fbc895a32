package model

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestRectDimensions(t *testing.T) {
	r := NewRect(10, 20, 110, 220)

	if !floatEquals(r.Width(), 100) {
		t.Errorf("expected width 100, got %v", r.Width())
	}
	if !floatEquals(r.Height(), 200) {
		t.Errorf("expected height 200, got %v", r.Height())
	}
	if !floatEquals(r.Area(), 20000) {
		t.Errorf("expected area 20000, got %v", r.Area())
	}

	c := r.Center()
	if !floatEquals(c.X, 60) || !floatEquals(c.Y, 120) {
		t.Errorf("expected center (60, 120), got (%v, %v)", c.X, c.Y)
	}
}

func TestNewRectNormalizesBounds(t *testing.T) {
	r := NewRect(110, 220, 10, 20)

	if r.MinX != 10 || r.MinY != 20 || r.MaxX != 110 || r.MaxY != 220 {
		t.Errorf("bounds not normalized: %+v", r)
	}
	if !r.IsValid() {
		t.Error("normalized rect should be valid")
	}
}

func TestRectDegenerate(t *testing.T) {
	deg := DegenerateAt(Point{X: 300, Y: 400})

	if !deg.IsDegenerate() {
		t.Error("expected degenerate rect")
	}
	if !deg.IsValid() {
		t.Error("degenerate rect is still well-formed")
	}
	if deg.Center() != (Point{X: 300, Y: 400}) {
		t.Errorf("unexpected center: %+v", deg.Center())
	}

	real := NewRect(0, 0, 10, 10)
	if real.IsDegenerate() {
		t.Error("non-empty rect reported degenerate")
	}
}

func TestRectUnionAndContains(t *testing.T) {
	a := NewRect(0, 0, 50, 50)
	b := NewRect(40, 40, 100, 120)

	u := a.Union(b)
	want := NewRect(0, 0, 100, 120)
	if u != want {
		t.Errorf("expected union %+v, got %+v", want, u)
	}
	if !u.Contains(a) || !u.Contains(b) {
		t.Error("union must contain both inputs")
	}
	if a.Contains(b) {
		t.Error("a should not contain b")
	}
}

func TestMarginSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    MarginSpec
		wantErr bool
	}{
		{"zero margins", MarginSpec{}, false},
		{"typical margins", MarginSpec{Left: 0.1, Right: 0.1, Top: 0.05, Bottom: 0.08}, false},
		{"negative left", MarginSpec{Left: -0.1}, true},
		{"left above one", MarginSpec{Left: 1.2}, true},
		{"horizontal sum exactly one", MarginSpec{Left: 0.5, Right: 0.5}, true},
		{"vertical sum exactly one", MarginSpec{Top: 0.6, Bottom: 0.4}, true},
		{"horizontal sum just under one", MarginSpec{Left: 0.5, Right: 0.49}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidMarginSpec) {
					t.Errorf("expected ErrInvalidMarginSpec, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestMarginSpecRect(t *testing.T) {
	media := NewRect(0, 0, 600, 800)
	spec := MarginSpec{Left: 0.1, Right: 0.2, Top: 0.05, Bottom: 0.25}

	r := spec.Rect(media)

	if !floatEquals(r.MinX, 60) || !floatEquals(r.MaxX, 480) {
		t.Errorf("unexpected horizontal bounds: %+v", r)
	}
	if !floatEquals(r.MinY, 200) || !floatEquals(r.MaxY, 760) {
		t.Errorf("unexpected vertical bounds: %+v", r)
	}
}

func TestMarginSpecRectOffsetMediaBox(t *testing.T) {
	// Media boxes do not always start at the origin.
	media := NewRect(20, 30, 620, 830)
	spec := MarginSpec{Left: 0.1, Right: 0.1, Top: 0.1, Bottom: 0.1}

	r := spec.Rect(media)

	if !floatEquals(r.MinX, 80) || !floatEquals(r.MaxX, 560) {
		t.Errorf("unexpected horizontal bounds: %+v", r)
	}
	if !floatEquals(r.MinY, 110) || !floatEquals(r.MaxY, 750) {
		t.Errorf("unexpected vertical bounds: %+v", r)
	}
}

func TestMarginsOfRoundTrip(t *testing.T) {
	media := NewRect(0, 0, 612, 792)
	spec := MarginSpec{Left: 0.12, Right: 0.08, Top: 0.1, Bottom: 0.15}

	got := MarginsOf(spec.Rect(media), media)

	if !floatEquals(got.Left, spec.Left) || !floatEquals(got.Right, spec.Right) ||
		!floatEquals(got.Top, spec.Top) || !floatEquals(got.Bottom, spec.Bottom) {
		t.Errorf("round trip mismatch: want %+v, got %+v", spec, got)
	}
}

func TestMarginsOfClampsNegative(t *testing.T) {
	media := NewRect(0, 0, 600, 800)
	// Content extends past the left and top media edges.
	content := NewRect(-10, 100, 500, 820)

	m := MarginsOf(content, media)

	if m.Left != 0 {
		t.Errorf("expected left clamp to 0, got %v", m.Left)
	}
	if m.Top != 0 {
		t.Errorf("expected top clamp to 0, got %v", m.Top)
	}
	if !floatEquals(m.Bottom, 0.125) {
		t.Errorf("expected bottom 0.125, got %v", m.Bottom)
	}
}

func TestDetectionConfigValidate(t *testing.T) {
	if err := DefaultDetectionConfig().Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
	if err := (DetectionConfig{Buffer: -0.01, FooterHeight: 0.1}).Validate(); err == nil {
		t.Error("expected error for negative buffer")
	}
	if err := (DetectionConfig{Buffer: 0, FooterHeight: 1.0}).Validate(); err == nil {
		t.Error("expected error for footer height of 1")
	}
}

func TestParsePageRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"empty selects all", "", "all", false},
		{"single page", "3", "3", false},
		{"simple span", "2-5", "2-5", false},
		{"mixed", "1, 4-6, 9", "1,4-6,9", false},
		{"merges overlap", "2-5,4-8", "2-8", false},
		{"merges adjacent", "1-3,4-6", "1-6", false},
		{"reversed span", "5-2", "", true},
		{"zero page", "0", "", true},
		{"garbage", "abc", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParsePageRange(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, r.String())
			}
		})
	}
}

func TestPageRangeContains(t *testing.T) {
	r := Span(2, 5)

	for _, page := range []int{2, 3, 5} {
		if !r.Contains(page) {
			t.Errorf("expected page %d in range", page)
		}
	}
	for _, page := range []int{1, 6, 100} {
		if r.Contains(page) {
			t.Errorf("did not expect page %d in range", page)
		}
	}

	all := AllPages()
	if !all.Contains(1) || !all.Contains(9999) {
		t.Error("all-pages range must contain every positive page")
	}
	if all.Contains(0) {
		t.Error("page numbers are 1-based")
	}
}

func TestPageRangeValidate(t *testing.T) {
	if err := Span(2, 3).Validate(5); err != nil {
		t.Errorf("range within document must validate: %v", err)
	}
	if err := Span(2, 9).Validate(5); !errors.Is(err, ErrInvalidPageRange) {
		t.Errorf("expected ErrInvalidPageRange, got %v", err)
	}
	if err := AllPages().Validate(0); !errors.Is(err, ErrInvalidPageRange) {
		t.Errorf("expected ErrInvalidPageRange for empty document, got %v", err)
	}
}

func TestPageRangePageNumbers(t *testing.T) {
	nums := Pages(7, 2, 2, 4).PageNumbers(10)
	want := []int{2, 4, 7}
	if len(nums) != len(want) {
		t.Fatalf("expected %v, got %v", want, nums)
	}
	for i := range want {
		if nums[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, nums)
		}
	}

	all := AllPages().PageNumbers(3)
	if len(all) != 3 || all[0] != 1 || all[2] != 3 {
		t.Errorf("expected 1..3, got %v", all)
	}
}
