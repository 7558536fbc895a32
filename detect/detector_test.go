package detect

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ananswam/pdfcrop/model"
)

// fakeSource serves synthetic page geometry from a slice.
type fakeSource struct {
	pages []model.PageGeometry
	err   error
}

func (s *fakeSource) PageCount() (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	return len(s.pages), nil
}

func (s *fakeSource) PageGeometry(ctx context.Context, page int) (model.PageGeometry, error) {
	if err := ctx.Err(); err != nil {
		return model.PageGeometry{}, err
	}
	if page < 1 || page > len(s.pages) {
		return model.PageGeometry{}, fmt.Errorf("page %d out of range", page)
	}
	return s.pages[page-1], nil
}

func twoPageSource() *fakeSource {
	media := model.NewRect(0, 0, 600, 800)
	return &fakeSource{pages: []model.PageGeometry{
		{
			Page:    1,
			Media:   media,
			Regions: []model.Rect{model.NewRect(10, 10, 590, 780)},
		},
		{
			Page:  2,
			Media: media,
			Regions: []model.Rect{
				model.NewRect(10, 10, 590, 780),
				model.NewRect(10, 5, 100, 25), // page number inside the footer zone
			},
		},
	}}
}

func TestDetectorFullPipeline(t *testing.T) {
	d := NewDetector(twoPageSource())

	spec, err := d.Detect(context.Background(), model.AllPages())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The footer region on page 2 is excluded, so both pages contribute
	// the same bounds and the margins follow directly.
	if !floatEquals(spec.Left, 10.0/600-0.01) {
		t.Errorf("left: expected %v, got %v", 10.0/600-0.01, spec.Left)
	}
	if !floatEquals(spec.Top, 20.0/800-0.01) {
		t.Errorf("top: expected %v, got %v", 20.0/800-0.01, spec.Top)
	}
	if !floatEquals(spec.Bottom, 10.0/800-0.01) {
		t.Errorf("bottom: expected %v, got %v", 10.0/800-0.01, spec.Bottom)
	}
}

func TestDetectorContainment(t *testing.T) {
	src := twoPageSource()
	cfg := model.DetectionConfig{Buffer: 0, FooterHeight: 0.10}
	d := NewDetectorWithConfig(src, cfg)

	spec, err := d.Detect(context.Background(), model.AllPages())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The computed crop, in each page's coordinates, must contain every
	// kept (non-footer) region of that page.
	for _, page := range src.pages {
		crop := spec.Rect(page.Media)
		kept, _ := ClassifyFooter(page.Regions, page.Media, cfg.FooterHeight)
		for _, region := range kept {
			if !crop.Contains(region) {
				t.Errorf("page %d region %+v clipped by crop %+v", page.Page, region, crop)
			}
		}
	}
}

func TestDetectorFooterHeightMonotonicity(t *testing.T) {
	// Increasing footerHeight can only exclude more bottom content, so the
	// computed bottom margin never decreases.
	src := twoPageSource()

	var prev float64
	for i, fh := range []float64{0.0, 0.05, 0.10, 0.20, 0.30} {
		d := NewDetectorWithConfig(src, model.DetectionConfig{Buffer: 0, FooterHeight: fh})
		spec, err := d.Detect(context.Background(), model.AllPages())
		if err != nil {
			t.Fatalf("footerHeight %v: unexpected error: %v", fh, err)
		}
		if i > 0 && spec.Bottom < prev-epsilon {
			t.Errorf("bottom margin decreased from %v to %v at footerHeight %v", prev, spec.Bottom, fh)
		}
		prev = spec.Bottom
	}
}

func TestDetectorBlankPageInRange(t *testing.T) {
	media := model.NewRect(0, 0, 600, 800)
	content := []model.Rect{model.NewRect(60, 80, 540, 720)}
	src := &fakeSource{pages: []model.PageGeometry{
		{Page: 1, Media: media, Regions: content},
		{Page: 2, Media: media}, // blank
		{Page: 3, Media: media, Regions: content},
	}}

	d := NewDetector(src)
	spec, err := d.Detect(context.Background(), model.AllPages())
	if err != nil {
		t.Fatalf("blank page must not fail detection: %v", err)
	}
	if !floatEquals(spec.Left, 0.1-0.01) {
		t.Errorf("unexpected margins with blank page: %+v", spec)
	}
}

func TestDetectBoundsReportsBlankPages(t *testing.T) {
	media := model.NewRect(0, 0, 600, 800)
	content := []model.Rect{model.NewRect(60, 80, 540, 720)}
	src := &fakeSource{pages: []model.PageGeometry{
		{Page: 1, Media: media, Regions: content},
		{Page: 2, Media: media}, // blank
		{Page: 3, Media: media, Regions: content},
	}}

	d := NewDetector(src)
	_, bounds, err := d.DetectBounds(context.Background(), model.AllPages())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bounds) != 3 {
		t.Fatalf("expected bounds for 3 pages, got %d", len(bounds))
	}
	for i, pb := range bounds {
		if pb.Page != i+1 {
			t.Errorf("bounds[%d].Page = %d, want %d", i, pb.Page, i+1)
		}
	}
	if bounds[0].Bounds.IsDegenerate() || bounds[2].Bounds.IsDegenerate() {
		t.Error("content pages reported as blank")
	}
	if !bounds[1].Bounds.IsDegenerate() {
		t.Error("blank page not reported as degenerate")
	}
}

func TestDetectorAllBlank(t *testing.T) {
	media := model.NewRect(0, 0, 600, 800)
	src := &fakeSource{pages: []model.PageGeometry{
		{Page: 1, Media: media},
		{Page: 2, Media: media},
	}}

	d := NewDetector(src)
	_, err := d.Detect(context.Background(), model.AllPages())
	if !errors.Is(err, ErrNoContentDetected) {
		t.Errorf("expected ErrNoContentDetected, got %v", err)
	}
}

func TestDetectorInvalidPageRange(t *testing.T) {
	d := NewDetector(twoPageSource())

	_, err := d.Detect(context.Background(), model.Span(2, 9))
	if !errors.Is(err, model.ErrInvalidPageRange) {
		t.Errorf("expected ErrInvalidPageRange, got %v", err)
	}
}

func TestDetectorSourceErrorPropagates(t *testing.T) {
	boom := errors.New("backend unavailable")
	d := NewDetector(&fakeSource{err: boom})

	_, err := d.Detect(context.Background(), model.AllPages())
	if !errors.Is(err, boom) {
		t.Errorf("expected source error, got %v", err)
	}
}

func TestDetectorCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewDetector(twoPageSource())
	_, err := d.Detect(ctx, model.AllPages())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestDetectorDeterministicAcrossWorkerCounts(t *testing.T) {
	media := model.NewRect(0, 0, 600, 800)
	var pages []model.PageGeometry
	for i := 1; i <= 40; i++ {
		inset := float64(20 + i*3)
		pages = append(pages, model.PageGeometry{
			Page:    i,
			Media:   media,
			Regions: []model.Rect{model.NewRect(inset, inset, 600-inset, 800-inset)},
		})
	}
	src := &fakeSource{pages: pages}

	results := make([]model.MarginSpec, 0, 3)
	for _, workers := range []int{1, 4, 16} {
		d := NewDetector(src)
		d.SetWorkers(workers)
		spec, err := d.Detect(context.Background(), model.AllPages())
		if err != nil {
			t.Fatalf("workers=%d: unexpected error: %v", workers, err)
		}
		results = append(results, spec)
	}

	if results[0] != results[1] || results[1] != results[2] {
		t.Errorf("result varies with worker count: %v", results)
	}
}
