package detect

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ananswam/pdfcrop/model"
)

// Detector runs the full detection pipeline over a geometry source: per-page
// content bounds in parallel, then a deterministic aggregation into one
// MarginSpec. A Detector is stateless between runs and safe to reuse.
type Detector struct {
	source  Source
	config  model.DetectionConfig
	workers int
}

// NewDetector creates a Detector over the given source with the default
// detection config and a worker count of GOMAXPROCS.
func NewDetector(source Source) *Detector {
	return NewDetectorWithConfig(source, model.DefaultDetectionConfig())
}

// NewDetectorWithConfig creates a Detector with a custom detection config.
func NewDetectorWithConfig(source Source, cfg model.DetectionConfig) *Detector {
	return &Detector{
		source:  source,
		config:  cfg,
		workers: runtime.GOMAXPROCS(0),
	}
}

// SetWorkers bounds the number of pages extracted concurrently. Values
// below 1 reset to GOMAXPROCS.
func (d *Detector) SetWorkers(n int) {
	if n < 1 {
		n = runtime.GOMAXPROCS(0)
	}
	d.workers = n
}

// Detect computes the shared crop margins for the pages selected by
// pageRange.
//
// The range is validated against the source's page count first
// (model.ErrInvalidPageRange on mismatch). Page extraction fans out over a
// bounded worker pool; results land in a slice indexed by position within
// the range, so the final reduce is ordered by page number regardless of
// completion order. Cancelling ctx aborts the run.
func (d *Detector) Detect(ctx context.Context, pageRange model.PageRange) (model.MarginSpec, error) {
	spec, _, err := d.DetectBounds(ctx, pageRange)
	return spec, err
}

// DetectBounds is Detect with the per-page content bounds it aggregated
// over, ordered by page number. Callers can inspect the bounds for pages
// that contributed nothing (degenerate rects, i.e. blank pages).
func (d *Detector) DetectBounds(ctx context.Context, pageRange model.PageRange) (model.MarginSpec, []PageBounds, error) {
	if err := d.config.Validate(); err != nil {
		return model.MarginSpec{}, nil, fmt.Errorf("detection config: %w", err)
	}

	pageCount, err := d.source.PageCount()
	if err != nil {
		return model.MarginSpec{}, nil, fmt.Errorf("geometry source page count: %w", err)
	}
	if err := pageRange.Validate(pageCount); err != nil {
		return model.MarginSpec{}, nil, err
	}

	pages := pageRange.PageNumbers(pageCount)
	bounds := make([]PageBounds, len(pages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)

	for i, page := range pages {
		i, page := i, page
		g.Go(func() error {
			geom, err := d.source.PageGeometry(gctx, page)
			if err != nil {
				return fmt.Errorf("page %d geometry: %w", page, err)
			}
			bounds[i] = PageBounds{
				Page:   page,
				Bounds: ContentBounds(geom, d.config),
				Media:  geom.Media,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.MarginSpec{}, nil, err
	}

	spec, err := Aggregate(bounds, pageRange, d.config)
	if err != nil {
		return model.MarginSpec{}, nil, err
	}
	return spec, bounds, nil
}
