package pdfcrop

import (
	"github.com/ananswam/pdfcrop/model"
	"github.com/ananswam/pdfcrop/pdfdoc"
	"github.com/ananswam/pdfcrop/raster"
)

// cropOptions holds configuration accumulated by the fluent chain.
type cropOptions struct {
	// Page selection. The zero value selects all pages.
	pageRange model.PageRange

	// Detection knobs.
	detection model.DetectionConfig
	scan      raster.Config
	workers   int

	// Geometry source configuration (at most one is used).
	imageGlob  string
	imageFiles []string
	render     pdfdoc.RenderFunc

	// Manual margin override. When set, detection is skipped entirely.
	margins *model.MarginSpec
}

// defaultOptions returns the default crop options.
func defaultOptions() cropOptions {
	return cropOptions{
		detection: model.DefaultDetectionConfig(),
		scan:      raster.DefaultConfig(),
		workers:   0, // 0 means the detector picks GOMAXPROCS
	}
}

// clone creates a deep copy of cropOptions.
func (o cropOptions) clone() cropOptions {
	newOpts := o

	if o.imageFiles != nil {
		newOpts.imageFiles = make([]string, len(o.imageFiles))
		copy(newOpts.imageFiles, o.imageFiles)
	}
	if o.margins != nil {
		m := *o.margins
		newOpts.margins = &m
	}

	return newOpts
}
