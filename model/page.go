package model

import "fmt"

// PageGeometry is an immutable per-page snapshot of the geometry a crop
// decision is based on: the page's media rectangle and the bounding boxes of
// its content-bearing regions (text runs, drawn paths, images).
//
// PageGeometry values are produced once per page by a geometry source and
// never mutated by the engine, so they may be shared freely across worker
// goroutines.
type PageGeometry struct {
	// Page is the 1-based page number this snapshot belongs to.
	Page int

	// Media is the page's full media rectangle.
	Media Rect

	// Regions holds the bounding boxes of visible elements on the page,
	// in source order. Empty for a blank page.
	Regions []Rect
}

// DetectionConfig holds the tunables for automatic margin detection.
// The zero value is not useful; use DefaultDetectionConfig as a base.
// A config is immutable for the duration of one run.
type DetectionConfig struct {
	// Buffer is the extra fractional margin subtracted from each of the
	// four detected edges (clamped at zero), so content never sits flush
	// against the new page boundary.
	Buffer float64

	// FooterHeight is the fraction of page height, measured from the
	// bottom, treated as the footer zone. Content lying entirely inside
	// this zone (page numbers, running footers) is excluded from content
	// bounds.
	FooterHeight float64
}

// Default detection tunables.
const (
	DefaultBuffer       = 0.01
	DefaultFooterHeight = 0.10
)

// DefaultDetectionConfig returns the process-wide default detection config.
func DefaultDetectionConfig() DetectionConfig {
	return DetectionConfig{
		Buffer:       DefaultBuffer,
		FooterHeight: DefaultFooterHeight,
	}
}

// Validate checks that the config values are within their documented domains:
// Buffer >= 0 and FooterHeight in [0, 1).
func (c DetectionConfig) Validate() error {
	if c.Buffer < 0 {
		return fmt.Errorf("buffer %v must be >= 0", c.Buffer)
	}
	if c.FooterHeight < 0 || c.FooterHeight >= 1 {
		return fmt.Errorf("footer height %v must be in [0, 1)", c.FooterHeight)
	}
	return nil
}
