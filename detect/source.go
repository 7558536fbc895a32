package detect

import (
	"context"

	"github.com/ananswam/pdfcrop/model"
)

// Source supplies per-page geometry to the detection engine. Implementations
// exist for pre-rendered page images (package raster), OCR word boxes
// (package ocr), and synthetic fixtures in tests; any document backend that
// can report a media rectangle and content bounding boxes per page can
// satisfy it.
//
// PageGeometry must be safe for concurrent calls with distinct page numbers:
// the engine queries pages from multiple worker goroutines.
type Source interface {
	// PageCount returns the number of pages the source can describe.
	PageCount() (int, error)

	// PageGeometry returns the geometry snapshot for the given 1-based
	// page number.
	PageGeometry(ctx context.Context, page int) (model.PageGeometry, error)
}
