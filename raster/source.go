package raster

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"

	// Page images are commonly produced as PNG, JPEG or TIFF by external
	// rasterizers; TIFF decoding is not in the standard library.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/tiff"

	"github.com/ananswam/pdfcrop/model"
)

// Source is a geometry source backed by pre-rendered page images, one image
// file per page in page order. Rendering itself is an external concern; any
// rasterizer that writes PNG, JPEG or TIFF works.
//
// Fractional margins measured on a rendered image equal those measured on
// the page itself as long as the render preserves the page's aspect, so a
// Source is sufficient for detection even without access to the original
// document.
type Source struct {
	files  []string
	config Config
}

// NewSource creates a Source over the given image files, in page order.
func NewSource(files []string, cfg Config) (*Source, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("raster source: no page images supplied")
	}
	return &Source{files: files, config: cfg}, nil
}

// NewSourceFromGlob creates a Source from a filename pattern such as
// "render/page-*.png". Matches are sorted lexically, so zero-padded page
// numbering keeps pages in order.
func NewSourceFromGlob(pattern string, cfg Config) (*Source, error) {
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("raster source: bad pattern %q: %w", pattern, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("raster source: pattern %q matched no files", pattern)
	}
	sort.Strings(files)
	return NewSource(files, cfg)
}

// PageCount returns the number of page images.
func (s *Source) PageCount() (int, error) {
	return len(s.files), nil
}

// PageGeometry loads and scans the image for the given 1-based page number.
func (s *Source) PageGeometry(ctx context.Context, page int) (model.PageGeometry, error) {
	if err := ctx.Err(); err != nil {
		return model.PageGeometry{}, err
	}
	if page < 1 || page > len(s.files) {
		return model.PageGeometry{}, fmt.Errorf("raster source: page %d out of range [1, %d]", page, len(s.files))
	}

	path := s.files[page-1]
	f, err := os.Open(path)
	if err != nil {
		return model.PageGeometry{}, fmt.Errorf("raster source: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return model.PageGeometry{}, fmt.Errorf("raster source: decoding %s: %w", path, err)
	}

	return s.geometryOf(page, img), nil
}

// geometryOf builds the page geometry for an already-decoded image.
func (s *Source) geometryOf(page int, img image.Image) model.PageGeometry {
	ptPerPx := 72 / s.config.DPI
	bounds := img.Bounds()
	media := model.Rect{
		MinX: 0,
		MinY: 0,
		MaxX: float64(bounds.Dx()) * ptPerPx,
		MaxY: float64(bounds.Dy()) * ptPerPx,
	}
	return model.PageGeometry{
		Page:    page,
		Media:   media,
		Regions: ScanRegions(img, s.config),
	}
}
