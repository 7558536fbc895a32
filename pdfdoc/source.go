package pdfdoc

import (
	"context"
	"fmt"
	"image"

	"github.com/ananswam/pdfcrop/model"
	"github.com/ananswam/pdfcrop/raster"
)

// RenderFunc rasterizes the given 1-based page to an image. Rendering is
// supplied by the caller; this module has no rasterizer of its own.
type RenderFunc func(ctx context.Context, page int) (image.Image, error)

// mediaProvider is the slice of Document the geometry source needs.
// *Document satisfies it.
type mediaProvider interface {
	PageCount() int
	MediaBox(page int) (model.Rect, error)
}

// Source pairs a document's page media boxes with rendered page images, so
// detection runs against the document's true coordinate space rather than
// the image's nominal one. Regions found in the raster scan are remapped
// linearly into each page's media rectangle.
type Source struct {
	doc    mediaProvider
	render RenderFunc
	config raster.Config
}

// GeometrySource returns a detection source for the document backed by the
// given renderer.
func (d *Document) GeometrySource(render RenderFunc, cfg raster.Config) *Source {
	return newSource(d, render, cfg)
}

func newSource(doc mediaProvider, render RenderFunc, cfg raster.Config) *Source {
	return &Source{doc: doc, render: render, config: cfg}
}

// PageCount returns the number of pages in the backing document.
func (s *Source) PageCount() (int, error) {
	return s.doc.PageCount(), nil
}

// PageGeometry renders the page, scans it for content regions, and remaps
// the regions into the page's media rectangle.
func (s *Source) PageGeometry(ctx context.Context, page int) (model.PageGeometry, error) {
	media, err := s.doc.MediaBox(page)
	if err != nil {
		return model.PageGeometry{}, err
	}
	img, err := s.render(ctx, page)
	if err != nil {
		return model.PageGeometry{}, fmt.Errorf("rendering page %d: %w", page, err)
	}

	regions := raster.ScanRegions(img, s.config)

	// ScanRegions reports coordinates in points derived from the image's
	// pixel dimensions. The rendered image covers the full media rectangle,
	// so a linear remap per axis carries regions into media space.
	bounds := img.Bounds()
	imgW := float64(bounds.Dx()) * 72 / s.config.DPI
	imgH := float64(bounds.Dy()) * 72 / s.config.DPI
	mapped := make([]model.Rect, len(regions))
	for i, r := range regions {
		mapped[i] = remap(r, imgW, imgH, media)
	}

	return model.PageGeometry{Page: page, Media: media, Regions: mapped}, nil
}

func remap(r model.Rect, srcW, srcH float64, media model.Rect) model.Rect {
	sx := media.Width() / srcW
	sy := media.Height() / srcH
	return model.NewRect(
		media.MinX+r.MinX*sx,
		media.MinY+r.MinY*sy,
		media.MinX+r.MaxX*sx,
		media.MinY+r.MaxY*sy,
	)
}
