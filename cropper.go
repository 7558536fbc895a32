package pdfcrop

import (
	"context"
	"fmt"
	"io"

	"github.com/ananswam/pdfcrop/detect"
	"github.com/ananswam/pdfcrop/format"
	"github.com/ananswam/pdfcrop/model"
	"github.com/ananswam/pdfcrop/pdfdoc"
	"github.com/ananswam/pdfcrop/raster"
)

// Cropper provides a fluent interface for detecting content margins and
// applying a uniform crop to a PDF. Each configuration method returns a new
// Cropper instance, making it safe for concurrent use and allowing method
// chaining.
type Cropper struct {
	// Source document
	filename string

	// Document handle (opened lazily)
	doc       *pdfdoc.Document
	docOpened bool

	// Geometry source (set by FromSource, or built lazily from options)
	source detect.Source

	// Configuration
	options cropOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Cropper with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (c *Cropper) clone() *Cropper {
	return &Cropper{
		filename:  c.filename,
		doc:       c.doc,
		docOpened: c.docOpened,
		source:    c.source,
		options:   c.options.clone(),
		err:       c.err,
		warnings:  append([]Warning(nil), c.warnings...),
	}
}

func (c *Cropper) fail(err error) *Cropper {
	newCropper := c.clone()
	if newCropper.err == nil {
		newCropper.err = err
	}
	return newCropper
}

// ============================================================================
// Configuration Methods (return new Cropper instance)
// ============================================================================

// Pages restricts detection and cropping to the pages named by spec, a
// comma-separated list of page numbers and inclusive ranges (e.g. "1,4-6,9").
// The default is all pages.
//
// Example:
//
//	result, _, err := pdfcrop.Open("book.pdf").Pages("12-340").Apply(ctx, "out.pdf")
func (c *Cropper) Pages(spec string) *Cropper {
	pr, err := model.ParsePageRange(spec)
	if err != nil {
		return c.fail(err)
	}
	newCropper := c.clone()
	newCropper.options.pageRange = pr
	return newCropper
}

// PageSpan restricts detection and cropping to pages from through to,
// inclusive and 1-indexed.
func (c *Cropper) PageSpan(from, to int) *Cropper {
	newCropper := c.clone()
	newCropper.options.pageRange = model.Span(from, to)
	return newCropper
}

// FooterHeight sets the footer exclusion zone as a fraction of page height.
// Content regions lying entirely within the bottom zone (page numbers,
// running footers) are ignored during detection. The default is 0.10.
func (c *Cropper) FooterHeight(frac float64) *Cropper {
	newCropper := c.clone()
	newCropper.options.detection.FooterHeight = frac
	return newCropper
}

// Buffer sets the safety margin subtracted from each detected edge, as a
// fraction of the page dimension. The default is 0.01.
func (c *Cropper) Buffer(frac float64) *Cropper {
	newCropper := c.clone()
	newCropper.options.detection.Buffer = frac
	return newCropper
}

// Threshold sets the luminance fraction above which a pixel counts as
// background during raster scanning. The default is 0.95.
func (c *Cropper) Threshold(frac float64) *Cropper {
	newCropper := c.clone()
	newCropper.options.scan.Threshold = frac
	return newCropper
}

// DPI declares the resolution the page images were rendered at, used to
// convert pixel coordinates to points. The default is 144.
func (c *Cropper) DPI(dpi int) *Cropper {
	newCropper := c.clone()
	newCropper.options.scan.DPI = float64(dpi)
	return newCropper
}

// Workers sets the number of pages scanned concurrently during detection.
// Zero or negative means one worker per CPU.
func (c *Cropper) Workers(n int) *Cropper {
	newCropper := c.clone()
	newCropper.options.workers = n
	return newCropper
}

// WithPageImages supplies pre-rendered page images matching the glob
// pattern, in lexical order, one image per page.
//
// Example:
//
//	spec, _, err := pdfcrop.Open("book.pdf").WithPageImages("pages/*.png").Detect(ctx)
func (c *Cropper) WithPageImages(pattern string) *Cropper {
	newCropper := c.clone()
	newCropper.options.imageGlob = pattern
	newCropper.options.imageFiles = nil
	return newCropper
}

// WithImageFiles supplies pre-rendered page images explicitly, one per page
// in document order.
func (c *Cropper) WithImageFiles(files ...string) *Cropper {
	newCropper := c.clone()
	newCropper.options.imageFiles = append([]string(nil), files...)
	newCropper.options.imageGlob = ""
	return newCropper
}

// WithRenderer supplies a function that rasterizes document pages on
// demand, instead of pre-rendered image files.
func (c *Cropper) WithRenderer(render pdfdoc.RenderFunc) *Cropper {
	newCropper := c.clone()
	newCropper.options.render = render
	return newCropper
}

// Margins sets the crop margins directly, bypassing detection. Detection
// options and page image sources are ignored when margins are set manually.
func (c *Cropper) Margins(spec model.MarginSpec) *Cropper {
	newCropper := c.clone()
	m := spec
	newCropper.options.margins = &m
	return newCropper
}

// ============================================================================
// Lifecycle
// ============================================================================

func (c *Cropper) ensureDoc() error {
	if c.docOpened {
		return nil
	}
	if c.filename == "" {
		return fmt.Errorf("no PDF filename specified")
	}
	if f := format.Detect(c.filename); f != format.PDF && f != format.Unknown {
		return fmt.Errorf("%s is %s, not a PDF", c.filename, f)
	}
	doc, err := pdfdoc.Open(c.filename)
	if err != nil {
		return err
	}
	c.doc = doc
	c.docOpened = true
	return nil
}

// ensureSource resolves the detection geometry source from the chain's
// configuration. Explicit sources win over renderers, which win over image
// files.
func (c *Cropper) ensureSource() (detect.Source, error) {
	if c.source != nil {
		return c.source, nil
	}

	opts := &c.options
	switch {
	case opts.render != nil:
		if err := c.ensureDoc(); err != nil {
			return nil, err
		}
		c.source = c.doc.GeometrySource(opts.render, opts.scan)

	case len(opts.imageFiles) > 0:
		for _, f := range opts.imageFiles {
			if !format.Detect(f).IsImage() {
				return nil, fmt.Errorf("%s is not a supported page image format", f)
			}
		}
		src, err := raster.NewSource(opts.imageFiles, opts.scan)
		if err != nil {
			return nil, err
		}
		c.source = src

	case opts.imageGlob != "":
		src, err := raster.NewSourceFromGlob(opts.imageGlob, opts.scan)
		if err != nil {
			return nil, err
		}
		c.source = src

	default:
		return nil, fmt.Errorf("no page geometry source configured (use WithPageImages, WithImageFiles, or WithRenderer)")
	}
	return c.source, nil
}

// Close releases resources held by the chain, such as an image-backed
// geometry source. It is safe to call Close multiple times.
func (c *Cropper) Close() error {
	if closer, ok := c.source.(io.Closer); ok {
		c.source = nil
		return closer.Close()
	}
	c.source = nil
	return nil
}

// ============================================================================
// Terminal Operations
// ============================================================================

// PageCount returns the number of pages in the document.
func (c *Cropper) PageCount() (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	if err := c.ensureDoc(); err != nil {
		return 0, err
	}
	return c.doc.PageCount(), nil
}

// Detect scans the selected pages and returns the uniform fractional
// margins that preserve every page's content: the minimum margin observed
// on each edge across the range, less the safety buffer.
//
// Example:
//
//	spec, warnings, err := pdfcrop.Open("book.pdf").
//	    WithPageImages("pages/*.png").
//	    FooterHeight(0.12).
//	    Detect(ctx)
func (c *Cropper) Detect(ctx context.Context) (model.MarginSpec, []Warning, error) {
	if c.err != nil {
		return model.MarginSpec{}, nil, c.err
	}
	spec, err := c.resolveMargins(ctx)
	return spec, c.warnings, err
}

// resolveMargins returns the manual override if one is set, otherwise runs
// detection over the configured geometry source.
func (c *Cropper) resolveMargins(ctx context.Context) (model.MarginSpec, error) {
	if c.options.margins != nil {
		if err := c.options.margins.Validate(); err != nil {
			return model.MarginSpec{}, err
		}
		if c.options.imageGlob != "" || len(c.options.imageFiles) > 0 || c.options.render != nil {
			c.warnings = append(c.warnings, Warning{
				Message: "margins set manually; page images and detection options ignored",
			})
		}
		return *c.options.margins, nil
	}

	src, err := c.ensureSource()
	if err != nil {
		return model.MarginSpec{}, err
	}

	// When the geometry comes from files rather than the document itself,
	// a page count mismatch means the images do not describe this PDF.
	if c.filename != "" {
		if err := c.ensureDoc(); err != nil {
			return model.MarginSpec{}, err
		}
		srcCount, err := src.PageCount()
		if err != nil {
			return model.MarginSpec{}, err
		}
		if srcCount != c.doc.PageCount() {
			return model.MarginSpec{}, fmt.Errorf("geometry source has %d pages but %s has %d",
				srcCount, c.filename, c.doc.PageCount())
		}
	}

	detector := detect.NewDetectorWithConfig(src, c.options.detection)
	if c.options.workers > 0 {
		detector.SetWorkers(c.options.workers)
	}
	spec, bounds, err := detector.DetectBounds(ctx, c.options.pageRange)
	if err != nil {
		return model.MarginSpec{}, err
	}
	for _, pb := range bounds {
		if pb.Bounds.IsDegenerate() {
			c.warnings = append(c.warnings, Warning{
				Page:    pb.Page,
				Message: fmt.Sprintf("page %d is blank; skipped during detection", pb.Page),
			})
		}
	}
	return spec, nil
}

// Apply resolves the crop margins (detecting them unless set manually via
// Margins) and writes a cropped copy of the document to outPath. Pages
// outside the configured range are copied through unchanged.
//
// Example:
//
//	result, warnings, err := pdfcrop.Open("book.pdf").
//	    WithPageImages("pages/*.png").
//	    Pages("12-340").
//	    Apply(ctx, "book-cropped.pdf")
func (c *Cropper) Apply(ctx context.Context, outPath string) (*model.CropResult, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}
	defer c.Close()

	if err := c.ensureDoc(); err != nil {
		return nil, c.warnings, err
	}
	spec, err := c.resolveMargins(ctx)
	if err != nil {
		return nil, c.warnings, err
	}

	result, err := c.doc.ApplyCrop(ctx, spec, c.options.pageRange, outPath)
	if err != nil {
		return nil, c.warnings, err
	}
	return result, c.warnings, nil
}
