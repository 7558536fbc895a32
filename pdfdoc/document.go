package pdfdoc

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	pdftypes "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/ananswam/pdfcrop/model"
)

// Document is a read-only handle on a PDF file, providing page geometry for
// detection and crop application for output. The underlying container
// parsing and writing is delegated to pdfcpu; this package never touches
// page content streams.
type Document struct {
	path string
	ctx  *pdfmodel.Context
	conf *pdfmodel.Configuration

	// Page boundaries for the whole document, resolved once at open.
	bounds []pdfmodel.PageBoundaries
}

// Open reads and parses the PDF at path.
func Open(path string) (*Document, error) {
	conf := api.LoadConfiguration()
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	bounds, err := ctx.PageBoundaries(nil)
	if err != nil {
		return nil, fmt.Errorf("reading page boundaries of %s: %w", path, err)
	}
	return &Document{path: path, ctx: ctx, conf: conf, bounds: bounds}, nil
}

// Path returns the path the document was opened from.
func (d *Document) Path() string {
	return d.path
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.ctx.PageCount
}

// MediaBox returns the media rectangle of the given 1-based page.
func (d *Document) MediaBox(page int) (model.Rect, error) {
	if page < 1 || page > len(d.bounds) {
		return model.Rect{}, fmt.Errorf("%w: page %d outside document [1, %d]",
			model.ErrInvalidPageRange, page, len(d.bounds))
	}
	mb := d.bounds[page-1].MediaBox()
	if mb == nil {
		return model.Rect{}, fmt.Errorf("page %d has no media box", page)
	}
	return model.NewRect(mb.LL.X, mb.LL.Y, mb.UR.X, mb.UR.Y), nil
}

// dimKey identifies a page size class, rounded to whole points so minor
// producer jitter does not split a size group.
type dimKey struct {
	w, h int
}

// ApplyCrop writes a copy of the document to outPath with the visible
// rectangle of every page in pageRange set according to spec. Pages outside
// the range pass through with their original visible rectangle untouched.
//
// The fractional spec is converted to page-local margins in points per
// distinct page size, so pages of differing physical size each get the crop
// expressed against their own media rectangle. The output is staged in
// memory and a temp file and published with a rename only after every page
// group has been cropped, so a failure or cancellation never leaves a
// partial output visible.
func (d *Document) ApplyCrop(ctx context.Context, spec model.MarginSpec, pageRange model.PageRange, outPath string) (*model.CropResult, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if err := pageRange.Validate(d.ctx.PageCount); err != nil {
		return nil, err
	}

	targets := pageRange.PageNumbers(d.ctx.PageCount)
	groups := make(map[dimKey][]int)
	sizes := make(map[dimKey]model.Rect)
	for _, page := range targets {
		media, err := d.MediaBox(page)
		if err != nil {
			return nil, err
		}
		key := dimKey{
			w: int(math.Round(media.Width())),
			h: int(math.Round(media.Height())),
		}
		groups[key] = append(groups[key], page)
		sizes[key] = media
	}

	keys := make([]dimKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].w != keys[j].w {
			return keys[i].w < keys[j].w
		}
		return keys[i].h < keys[j].h
	})

	current, err := os.ReadFile(d.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", d.path, err)
	}

	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		media := sizes[key]
		box, err := marginBox(spec, media)
		if err != nil {
			return nil, err
		}

		var out bytes.Buffer
		if err := api.Crop(bytes.NewReader(current), &out, pageSelection(groups[key]), box, d.conf); err != nil {
			return nil, fmt.Errorf("cropping %dx%d pages: %w", key.w, key.h, err)
		}
		current = out.Bytes()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := publish(current, outPath); err != nil {
		return nil, err
	}

	return &model.CropResult{
		Output:       outPath,
		Applied:      spec,
		PagesCropped: len(targets),
	}, nil
}

// marginBox builds a pdfcpu crop box from fractional margins and the media
// rectangle they apply to. pdfcpu margin order is top, right, bottom, left.
func marginBox(spec model.MarginSpec, media model.Rect) (*pdfmodel.Box, error) {
	w := media.Width()
	h := media.Height()
	boxStr := fmt.Sprintf("%.4f %.4f %.4f %.4f",
		h*spec.Top, w*spec.Right, h*spec.Bottom, w*spec.Left)
	box, err := pdfmodel.ParseBox(boxStr, pdftypes.POINTS)
	if err != nil {
		return nil, fmt.Errorf("building crop box %q: %w", boxStr, err)
	}
	return box, nil
}

// pageSelection converts page numbers into pdfcpu page selection strings,
// compressing consecutive runs ("3", "5-8").
func pageSelection(pages []int) []string {
	if len(pages) == 0 {
		return nil
	}
	sorted := append([]int(nil), pages...)
	sort.Ints(sorted)

	var sel []string
	start := sorted[0]
	prev := sorted[0]
	flush := func() {
		if start == prev {
			sel = append(sel, strconv.Itoa(start))
		} else {
			sel = append(sel, fmt.Sprintf("%d-%d", start, prev))
		}
	}
	for _, p := range sorted[1:] {
		if p == prev || p == prev+1 {
			prev = p
			continue
		}
		flush()
		start, prev = p, p
	}
	flush()
	return sel
}

// publish writes data to outPath atomically: a temp file in the target
// directory, synced, then renamed over the destination.
func publish(data []byte, outPath string) error {
	dir := filepath.Dir(outPath)
	tmp, err := os.CreateTemp(dir, ".pdfcrop-*.pdf")
	if err != nil {
		return fmt.Errorf("staging output: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing output: %w", err)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("publishing output: %w", err)
	}
	return nil
}
