package raster

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/ananswam/pdfcrop/model"
)

// Config holds the tunables for raster content scanning.
type Config struct {
	// Threshold is the whiteness cutoff: a pixel is content when its
	// luminance is below Threshold*255. The default of 0.95 tolerates
	// slight paper tint and scanner noise.
	Threshold float64

	// DPI is the resolution the page images were rendered at, used to map
	// pixel coordinates back to page points (72 points per inch).
	DPI float64

	// GapFraction is the minimum vertical gap, as a fraction of page
	// height, separating two content bands. Isolated bottom content such
	// as a page number ends up in its own band, which lets the footer
	// classifier drop it without touching the body text.
	GapFraction float64

	// MaxScanWidth bounds the width, in pixels, at which images are
	// scanned. Larger images are downsampled first; 0 disables
	// downsampling. Region coordinates are always reported against the
	// original image size.
	MaxScanWidth int
}

// Default scanning tunables.
const (
	DefaultThreshold    = 0.95
	DefaultDPI          = 144
	DefaultGapFraction  = 0.02
	DefaultMaxScanWidth = 2048
)

// DefaultConfig returns the default scan configuration.
func DefaultConfig() Config {
	return Config{
		Threshold:    DefaultThreshold,
		DPI:          DefaultDPI,
		GapFraction:  DefaultGapFraction,
		MaxScanWidth: DefaultMaxScanWidth,
	}
}

// rowSpan records the horizontal content extent of one scanned pixel row.
type rowSpan struct {
	minX, maxX int
	content    bool
}

// ScanRegions finds the content regions of a rendered page image.
//
// The image is reduced to grayscale, non-white pixels are located, and
// contiguous runs of content rows are grouped into horizontal bands. Bands
// separated by a vertical gap larger than GapFraction of the image height
// become separate regions, each bounded by its own column extent. The
// returned rectangles are in page points with a bottom-left origin. A blank
// image yields no regions.
func ScanRegions(img image.Image, cfg Config) []model.Rect {
	bounds := img.Bounds()
	origW := bounds.Dx()
	origH := bounds.Dy()
	if origW == 0 || origH == 0 {
		return nil
	}

	gray, scaleX, scaleY := grayscale(img, cfg.MaxScanWidth)
	w := gray.Bounds().Dx()
	h := gray.Bounds().Dy()

	// Threshold is a fraction; values outside [0, 1] would make the uint8
	// conversion below out of range.
	threshold := cfg.Threshold
	if threshold < 0 {
		threshold = 0
	} else if threshold > 1 {
		threshold = 1
	}
	cutoff := uint8(threshold * 255)
	rows := make([]rowSpan, h)
	for y := 0; y < h; y++ {
		span := rowSpan{minX: w, maxX: -1}
		offset := y * gray.Stride
		for x := 0; x < w; x++ {
			if gray.Pix[offset+x] < cutoff {
				if x < span.minX {
					span.minX = x
				}
				span.maxX = x
				span.content = true
			}
		}
		rows[y] = span
	}

	gapRows := int(float64(h) * cfg.GapFraction)
	if gapRows < 1 {
		gapRows = 1
	}

	// Points per scanned pixel on each axis.
	ptPerPxX := scaleX * 72 / cfg.DPI
	ptPerPxY := scaleY * 72 / cfg.DPI
	pageTop := float64(origH) * 72 / cfg.DPI

	var regions []model.Rect
	bandStart := -1
	bandEnd := -1
	minX, maxX := w, -1

	flush := func() {
		if bandStart < 0 {
			return
		}
		regions = append(regions, model.Rect{
			MinX: float64(minX) * ptPerPxX,
			MinY: pageTop - float64(bandEnd+1)*ptPerPxY,
			MaxX: float64(maxX+1) * ptPerPxX,
			MaxY: pageTop - float64(bandStart)*ptPerPxY,
		})
		bandStart = -1
		bandEnd = -1
		minX, maxX = w, -1
	}

	gap := 0
	for y := 0; y < h; y++ {
		if !rows[y].content {
			gap++
			if gap > gapRows {
				flush()
			}
			continue
		}
		gap = 0
		if bandStart < 0 {
			bandStart = y
		}
		bandEnd = y
		if rows[y].minX < minX {
			minX = rows[y].minX
		}
		if rows[y].maxX > maxX {
			maxX = rows[y].maxX
		}
	}
	flush()

	return regions
}

// grayscale converts img to 8-bit grayscale, downsampling to at most
// maxWidth pixels wide when requested. It returns the gray image together
// with the per-axis factors mapping scanned pixels back to original pixels.
func grayscale(img image.Image, maxWidth int) (*image.Gray, float64, float64) {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	dstW, dstH := w, h
	if maxWidth > 0 && w > maxWidth {
		dstW = maxWidth
		dstH = h * maxWidth / w
		if dstH < 1 {
			dstH = 1
		}
	}

	gray := image.NewGray(image.Rect(0, 0, dstW, dstH))
	if dstW == w && dstH == h {
		xdraw.Draw(gray, gray.Bounds(), img, bounds.Min, xdraw.Src)
	} else {
		xdraw.ApproxBiLinear.Scale(gray, gray.Bounds(), img, bounds, xdraw.Src, nil)
	}

	return gray, float64(w) / float64(dstW), float64(h) / float64(dstH)
}
