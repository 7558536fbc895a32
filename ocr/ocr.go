//go:build ocr

// Package ocr detects content regions on page images using the Tesseract
// OCR engine via gosseract, as an alternative to pixel scanning for pages
// where stray marks (scanner noise, bleed-through) would inflate the pixel
// bounds. Only word bounding boxes are used; recognized text is discarded.
//
// Tesseract must be installed on the system. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"

	"github.com/otiai10/gosseract/v2"
	_ "golang.org/x/image/tiff"

	"github.com/ananswam/pdfcrop/model"
)

// Config controls word detection.
type Config struct {
	// DPI the page images were rendered at, for pixel-to-point conversion.
	DPI int

	// Language is the Tesseract language string, "+" separated for multiple
	// languages (e.g. "eng+fra"). Empty means Tesseract's default.
	Language string

	// MinConfidence discards word boxes below this recognition confidence
	// (0-100). Low-confidence boxes are usually noise, which is exactly
	// what this source exists to ignore.
	MinConfidence float64
}

// DefaultConfig returns the detection defaults: 144 DPI, default language,
// confidence floor of 30.
func DefaultConfig() Config {
	return Config{DPI: 144, MinConfidence: 30}
}

// Client wraps a Tesseract client for word box extraction.
// Close it when no longer needed to release engine resources.
type Client struct {
	client *gosseract.Client
	config Config
}

// New creates an OCR client with the given configuration.
func New(cfg Config) (*Client, error) {
	if cfg.DPI <= 0 {
		cfg.DPI = DefaultConfig().DPI
	}
	client := gosseract.NewClient()
	if cfg.Language != "" {
		if err := client.SetLanguage(cfg.Language); err != nil {
			client.Close()
			return nil, fmt.Errorf("setting OCR language %q: %w", cfg.Language, err)
		}
	}
	return &Client{client: client, config: cfg}, nil
}

// Close releases engine resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// WordBoxes runs word recognition on the image file and returns each word's
// bounding box in points, converted from the image's top-left pixel space
// to bottom-left page space.
func (c *Client) WordBoxes(path string) ([]model.Rect, error) {
	imgCfg, err := decodeConfig(path)
	if err != nil {
		return nil, err
	}

	if err := c.client.SetImage(path); err != nil {
		return nil, fmt.Errorf("loading %s into OCR engine: %w", path, err)
	}
	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("recognizing %s: %w", path, err)
	}

	ptPerPx := 72 / float64(c.config.DPI)
	pageTop := float64(imgCfg.Height) * ptPerPx

	var regions []model.Rect
	for _, b := range boxes {
		if b.Confidence < c.config.MinConfidence {
			continue
		}
		regions = append(regions, model.NewRect(
			float64(b.Box.Min.X)*ptPerPx,
			pageTop-float64(b.Box.Max.Y)*ptPerPx,
			float64(b.Box.Max.X)*ptPerPx,
			pageTop-float64(b.Box.Min.Y)*ptPerPx,
		))
	}
	return regions, nil
}

// Source provides detection geometry from word recognition over a set of
// page image files, one file per page in order.
type Source struct {
	client *Client
	files  []string
}

// NewSource creates a source over the given page image files.
func NewSource(files []string, cfg Config) (*Source, error) {
	client, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return &Source{client: client, files: files}, nil
}

// NewSourceFromGlob creates a source over the files matching pattern, in
// lexical order.
func NewSourceFromGlob(pattern string, cfg Config) (*Source, error) {
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("globbing %q: %w", pattern, err)
	}
	sort.Strings(files)
	return NewSource(files, cfg)
}

// Close releases the underlying OCR client.
func (s *Source) Close() error {
	return s.client.Close()
}

// PageCount returns the number of page images.
func (s *Source) PageCount() (int, error) {
	return len(s.files), nil
}

// PageGeometry recognizes words on the given 1-based page image and returns
// their boxes as content regions. The media rectangle is derived from the
// image dimensions at the configured DPI.
func (s *Source) PageGeometry(ctx context.Context, page int) (model.PageGeometry, error) {
	if err := ctx.Err(); err != nil {
		return model.PageGeometry{}, err
	}
	if page < 1 || page > len(s.files) {
		return model.PageGeometry{}, fmt.Errorf("%w: page %d outside [1, %d]",
			model.ErrInvalidPageRange, page, len(s.files))
	}
	path := s.files[page-1]

	imgCfg, err := decodeConfig(path)
	if err != nil {
		return model.PageGeometry{}, err
	}
	regions, err := s.client.WordBoxes(path)
	if err != nil {
		return model.PageGeometry{}, err
	}

	ptPerPx := 72 / float64(s.client.config.DPI)
	media := model.NewRect(0, 0,
		float64(imgCfg.Width)*ptPerPx, float64(imgCfg.Height)*ptPerPx)
	return model.PageGeometry{Page: page, Media: media, Regions: regions}, nil
}

func decodeConfig(path string) (image.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return image.Config{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return cfg, nil
}
