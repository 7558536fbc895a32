//go:build !ocr

// Package ocr detects content regions on page images using the Tesseract
// OCR engine via gosseract, as an alternative to pixel scanning for pages
// where stray marks (scanner noise, bleed-through) would inflate the pixel
// bounds.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// All operations return ErrOCRNotEnabled. To enable OCR, rebuild with the
// "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"context"
	"errors"

	"github.com/ananswam/pdfcrop/model"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Config controls word detection.
type Config struct {
	// DPI the page images were rendered at, for pixel-to-point conversion.
	DPI int

	// Language is the Tesseract language string, "+" separated for multiple
	// languages (e.g. "eng+fra"). Empty means Tesseract's default.
	Language string

	// MinConfidence discards word boxes below this recognition confidence
	// (0-100).
	MinConfidence float64
}

// DefaultConfig returns the detection defaults: 144 DPI, default language,
// confidence floor of 30.
func DefaultConfig() Config {
	return Config{DPI: 144, MinConfidence: 30}
}

// Client is a stub OCR client that returns errors for all operations.
type Client struct{}

// New returns an error indicating OCR support is not enabled.
func New(cfg Config) (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub client.
// It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// WordBoxes returns an error indicating OCR support is not enabled.
func (c *Client) WordBoxes(path string) ([]model.Rect, error) {
	return nil, ErrOCRNotEnabled
}

// Source is a stub detection source that returns errors for all operations.
type Source struct{}

// NewSource returns an error indicating OCR support is not enabled.
func NewSource(files []string, cfg Config) (*Source, error) {
	return nil, ErrOCRNotEnabled
}

// NewSourceFromGlob returns an error indicating OCR support is not enabled.
func NewSourceFromGlob(pattern string, cfg Config) (*Source, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub source.
// It is safe to call on a nil source.
func (s *Source) Close() error {
	return nil
}

// PageCount returns an error indicating OCR support is not enabled.
func (s *Source) PageCount() (int, error) {
	return 0, ErrOCRNotEnabled
}

// PageGeometry returns an error indicating OCR support is not enabled.
func (s *Source) PageGeometry(ctx context.Context, page int) (model.PageGeometry, error) {
	return model.PageGeometry{}, ErrOCRNotEnabled
}
