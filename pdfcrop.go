// Package pdfcrop provides a fluent API for detecting content margins in
// PDF page images and applying a single uniform crop across a document.
//
// Basic usage:
//
//	result, warnings, err := pdfcrop.Open("book.pdf").
//	    WithPageImages("pages/*.png").
//	    Apply(ctx, "book-cropped.pdf")
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pdfcrop.FormatWarnings(warnings))
//	}
//
// With options:
//
//	spec, _, err := pdfcrop.Open("book.pdf").
//	    WithPageImages("pages/*.png").
//	    Pages("12-340").
//	    FooterHeight(0.12).
//	    Buffer(0.02).
//	    Workers(8).
//	    Detect(ctx)
//
// For advanced use cases, the lower-level detect, raster, and pdfdoc
// packages are also available.
package pdfcrop

import (
	"github.com/ananswam/pdfcrop/detect"
)

// Open opens a PDF file and returns a Cropper for fluent configuration.
// The document is not read until a terminal operation runs. The returned
// Cropper must be closed when done, either explicitly via Close() or
// implicitly when calling Apply.
//
// Example:
//
//	result, warnings, err := pdfcrop.Open("book.pdf").
//	    WithPageImages("pages/*.png").
//	    Apply(ctx, "out.pdf")
func Open(filename string) *Cropper {
	return &Cropper{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSource creates a Cropper that detects margins from an arbitrary page
// geometry source instead of rendered images. Use this for detection-only
// workflows, or to plug in a custom source such as an OCR word-box scanner.
// The caller is responsible for closing the source if it needs closing.
//
// Example:
//
//	spec, _, err := pdfcrop.FromSource(src).FooterHeight(0.12).Detect(ctx)
func FromSource(src detect.Source) *Cropper {
	return &Cropper{
		source:  src,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := pdfcrop.Must(pdfcrop.Open("book.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is a helper that wraps a call to Detect or Apply and panics if
// the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	spec := pdfcrop.MustResult(pdfcrop.Open("book.pdf").WithPageImages("p/*.png").Detect(ctx))
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
