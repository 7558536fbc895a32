// Package raster implements a geometry source over pre-rendered page
// images.
//
// An external rasterizer (mutool, pdftoppm, ImageMagick) renders each page
// to an image file; [Source] decodes the images and [ScanRegions] locates
// content by thresholding near-white pixels. Contiguous content rows are
// grouped into horizontal bands, with bands separated by a vertical gap
// larger than a configurable fraction of the page height reported as
// separate regions. Isolated bottom matter such as a page number therefore
// arrives as its own region, ready for the footer classifier to discard.
//
// Coordinates are converted from pixels to page points using the render DPI
// and flipped to the bottom-left origin used throughout the engine.
package raster
