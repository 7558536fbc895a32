// Package pdfdoc opens PDF documents and applies uniform crops to them.
//
// [Document] wraps a pdfcpu parse context and exposes page counts and media
// boxes. [Document.ApplyCrop] converts a fractional [model.MarginSpec] into
// per-size-class margin boxes in points, crops each size group in a single
// pdfcpu pass, and publishes the result atomically.
//
// [Document.GeometrySource] adapts the document into a detection source by
// pairing its media boxes with a caller-supplied page renderer.
package pdfdoc
