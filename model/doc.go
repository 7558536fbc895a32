// Package model provides the shared value types for margin detection and
// uniform cropping.
//
// The central type is [MarginSpec]: four fractional margins describing how
// much of each page edge a crop removes. Both automatic detection and a
// user's manual selection produce a MarginSpec, which makes the two
// interchangeable inputs to crop application.
//
// Geometry is expressed with [Rect], an axis-aligned rectangle in page
// points with a bottom-left origin. [PageGeometry] snapshots a single page's
// media rectangle together with the bounding boxes of its content regions;
// it is produced by a geometry source and treated as read-only by the
// engine.
//
// [PageRange] selects the 1-based pages a crop applies to, and
// [DetectionConfig] carries the detection tunables (buffer and footer-zone
// height). All types in this package are plain values with no hidden state.
package model
