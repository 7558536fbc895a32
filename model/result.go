package model

// CropResult describes the outcome of applying a crop to a document.
type CropResult struct {
	// Output is the path of the written document.
	Output string

	// Applied is the MarginSpec that was actually applied, whether it was
	// auto-detected or supplied manually. Kept for audit and testing.
	Applied MarginSpec

	// PagesCropped is the number of pages whose visible rectangle was set.
	// Pages outside the requested range are not counted.
	PagesCropped int
}
