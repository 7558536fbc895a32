package pdfcrop

import "strings"

// Warning describes a non-fatal issue encountered while detecting or
// applying margins. Operations that produce warnings still succeed, but the
// result may not be what the caller intended.
type Warning struct {
	// Page is the 1-indexed page the warning relates to, or 0 when the
	// warning concerns the whole document or configuration.
	Page int

	// Message describes the issue.
	Message string
}

// FormatWarnings joins warnings into a single human-readable string, one
// warning per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.Message
	}
	return strings.Join(lines, "\n")
}
