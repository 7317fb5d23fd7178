// Package diagfmt renders diagnostics and debug dumps. It reads from
// internal/diag and internal/source and never mutates them.
package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto displays the path as it was registered.
	PathModeAuto PathMode = iota
	// PathModeBasename strips directories from the path.
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // add line/col next to byte offsets
	PathMode         PathMode
	Max              int // truncates the output, not the Bag
	IncludeNotes     bool
}
