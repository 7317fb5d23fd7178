package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/whiskeyo/meksmith/internal/diag"
	"github.com/whiskeyo/meksmith/internal/source"
)

// Pretty formats diagnostics for humans. It walks bag.Items() in order, so
// callers sort the bag first. Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEVERITY> [<CODE>]: <message>
//
// followed by the offending source line and a caret underline covering the
// primary span, then any notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printHeader(w, fs, d.Primary, d.Severity, d.Code, d.Message, opts)
		printContext(w, fs, d.Primary)
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			pos := formatPos(fs, n.Span, opts.PathMode)
			fmt.Fprintf(w, "%s: note: %s\n", pos, n.Msg)
			printContext(w, fs, n.Span)
		}
	}
}

func printHeader(w io.Writer, fs *source.FileSet, sp source.Span, sev diag.Severity, code diag.Code, msg string, opts PrettyOpts) {
	pos := formatPos(fs, sp, opts.PathMode)
	label := sev.String()
	if opts.Color {
		label = sevColor(sev).Sprint(label)
	}
	fmt.Fprintf(w, "%s: %s [%s]: %s\n", pos, label, code.ID(), msg)
}

// printContext prints the first line the span touches with a caret underline.
// Spans that start past the end of the line (EOF diagnostics) get a single
// caret after the last character.
func printContext(w io.Writer, fs *source.FileSet, sp source.Span) {
	file := fs.Get(sp.File)
	if file == nil {
		return
	}
	start, end := fs.Resolve(sp)
	line := file.GetLine(start.Line)
	fmt.Fprintf(w, "    %s\n", line)

	col := int(start.Col)
	if col < 1 {
		col = 1
	}
	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = int(end.Col - start.Col)
	}
	if remain := len(line) - (col - 1); width > remain && remain > 0 {
		width = remain
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", col-1), carets(width))
}

func carets(n int) string {
	if n <= 1 {
		return "^"
	}
	return "^" + strings.Repeat("~", n-1)
}

func formatPos(fs *source.FileSet, sp source.Span, mode PathMode) string {
	file := fs.Get(sp.File)
	if file == nil {
		return "<unknown>"
	}
	path := file.Path
	if mode == PathModeBasename {
		path = filepath.Base(path)
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", path, start.Line, start.Col)
}

func sevColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}
