// Package diag defines the diagnostic model shared by all pipeline phases.
//
// Diagnostic is the central record: a Severity, a compact numeric Code with a
// stable string form, a human oriented Message, a primary source.Span, and
// optional Notes with secondary spans. The model is data-only and
// deterministic; rendering lives in internal/diagfmt.
//
// Phases emit through a diag.Reporter so that emission stays decoupled from
// storage. BagReporter aggregates into a Bag, which supports sorting and
// deduplication for stable output.
package diag
