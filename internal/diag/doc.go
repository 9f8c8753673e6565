// Package diag defines the diagnostic model shared by the lexer, the parser
// and the drivers.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error (severity.go).
//   - Code – compact numeric identifier with a stable string form (codes.go).
//   - Message – short human oriented text.
//   - Primary – the source.Span the finding points at.
//   - Notes – optional secondary spans with extra context.
//
// # Emitting diagnostics
//
// Producers talk to a Reporter and never to storage. BagReporter collects into
// a Bag, DedupReporter drops repeats (the lexer and the parser can both notice
// the same malformed literal), ReportBuilder attaches notes before Emit.
//
// Package diag does no formatting or IO beyond the single-line golden form;
// rendering lives in internal/diagfmt.
package diag
