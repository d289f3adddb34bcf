// Package ledger persists the set of source files already folded into a
// year's combined output, enabling incremental reruns over large, slowly
// growing folders without reprocessing everything.
//
// Each year has one hidden tracking file under the output directory, a plain
// newline-delimited list of file names. Loads are tolerant: a missing or
// unreadable ledger is treated as empty and is never fatal. Marks are
// discrete appends, so an interrupted run never corrupts entries recorded by
// earlier files.
package ledger
