// Package extraction recovers structured purchase order records from raw
// spreadsheet grids.
//
// A grid is the [][]string returned by excelize GetRows: rows may be ragged
// and cells may be empty. ExtractSheet scans a grid in two passes, a header
// metadata scan over the first column of the upper rows and a title/details
// table scan over the remainder, and returns a Record keyed by canonical
// column names from the schema package.
//
// Extraction is best-effort by design: any single field that cannot be
// recovered is simply absent from the Record. A sheet only yields a Record at
// all when it carries the minimum signal of a real order (an order form,
// reference format number, or PO reference).
package extraction
