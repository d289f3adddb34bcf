// Package combiner drives the extraction pipeline: for every year folder it
// discovers eligible workbooks, extracts a record per qualifying sheet,
// deduplicates and orders the collected records, and writes one combined
// table per year with the exact canonical column set.
//
// Errors are contained at the sheet, file and year boundaries. A sheet or
// file that cannot be read is logged and skipped; a year that yields no
// records is reported as failed without aborting the run. The processed-file
// ledger makes reruns incremental: workbooks that already contributed to a
// year's output are skipped unless a full rework is requested.
package combiner
