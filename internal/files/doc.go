// Package files provides discovery of source workbooks and year folders for
// the purchase order combiner.
//
// Discovery is filename driven: temporary, backup, lock and index artifacts
// are skipped by pattern, and only spreadsheet extensions are considered.
// Year folders are immediate subdirectories of the base directory whose
// names look like a year range ("2024-2025").
//
// Example usage:
//
//	years, err := files.FindYearDirs("PO")
//	for _, year := range years {
//		workbooks, err := files.FindWorkbooks(year.Path)
//		// process workbooks
//	}
package files
