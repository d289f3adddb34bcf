// Package exporter writes the combined per-year tables to disk.
//
// Two output formats are supported: XLSX workbooks written with excelize
// (the default, one sheet named Combined_PO_Data) and CSV files with an
// optional UTF-8 BOM so Excel opens them correctly. Both emit exactly the
// header and row order handed to them; column policy belongs to the caller.
package exporter
