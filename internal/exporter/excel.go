package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// SheetName is the single sheet every combined workbook carries.
const SheetName = "Combined_PO_Data"

// WriteWorkbook writes headers plus rows to a new XLSX workbook at path,
// creating parent directories as needed. Any existing file is replaced.
func WriteWorkbook(path string, headers []string, rows [][]string) error {
	slog.Info("Writing combined workbook",
		slog.String("path", path),
		slog.Int("record_count", len(rows)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), SheetName)

	if err := writeRow(f, 1, headers); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	for i, row := range rows {
		if err := writeRow(f, i+2, row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, rowNum int, values []string) error {
	if len(values) == 0 {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return f.SetSheetRow(SheetName, cell, &row)
}
