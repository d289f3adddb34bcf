package combiner

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"pocombine/internal/config"
	"pocombine/internal/exporter"
	"pocombine/internal/extraction"
	"pocombine/internal/files"
	"pocombine/internal/ledger"
	"pocombine/internal/schema"
)

const (
	// maxSheetErrorsLogged bounds per-sheet failure verbosity per file.
	maxSheetErrorsLogged = 3
	// sheetProgressEvery paces progress logs on workbooks with many sheets.
	sheetProgressEvery = 50
)

// duplicateKeySep joins the identity fields of the dedup key.
const duplicateKeySep = "|"

// poDateLayouts are tried in order when parsing PO Date for sort ordering.
var poDateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"2006/01/02",
	"02/01/2006",
	"01-02-2006",
}

// Aggregator combines all workbooks of one year folder into a single
// canonical table.
type Aggregator struct {
	cfg    *config.Config
	ledger *ledger.Ledger
	logger *slog.Logger
}

// YearResult summarizes one processed year folder.
type YearResult struct {
	YearFolder        string
	OutputYear        string
	OutputPath        string
	FilesFound        int
	FilesSkipped      int
	SheetsExtracted   int
	Records           int
	DuplicatesRemoved int
}

// NewAggregator creates an aggregator that writes outputs and ledgers under
// the configured output directory.
func NewAggregator(cfg *config.Config, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		cfg:    cfg,
		ledger: ledger.New(cfg.OutputDir),
		logger: logger,
	}
}

// ProcessYearDir combines one year folder. It returns an error when the
// folder yields no records; the caller decides whether that fails the run.
func (a *Aggregator) ProcessYearDir(ctx context.Context, yearDir files.FileInfo) (*YearResult, error) {
	outputYear := files.OutputYearName(yearDir.Name)
	result := &YearResult{
		YearFolder: yearDir.Name,
		OutputYear: outputYear,
	}

	a.logger.InfoContext(ctx, "Processing year folder",
		slog.String("year", yearDir.Name),
		slog.String("output_year", outputYear))

	processed := make(map[string]struct{})
	if a.cfg.SkipProcessed {
		processed = a.ledger.Load(outputYear)
		if len(processed) > 0 {
			a.logger.InfoContext(ctx, "Found already processed files, skipping them",
				slog.String("year", yearDir.Name),
				slog.Int("count", len(processed)))
		}
	}

	workbooks, err := files.FindWorkbooks(yearDir.Path)
	if err != nil {
		return nil, err
	}
	result.FilesFound = len(workbooks)
	if len(workbooks) == 0 {
		return nil, fmt.Errorf("no workbooks found in %s", yearDir.Name)
	}
	a.logger.InfoContext(ctx, "Workbooks discovered",
		slog.String("year", yearDir.Name),
		slog.Int("count", len(workbooks)))

	var records []extraction.Record
	for i, wb := range workbooks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if _, done := processed[wb.Name]; done {
			a.logger.InfoContext(ctx, "Skipping already processed file",
				slog.Int("current", i+1),
				slog.Int("total", len(workbooks)),
				slog.String("filename", wb.Name))
			result.FilesSkipped++
			continue
		}

		a.logger.InfoContext(ctx, "Processing file",
			slog.Int("current", i+1),
			slog.Int("total", len(workbooks)),
			slog.String("filename", wb.Name),
			slog.Int64("size_bytes", wb.Size))

		fileRecords := a.processFile(ctx, yearDir.Name, wb)
		if len(fileRecords) == 0 {
			// Leave the file unledgered so improved extraction can
			// retry it on a later run.
			continue
		}
		records = append(records, fileRecords...)
		result.SheetsExtracted += len(fileRecords)

		if a.cfg.SkipProcessed {
			if err := a.ledger.MarkProcessed(wb.Name, outputYear); err != nil {
				a.logger.WarnContext(ctx, "Could not record file in ledger",
					slog.String("filename", wb.Name),
					slog.String("error", err.Error()))
			}
		}
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no data extracted from %s", yearDir.Name)
	}

	deduped, removed := deduplicate(records)
	result.DuplicatesRemoved = removed
	if removed > 0 {
		a.logger.InfoContext(ctx, "Removed duplicate records",
			slog.String("year", yearDir.Name),
			slog.Int("count", removed))
	}

	sortByPODate(deduped)

	result.Records = len(deduped)
	result.OutputPath = filepath.Join(a.cfg.OutputDir, outputYear+"."+a.cfg.OutputFormat)

	rows := project(deduped)
	switch a.cfg.OutputFormat {
	case "csv":
		err = exporter.WriteSimpleCSV(result.OutputPath, schema.Columns, rows)
	default:
		err = exporter.WriteWorkbook(result.OutputPath, schema.Columns, rows)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to write combined table: %w", err)
	}

	a.logger.InfoContext(ctx, "Year folder combined",
		slog.String("year", yearDir.Name),
		slog.String("output", result.OutputPath),
		slog.Int("records", result.Records),
		slog.Int("columns", len(schema.Columns)))
	return result, nil
}

// processFile extracts records from every sheet of one workbook. Failures
// are contained: an unreadable file yields zero records, an unreadable sheet
// is skipped.
func (a *Aggregator) processFile(ctx context.Context, yearFolder string, wb files.FileInfo) []extraction.Record {
	f, err := excelize.OpenFile(wb.Path)
	if err != nil {
		a.logger.ErrorContext(ctx, "Error opening workbook",
			slog.String("filename", wb.Name),
			slog.String("error", err.Error()))
		return nil
	}
	defer f.Close()

	sheets := f.GetSheetList()
	a.logger.DebugContext(ctx, "Workbook opened",
		slog.String("filename", wb.Name),
		slog.Int("sheet_count", len(sheets)))

	var records []extraction.Record
	sheetErrors := 0
	for i, sheet := range sheets {
		rows, err := f.GetRows(sheet)
		if err != nil {
			sheetErrors++
			if sheetErrors <= maxSheetErrorsLogged {
				a.logger.WarnContext(ctx, "Error reading sheet",
					slog.String("filename", wb.Name),
					slog.String("sheet", sheet),
					slog.String("error", err.Error()))
			}
			continue
		}

		rec, ok := extraction.ExtractSheet(rows)
		if !ok {
			continue
		}
		// Provenance columns are part of the canonical set but never
		// appear in the sheet body.
		rec[schema.ColFolder] = yearFolder
		rec[schema.ColSourceFile] = wb.Name
		rec[schema.ColSheetName] = sheet
		records = append(records, rec)

		if len(sheets) > sheetProgressEvery && (i+1)%sheetProgressEvery == 0 {
			a.logger.InfoContext(ctx, "Sheet progress",
				slog.String("filename", wb.Name),
				slog.Int("current", i+1),
				slog.Int("total", len(sheets)))
		}
	}

	if len(records) > 0 {
		a.logger.InfoContext(ctx, "Extracted data from workbook",
			slog.String("filename", wb.Name),
			slog.Int("sheets_with_data", len(records)))
	}
	return records
}

// duplicateKey derives the dedup identity of a record from its order form,
// PO date and brand name. Records with none of the three never collapse.
func duplicateKey(rec extraction.Record) string {
	var parts []string
	for _, col := range []string{schema.ColOrderForm, schema.ColPODate, schema.ColBrandName} {
		if v := rec[col]; v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, duplicateKeySep)
}

// deduplicate removes later records sharing a duplicate key, preserving
// input order. Returns the surviving records and the number removed.
func deduplicate(records []extraction.Record) ([]extraction.Record, int) {
	seen := make(map[string]struct{}, len(records))
	kept := records[:0:0]
	for _, rec := range records {
		key := duplicateKey(rec)
		if key != "" {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		kept = append(kept, rec)
	}
	return kept, len(records) - len(kept)
}

// sortByPODate stable-sorts records by their parsed PO date; records whose
// date cannot be parsed keep their relative order at the end.
func sortByPODate(records []extraction.Record) {
	type dated struct {
		rec extraction.Record
		t   time.Time
		ok  bool
	}
	dates := make([]dated, len(records))
	for i, rec := range records {
		t, ok := parsePODate(rec[schema.ColPODate])
		dates[i] = dated{rec: rec, t: t, ok: ok}
	}
	sort.SliceStable(dates, func(i, j int) bool {
		if dates[i].ok != dates[j].ok {
			return dates[i].ok
		}
		if !dates[i].ok {
			return false
		}
		return dates[i].t.Before(dates[j].t)
	})
	for i, d := range dates {
		records[i] = d.rec
	}
}

func parsePODate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range poDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// project renders records onto the full canonical column set; absent
// columns become empty cells.
func project(records []extraction.Record) [][]string {
	rows := make([][]string, len(records))
	for i, rec := range records {
		row := make([]string, len(schema.Columns))
		for j, col := range schema.Columns {
			row[j] = rec[col]
		}
		rows[i] = row
	}
	return rows
}
