package extraction

import (
	"regexp"
	"strings"
	"unicode"

	"pocombine/internal/schema"
)

// Record maps canonical column names to the scalar values recovered from one
// sheet. Columns the sheet did not provide are absent.
type Record map[string]string

const (
	// minRows is the smallest grid that can carry order data.
	minRows = 5
	// headerScanStart..headerScanEnd is the 0-indexed row window searched
	// for header metadata, inclusive.
	headerScanStart = 3
	headerScanEnd   = 9
	// tableScanStart is the first 0-indexed row of the title/details table.
	tableScanStart = 8
)

// headerField ties a case-insensitive keyword probe on the first column to
// the regex that extracts the field value from the matching cell.
type headerField struct {
	column   string
	keywords []string
	pattern  *regexp.Regexp
}

var headerFields = []headerField{
	{
		column:   schema.ColReferenceFormatNo,
		keywords: []string{"reference format"},
		pattern:  regexp.MustCompile(`(?i)Reference format no\.\*rev no\.:\s*(.*)`),
	},
	{
		column:   schema.ColOrderForm,
		keywords: []string{"order form number", "order form"},
		pattern:  regexp.MustCompile(`(?i)Order form number\s*:\s*(\w+)`),
	},
	{
		column:   schema.ColOFDate,
		keywords: []string{"o.f. date", "of date"},
		pattern:  regexp.MustCompile(`(?i)O\.F\. Date\s*:\s*([\d\-/]+)`),
	},
	{
		column:   schema.ColPODate,
		keywords: []string{"po date"},
		pattern:  regexp.MustCompile(`(?i)PO Date\s*:\s*([\d\-/]+)`),
	},
	{
		column:   schema.ColPOReference,
		keywords: []string{"poreference", "po reference"},
		pattern:  regexp.MustCompile(`(?i)POreference\s*:\s*(.*)`),
	},
	{
		column:   schema.ColOrderType,
		keywords: []string{"order type"},
		pattern:  regexp.MustCompile(`(?i)Order type\s*:\s*(.*)`),
	},
	{
		column:   schema.ColContactPerson,
		keywords: []string{"contact person"},
		pattern:  regexp.MustCompile(`(?i)Contact person\s*\([^)]*\)\s*:\s*(.*)`),
	},
}

// titlePlaceholders are title cells that head the table itself rather than
// naming a field.
var titlePlaceholders = map[string]struct{}{
	"no.":     {},
	"no":      {},
	"title":   {},
	"details": {},
}

// mrpPlaceholders are cleaned MRP values that carry no numeric price; the
// raw details cell is preferred over them.
var mrpPlaceholders = map[string]struct{}{
	"EXPORT":        {},
	"NA":            {},
	"PHY.SAMPLE":    {},
	"TO BE CONFIRM": {},
	"PERUNITPRICE":  {},
	"":              {},
}

var (
	mrpCurrencyPrefix = regexp.MustCompile(`(?i)^Rs\.?\s*`)
	mrpStrip          = regexp.MustCompile(`[,\s]`)
	quantityRun       = regexp.MustCompile(`^["']?([\d,]+)`)
)

// ExtractSheet scans one raw sheet grid and recovers a Record. The second
// return value is false when the sheet carries no order data: too few rows,
// or nothing that passes the acceptance gate.
func ExtractSheet(rows [][]string) (Record, bool) {
	if len(rows) < minRows {
		return nil, false
	}

	rec := make(Record)
	scanHeaderBlock(rows, rec)
	scanTitleTable(rows, rec)

	if !rec.hasOrderSignal() {
		return nil, false
	}
	return rec, true
}

// hasOrderSignal reports whether the record carries the minimum evidence of
// a real order rather than a blank template.
func (r Record) hasOrderSignal() bool {
	_, hasForm := r[schema.ColOrderForm]
	_, hasRef := r[schema.ColReferenceFormatNo]
	_, hasPO := r[schema.ColPOReference]
	return hasForm || hasRef || hasPO
}

// scanHeaderBlock probes the first column of the upper rows for known header
// fields. The first qualifying row per field wins; later rows never
// overwrite.
func scanHeaderBlock(rows [][]string, rec Record) {
	end := headerScanEnd
	if last := len(rows) - 1; last < end {
		end = last
	}
	for rowIdx := headerScanStart; rowIdx <= end; rowIdx++ {
		row := rows[rowIdx]
		if len(row) == 0 {
			continue
		}
		cell := row[0]
		lower := strings.ToLower(cell)
		for _, field := range headerFields {
			if _, done := rec[field.column]; done {
				continue
			}
			if !containsAny(lower, field.keywords) {
				continue
			}
			if m := field.pattern.FindStringSubmatch(cell); m != nil {
				if value := strings.TrimSpace(m[1]); value != "" {
					rec[field.column] = value
				}
			}
		}
	}
}

// scanTitleTable walks the title/details table: column 1 names a field,
// column 2 carries its value, column 4 occasionally carries a secondary
// value for price fields.
func scanTitleTable(rows [][]string, rec Record) {
	for rowIdx := tableScanStart; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		if len(row) < 3 {
			continue
		}

		title := strings.TrimSpace(row[1])
		if title == "" || isAllDigits(title) {
			continue
		}
		if _, skip := titlePlaceholders[strings.ToLower(title)]; skip {
			continue
		}

		column, ok := schema.Match(title)
		if !ok {
			continue
		}
		if _, done := rec[column]; done {
			continue
		}

		details := strings.TrimSpace(row[2])
		if details == "" {
			continue
		}
		if upper := strings.ToUpper(details); upper == "NA" || upper == "N/A" {
			continue
		}

		additional := ""
		if len(row) > 4 {
			additional = strings.TrimSpace(row[4])
		}

		lowerColumn := strings.ToLower(column)
		switch {
		case strings.Contains(lowerColumn, "m.r.p"):
			rec[column] = cleanMRP(details, additional)
		case strings.Contains(lowerColumn, "quantity") || strings.Contains(lowerColumn, "qty"):
			rec[column] = cleanQuantity(details)
		default:
			rec[column] = details
		}
	}
}

// cleanMRP prefers the secondary cell for price fields, stripping the
// currency label and interior separators. Values that collapse to a known
// non-numeric placeholder fall back to the raw details cell.
func cleanMRP(details, additional string) string {
	if additional == "" {
		return details
	}
	cleaned := mrpCurrencyPrefix.ReplaceAllString(additional, "")
	cleaned = mrpStrip.ReplaceAllString(strings.TrimSpace(cleaned), "")
	if _, placeholder := mrpPlaceholders[strings.ToUpper(cleaned)]; placeholder {
		return details
	}
	return cleaned
}

// cleanQuantity extracts the leading numeric run, dropping thousands
// separators and surrounding quote characters. Values with no leading
// number pass through unchanged.
func cleanQuantity(details string) string {
	m := quantityRun.FindStringSubmatch(details)
	if m == nil {
		return details
	}
	return strings.TrimSpace(strings.ReplaceAll(m[1], ",", ""))
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
