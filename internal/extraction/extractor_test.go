package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pocombine/internal/schema"
)

// grid builds a sheet with the usual shape: a few filler rows, header
// metadata in the first column, then a title/details table from row 8.
func grid(headerCells []string, tableRows [][]string) [][]string {
	rows := [][]string{
		{"Some Company Ltd"},
		{""},
		{""},
	}
	for _, cell := range headerCells {
		rows = append(rows, []string{cell})
	}
	for len(rows) < 8 {
		rows = append(rows, []string{""})
	}
	rows = append(rows, []string{"", "Title", "Details"})
	rows = append(rows, tableRows...)
	return rows
}

func TestExtractSheetRejectsShortGrids(t *testing.T) {
	for _, rows := range [][][]string{
		nil,
		{},
		{{"a"}},
		{{"a"}, {"b"}, {"c"}, {"d"}},
	} {
		rec, ok := ExtractSheet(rows)
		assert.False(t, ok)
		assert.Nil(t, rec)
	}
}

func TestExtractSheetHeaderBlock(t *testing.T) {
	rows := grid([]string{
		"Reference format no.*rev no.: RF-042/03",
		"Order form number : OF123",
		"O.F. Date : 12-04-2024",
		"PO Date : 2024-05-01",
		"Order type : Repeat",
		"Contact person (dispatch) : R. Mehta",
	}, nil)

	rec, ok := ExtractSheet(rows)
	require.True(t, ok)

	assert.Equal(t, "RF-042/03", rec[schema.ColReferenceFormatNo])
	assert.Equal(t, "OF123", rec[schema.ColOrderForm])
	assert.Equal(t, "12-04-2024", rec[schema.ColOFDate])
	assert.Equal(t, "2024-05-01", rec[schema.ColPODate])
	assert.Equal(t, "Repeat", rec[schema.ColOrderType])
	assert.Equal(t, "R. Mehta", rec[schema.ColContactPerson])
}

func TestExtractSheetHeaderFirstRowWins(t *testing.T) {
	rows := grid([]string{
		"PO Date : 2024-05-01",
		"Order form number : OF123",
		"PO Date : 2025-01-01",
	}, nil)

	rec, ok := ExtractSheet(rows)
	require.True(t, ok)
	assert.Equal(t, "2024-05-01", rec[schema.ColPODate])
}

func TestExtractSheetHeaderWindowBounds(t *testing.T) {
	// Metadata outside rows 3..9 is ignored.
	rows := [][]string{
		{"Order form number : OF999"}, // row 0: before the window
		{""},
		{""},
		{""},
		{""},
		{""},
		{""},
		{""},
		{""},
		{""},
		{"Order form number : OF123"}, // row 10: after the window
	}
	_, ok := ExtractSheet(rows)
	assert.False(t, ok, "no order signal expected when metadata misses the window")
}

func TestExtractSheetTitleTable(t *testing.T) {
	rows := grid(
		[]string{"Order form number : OF123"},
		[][]string{
			{"", "1", "ignored numeric title"},
			{"", "No.", "ignored placeholder"},
			{"", "Brand Name", "Paracip-500"},
			{"", "Generic Name", "NA"},
			{"", "Shelf Life", "n/a"},
			{"", "Pack Size", ""},
			{"", "Unmatchable Gibberish Label", "value"},
			{"", "Strength", "500 mg"},
		},
	)

	rec, ok := ExtractSheet(rows)
	require.True(t, ok)

	assert.Equal(t, "Paracip-500", rec[schema.ColBrandName])
	assert.Equal(t, "500 mg", rec["Strength"])
	assert.NotContains(t, rec, "Generic Name", "NA values are skipped")
	assert.NotContains(t, rec, "Shelf Life", "N/A values are skipped")
	assert.NotContains(t, rec, "Pack Size", "empty values are skipped")
}

func TestExtractSheetFirstOccurrenceWins(t *testing.T) {
	rows := grid(
		[]string{"Order form number : OF123"},
		[][]string{
			{"", "Brand Name", "First"},
			{"", "Brand Name", "Second"},
		},
	)

	rec, ok := ExtractSheet(rows)
	require.True(t, ok)
	assert.Equal(t, "First", rec[schema.ColBrandName])
}

func TestExtractSheetQuantityCleanup(t *testing.T) {
	tests := []struct {
		name    string
		details string
		want    string
	}{
		{name: "plain number", details: "5000", want: "5000"},
		{name: "thousands separators", details: "1,00,000 tablets", want: "100000"},
		{name: "leading quote", details: "'2,500", want: "2500"},
		{name: "no numeric run falls back", details: "as per order", want: "as per order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := grid(
				[]string{"Order form number : OF123"},
				[][]string{{"", "Quantity", tt.details}},
			)
			rec, ok := ExtractSheet(rows)
			require.True(t, ok)
			assert.Equal(t, tt.want, rec["Quantity"])
		})
	}
}

func TestExtractSheetMRPCleanup(t *testing.T) {
	tests := []struct {
		name       string
		details    string
		additional string
		want       string
	}{
		{name: "prefers cleaned additional cell", details: "see col E", additional: "Rs. 1,250.50", want: "1250.50"},
		{name: "strips bare currency label", details: "see col E", additional: "Rs 90", want: "90"},
		{name: "placeholder falls back to details", details: "120.00", additional: "EXPORT", want: "120.00"},
		{name: "no additional cell keeps details", details: "85.00", additional: "", want: "85.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := grid(
				[]string{"Order form number : OF123"},
				[][]string{{"", "M.R.P.", tt.details, "", tt.additional}},
			)
			rec, ok := ExtractSheet(rows)
			require.True(t, ok)
			assert.Equal(t, tt.want, rec["M.R.P."])
		})
	}
}

func TestExtractSheetAcceptanceGate(t *testing.T) {
	// Rich in detail but with no order form, reference format number or PO
	// reference: not an order.
	rows := grid(nil, [][]string{
		{"", "Brand Name", "Paracip-500"},
		{"", "Quantity", "5000"},
		{"", "Company Name", "Some Client"},
	})

	rec, ok := ExtractSheet(rows)
	assert.False(t, ok)
	assert.Nil(t, rec)
}

func TestExtractSheetGateSignals(t *testing.T) {
	gates := []string{
		"Order form number : OF123",
		"Reference format no.*rev no.: RF-01",
		"POreference : PO/2024/001",
	}
	for _, headerCell := range gates {
		rows := grid([]string{headerCell}, nil)
		_, ok := ExtractSheet(rows)
		assert.True(t, ok, "gate should pass for %q", headerCell)
	}
}

func TestExtractSheetRaggedRows(t *testing.T) {
	// Short and ragged rows in the table area must be skipped, not panic.
	rows := grid(
		[]string{"Order form number : OF123"},
		[][]string{
			{},
			{""},
			{"", "Brand Name"},
			{"", "Colour", "Amber"},
		},
	)

	rec, ok := ExtractSheet(rows)
	require.True(t, ok)
	assert.Equal(t, "Amber", rec["Colour"])
	assert.NotContains(t, rec, schema.ColBrandName)
}
