package combiner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCombinesAllYearFolders(t *testing.T) {
	cfg := testConfig(t)
	writeOrderWorkbook(t, filepath.Join(cfg.BaseDir, "2023-2024", "orders.xlsx"))
	writeOrderWorkbook(t, filepath.Join(cfg.BaseDir, "2024-2025", "orders.xlsx"))
	// Empty year folder fails on its own without sinking the run.
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.BaseDir, "2025-2026"), 0755))

	summary, err := Run(context.Background(), cfg, discardLogger())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.YearsProcessed)
	assert.Equal(t, 1, summary.YearsFailed)
	assert.Equal(t, 2, summary.TotalRecords)

	for _, name := range []string{"2023-24.xlsx", "2024-25.xlsx"} {
		_, err := os.Stat(filepath.Join(cfg.OutputDir, name))
		assert.NoError(t, err, "expected output %s", name)
	}
}

func TestRunMissingBaseDir(t *testing.T) {
	cfg := testConfig(t)

	_, err := Run(context.Background(), cfg, discardLogger())
	assert.Error(t, err)
}

func TestRunNoYearFolders(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.BaseDir, "archive"), 0755))

	summary, err := Run(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	assert.Zero(t, summary.YearsProcessed)
	assert.Zero(t, summary.YearsFailed)
}

func TestRunYearFilter(t *testing.T) {
	cfg := testConfig(t)
	writeOrderWorkbook(t, filepath.Join(cfg.BaseDir, "2023-2024", "orders.xlsx"))
	writeOrderWorkbook(t, filepath.Join(cfg.BaseDir, "2024-2025", "orders.xlsx"))
	cfg.Year = "2024-2025"

	summary, err := Run(context.Background(), cfg, discardLogger())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.YearsProcessed)
	_, err = os.Stat(filepath.Join(cfg.OutputDir, "2024-25.xlsx"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(cfg.OutputDir, "2023-24.xlsx"))
	assert.True(t, os.IsNotExist(err), "unselected year must not be combined")
}

func TestRunYearFilterNotFound(t *testing.T) {
	cfg := testConfig(t)
	writeOrderWorkbook(t, filepath.Join(cfg.BaseDir, "2023-2024", "orders.xlsx"))
	cfg.Year = "2030-2031"

	_, err := Run(context.Background(), cfg, discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
