package combiner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"pocombine/internal/config"
	"pocombine/internal/files"
	"pocombine/internal/infrastructure"
	"pocombine/internal/schema"
)

// Summary tallies the outcome of one run across all year folders.
type Summary struct {
	YearsProcessed int
	YearsFailed    int
	TotalRecords   int
}

// Run discovers year folders under the configured base directory and
// combines each one independently. A failed year is tallied, not fatal; a
// missing base directory is the only error returned.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Summary, error) {
	ctx = infrastructure.WithRunID(ctx, uuid.NewString())

	logger.InfoContext(ctx, "Starting purchase order combine run",
		slog.String("base_dir", cfg.BaseDir),
		slog.String("output_dir", cfg.OutputDir),
		slog.String("output_format", cfg.OutputFormat),
		slog.Bool("skip_processed", cfg.SkipProcessed))

	yearDirs, err := files.FindYearDirs(cfg.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("base directory not readable: %w", err)
	}
	if cfg.Year != "" {
		yearDirs = filterYear(yearDirs, cfg.Year)
		if len(yearDirs) == 0 {
			return nil, fmt.Errorf("year folder %q not found under %s", cfg.Year, cfg.BaseDir)
		}
	}

	summary := &Summary{}
	if len(yearDirs) == 0 {
		logger.WarnContext(ctx, "No year folders found",
			slog.String("base_dir", cfg.BaseDir))
		return summary, nil
	}
	logger.InfoContext(ctx, "Year folders discovered",
		slog.Int("count", len(yearDirs)),
		slog.Int("required_columns", len(schema.Columns)))

	agg := NewAggregator(cfg, logger)
	for _, yearDir := range yearDirs {
		result, err := agg.ProcessYearDir(ctx, yearDir)
		if err != nil {
			if ctx.Err() != nil {
				return summary, ctx.Err()
			}
			logger.ErrorContext(ctx, "Year folder failed",
				slog.String("year", yearDir.Name),
				slog.String("error", err.Error()))
			summary.YearsFailed++
			continue
		}
		summary.YearsProcessed++
		summary.TotalRecords += result.Records
	}

	logger.InfoContext(ctx, "Run complete",
		slog.Int("years_processed", summary.YearsProcessed),
		slog.Int("years_failed", summary.YearsFailed),
		slog.Int("total_records", summary.TotalRecords))
	return summary, nil
}

func filterYear(dirs []files.FileInfo, year string) []files.FileInfo {
	var filtered []files.FileInfo
	for _, d := range dirs {
		if d.Name == year {
			filtered = append(filtered, d)
		}
	}
	return filtered
}
