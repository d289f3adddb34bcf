// Package main provides the CLI entry point for pocombine.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/cobra"

	"pocombine/internal/combiner"
	"pocombine/internal/config"
	"pocombine/internal/infrastructure"
	"pocombine/internal/ledger"
)

var (
	configFile string
	baseDir    string
	outputDir  string
	format     string
	year       string
	fullRework bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pocombine",
		Short: "Combine purchase order workbooks into per-year canonical tables",
		Long: `pocombine scans yearly folders of purchase order workbooks, extracts
order records from their inconsistently formatted sheets, and reconciles them
into one deduplicated, column-stable table per year. Reruns are incremental:
files already folded into a year's output are skipped.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "config.yaml", "Path to optional YAML config file")

	combineCmd := &cobra.Command{
		Use:   "combine",
		Short: "Run the combine pipeline over all year folders",
		RunE:  runCombine,
	}
	combineCmd.Flags().StringVar(&baseDir, "base", "", "Base directory containing year folders (overrides config)")
	combineCmd.Flags().StringVar(&outputDir, "out", "", "Output directory for combined files (overrides config)")
	combineCmd.Flags().StringVar(&format, "format", "", "Output format: xlsx or csv (overrides config)")
	combineCmd.Flags().StringVar(&year, "year", "", "Process only this year folder")
	combineCmd.Flags().BoolVar(&fullRework, "full", false, "Ignore the ledger and reprocess every file")

	ledgerCmd := &cobra.Command{
		Use:   "ledger <year>",
		Short: "Print the processed-file ledger for a year",
		Args:  cobra.ExactArgs(1),
		RunE:  runLedger,
	}
	ledgerCmd.Flags().StringVar(&outputDir, "out", "", "Output directory holding the ledger (overrides config)")

	rootCmd.AddCommand(combineCmd, ledgerCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if baseDir != "" {
		cfg.BaseDir = baseDir
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if format != "" {
		cfg.OutputFormat = format
	}
	if year != "" {
		cfg.Year = year
	}
	if fullRework {
		cfg.SkipProcessed = false
	}
	return cfg, cfg.Validate()
}

func runCombine(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := combiner.Run(ctx, cfg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Successfully processed: %d year(s)\n", summary.YearsProcessed)
	if summary.YearsFailed > 0 {
		fmt.Printf("Failed: %d year(s)\n", summary.YearsFailed)
	}
	fmt.Printf("Total records: %d\n", summary.TotalRecords)
	return nil
}

func runLedger(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	entries := ledger.New(cfg.OutputDir).Load(args[0])
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Println(name)
	}
	fmt.Printf("%d file(s) processed for %s\n", len(names), args[0])
	return nil
}
