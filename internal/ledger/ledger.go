package ledger

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Ledger records which source files have been folded into each year's
// combined output. Entries are keyed by output year name.
type Ledger struct {
	dir string
}

// New returns a Ledger storing its tracking files under dir.
func New(dir string) *Ledger {
	return &Ledger{dir: dir}
}

// Path returns the tracking file path for a year.
func (l *Ledger) Path(year string) string {
	return filepath.Join(l.dir, fmt.Sprintf(".%s_processed.txt", year))
}

// Load reads the set of file names already processed for a year. A missing
// or unreadable tracking file yields an empty set, never an error.
func (l *Ledger) Load(year string) map[string]struct{} {
	processed := make(map[string]struct{})

	f, err := os.Open(l.Path(year))
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Could not read ledger, treating as empty",
				slog.String("path", l.Path(year)),
				slog.String("error", err.Error()))
		}
		return processed
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if name := strings.TrimSpace(scanner.Text()); name != "" {
			processed[name] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		slog.Warn("Ledger read stopped early",
			slog.String("path", l.Path(year)),
			slog.String("error", err.Error()))
	}
	return processed
}

// MarkProcessed appends a file name to a year's tracking file, creating the
// ledger directory as needed. Re-appending a duplicate name is tolerated;
// callers dedupe at the skip check.
func (l *Ledger) MarkProcessed(fileName, year string) error {
	if err := os.MkdirAll(l.dir, 0755); err != nil {
		return fmt.Errorf("failed to create ledger directory: %w", err)
	}

	f, err := os.OpenFile(l.Path(year), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open ledger: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, fileName); err != nil {
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}
	return f.Sync()
}
