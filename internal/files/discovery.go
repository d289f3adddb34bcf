package files

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

// FileInfo represents information about a discovered file or directory.
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
	IsDir   bool
}

// skipPatterns marks temporary, backup, lock and index artifacts that must
// never be parsed. Matched case-insensitively against the base name.
var skipPatterns = []string{
	"~$",
	".ini",
	".lnk",
	"desktop",
	"autosaved",
	"autorecovered",
	"recovered",
	"index",
	".tmp",
}

// yearDirPattern matches year folder names such as "2024-2025".
var yearDirPattern = regexp.MustCompile(`^\d+-\d+$`)

// IsWorkbook reports whether a file name is an eligible source workbook:
// the spreadsheet extension, with none of the junk patterns.
func IsWorkbook(name string) bool {
	lower := strings.ToLower(name)
	for _, pattern := range skipPatterns {
		if strings.Contains(lower, pattern) {
			return false
		}
	}
	return strings.HasSuffix(lower, ".xlsx")
}

// FindWorkbooks recursively finds all eligible workbooks under dir, sorted
// by path. Subtrees that cannot be read are skipped rather than failing the
// walk.
func FindWorkbooks(dir string) ([]FileInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []FileInfo
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !IsWorkbook(d.Name()) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		files = append(files, FileInfo{
			Path:    path,
			Name:    d.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
		return nil
	})

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files, nil
}

// FindYearDirs lists the year folders directly under base, sorted by name.
func FindYearDirs(base string) ([]FileInfo, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", base, err)
	}

	var dirs []FileInfo
	for _, entry := range entries {
		if !entry.IsDir() || !yearDirPattern.MatchString(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		dirs = append(dirs, FileInfo{
			Path:    filepath.Join(base, entry.Name()),
			Name:    entry.Name(),
			ModTime: info.ModTime(),
			IsDir:   true,
		})
	}

	sort.Slice(dirs, func(i, j int) bool {
		return dirs[i].Name < dirs[j].Name
	})
	return dirs, nil
}

// OutputYearName converts a year folder name to its output form:
// "2024-2025" becomes "2024-25". Names not shaped like a range pass through.
func OutputYearName(folder string) string {
	parts := strings.Split(folder, "-")
	if len(parts) != 2 || len(parts[1]) < 2 {
		return folder
	}
	return parts[0] + "-" + parts[1][len(parts[1])-2:]
}
