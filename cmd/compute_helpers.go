package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// parseYearRange parses "2020:2030", "2020-2030", or a single "2025".
func parseYearRange(s string) (int, int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, fmt.Errorf("empty year range")
	}
	sep := ""
	switch {
	case strings.Contains(s, ":"):
		sep = ":"
	case strings.Contains(s, "-"):
		sep = "-"
	}
	if sep == "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid year %q", s)
		}
		return y, y, nil
	}
	parts := strings.SplitN(s, sep, 2)
	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start year %q", parts[0])
	}
	max, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid end year %q", parts[1])
	}
	if min > max {
		return 0, 0, fmt.Errorf("year range %d%s%d is backwards", min, sep, max)
	}
	return min, max, nil
}

// writeCSVFile creates path and hands the open file to write.
func writeCSVFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// printWarnings prints up to limit warnings for one input table.
func printWarnings(table string, warnings []string, limit int) {
	if len(warnings) == 0 {
		return
	}
	for i, w := range warnings {
		if i == limit {
			fmt.Fprintf(os.Stderr, "⚠ Warning: %s: ... and %d more\n", table, len(warnings)-limit)
			return
		}
		fmt.Fprintf(os.Stderr, "⚠ Warning: %s: %s\n", table, w)
	}
}
