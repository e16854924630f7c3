package dataset

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hearthlab/fuelcast-cli/internal/parser"
)

// ErrMissingColumn indicates an input table lacks one or more required
// columns. Decoding fails fast and computation must not proceed.
var ErrMissingColumn = errors.New("missing required column")

// columnIndex resolves required column names to header positions.
// Column names must match exactly; extra columns are ignored.
func columnIndex(t *parser.Table, required []string) (map[string]int, error) {
	idx := make(map[string]int, len(required))
	pos := make(map[string]int, len(t.Header))
	for i, h := range t.Header {
		pos[h] = i
	}
	var missing []string
	for _, name := range required {
		i, ok := pos[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		idx[name] = i
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s (table %s)", ErrMissingColumn, strings.Join(missing, ", "), t.Name)
	}
	return idx, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func distinct(records []HeadcountRecord, key func(HeadcountRecord) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		k := key(r)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
