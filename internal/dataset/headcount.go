package dataset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/hearthlab/fuelcast-cli/internal/parser"
)

// HeadcountColumns are the required columns of a headcount table.
var HeadcountColumns = []string{
	"iso3", "country", "region", "area", "fuel", "year",
	"population_lower95", "population_median", "population_upper95",
}

// HeadcountRecord is one headcount row: people using a given fuel in a
// country/area/year, as a lower95/median/upper95 interval. Key fields are
// kept byte-for-byte as read; no trimming or case folding.
type HeadcountRecord struct {
	ISO3    string
	Country string
	Region  string
	Area    string
	Fuel    string
	Year    int

	PopLower95 Amount
	PopMedian  Amount
	PopUpper95 Amount
}

// DecodeHeadcount validates the header and decodes rows into typed records.
// A missing required column is a fatal error. Malformed numeric cells degrade
// to missing values and are reported as warnings; the row is kept either way.
func DecodeHeadcount(t *parser.Table) ([]HeadcountRecord, []string, error) {
	idx, err := columnIndex(t, HeadcountColumns)
	if err != nil {
		return nil, nil, err
	}

	records := make([]HeadcountRecord, 0, len(t.Rows))
	var warnings []string
	for n, row := range t.Rows {
		rec := HeadcountRecord{
			ISO3:    cell(row, idx["iso3"]),
			Country: cell(row, idx["country"]),
			Region:  cell(row, idx["region"]),
			Area:    cell(row, idx["area"]),
			Fuel:    cell(row, idx["fuel"]),
		}

		yearRaw := strings.TrimSpace(cell(row, idx["year"]))
		year, err := strconv.Atoi(yearRaw)
		if err != nil {
			// Row is kept with year zero; any realistic year range then
			// filters it out, same as a NaN comparison would.
			warnings = append(warnings, fmt.Sprintf("row %d: year: cannot parse %q", n+2, yearRaw))
		}
		rec.Year = year

		for _, col := range []struct {
			name string
			dst  *Amount
		}{
			{"population_lower95", &rec.PopLower95},
			{"population_median", &rec.PopMedian},
			{"population_upper95", &rec.PopUpper95},
		} {
			raw := cell(row, idx[col.name])
			*col.dst = ParseAmount(raw)
			if !col.dst.Valid && strings.TrimSpace(raw) != "" {
				warnings = append(warnings, fmt.Sprintf("row %d: %s: cannot parse %q", n+2, col.name, raw))
			}
		}

		records = append(records, rec)
	}
	return records, warnings, nil
}

// Countries returns the sorted distinct country names in the records.
func Countries(records []HeadcountRecord) []string {
	return distinct(records, func(r HeadcountRecord) string { return r.Country })
}

// Fuels returns the sorted distinct fuel keys in the records.
func Fuels(records []HeadcountRecord) []string {
	return distinct(records, func(r HeadcountRecord) string { return r.Fuel })
}

// Years returns the sorted distinct years in the records.
func Years(records []HeadcountRecord) []int {
	seen := make(map[int]bool)
	var out []int
	for _, r := range records {
		if !seen[r.Year] {
			seen[r.Year] = true
			out = append(out, r.Year)
		}
	}
	sort.Ints(out)
	return out
}
