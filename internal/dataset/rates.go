package dataset

import (
	"fmt"
	"strings"

	"github.com/hearthlab/fuelcast-cli/internal/parser"
)

// RateColumns are the required columns of a per-capita rate table.
var RateColumns = []string{"fuel", "per_capita_tons"}

// RateRecord maps a fuel key to tons consumed per person per year.
// The fuel key is compared byte-for-byte against headcount fuel keys.
type RateRecord struct {
	Fuel          string
	PerCapitaTons Amount
}

// DecodeRates validates the header and decodes rows into typed records.
// Malformed rate values degrade to missing values with a warning, so every
// headcount row matched on that fuel gets missing output rather than an abort.
func DecodeRates(t *parser.Table) ([]RateRecord, []string, error) {
	idx, err := columnIndex(t, RateColumns)
	if err != nil {
		return nil, nil, err
	}

	records := make([]RateRecord, 0, len(t.Rows))
	var warnings []string
	for n, row := range t.Rows {
		raw := cell(row, idx["per_capita_tons"])
		rec := RateRecord{
			Fuel:          cell(row, idx["fuel"]),
			PerCapitaTons: ParseAmount(raw),
		}
		if !rec.PerCapitaTons.Valid && strings.TrimSpace(raw) != "" {
			warnings = append(warnings, fmt.Sprintf("row %d: per_capita_tons: cannot parse %q", n+2, raw))
		}
		records = append(records, rec)
	}
	return records, warnings, nil
}
