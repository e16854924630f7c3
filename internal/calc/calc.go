// Package calc holds the core fuel consumption transform: a left join of
// headcount records against per-capita rates on the fuel key, multiplying
// each interval bound by the matched rate. Everything here is pure; file
// parsing and rendering belong to the caller.
package calc

import (
	"sort"

	"github.com/hearthlab/fuelcast-cli/internal/dataset"
)

// Selection narrows the headcount table before the join.
type Selection struct {
	// Countries is matched exactly against either the country name or the
	// iso3 code. An empty selection selects nothing, not everything.
	Countries []string

	// MinYear and MaxYear bound the year, inclusive on both ends.
	MinYear int
	MaxYear int

	// DropOverallArea excludes rows whose area is "Overall", which would
	// double count the Urban and Rural rows they summarize.
	DropOverallArea bool
}

// OutputRecord is one joined row: descriptive fields carried through from
// the headcount record plus total fuel tons per interval bound. Tons are
// missing when the fuel had no rate or an input cell was malformed.
type OutputRecord struct {
	ISO3    string
	Country string
	Region  string
	Area    string
	Fuel    string
	Year    int

	TonsLower95 dataset.Amount
	TonsMedian  dataset.Amount
	TonsUpper95 dataset.Amount
}

// Filter returns the headcount rows matching the selection, in input order.
func Filter(records []dataset.HeadcountRecord, sel Selection) []dataset.HeadcountRecord {
	countries := make(map[string]bool, len(sel.Countries))
	for _, c := range sel.Countries {
		countries[c] = true
	}

	out := make([]dataset.HeadcountRecord, 0, len(records))
	for _, r := range records {
		if !countries[r.Country] && !countries[r.ISO3] {
			continue
		}
		if r.Year < sel.MinYear || r.Year > sel.MaxYear {
			continue
		}
		if sel.DropOverallArea && r.Area == "Overall" {
			continue
		}
		out = append(out, r)
	}
	return out
}

// RateIndex builds the fuel → per-capita-tons mapping. Duplicate fuel keys
// resolve last-write-wins.
func RateIndex(rates []dataset.RateRecord) map[string]dataset.Amount {
	idx := make(map[string]dataset.Amount, len(rates))
	for _, r := range rates {
		idx[r.Fuel] = r.PerCapitaTons
	}
	return idx
}

// Join multiplies each headcount record by its matching per-capita rate.
// Rows whose fuel has no rate entry are kept with missing tons values, and
// output order equals input order.
func Join(headcount []dataset.HeadcountRecord, rates []dataset.RateRecord) []OutputRecord {
	idx := RateIndex(rates)
	out := make([]OutputRecord, 0, len(headcount))
	for _, r := range headcount {
		rate, ok := idx[r.Fuel]
		if !ok {
			rate = dataset.Amount{}
		}
		out = append(out, OutputRecord{
			ISO3:    r.ISO3,
			Country: r.Country,
			Region:  r.Region,
			Area:    r.Area,
			Fuel:    r.Fuel,
			Year:    r.Year,

			TonsLower95: r.PopLower95.Mul(rate),
			TonsMedian:  r.PopMedian.Mul(rate),
			TonsUpper95: r.PopUpper95.Mul(rate),
		})
	}
	return out
}

// Compute filters the headcount table by the selection and joins it against
// the rate table. It is a total function: any well-formed input produces a
// result, never an error.
func Compute(headcount []dataset.HeadcountRecord, rates []dataset.RateRecord, sel Selection) []OutputRecord {
	return Join(Filter(headcount, sel), rates)
}

// FindUnmatchedFuels returns the sorted distinct fuel keys present in the
// headcount records but absent from the rate table. Comparison is exact:
// case and whitespace differences count as mismatches.
func FindUnmatchedFuels(headcount []dataset.HeadcountRecord, rates []dataset.RateRecord) []string {
	idx := RateIndex(rates)
	seen := make(map[string]bool)
	var out []string
	for _, r := range headcount {
		if _, ok := idx[r.Fuel]; ok {
			continue
		}
		if !seen[r.Fuel] {
			seen[r.Fuel] = true
			out = append(out, r.Fuel)
		}
	}
	sort.Strings(out)
	return out
}
