package calc

import (
	"sort"

	"github.com/hearthlab/fuelcast-cli/internal/dataset"
)

// AggregateRow sums fuel tons over all output rows sharing the same
// country, year, area, and fuel.
type AggregateRow struct {
	Country string
	Year    int
	Area    string
	Fuel    string

	TonsLower95 dataset.Amount
	TonsMedian  dataset.Amount
	TonsUpper95 dataset.Amount
}

type aggregateKey struct {
	country string
	year    int
	area    string
	fuel    string
}

// Aggregate groups output records by (country, year, area, fuel) and sums
// each tons column. Missing values are skipped; a group with no present
// values sums to missing. Rows are sorted by country, year, area, fuel.
func Aggregate(records []OutputRecord) []AggregateRow {
	groups := make(map[aggregateKey]*AggregateRow)
	var order []aggregateKey
	for _, r := range records {
		k := aggregateKey{country: r.Country, year: r.Year, area: r.Area, fuel: r.Fuel}
		g := groups[k]
		if g == nil {
			g = &AggregateRow{Country: r.Country, Year: r.Year, Area: r.Area, Fuel: r.Fuel}
			groups[k] = g
			order = append(order, k)
		}
		g.TonsLower95 = g.TonsLower95.Add(r.TonsLower95)
		g.TonsMedian = g.TonsMedian.Add(r.TonsMedian)
		g.TonsUpper95 = g.TonsUpper95.Add(r.TonsUpper95)
	}

	out := make([]AggregateRow, 0, len(order))
	for _, k := range order {
		out = append(out, *groups[k])
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Country != b.Country {
			return a.Country < b.Country
		}
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Area != b.Area {
			return a.Area < b.Area
		}
		return a.Fuel < b.Fuel
	})
	return out
}

// Pivot is the headline output table: one row per (country, year, area)
// with a median-tons column per fuel.
type Pivot struct {
	Fuels []string
	Rows  []PivotRow
}

// PivotRow holds median tons keyed by fuel for one country/year/area.
type PivotRow struct {
	Country string
	Year    int
	Area    string
	Tons    map[string]dataset.Amount
}

// PivotMedian pivots aggregate rows so fuels become columns, keeping the
// median bound only. Fuel columns are sorted; rows sort by country, year,
// area. Cells with no data stay missing.
func PivotMedian(rows []AggregateRow) *Pivot {
	type pivotKey struct {
		country string
		year    int
		area    string
	}

	fuelSet := make(map[string]bool)
	byKey := make(map[pivotKey]*PivotRow)
	var order []pivotKey
	for _, r := range rows {
		fuelSet[r.Fuel] = true
		k := pivotKey{country: r.Country, year: r.Year, area: r.Area}
		p := byKey[k]
		if p == nil {
			p = &PivotRow{Country: r.Country, Year: r.Year, Area: r.Area, Tons: make(map[string]dataset.Amount)}
			byKey[k] = p
			order = append(order, k)
		}
		p.Tons[r.Fuel] = p.Tons[r.Fuel].Add(r.TonsMedian)
	}

	pv := &Pivot{}
	for f := range fuelSet {
		pv.Fuels = append(pv.Fuels, f)
	}
	sort.Strings(pv.Fuels)

	for _, k := range order {
		pv.Rows = append(pv.Rows, *byKey[k])
	}
	sort.Slice(pv.Rows, func(i, j int) bool {
		a, b := pv.Rows[i], pv.Rows[j]
		if a.Country != b.Country {
			return a.Country < b.Country
		}
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Area < b.Area
	})
	return pv
}

// Total is a summary line: total median tons for one fuel or country.
type Total struct {
	Key  string
	Tons float64
}

// TotalsByFuel sums median tons per fuel across all output records,
// descending by total. Missing values contribute nothing but the fuel still
// appears, so unmatched fuels show up with a zero total.
func TotalsByFuel(records []OutputRecord) []Total {
	return totals(records, func(r OutputRecord) string { return r.Fuel })
}

// TotalsByCountry sums median tons per country, descending by total.
func TotalsByCountry(records []OutputRecord) []Total {
	return totals(records, func(r OutputRecord) string { return r.Country })
}

func totals(records []OutputRecord, key func(OutputRecord) string) []Total {
	sums := make(map[string]float64)
	var order []string
	for _, r := range records {
		k := key(r)
		if _, ok := sums[k]; !ok {
			sums[k] = 0
			order = append(order, k)
		}
		if r.TonsMedian.Valid {
			sums[k] += r.TonsMedian.Value
		}
	}

	out := make([]Total, 0, len(order))
	for _, k := range order {
		out = append(out, Total{Key: k, Tons: sums[k]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Tons != out[j].Tons {
			return out[i].Tons > out[j].Tons
		}
		return out[i].Key < out[j].Key
	})
	return out
}
