package dataset_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/hearthlab/fuelcast-cli/internal/dataset"
	"github.com/hearthlab/fuelcast-cli/internal/parser"
)

func headcountTable(rows ...[]string) *parser.Table {
	return &parser.Table{
		Name:   "headcount.csv",
		Header: append([]string(nil), dataset.HeadcountColumns...),
		Rows:   rows,
	}
}

func TestDecodeHeadcount(t *testing.T) {
	table := headcountTable(
		[]string{"KEN", "Kenya", "Africa", "Rural", "Wood", "2020", "900", "1000", "1100"},
	)
	records, warnings, err := dataset.DecodeHeadcount(table)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.ISO3 != "KEN" || r.Country != "Kenya" || r.Fuel != "Wood" || r.Year != 2020 {
		t.Fatalf("unexpected record: %+v", r)
	}
	if !r.PopMedian.Valid || r.PopMedian.Value != 1000 {
		t.Fatalf("unexpected median population: %+v", r.PopMedian)
	}
}

func TestDecodeHeadcountMissingColumn(t *testing.T) {
	table := &parser.Table{
		Name:   "broken.csv",
		Header: []string{"iso3", "country", "fuel", "year"},
	}
	_, _, err := dataset.DecodeHeadcount(table)
	if err == nil {
		t.Fatal("expected an error for missing columns")
	}
	if !errors.Is(err, dataset.ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
	for _, col := range []string{"region", "area", "population_median"} {
		if !strings.Contains(err.Error(), col) {
			t.Fatalf("error should name missing column %q: %v", col, err)
		}
	}
}

func TestDecodeHeadcountMalformedNumericKeepsRow(t *testing.T) {
	table := headcountTable(
		[]string{"KEN", "Kenya", "Africa", "Rural", "Wood", "2020", "900", "n/a", "1100"},
	)
	records, warnings, err := dataset.DecodeHeadcount(table)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("malformed cell must not drop the row, got %d records", len(records))
	}
	if records[0].PopMedian.Valid {
		t.Fatal("expected missing median for malformed cell")
	}
	if !records[0].PopLower95.Valid || !records[0].PopUpper95.Valid {
		t.Fatal("other cells in the row must still decode")
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "population_median") {
		t.Fatalf("expected one population_median warning, got %v", warnings)
	}
}

func TestDecodeHeadcountBadYearWarns(t *testing.T) {
	table := headcountTable(
		[]string{"KEN", "Kenya", "Africa", "Rural", "Wood", "soon", "900", "1000", "1100"},
	)
	records, warnings, err := dataset.DecodeHeadcount(table)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 1 || records[0].Year != 0 {
		t.Fatalf("expected year zero for unparseable year, got %+v", records)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "year") {
		t.Fatalf("expected a year warning, got %v", warnings)
	}
}

func TestHeadcountDistinctHelpers(t *testing.T) {
	table := headcountTable(
		[]string{"KEN", "Kenya", "Africa", "Rural", "Wood", "2021", "1", "2", "3"},
		[]string{"KEN", "Kenya", "Africa", "Urban", "Charcoal", "2020", "1", "2", "3"},
		[]string{"GHA", "Ghana", "Africa", "Rural", "Wood", "2020", "1", "2", "3"},
	)
	records, _, err := dataset.DecodeHeadcount(table)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	countries := dataset.Countries(records)
	if len(countries) != 2 || countries[0] != "Ghana" || countries[1] != "Kenya" {
		t.Fatalf("unexpected countries: %v", countries)
	}
	fuels := dataset.Fuels(records)
	if len(fuels) != 2 || fuels[0] != "Charcoal" || fuels[1] != "Wood" {
		t.Fatalf("unexpected fuels: %v", fuels)
	}
	years := dataset.Years(records)
	if len(years) != 2 || years[0] != 2020 || years[1] != 2021 {
		t.Fatalf("unexpected years: %v", years)
	}
}
