package dataset_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/hearthlab/fuelcast-cli/internal/dataset"
	"github.com/hearthlab/fuelcast-cli/internal/parser"
)

func TestDecodeRates(t *testing.T) {
	table := &parser.Table{
		Name:   "rates.csv",
		Header: []string{"fuel", "per_capita_tons"},
		Rows: [][]string{
			{"Wood", "0.8"},
			{"Charcoal", "0.3"},
		},
	}
	records, warnings, err := dataset.DecodeRates(table)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Fuel != "Wood" || !records[0].PerCapitaTons.Valid || records[0].PerCapitaTons.Value != 0.8 {
		t.Fatalf("unexpected record: %+v", records[0])
	}
}

func TestDecodeRatesMissingColumn(t *testing.T) {
	table := &parser.Table{
		Name:   "rates.csv",
		Header: []string{"fuel", "tons_per_person"},
	}
	_, _, err := dataset.DecodeRates(table)
	if !errors.Is(err, dataset.ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
	if !strings.Contains(err.Error(), "per_capita_tons") {
		t.Fatalf("error should name the missing column: %v", err)
	}
}

func TestDecodeRatesMalformedValue(t *testing.T) {
	table := &parser.Table{
		Name:   "rates.csv",
		Header: []string{"fuel", "per_capita_tons"},
		Rows: [][]string{
			{"Wood", "lots"},
		},
	}
	records, warnings, err := dataset.DecodeRates(table)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 1 || records[0].PerCapitaTons.Valid {
		t.Fatalf("expected a kept record with missing rate, got %+v", records)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "per_capita_tons") {
		t.Fatalf("expected one warning, got %v", warnings)
	}
}

func TestRateKeysAreNotNormalized(t *testing.T) {
	table := &parser.Table{
		Name:   "rates.csv",
		Header: []string{"fuel", "per_capita_tons"},
		Rows: [][]string{
			{" Wood", "0.8"},
		},
	}
	records, _, err := dataset.DecodeRates(table)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if records[0].Fuel != " Wood" {
		t.Fatalf("fuel key must keep its whitespace, got %q", records[0].Fuel)
	}
}
