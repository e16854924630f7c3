package export_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"

	"github.com/hearthlab/fuelcast-cli/internal/calc"
	"github.com/hearthlab/fuelcast-cli/internal/dataset"
	"github.com/hearthlab/fuelcast-cli/internal/export"
)

func sampleOutput() []calc.OutputRecord {
	return []calc.OutputRecord{
		{
			ISO3: "KEN", Country: "Kenya", Region: "Africa", Area: "Rural", Fuel: "Wood", Year: 2020,
			TonsLower95: dataset.Some(800000),
			TonsMedian:  dataset.Some(1200000),
			TonsUpper95: dataset.Some(1600000),
		},
		{
			ISO3: "KEN", Country: "Kenya", Region: "Africa", Area: "Urban", Fuel: "Dung", Year: 2020,
			// no rate match: all tons missing
		},
	}
}

func TestWriteDetailedCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := export.WriteDetailedCSV(&buf, sampleOutput()); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "iso3,country,region,area,fuel,year,fuel_tons_lower95,fuel_tons_median,fuel_tons_upper95" {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if lines[1] != "KEN,Kenya,Africa,Rural,Wood,2020,800000,1200000,1600000" {
		t.Fatalf("unexpected matched row: %s", lines[1])
	}
	if lines[2] != "KEN,Kenya,Africa,Urban,Dung,2020,,," {
		t.Fatalf("missing values must be empty cells: %s", lines[2])
	}
}

func TestWriteDetailedCSVPlainDecimals(t *testing.T) {
	records := []calc.OutputRecord{{
		ISO3: "KEN", Country: "Kenya", Region: "Africa", Area: "Rural", Fuel: "Wood", Year: 2020,
		TonsLower95: dataset.Some(12345678901.5),
		TonsMedian:  dataset.Some(0.0000025),
		TonsUpper95: dataset.Some(3),
	}}
	var buf bytes.Buffer
	if err := export.WriteDetailedCSV(&buf, records); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	fields := strings.Split(lines[1], ",")
	got := fields[len(fields)-3:]
	want := []string{"12345678901.5", "0.0000025", "3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected plain decimal %q, got %q", want[i], got[i])
		}
	}
}

func TestWritePivotCSV(t *testing.T) {
	records := []calc.OutputRecord{
		{Country: "Kenya", Area: "Rural", Fuel: "Wood", Year: 2020, TonsMedian: dataset.Some(100)},
		{Country: "Kenya", Area: "Rural", Fuel: "Charcoal", Year: 2020, TonsMedian: dataset.Some(40)},
	}
	pv := calc.PivotMedian(calc.Aggregate(records))

	var buf bytes.Buffer
	if err := export.WritePivotCSV(&buf, pv); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "country,year,area,Charcoal,Wood" {
		t.Fatalf("unexpected pivot header: %s", lines[0])
	}
	if lines[1] != "Kenya,2020,Rural,40,100" {
		t.Fatalf("unexpected pivot row: %s", lines[1])
	}
}

func TestWriteHeadcountCSV(t *testing.T) {
	records := []dataset.HeadcountRecord{{
		ISO3: "KEN", Country: "Kenya", Region: "Africa", Area: "Rural", Fuel: "Wood", Year: 2020,
		PopLower95: dataset.Some(900), PopMedian: dataset.Some(1000), PopUpper95: dataset.Some(1100),
	}}
	var buf bytes.Buffer
	if err := export.WriteHeadcountCSV(&buf, records); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != strings.Join(dataset.HeadcountColumns, ",") {
		t.Fatalf("unexpected header: %s", lines[0])
	}
	if lines[1] != "KEN,Kenya,Africa,Rural,Wood,2020,900,1000,1100" {
		t.Fatalf("unexpected row: %s", lines[1])
	}
}

func TestWriteWorkbook(t *testing.T) {
	output := sampleOutput()
	agg := calc.Aggregate(output)
	pv := calc.PivotMedian(agg)
	path := filepath.Join(t.TempDir(), "out.xlsx")

	if err := export.WriteWorkbook(path, pv, agg, output); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	f, err := xlsx.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	sheets := f.GetSheetList()
	want := []string{export.SheetSummary, export.SheetAggregate, export.SheetDetailed}
	if len(sheets) != len(want) {
		t.Fatalf("expected sheets %v, got %v", want, sheets)
	}
	for _, name := range want {
		if f.GetSheetIndex(name) < 0 {
			t.Fatalf("missing sheet %q in %v", name, sheets)
		}
	}

	rows, err := f.GetRows(export.SheetDetailed)
	if err != nil {
		t.Fatalf("read detailed sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 detailed rows, got %d", len(rows))
	}
	if rows[0][0] != "iso3" || rows[1][4] != "Wood" {
		t.Fatalf("unexpected detailed sheet contents: %v", rows[:2])
	}
}
