package parser_test

import (
	"path/filepath"
	"testing"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"

	"github.com/hearthlab/fuelcast-cli/internal/parser"
)

func writeWorkbook(t *testing.T, rows [][]interface{}, extraSheet string) string {
	t.Helper()
	f := xlsx.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		ref, err := xlsx.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell ref: %v", err)
		}
		row := row
		if err := f.SetSheetRow(sheet, ref, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if extraSheet != "" {
		f.NewSheet(extraSheet)
		if err := f.SetSheetRow(extraSheet, "A1", &[]interface{}{"other"}); err != nil {
			t.Fatalf("set extra sheet row: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "table.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestReadTableXLSX(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"fuel", "per_capita_tons"},
		{"Wood", 0.8},
	}, "")

	table, err := parser.ReadTable(path, parser.Options{})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(table.Header) != 2 || table.Header[0] != "fuel" {
		t.Fatalf("unexpected header: %v", table.Header)
	}
	if len(table.Rows) != 1 || table.Rows[0][0] != "Wood" || table.Rows[0][1] != "0.8" {
		t.Fatalf("unexpected rows: %v", table.Rows)
	}
}

func TestReadTableXLSXSheetByName(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"fuel", "per_capita_tons"},
	}, "Rates")

	table, err := parser.ReadTable(path, parser.Options{SheetName: "rates"})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(table.Header) != 1 || table.Header[0] != "other" {
		t.Fatalf("expected the named sheet (case-insensitive), got %v", table.Header)
	}
}

func TestReadTableXLSXUnknownSheet(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"fuel", "per_capita_tons"},
	}, "")

	_, err := parser.ReadTable(path, parser.Options{SheetName: "Missing"})
	if err == nil {
		t.Fatal("expected an error for an unknown sheet name")
	}
}
