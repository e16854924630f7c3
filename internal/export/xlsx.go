package export

import (
	"fmt"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"

	"github.com/hearthlab/fuelcast-cli/internal/calc"
	"github.com/hearthlab/fuelcast-cli/internal/dataset"
)

const (
	SheetSummary   = "Fuel Consumption Summary"
	SheetAggregate = "By Country Year Area Fuel"
	SheetDetailed  = "Detailed Data"
)

// WriteWorkbook writes the pivot, aggregate, and detailed tables as one
// workbook with a sheet per table.
func WriteWorkbook(path string, pv *calc.Pivot, agg []calc.AggregateRow, detailed []calc.OutputRecord) error {
	f := xlsx.NewFile()
	f.SetSheetName(f.GetSheetName(0), SheetSummary)
	f.NewSheet(SheetAggregate)
	f.NewSheet(SheetDetailed)

	if err := writePivotSheet(f, SheetSummary, pv); err != nil {
		return err
	}
	if err := writeAggregateSheet(f, SheetAggregate, agg); err != nil {
		return err
	}
	if err := writeDetailedSheet(f, SheetDetailed, detailed); err != nil {
		return err
	}

	f.SetActiveSheet(f.GetSheetIndex(SheetSummary))
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writePivotSheet(f *xlsx.File, sheet string, pv *calc.Pivot) error {
	header := []interface{}{"country", "year", "area"}
	for _, fuel := range pv.Fuels {
		header = append(header, fuel)
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, r := range pv.Rows {
		row := []interface{}{r.Country, r.Year, r.Area}
		for _, fuel := range pv.Fuels {
			row = append(row, amountCell(r.Tons[fuel]))
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeAggregateSheet(f *xlsx.File, sheet string, agg []calc.AggregateRow) error {
	header := []interface{}{"country", "year", "area", "fuel", "fuel_tons_lower95", "fuel_tons_median", "fuel_tons_upper95"}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, r := range agg {
		row := []interface{}{
			r.Country, r.Year, r.Area, r.Fuel,
			amountCell(r.TonsLower95), amountCell(r.TonsMedian), amountCell(r.TonsUpper95),
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeDetailedSheet(f *xlsx.File, sheet string, detailed []calc.OutputRecord) error {
	header := make([]interface{}, len(DetailedColumns))
	for i, c := range DetailedColumns {
		header[i] = c
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, r := range detailed {
		row := []interface{}{
			r.ISO3, r.Country, r.Region, r.Area, r.Fuel, r.Year,
			amountCell(r.TonsLower95), amountCell(r.TonsMedian), amountCell(r.TonsUpper95),
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

// amountCell maps a missing value to an empty cell.
func amountCell(a dataset.Amount) interface{} {
	if !a.Valid {
		return nil
	}
	return a.Value
}

func setRow(f *xlsx.File, sheet string, row int, values []interface{}) error {
	ref, err := xlsx.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell ref for row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, ref, &values); err != nil {
		return fmt.Errorf("write sheet %q row %d: %w", sheet, row, err)
	}
	return nil
}
