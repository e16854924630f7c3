// Package export renders computed tables to CSV and XLSX. Numeric cells are
// plain decimals and missing values become empty cells.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/hearthlab/fuelcast-cli/internal/calc"
	"github.com/hearthlab/fuelcast-cli/internal/dataset"
)

// DetailedColumns is the header of the detailed output table.
var DetailedColumns = []string{
	"iso3", "country", "region", "area", "fuel", "year",
	"fuel_tons_lower95", "fuel_tons_median", "fuel_tons_upper95",
}

// WriteDetailedCSV writes one row per output record, in record order.
func WriteDetailedCSV(w io.Writer, records []calc.OutputRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(DetailedColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.ISO3, r.Country, r.Region, r.Area, r.Fuel, strconv.Itoa(r.Year),
			r.TonsLower95.String(), r.TonsMedian.String(), r.TonsUpper95.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteHeadcountCSV writes filtered headcount records in their input shape.
func WriteHeadcountCSV(w io.Writer, records []dataset.HeadcountRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(dataset.HeadcountColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.ISO3, r.Country, r.Region, r.Area, r.Fuel, strconv.Itoa(r.Year),
			r.PopLower95.String(), r.PopMedian.String(), r.PopUpper95.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteAggregateCSV writes the by-country/year/area/fuel sums.
func WriteAggregateCSV(w io.Writer, rows []calc.AggregateRow) error {
	cw := csv.NewWriter(w)
	header := []string{"country", "year", "area", "fuel", "fuel_tons_lower95", "fuel_tons_median", "fuel_tons_upper95"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		row := []string{
			r.Country, strconv.Itoa(r.Year), r.Area, r.Fuel,
			r.TonsLower95.String(), r.TonsMedian.String(), r.TonsUpper95.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePivotCSV writes the pivot table with one median-tons column per fuel.
func WritePivotCSV(w io.Writer, pv *calc.Pivot) error {
	cw := csv.NewWriter(w)
	header := append([]string{"country", "year", "area"}, pv.Fuels...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range pv.Rows {
		row := []string{r.Country, strconv.Itoa(r.Year), r.Area}
		for _, f := range pv.Fuels {
			row = append(row, r.Tons[f].String())
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
