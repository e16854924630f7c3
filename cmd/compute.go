package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hearthlab/fuelcast-cli/internal/calc"
	"github.com/hearthlab/fuelcast-cli/internal/dataset"
	"github.com/hearthlab/fuelcast-cli/internal/export"
	"github.com/hearthlab/fuelcast-cli/internal/parser"
	"github.com/hearthlab/fuelcast-cli/internal/runlog"
	"github.com/hearthlab/fuelcast-cli/internal/utils"
)

var (
	cmpHeadcount   string
	cmpRates       string
	cmpCountries   []string
	cmpYears       string
	cmpOut         string
	cmpXLSX        bool
	cmpKeepOverall bool
	cmpSheetName   string
	cmpNoLog       bool
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Join headcount and per-capita tables and export fuel consumption in tons",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}

		headPath := cmpHeadcount
		if headPath == "" {
			headPath = c.DefaultHeadcount
		}
		ratesPath := cmpRates
		if ratesPath == "" {
			ratesPath = c.DefaultRates
		}
		outDir := cmpOut
		if outDir == "" {
			outDir = c.OutputDir
		}

		minYear, maxYear := c.YearMin, c.YearMax
		if cmpYears != "" {
			minYear, maxYear, err = parseYearRange(cmpYears)
			if err != nil {
				return err
			}
		}

		opt := parser.Options{SheetName: cmpSheetName, SheetIndex: c.SheetIndex}
		headTable, err := parser.ReadTable(headPath, opt)
		if err != nil {
			return err
		}
		rateTable, err := parser.ReadTable(ratesPath, opt)
		if err != nil {
			return err
		}

		headcount, headWarnings, err := dataset.DecodeHeadcount(headTable)
		if err != nil {
			return err
		}
		rates, rateWarnings, err := dataset.DecodeRates(rateTable)
		if err != nil {
			return err
		}
		printWarnings(headTable.Name, headWarnings, 10)
		printWarnings(rateTable.Name, rateWarnings, 10)

		if len(cmpCountries) == 0 {
			fmt.Fprintln(os.Stderr, "⚠ Warning: no countries selected; output will be empty (use -c/--country)")
		}

		sel := calc.Selection{
			Countries:       cmpCountries,
			MinYear:         minYear,
			MaxYear:         maxYear,
			DropOverallArea: c.DropOverallArea && !cmpKeepOverall,
		}
		if debug {
			spew.Fdump(os.Stderr, sel)
		}
		filtered := calc.Filter(headcount, sel)
		output := calc.Join(filtered, rates)

		unmatched := calc.FindUnmatchedFuels(filtered, rates)
		if len(unmatched) > 0 {
			fmt.Fprintf(os.Stderr, "⚠ Warning: no matching per capita values for fuels: %s\n", strings.Join(unmatched, ", "))
			fmt.Fprintln(os.Stderr, "  These rows get empty output values. Fuel names must match exactly (case-sensitive).")
		}

		agg := calc.Aggregate(output)
		pivot := calc.PivotMedian(agg)

		p := message.NewPrinter(language.English)
		p.Printf("Headcount rows: %d total, %d selected\n", len(headcount), len(filtered))
		p.Printf("Countries: %s\n", strings.Join(cmpCountries, ", "))
		p.Printf("Years: %d to %d\n", minYear, maxYear)
		printTotals(p, "Total median tons by fuel", calc.TotalsByFuel(output))
		printTotals(p, "Total median tons by country", calc.TotalsByCountry(output))

		if err := utils.EnsureDir(outDir); err != nil {
			return fmt.Errorf("ensure output dir: %w", err)
		}
		outputs := []string{
			fmt.Sprintf("headcount_data_%d_%d.csv", minYear, maxYear),
			fmt.Sprintf("cooking_fuel_detailed_%d_%d.csv", minYear, maxYear),
			fmt.Sprintf("by_country_year_area_fuel_%d_%d.csv", minYear, maxYear),
			fmt.Sprintf("fuel_consumption_by_area_%d_%d.csv", minYear, maxYear),
		}
		writers := []func(io.Writer) error{
			func(w io.Writer) error { return export.WriteHeadcountCSV(w, filtered) },
			func(w io.Writer) error { return export.WriteDetailedCSV(w, output) },
			func(w io.Writer) error { return export.WriteAggregateCSV(w, agg) },
			func(w io.Writer) error { return export.WritePivotCSV(w, pivot) },
		}
		for i, name := range outputs {
			if err := writeCSVFile(filepath.Join(outDir, name), writers[i]); err != nil {
				return err
			}
		}
		if cmpXLSX {
			name := fmt.Sprintf("cooking_fuel_output_%d_%d.xlsx", minYear, maxYear)
			if err := export.WriteWorkbook(filepath.Join(outDir, name), pivot, agg, output); err != nil {
				return err
			}
			outputs = append(outputs, name)
		}
		fmt.Printf("Wrote %d files to %s\n", len(outputs), outDir)

		if !cmpNoLog {
			e := runlog.NewEntry()
			e.Headcount = headPath
			e.Rates = ratesPath
			e.Countries = cmpCountries
			e.YearMin = minYear
			e.YearMax = maxYear
			e.Rows = len(output)
			e.UnmatchedFuels = unmatched
			e.Outputs = outputs
			if err := runlog.Append(outDir, e); err != nil {
				fmt.Fprintf(os.Stderr, "⚠ Warning: failed to record run: %v\n", err)
			}
		}
		return nil
	},
}

func printTotals(p *message.Printer, title string, totals []calc.Total) {
	if len(totals) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(title + ":")
	for _, t := range totals {
		p.Printf("  %-24s %.1f\n", t.Key, t.Tons)
	}
}

func init() {
	rootCmd.AddCommand(computeCmd)
	computeCmd.Flags().StringVar(&cmpHeadcount, "headcount", "", "headcount table (csv/tsv/xlsx/xls); defaults to config default_headcount")
	computeCmd.Flags().StringVar(&cmpRates, "rates", "", "per-capita rate table; defaults to config default_rates")
	computeCmd.Flags().StringArrayVarP(&cmpCountries, "country", "c", nil, "country name or iso3 code to include (repeatable)")
	computeCmd.Flags().StringVar(&cmpYears, "years", "", "year range, e.g. 2020:2030 (defaults to config year_min/year_max)")
	computeCmd.Flags().StringVarP(&cmpOut, "out", "o", "", "output directory (defaults to config output_dir)")
	computeCmd.Flags().BoolVar(&cmpXLSX, "xlsx", false, "also write a multi-sheet Excel workbook")
	computeCmd.Flags().BoolVar(&cmpKeepOverall, "keep-overall", false, "keep \"Overall\" area rows instead of only Urban/Rural")
	computeCmd.Flags().StringVar(&cmpSheetName, "sheet-name", "", "sheet to read from spreadsheet inputs")
	computeCmd.Flags().BoolVar(&cmpNoLog, "no-log", false, "skip appending this run to runs.yaml")
}
