package cmd

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/hearthlab/fuelcast-cli/internal/dataset"
	"github.com/hearthlab/fuelcast-cli/internal/parser"
)

var (
	insRows  int
	insSheet string
	insDump  bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Preview the shape and first rows of a table file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		table, err := parser.ReadTable(args[0], parser.Options{SheetName: insSheet, SheetIndex: c.SheetIndex})
		if err != nil {
			return err
		}

		fmt.Printf("File    : %s\n", table.Name)
		fmt.Printf("Columns : %s\n", strings.Join(table.Header, ", "))
		fmt.Printf("Rows    : %d\n", len(table.Rows))
		n := insRows
		if n > len(table.Rows) {
			n = len(table.Rows)
		}
		for _, row := range table.Rows[:n] {
			fmt.Printf("  %s\n", strings.Join(row, " | "))
		}

		if insDump {
			dumpTyped(table, n)
		}
		return nil
	},
}

// dumpTyped decodes the table by its header and spew-dumps the first records.
func dumpTyped(table *parser.Table, n int) {
	hasCol := func(name string) bool {
		for _, h := range table.Header {
			if h == name {
				return true
			}
		}
		return false
	}
	switch {
	case hasCol("per_capita_tons"):
		records, _, err := dataset.DecodeRates(table)
		if err == nil {
			if n > len(records) {
				n = len(records)
			}
			spew.Dump(records[:n])
		}
	case hasCol("iso3"):
		records, _, err := dataset.DecodeHeadcount(table)
		if err == nil {
			if n > len(records) {
				n = len(records)
			}
			spew.Dump(records[:n])
		}
	default:
		spew.Dump(table.Header)
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().IntVar(&insRows, "rows", 10, "number of rows to preview")
	inspectCmd.Flags().StringVar(&insSheet, "sheet-name", "", "sheet to read from spreadsheet files")
	inspectCmd.Flags().BoolVar(&insDump, "dump", false, "dump decoded records for debugging")
}
