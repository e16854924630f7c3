package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hearthlab/fuelcast-cli/internal/dataset"
	"github.com/hearthlab/fuelcast-cli/internal/parser"
)

var (
	listFuels     bool
	listYears     bool
	listHeadcount string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List countries, fuels, or years in a headcount table",
	RunE: func(cmd *cobra.Command, args []string) error {
		if listFuels && listYears {
			return fmt.Errorf("specify at most one of --fuels or --years")
		}
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		path := listHeadcount
		if path == "" {
			path = c.DefaultHeadcount
		}
		table, err := parser.ReadTable(path, parser.Options{SheetIndex: c.SheetIndex})
		if err != nil {
			return err
		}
		records, warnings, err := dataset.DecodeHeadcount(table)
		if err != nil {
			return err
		}
		printWarnings(table.Name, warnings, 10)

		switch {
		case listFuels:
			for _, f := range dataset.Fuels(records) {
				fmt.Printf("- %s\n", f)
			}
		case listYears:
			for _, y := range dataset.Years(records) {
				fmt.Printf("- %d\n", y)
			}
		default:
			for _, cn := range dataset.Countries(records) {
				fmt.Printf("- %s\n", cn)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listFuels, "fuels", false, "list fuel keys instead of countries")
	listCmd.Flags().BoolVar(&listYears, "years", false, "list years instead of countries")
	listCmd.Flags().StringVar(&listHeadcount, "headcount", "", "headcount table to read (defaults to config default_headcount)")
}
