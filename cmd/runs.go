package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hearthlab/fuelcast-cli/internal/runlog"
)

var runsOut string

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded compute runs in an output directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		dir := runsOut
		if dir == "" {
			dir = c.OutputDir
		}
		entries, err := runlog.Load(dir)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("(no runs)")
			return nil
		}
		for _, e := range entries {
			id := e.ID
			if len(id) > 8 {
				id = id[:8]
			}
			fmt.Printf("- %s  %s  %s  %d-%d  rows=%d\n",
				id, e.Time.Format("2006-01-02 15:04"), strings.Join(e.Countries, ","), e.YearMin, e.YearMax, e.Rows)
			if len(e.UnmatchedFuels) > 0 {
				fmt.Printf("    unmatched fuels: %s\n", strings.Join(e.UnmatchedFuels, ", "))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.Flags().StringVarP(&runsOut, "out", "o", "", "output directory holding runs.yaml (defaults to config output_dir)")
}
