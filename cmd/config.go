package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/hearthlab/fuelcast-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set Fuelcast configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		fmt.Printf("default_headcount: %s\n", c.DefaultHeadcount)
		fmt.Printf("default_rates: %s\n", c.DefaultRates)
		fmt.Printf("year_min: %d\n", c.YearMin)
		fmt.Printf("year_max: %d\n", c.YearMax)
		fmt.Printf("drop_overall_area: %t\n", c.DropOverallArea)
		fmt.Printf("output_dir: %s\n", c.OutputDir)
		fmt.Printf("sheet_index: %d\n", c.SheetIndex)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		switch key {
		case "default_headcount":
			c.DefaultHeadcount = val
		case "default_rates":
			c.DefaultRates = val
		case "year_min":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for year_min: %v", val)
			}
			c.YearMin = i
		case "year_max":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for year_max: %v", val)
			}
			c.YearMax = i
		case "drop_overall_area":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for drop_overall_area: %v", val)
			}
			c.DropOverallArea = b
		case "output_dir":
			c.OutputDir = val
		case "sheet_index":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid sheet_index: %v (must be a positive int)", val)
			}
			c.SheetIndex = i
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
