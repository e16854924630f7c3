package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Default input tables used when compute is run without --headcount/--rates.
	DefaultHeadcount string `mapstructure:"default_headcount" yaml:"default_headcount"`
	DefaultRates     string `mapstructure:"default_rates" yaml:"default_rates"`

	// Default year window for compute.
	YearMin int `mapstructure:"year_min" yaml:"year_min"`
	YearMax int `mapstructure:"year_max" yaml:"year_max"`

	// DropOverallArea excludes "Overall" area rows so Urban/Rural are not
	// double counted against their combined total.
	DropOverallArea bool `mapstructure:"drop_overall_area" yaml:"drop_overall_area"`

	// OutputDir is where compute writes exports and the run log.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// SheetIndex selects which sheet to read from spreadsheet inputs (1-based).
	SheetIndex int `mapstructure:"sheet_index" yaml:"sheet_index"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.fuelcast/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".fuelcast")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("FUELCAST")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("default_headcount", "data/headcount_HH_fuel_UN_1990_2050.csv")
	v.SetDefault("default_rates", "data/per_capita_fuel_placeholder.csv")
	v.SetDefault("year_min", 2020)
	v.SetDefault("year_max", 2030)
	v.SetDefault("drop_overall_area", true)
	v.SetDefault("sheet_index", 1)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".fuelcast")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.OutputDir == "" {
		c.OutputDir = "fuelcast-output"
	}
	return &c, nil
}
