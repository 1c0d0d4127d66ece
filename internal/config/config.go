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
	// Synthesizer parameters
	Seed         int64  `mapstructure:"seed" yaml:"seed"`
	Samples      int    `mapstructure:"samples" yaml:"samples"`
	MissingPrice int    `mapstructure:"missing_price" yaml:"missing_price"`
	MissingSize  int    `mapstructure:"missing_size" yaml:"missing_size"`
	StartDate    string `mapstructure:"start_date" yaml:"start_date"`

	// Artifact locations
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	CSVName   string `mapstructure:"csv_name" yaml:"csv_name"`
	RunsDir   string `mapstructure:"runs_dir" yaml:"runs_dir"`

	// The raw (pre-clean) dump is always written; this also dumps the
	// cleaned table next to it.
	WriteCleanedCSV bool `mapstructure:"write_cleaned_csv" yaml:"write_cleaned_csv"`

	// Chart styling
	ChartWidth  float64 `mapstructure:"chart_width" yaml:"chart_width"`
	ChartHeight float64 `mapstructure:"chart_height" yaml:"chart_height"`
	ChartBins   int     `mapstructure:"chart_bins" yaml:"chart_bins"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.homestat/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".homestat")
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
	v.SetEnvPrefix("HOMESTAT")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("seed", 42)
	v.SetDefault("samples", 1000)
	v.SetDefault("missing_price", 50)
	v.SetDefault("missing_size", 30)
	v.SetDefault("start_date", "2023-01-01")
	v.SetDefault("output_dir", ".")
	v.SetDefault("csv_name", "housing_data.csv")
	v.SetDefault("write_cleaned_csv", false)
	v.SetDefault("chart_width", 10.0)
	v.SetDefault("chart_height", 6.0)
	v.SetDefault("chart_bins", 30)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".homestat")
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
	// Resolve runs_dir default: ~/.homestat/runs
	if c.RunsDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		c.RunsDir = filepath.Join(home, ".homestat", "runs")
	}
	return &c, nil
}
