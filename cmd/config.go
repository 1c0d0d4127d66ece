package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/homestat-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set HomeStat configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("seed: %d\n", cfg.Seed)
		fmt.Printf("samples: %d\n", cfg.Samples)
		fmt.Printf("missing_price: %d\n", cfg.MissingPrice)
		fmt.Printf("missing_size: %d\n", cfg.MissingSize)
		fmt.Printf("start_date: %s\n", cfg.StartDate)
		fmt.Printf("output_dir: %s\n", cfg.OutputDir)
		fmt.Printf("csv_name: %s\n", cfg.CSVName)
		fmt.Printf("runs_dir: %s\n", cfg.RunsDir)
		fmt.Printf("write_cleaned_csv: %t\n", cfg.WriteCleanedCSV)
		fmt.Printf("chart_width: %.1f\n", cfg.ChartWidth)
		fmt.Printf("chart_height: %.1f\n", cfg.ChartHeight)
		fmt.Printf("chart_bins: %d\n", cfg.ChartBins)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "seed":
			i, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid int for seed: %v", val)
			}
			cfg.Seed = i
		case "samples":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid positive int for samples: %v", val)
			}
			cfg.Samples = i
		case "missing_price":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for missing_price: %v", val)
			}
			cfg.MissingPrice = i
		case "missing_size":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for missing_size: %v", val)
			}
			cfg.MissingSize = i
		case "start_date":
			cfg.StartDate = val
		case "output_dir":
			cfg.OutputDir = val
		case "csv_name":
			cfg.CSVName = val
		case "runs_dir":
			cfg.RunsDir = val
		case "write_cleaned_csv":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for write_cleaned_csv: %v", val)
			}
			cfg.WriteCleanedCSV = b
		case "chart_width", "chart_height":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 {
				return fmt.Errorf("invalid positive number for %s: %v", key, val)
			}
			if key == "chart_width" {
				cfg.ChartWidth = f
			} else {
				cfg.ChartHeight = f
			}
		case "chart_bins":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid positive int for chart_bins: %v", val)
			}
			cfg.ChartBins = i
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Set %s and saved config\n", key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
