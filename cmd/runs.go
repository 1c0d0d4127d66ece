package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/homestat-cli/internal/run"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded pipeline runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			return fmt.Errorf("no config loaded")
		}
		runs, err := run.List(cfg.RunsDir)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded.")
			return nil
		}
		for _, r := range runs {
			fmt.Printf("%s  %s  seed=%d samples=%d rows=%d", r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.Seed, r.Samples, r.RowsRaw)
			if r.RowsClean > 0 {
				fmt.Printf(" cleaned=%d", r.RowsClean)
			}
			fmt.Printf(" artifacts=%d\n", len(r.Artifacts))
			if debug {
				for _, a := range r.Artifacts {
					fmt.Printf("  - [%s] %s\n", a.Kind, a.Path)
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runsCmd)
}
