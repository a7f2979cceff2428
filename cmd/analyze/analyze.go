package analyze

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atcc-vision/atcc-go/internal/analysis"
	"github.com/atcc-vision/atcc-go/internal/conf"
	"github.com/atcc-vision/atcc-go/internal/logging"
)

// Command creates the analyze command, which summarizes daily interval count
// reports into ADT, PCU and peak hour tables.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Summarize daily traffic count reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(settings)
		},
	}

	setupFlags(cmd, settings)
	return cmd
}

// setupFlags configures flags specific to the analyze command.
func setupFlags(cmd *cobra.Command, settings *conf.Settings) {
	cmd.Flags().StringVarP(&settings.Analysis.InputDir, "indir", "i", settings.Analysis.InputDir, "Directory searched for interval report CSVs")
	cmd.Flags().StringVar(&settings.Analysis.Morning, "morning", settings.Analysis.Morning, "Morning peak window, hours as start-end")
	cmd.Flags().StringVar(&settings.Analysis.Evening, "evening", settings.Analysis.Evening, "Evening peak window, hours as start-end")
}

func runAnalyze(settings *conf.Settings) error {
	log := logging.ForService("analysis")

	result, err := analysis.Run(&settings.Analysis, log)
	if err != nil {
		return err
	}

	if result.Reports == 0 {
		fmt.Println("No daily reports found.")
		return nil
	}

	fmt.Printf("Analyzed %d daily reports\n\n", result.Reports)
	fmt.Println("Average daily traffic:")
	for _, row := range result.ADT {
		fmt.Printf("  %-12s %8d  (%d PCU)\n", row.Category, row.AvgDaily, row.AvgPCU)
	}

	fmt.Println("\nPeak hours:")
	fmt.Printf("  %s: %s -> %d vehicles\n", result.Morning.Label, result.Morning.Interval, result.Morning.Total)
	fmt.Printf("  %s: %s -> %d vehicles\n", result.Evening.Label, result.Evening.Interval, result.Evening.Total)

	fmt.Println("\nSummary files:")
	for _, path := range result.Files {
		fmt.Println("  " + path)
	}
	return nil
}
