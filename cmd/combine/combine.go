package combine

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/atcc-vision/atcc-go/internal/combiner"
	"github.com/atcc-vision/atcc-go/internal/conf"
	"github.com/atcc-vision/atcc-go/internal/logging"
	"github.com/atcc-vision/atcc-go/internal/vocab"
)

// Command creates the combine command, which merges the source datasets into
// one normalized dataset.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "combine",
		Short: "Merge annotated source datasets into one normalized dataset",
		Long: `Merge every source dataset found under the source directory into one
dataset with the fixed 11-class master vocabulary, collision-free file names
and aggregated class statistics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCombine(settings)
		},
	}

	setupFlags(cmd, settings)
	return cmd
}

// setupFlags configures flags specific to the combine command.
func setupFlags(cmd *cobra.Command, settings *conf.Settings) {
	cmd.Flags().StringVarP(&settings.Combine.SourceDir, "source", "s", settings.Combine.SourceDir, "Root directory holding the source datasets")
	cmd.Flags().StringVarP(&settings.Combine.OutputDir, "output", "o", settings.Combine.OutputDir, "Merged dataset output directory")
	cmd.Flags().StringVar(&settings.Combine.Pattern, "pattern", settings.Combine.Pattern, "Glob pattern matching source dataset directory names")
	cmd.Flags().StringVar(&settings.Combine.ClassMap, "class-map", settings.Combine.ClassMap, "YAML file overriding the built-in class mapping")
}

func runCombine(settings *conf.Settings) error {
	log := logging.ForService("combiner")
	if settings.Main.Log.Enabled {
		fileLog, closeLog, err := logging.NewFileLogger(settings.Main.Log.Path, "combiner", slog.LevelInfo)
		if err != nil {
			logging.Warn("cannot open run log file, logging to console only", "error", err)
		} else {
			log = fileLog
			defer closeLog()
		}
	}

	mapping := vocab.DefaultMapping()
	if settings.Combine.ClassMap != "" {
		loaded, err := vocab.LoadMapping(settings.Combine.ClassMap)
		if err != nil {
			return err
		}
		mapping = loaded
	}

	c := combiner.New(&settings.Combine, mapping, log)
	stats, err := c.Run()
	if err != nil {
		return err
	}

	stats.Report(os.Stdout)
	return nil
}
