// Package cmd assembles the atcc command tree.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/atcc-vision/atcc-go/cmd/analyze"
	"github.com/atcc-vision/atcc-go/cmd/classes"
	"github.com/atcc-vision/atcc-go/cmd/combine"
	"github.com/atcc-vision/atcc-go/cmd/setup"
	"github.com/atcc-vision/atcc-go/internal/conf"
	"github.com/atcc-vision/atcc-go/internal/logging"
)

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "atcc",
		Short: "ATCC-Go CLI, dataset and dashboard tooling for vehicle detection",
	}

	// Set up the global flags for the root command.
	setupFlags(rootCmd, settings)

	subcommands := []*cobra.Command{
		combine.Command(settings),
		analyze.Command(settings),
		setup.Command(settings),
		classes.Command(),
	}
	rootCmd.AddCommand(subcommands...)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := cmd.Flags().Parse(args); err != nil {
			return err
		}

		// Sync the settings struct with viper so command-line arguments take
		// precedence over the config file.
		settings.Debug = viper.GetBool("debug")
		if settings.Debug {
			logging.SetLevel(slog.LevelDebug)
		}

		return nil
	}

	return rootCmd
}

// setupFlags defines flags that are global to the command line interface
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) error {
	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", viper.GetBool("debug"), "Enable debug output")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}

	return nil
}
