package setup

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atcc-vision/atcc-go/internal/conf"
	"github.com/atcc-vision/atcc-go/internal/dashboard"
	"github.com/atcc-vision/atcc-go/internal/logging"
)

// Command creates the setup command, which prepares a project directory for
// the hosted dashboard.
func Command(settings *conf.Settings) *cobra.Command {
	projectRoot := "."

	cmd := &cobra.Command{
		Use:   "setup [project root]",
		Short: "Write the hosted dashboard configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				projectRoot = args[0]
			}
			return runSetup(projectRoot, settings)
		},
	}

	cmd.Flags().IntVarP(&settings.Dashboard.Port, "port", "p", settings.Dashboard.Port, "Dashboard server port")
	cmd.Flags().StringVar(&settings.Dashboard.Theme, "theme", settings.Dashboard.Theme, "Dashboard theme, light or dark")

	return cmd
}

func runSetup(projectRoot string, settings *conf.Settings) error {
	log := logging.ForService("dashboard")

	result, err := dashboard.Setup(projectRoot, &settings.Dashboard, log)
	if err != nil {
		return err
	}

	fmt.Println("Dashboard configuration written to:", result.ConfigPath)
	fmt.Println("Data directory:", result.DataDir)
	if !result.HasRequirements {
		fmt.Println("Note: requirements.txt not found in the project root")
	}
	return nil
}
