package classes

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atcc-vision/atcc-go/internal/vocab"
)

// Command creates the classes command, which prints the master vocabulary.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "Print the master class vocabulary",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Master class vocabulary:")
			for i, name := range vocab.MasterNames() {
				fmt.Printf("  %2d  %s\n", i, name)
			}
		},
	}
}
