package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Archenoth/project-explorer/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "project-explorer",
		Short:         "Foldable project tree explorer",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(cmd.NewShowCmd())
	rootCmd.AddCommand(cmd.NewExploreCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
