package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Archenoth/project-explorer/cmd/explore"
	"github.com/Archenoth/project-explorer/pkg/explorer"
)

func NewExploreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore [dir]",
		Short: "Browse a project tree interactively",
		Long: `Open an interactive, foldable view of the directory tree below dir
(default: the current directory). Folding state survives refreshes of the
same root; vim-style fold keys (za, zo, zc, zR, zM) are supported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			cfg, err := resolveConfig(cmd, dir)
			if err != nil {
				return err
			}
			ex, err := explorer.New(cfg, explorer.WithLogger(logger))
			if err != nil {
				return err
			}
			defer ex.Close()

			return explore.Run(ex, dir)
		},
	}

	addCollectionFlags(cmd)

	return cmd
}
