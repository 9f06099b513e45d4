package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Archenoth/project-explorer/pkg/explorer"
)

func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [dir]",
		Short: "Render a project tree once and print it",
		Long: `Collect the directory tree below dir (default: the current directory),
normalize it, and print the indentation-coded rendering. Directory lines
end with a separator; with --folded only top-level entries are shown and
folded directories carry a trailing "..." placeholder.`,
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
			folded, _ := cmd.Flags().GetBool("folded")
			cfg.StartFolded = folded

			ex, err := explorer.New(cfg, explorer.WithLogger(logger))
			if err != nil {
				return err
			}
			defer ex.Close()

			if err := ex.Build(dir); err != nil {
				return err
			}
			for _, vl := range ex.VisibleLines() {
				if vl.Folded {
					fmt.Println(vl.Text + "...")
				} else {
					fmt.Println(vl.Text)
				}
			}
			return nil
		},
	}

	addCollectionFlags(cmd)
	cmd.Flags().Bool("folded", false, "print only top-level entries, directories folded")

	return cmd
}
