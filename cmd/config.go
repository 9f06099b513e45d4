package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Archenoth/project-explorer/pkg/explorer"
)

// addCollectionFlags registers the flags shared by every command that
// builds a tree.
func addCollectionFlags(cmd *cobra.Command) {
	cmd.Flags().String("strategy", "", "collection strategy: walk, process, or incremental")
	cmd.Flags().String("omit", "", "regexp of base names to skip (with their subtrees)")
	cmd.Flags().Bool("no-compress", false, "keep single-child directory chains uncompressed")
	cmd.Flags().BoolP("verbose", "v", false, "enable debug logging")
}

// resolveConfig layers command-line flags over the directory's config
// file over the defaults.
func resolveConfig(cmd *cobra.Command, dir string) (explorer.Config, error) {
	cfg, err := explorer.LoadConfig(dir)
	if err != nil {
		return cfg, err
	}
	if v, _ := cmd.Flags().GetString("strategy"); v != "" {
		cfg.Strategy = explorer.Strategy(v)
	}
	if v, _ := cmd.Flags().GetString("omit"); cmd.Flags().Changed("omit") {
		cfg.OmitPattern = v
	}
	if v, _ := cmd.Flags().GetBool("no-compress"); v {
		cfg.Compress = false
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		logger.SetLevel(log.DebugLevel)
	}
	return cfg, cfg.Validate()
}
