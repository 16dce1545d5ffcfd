package cli

import (
	"fmt"

	"github.com/mytex-labs/mytex/internal/project"
	"github.com/spf13/cobra"
)

func init() {
	keywordCmd.AddCommand(keywordAddCmd)
	rootCmd.AddCommand(keywordCmd)
}

var keywordCmd = &cobra.Command{
	Use:   "keyword",
	Short: "Manage the keywords of a project",
}

var keywordAddCmd = &cobra.Command{
	Use:   "add <project-dir> <keyword>...",
	Short: "Append keywords to a project",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		cfg, err := project.Load(dir)
		if err != nil {
			return err
		}
		cfg.AddKeywords(args[1:]...)
		if err := project.Save(dir, cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Keywords: %v\n", cfg.Keywords)
		return nil
	},
}
