package cli

import (
	"fmt"
	"os"

	"github.com/mytex-labs/mytex/internal/branding"
	"github.com/mytex-labs/mytex/internal/config"
	"github.com/mytex-labs/mytex/internal/logging"
	"github.com/mytex-labs/mytex/internal/templates"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates LaTeX paper projects from templates and keeps their
author, affiliation and keyword blocks in sync with .mytex/config.yaml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(verbose)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		logging.SetDefault(l)
		config.Load()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.L().Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug logs to stderr")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// loadTemplates installs the builtin templates on first use and returns
// every template in the user's templates directory.
func loadTemplates() ([]*templates.Template, error) {
	dir := config.TemplatesDir()
	installed, err := templates.Install(dir)
	if err != nil {
		return nil, err
	}
	if installed {
		fmt.Fprintf(rootCmd.OutOrStdout(), "Installed builtin templates to %s\n", dir)
	}
	return templates.Discover(dir)
}

func printResult(action string, result *templates.Result) {
	fmt.Printf("%s %s/\n", action, result.OutputDir)
	for _, f := range result.Files {
		fmt.Printf("  %s\n", f)
	}
	printWarnings(result.Warnings)
}

func printWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Println("\nWarnings:")
	for _, w := range warnings {
		fmt.Printf("  - %s\n", w)
	}
}
