package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/mytex-labs/mytex/internal/project"
	"github.com/mytex-labs/mytex/internal/templates"
	"github.com/spf13/cobra"
)

var (
	templateUse   string
	templateWatch bool
)

func init() {
	templateCmd.Flags().StringVar(&templateUse, "use", "", "Switch the project to another template")
	templateCmd.Flags().BoolVar(&templateWatch, "watch", false, "Keep running and re-render whenever the project config changes")
	rootCmd.AddCommand(templateCmd)
}

var templateCmd = &cobra.Command{
	Use:   "template <project-dir>",
	Short: "Re-render a project from its template",
	Long: `Re-render an existing project from the template recorded in its
.mytex/config.yaml, or switch it to another template with --use.

Examples:
  mytex template ./my-paper
  mytex template ./my-paper --use acm
  mytex template ./my-paper --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runTemplate,
}

func runTemplate(cmd *cobra.Command, args []string) error {
	dir := args[0]
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("project does not exist: %s", dir)
	}

	cfg, err := project.Load(dir)
	if err != nil {
		return err
	}
	name := cfg.Template
	if templateUse != "" {
		name = templateUse
	}
	if name == "" {
		return fmt.Errorf("project %s has no template; pass --use <name>", dir)
	}

	available, err := loadTemplates()
	if err != nil {
		return err
	}
	tmpl, err := templates.Find(available, name)
	if err != nil {
		return err
	}

	result, err := project.Rerender(dir, tmpl)
	if err != nil {
		return err
	}
	printResult("Rendered "+tmpl.Name+" into", result)

	if !templateWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	fmt.Printf("\nWatching %s for changes (Ctrl-C to stop)\n", project.ConfigPath(dir))
	// --use was applied above; from here on the config decides the template.
	return project.Watch(ctx, dir, project.DefaultDebounce, func() error {
		result, err := project.Refresh(dir, findTemplate)
		if err != nil {
			return err
		}
		fmt.Printf("Re-rendered %d files\n", len(result.Files))
		printWarnings(result.Warnings)
		return nil
	})
}

// findTemplate looks name up among the currently installed templates.
func findTemplate(name string) (*templates.Template, error) {
	available, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	return templates.Find(available, name)
}
