package cli

import (
	"fmt"

	"github.com/mytex-labs/mytex/internal/metadata"
	"github.com/mytex-labs/mytex/internal/project"
	"github.com/mytex-labs/mytex/internal/templates"
	"github.com/spf13/cobra"
)

var (
	previewFormat string
	previewKey    string
)

func init() {
	previewCmd.Flags().StringVarP(&previewFormat, "format", "f", "", "Render as lncs, acm or blog (default: the project template's format)")
	previewCmd.Flags().StringVarP(&previewKey, "key", "k", "", "Print a single context key (meta, author, title, date, keywords)")
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview [project-dir]",
	Short: "Print the values substituted into a project's templates",
	Long: `Print the rendered author, keyword and title blocks of a project without
writing any file.

Examples:
  mytex preview
  mytex preview ./my-paper --format acm --key author`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	cfg, err := project.Load(dir)
	if err != nil {
		return err
	}

	format, err := formatFor(cfg, previewFormat)
	if err != nil {
		return err
	}

	ctx, err := cfg.Context(format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if previewKey != "" {
		value, ok := ctx[previewKey]
		if !ok {
			return fmt.Errorf("unknown key %q: must be one of %v", previewKey, project.ContextKeys)
		}
		fmt.Fprintln(out, value)
		return nil
	}

	for i, k := range project.ContextKeys {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "<%s>\n%s\n", k, ctx[k])
	}
	return nil
}

// formatFor resolves an explicit format name, falling back to the format of
// the project's recorded template and finally to the template name itself.
func formatFor(cfg *project.Config, override string) (metadata.Format, error) {
	if override != "" {
		return metadata.ParseFormat(override)
	}
	if cfg.Template == "" {
		return metadata.FormatBlog, nil
	}
	available, err := loadTemplates()
	if err == nil {
		if tmpl, err := templates.Find(available, cfg.Template); err == nil {
			return tmpl.Format, nil
		}
	}
	if f, err := metadata.ParseFormat(cfg.Template); err == nil {
		return f, nil
	}
	return 0, fmt.Errorf("cannot determine format for template %q; pass --format", cfg.Template)
}
