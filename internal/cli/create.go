package cli

import (
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	"github.com/mytex-labs/mytex/internal/config"
	"github.com/mytex-labs/mytex/internal/project"
	"github.com/mytex-labs/mytex/internal/templates"
	"github.com/spf13/cobra"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

var (
	createTemplate  string
	createTitle     string
	createOutputDir string
	createAnonymous bool
)

func init() {
	createCmd.Flags().StringVarP(&createTemplate, "template", "t", "", "Template name (prompted when omitted)")
	createCmd.Flags().StringVar(&createTitle, "title", "", "Paper title")
	createCmd.Flags().StringVar(&createOutputDir, "output-dir", "", "Project directory (default: ./<name>)")
	createCmd.Flags().BoolVar(&createAnonymous, "anonymous", false, "Render empty author blocks for blind review")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new paper project from a template",
	Long: `Create a new paper project directory rendered from a template.

Missing values are asked for interactively. The configured default author
(see 'mytex config set author.name ...') is added as the first author.

Examples:
  mytex create
  mytex create my-paper --template lncs --title "On Affiliations"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	available, err := loadTemplates()
	if err != nil {
		return err
	}

	preset := project.Answers{Template: createTemplate, Title: createTitle}
	if len(args) == 1 {
		preset.Name = args[0]
	}

	ans := &preset
	if preset.Name == "" || preset.Template == "" {
		names := make([]string, len(available))
		for i, t := range available {
			names[i] = t.Name
		}
		ans, err = project.Prompt(cmd.InOrStdin(), cmd.OutOrStdout(), names, preset)
		if err != nil {
			return err
		}
	}

	if err := validateName(ans.Name); err != nil {
		return err
	}
	tmpl, err := templates.Find(available, ans.Template)
	if err != nil {
		return err
	}

	cfg := &project.Config{
		Name:      ans.Name,
		Title:     ans.Title,
		Date:      time.Now().Format("2006-01-02"),
		Anonymous: createAnonymous,
	}
	if author, ok := config.GetDefaultAuthor(); ok {
		entry := project.AuthorEntry{Name: author.Name, Email: author.Email}
		if author.Institute != "" {
			inst, err := parseInstituteFlag(author.Institute)
			if err != nil {
				return fmt.Errorf("%s setting: %w", config.KeyAuthorInstitute, err)
			}
			entry.Institutes = []project.InstituteEntry{inst}
		}
		cfg.AddAuthor(entry)
	}

	dir := resolveOutputDir(ans.Name)
	result, err := project.Create(dir, cfg, tmpl)
	if err != nil {
		return err
	}

	printResult("Created "+tmpl.Name+" project at", result)
	fmt.Println("\nNext steps:")
	fmt.Printf("  1. Edit %s to add authors and keywords\n", filepath.Join(dir, project.ConfigDir, project.ConfigFile))
	fmt.Printf("  2. Run 'mytex template %s' to re-render\n", dir)
	return nil
}

func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must match pattern [A-Za-z0-9][A-Za-z0-9._-]*", name)
	}
	return nil
}

func resolveOutputDir(name string) string {
	if createOutputDir != "" {
		return createOutputDir
	}
	return filepath.Join(".", name)
}
