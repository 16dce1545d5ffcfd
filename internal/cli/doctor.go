package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/mytex-labs/mytex/internal/config"
	"github.com/mytex-labs/mytex/internal/manifest"
	"github.com/mytex-labs/mytex/internal/project"
	"github.com/mytex-labs/mytex/internal/templates"
	"github.com/spf13/cobra"
)

var (
	checkRuntime   bool
	checkSettings  bool
	checkTemplates bool
	checkProject   string
)

func init() {
	doctorCmd.Flags().BoolVar(&checkRuntime, "check-runtime", false, "Verify LaTeX tools are on PATH")
	doctorCmd.Flags().BoolVar(&checkSettings, "check-settings", false, "Verify the settings directory and file")
	doctorCmd.Flags().BoolVar(&checkTemplates, "check-templates", false, "Validate every installed template manifest")
	doctorCmd.Flags().StringVar(&checkProject, "check-project", "", "Validate the config of the project at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the mytex installation",
	Long:  `Run diagnostic checks on your LaTeX toolchain, settings and templates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		anyFlag := checkRuntime || checkSettings || checkTemplates || checkProject != ""

		// If no specific flag, run all checks.
		if !anyFlag {
			runRuntimeCheck(out)
			runSettingsCheck(out)
			if err := runTemplatesCheck(out); err != nil {
				fmt.Fprintf(out, "  [WARN] %v\n", err)
			}
			return nil
		}

		if checkRuntime {
			runRuntimeCheck(out)
		}
		if checkSettings {
			runSettingsCheck(out)
		}
		if checkTemplates {
			if err := runTemplatesCheck(out); err != nil {
				return err
			}
		}
		if checkProject != "" {
			if err := runProjectCheck(out, checkProject); err != nil {
				return err
			}
		}
		return nil
	},
}

func runRuntimeCheck(out io.Writer) {
	fmt.Fprintln(out, "Runtime check:")
	for _, name := range []string{"latexmk", "pdflatex", "bibtex"} {
		checkBinary(out, name)
	}
}

func checkBinary(out io.Writer, name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(out, "  [MISS] %s not found\n", name)
		return
	}
	fmt.Fprintf(out, "  [ OK ] %s found at %s\n", name, path)
}

func runSettingsCheck(out io.Writer) {
	fmt.Fprintln(out, "Settings check:")

	dir := config.Dir()
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		fmt.Fprintf(out, "  [INFO] %s does not exist yet (created on first use)\n", dir)
		return
	}
	fmt.Fprintf(out, "  [ OK ] settings directory %s\n", dir)

	if _, err := os.Stat(config.FilePath()); err != nil {
		fmt.Fprintf(out, "  [INFO] no %s, using defaults\n", filepath.Base(config.FilePath()))
	} else {
		fmt.Fprintf(out, "  [ OK ] %s\n", config.FilePath())
	}

	if author, ok := config.GetDefaultAuthor(); ok {
		fmt.Fprintf(out, "  [ OK ] default author: %s <%s>\n", author.Name, author.Email)
	} else {
		fmt.Fprintf(out, "  [INFO] no default author (set with `mytex config set %s <name>`)\n", config.KeyAuthorName)
	}
}

func runTemplatesCheck(out io.Writer) error {
	fmt.Fprintln(out, "Templates check:")

	dir := config.TemplatesDir()
	if _, err := os.Stat(dir); err != nil {
		fmt.Fprintf(out, "  [INFO] %s not installed yet (installed on first use)\n", dir)
		return nil
	}

	available, err := templates.Discover(dir)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("template discovery failed: %w", err)
	}
	if len(available) == 0 {
		fmt.Fprintf(out, "  [WARN] no templates in %s\n", dir)
		return nil
	}

	failed := 0
	for _, t := range available {
		path := filepath.Join(t.Dir, manifest.FileName)
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(out, "  [INFO] %s: no %s, format %s inferred\n", t.Name, manifest.FileName, t.Format)
			continue
		}
		if !reportValidation(out, manifest.SchemaTemplate, path, fmt.Sprintf("%s (%s, v%s)", t.Name, t.Format, t.Version)) {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d template manifest(s) failed validation", failed)
	}
	return nil
}

func runProjectCheck(out io.Writer, dir string) error {
	path := project.ConfigPath(dir)
	fmt.Fprintf(out, "Project validation: %s\n", path)
	if !reportValidation(out, manifest.SchemaProject, path, "project config") {
		return fmt.Errorf("project config %s is invalid", path)
	}

	cfg, err := project.Load(dir)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return err
	}
	format, err := formatFor(cfg, "")
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return err
	}
	if _, err := cfg.Context(format); err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return err
	}
	fmt.Fprintf(out, "  [ OK ] %d author(s), %d keyword(s) render with template %s\n", len(cfg.Authors), len(cfg.Keywords), cfg.Template)
	return nil
}

// reportValidation prints the schema validation outcome for path and
// reports whether it passed.
func reportValidation(out io.Writer, schema, path, label string) bool {
	result, err := manifest.ValidateFile(schema, path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %s: %v\n", label, err)
		return false
	}
	if result.Valid {
		fmt.Fprintf(out, "  [ OK ] %s\n", label)
		return true
	}

	fmt.Fprintf(out, "  [FAIL] %s: %d validation issue(s):\n", label, len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(out, "    - %s\n", issue)
	}
	return false
}
