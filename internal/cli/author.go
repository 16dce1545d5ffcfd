package cli

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/mytex-labs/mytex/internal/project"
	"github.com/spf13/cobra"
)

var (
	authorName       string
	authorEmail      string
	authorComment    string
	authorInstitutes []string
)

func init() {
	authorAddCmd.Flags().StringVar(&authorName, "name", "", "Author name (required)")
	authorAddCmd.Flags().StringVar(&authorEmail, "email", "", "Author email")
	authorAddCmd.Flags().StringVar(&authorComment, "comment", "", "Footnote attached to the author")
	authorAddCmd.Flags().StringArrayVar(&authorInstitutes, "institute", nil, `Affiliation as "name[;city[;state[;country]]]" (repeatable, in order)`)
	_ = authorAddCmd.MarkFlagRequired("name")

	authorCmd.AddCommand(authorAddCmd)
	authorCmd.AddCommand(authorListCmd)
	rootCmd.AddCommand(authorCmd)
}

var authorCmd = &cobra.Command{
	Use:   "author",
	Short: "Manage the authors of a project",
}

var authorAddCmd = &cobra.Command{
	Use:   "add <project-dir>",
	Short: "Append an author to a project",
	Long: `Append an author after the existing ones in .mytex/config.yaml.

Example:
  mytex author add ./my-paper --name "Ada Lovelace" --email ada@london.ac.uk \
    --institute "University of London;London;;UK" --comment "Equal contribution"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		cfg, err := project.Load(dir)
		if err != nil {
			return err
		}

		entry := project.AuthorEntry{
			Name:    authorName,
			Email:   authorEmail,
			Comment: authorComment,
		}
		for _, raw := range authorInstitutes {
			inst, err := parseInstituteFlag(raw)
			if err != nil {
				return err
			}
			entry.Institutes = append(entry.Institutes, inst)
		}

		cfg.AddAuthor(entry)
		if err := project.Save(dir, cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added author %s (%d authors)\n", entry.Name, len(cfg.Authors))
		return nil
	},
}

var authorListCmd = &cobra.Command{
	Use:   "list [project-dir]",
	Short: "List authors with their affiliation numbers",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		cfg, err := project.Load(dir)
		if err != nil {
			return err
		}

		m := cfg.Manager()
		out := cmd.OutOrStdout()
		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "#\tNAME\tEMAIL\tINSTITUTES\tNOTE")
		for i, a := range m.Authors() {
			numbers := make([]string, 0, len(a.Indices()))
			for _, idx := range a.Indices() {
				numbers = append(numbers, strconv.Itoa(idx+1))
			}
			note := "-"
			if _, ok := a.Comment(); ok {
				note = "thanks"
				if ref, dup := a.CommentRef(); dup {
					note = fmt.Sprintf("same as note %d", ref+1)
				}
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i+1, a.Name(), a.Email(), strings.Join(numbers, ","), note)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if insts := m.Institutes(); len(insts) > 0 {
			fmt.Fprintln(out, "\nInstitutes:")
			for i, inst := range insts {
				fmt.Fprintf(out, "  %d. %s\n", i+1, inst.Name)
			}
		}
		return nil
	},
}

// parseInstituteFlag splits "name;city;state;country". Trailing parts are optional.
func parseInstituteFlag(raw string) (project.InstituteEntry, error) {
	parts := strings.Split(raw, ";")
	if len(parts) > 4 {
		return project.InstituteEntry{}, fmt.Errorf("invalid institute %q: expected at most 4 ';'-separated fields", raw)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	for len(parts) < 4 {
		parts = append(parts, "")
	}
	if parts[0] == "" {
		return project.InstituteEntry{}, fmt.Errorf("invalid institute %q: name is required", raw)
	}
	return project.InstituteEntry{Name: parts[0], City: parts[1], State: parts[2], Country: parts[3]}, nil
}
