package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/mytex-labs/mytex/internal/config"
	"github.com/spf13/cobra"
)

var templatesJSON bool

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available templates",
	Long:  `List the templates installed in ~/.config/mytex/templates/.`,
	Args:  cobra.NoArgs,
	RunE:  runTemplates,
}

func init() {
	templatesCmd.Flags().BoolVar(&templatesJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(templatesCmd)
}

// templateEntry represents a template for display.
type templateEntry struct {
	Name        string `json:"name"`
	Format      string `json:"format"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Path        string `json:"path"`
}

func runTemplates(cmd *cobra.Command, args []string) error {
	available, err := loadTemplates()
	if err != nil {
		return err
	}

	if len(available) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No templates found in %s\n", config.TemplatesDir())
		return nil
	}

	entries := make([]templateEntry, len(available))
	for i, t := range available {
		entries[i] = templateEntry{
			Name:        t.Name,
			Format:      t.Format.String(),
			Version:     t.Version,
			Description: t.Description,
			Path:        t.Dir,
		}
	}

	if templatesJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tFORMAT\tVERSION\tDESCRIPTION")
	for _, e := range entries {
		version := e.Version
		if version == "" {
			version = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.Format, version, e.Description)
	}
	return w.Flush()
}
