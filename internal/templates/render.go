package templates

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mytex-labs/mytex/internal/logging"
	"github.com/mytex-labs/mytex/internal/manifest"
)

// Result holds the outcome of rendering a template into a project.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// Substitute replaces every <key> in text with ctx[key]. Replacement is a
// single left-to-right pass: inserted values are never substituted again and
// placeholders without a key are left as they are.
func Substitute(text string, ctx map[string]string) string {
	if len(ctx) == 0 {
		return text
	}
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, "<"+k+">", ctx[k])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// Render writes every file of the template into outputDir, overwriting files
// of the same name. Files matching the template's render globs are
// substituted with ctx; the manifest itself is not copied.
func Render(t *Template, outputDir string, ctx map[string]string) (*Result, error) {
	for _, pattern := range t.Render {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("template %s: invalid render pattern %q", t.Name, pattern)
		}
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	result := &Result{OutputDir: outputDir}
	log := logging.L().With("template", t.Name)

	err := fs.WalkDir(os.DirFS(t.Dir), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == "." {
			return nil
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return os.MkdirAll(filepath.Join(outputDir, filepath.FromSlash(p)), 0755)
		}
		if p == manifest.FileName {
			return nil
		}

		src := filepath.Join(t.Dir, filepath.FromSlash(p))
		data, err := os.ReadFile(src)
		if err != nil {
			return fmt.Errorf("reading template file %s: %w", p, err)
		}

		if matchAny(t.Render, p) {
			out := Substitute(string(data), ctx)
			if unresolved := unresolvedKeys(out, ctx); len(unresolved) > 0 {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%s: no value for %s", p, strings.Join(unresolved, ", ")))
			}
			data = []byte(out)
			log.Debug("rendered file", "path", p)
		} else {
			log.Debug("copied file", "path", p)
		}

		dst := filepath.Join(outputDir, filepath.FromSlash(p))
		if err := os.WriteFile(dst, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", dst, err)
		}
		result.Files = append(result.Files, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("rendering template %s: %w", t.Name, err)
	}

	return result, nil
}

func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// Keys recognized in rendered files. Only these are reported as unresolved;
// other <...> text is ordinary document content.
var knownKeys = []string{"meta", "author", "title", "date", "keywords"}

func unresolvedKeys(text string, ctx map[string]string) []string {
	var missing []string
	for _, k := range knownKeys {
		if _, ok := ctx[k]; ok {
			continue
		}
		if strings.Contains(text, "<"+k+">") {
			missing = append(missing, k)
		}
	}
	return missing
}
