package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/mytex-labs/mytex/internal/manifest"
	"github.com/mytex-labs/mytex/internal/metadata"
)

// DefaultRender is used when a manifest lists no render globs.
var DefaultRender = []string{"**/*.tex"}

// Template is a discovered template directory.
type Template struct {
	Name        string
	Dir         string
	Format      metadata.Format
	Version     string
	Description string
	Render      []string
}

// Discover returns every template directory under root, sorted by name.
// Directories without a manifest are still templates: their format is taken
// from the directory name when it names a known format, blog otherwise.
func Discover(root string) ([]*Template, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading templates directory %s: %w", root, err)
	}

	var result []*Template
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		t, err := Load(filepath.Join(root, e.Name()))
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// Load reads a single template directory.
func Load(dir string) (*Template, error) {
	name := filepath.Base(dir)
	t := &Template{
		Name:   name,
		Dir:    dir,
		Format: metadata.FormatBlog,
		Render: DefaultRender,
	}

	manifestPath := filepath.Join(dir, manifest.FileName)
	if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
		if f, err := metadata.ParseFormat(name); err == nil {
			t.Format = f
		}
		return t, nil
	}

	m, err := manifest.ParseTemplate(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("loading template %s: %w", name, err)
	}
	f, err := metadata.ParseFormat(m.Format)
	if err != nil {
		return nil, fmt.Errorf("loading template %s: %w", name, err)
	}
	t.Format = f
	t.Version = m.Version
	t.Description = m.Description
	if len(m.Render) > 0 {
		t.Render = m.Render
	}
	return t, nil
}

// Find returns the template with the given name.
func Find(templates []*Template, name string) (*Template, error) {
	for _, t := range templates {
		if t.Name == name {
			return t, nil
		}
	}
	names := make([]string, len(templates))
	for i, t := range templates {
		names[i] = t.Name
	}
	return nil, fmt.Errorf("invalid template name %q (available: %s)", name, strings.Join(names, ", "))
}

// IsNewer reports whether the template's version is newer than recorded.
// An empty version on either side is never newer.
func (t *Template) IsNewer(recorded string) (bool, error) {
	if t.Version == "" || recorded == "" {
		return false, nil
	}
	current, err := parseSemver(t.Version)
	if err != nil {
		return false, fmt.Errorf("parsing template version %q: %w", t.Version, err)
	}
	prev, err := parseSemver(recorded)
	if err != nil {
		return false, fmt.Errorf("parsing recorded version %q: %w", recorded, err)
	}
	return current.GreaterThan(prev), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
