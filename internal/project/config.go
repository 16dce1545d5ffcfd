package project

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mytex-labs/mytex/internal/manifest"
	"go.yaml.in/yaml/v3"
)

const (
	// ConfigDir is the per-project metadata directory.
	ConfigDir = ".mytex"
	// ConfigFile is the project config file inside ConfigDir.
	ConfigFile = "config.yaml"
)

// Config is the per-project key/value store.
type Config struct {
	Name            string        `yaml:"name,omitempty"`
	Title           string        `yaml:"title,omitempty"`
	Date            string        `yaml:"date,omitempty"`
	Template        string        `yaml:"template,omitempty"`
	TemplateVersion string        `yaml:"template_version,omitempty"`
	Authors         []AuthorEntry `yaml:"authors,omitempty"`
	Keywords        []string      `yaml:"keywords,omitempty"`
	Meta            string        `yaml:"meta,omitempty"`
	Anonymous       bool          `yaml:"anonymous,omitempty"`
}

// AuthorEntry is one element of the authors list.
type AuthorEntry struct {
	Name       string           `yaml:"name"`
	Email      string           `yaml:"email,omitempty"`
	Comment    string           `yaml:"comment,omitempty"`
	Institutes []InstituteEntry `yaml:"institutes,omitempty"`
}

// InstituteEntry is written either as a bare name or as a mapping with
// name, city, state and country.
type InstituteEntry struct {
	Name    string `yaml:"name"`
	City    string `yaml:"city,omitempty"`
	State   string `yaml:"state,omitempty"`
	Country string `yaml:"country,omitempty"`
}

type instituteFields InstituteEntry

// UnmarshalYAML accepts a scalar name or a full mapping.
func (e *InstituteEntry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*e = InstituteEntry{Name: node.Value}
		return nil
	case yaml.MappingNode:
		var f instituteFields
		if err := node.Decode(&f); err != nil {
			return err
		}
		*e = InstituteEntry(f)
		return nil
	default:
		return fmt.Errorf("line %d: institute must be a name or a mapping", node.Line)
	}
}

// MarshalYAML writes name-only institutes as a bare string.
func (e InstituteEntry) MarshalYAML() (interface{}, error) {
	if e.City == "" && e.State == "" && e.Country == "" {
		return e.Name, nil
	}
	return instituteFields(e), nil
}

// ConfigPath returns the config file location for a project directory.
func ConfigPath(dir string) string {
	return filepath.Join(dir, ConfigDir, ConfigFile)
}

// Load reads and validates the config of the project at dir.
func Load(dir string) (*Config, error) {
	path := ConfigPath(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s is not a mytex project: %s not found", dir, filepath.Join(ConfigDir, ConfigFile))
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse validates raw config bytes and decodes them. path is only used in
// error messages.
func Parse(data []byte, path string) (*Config, error) {
	result, err := manifest.Validate(manifest.SchemaProject, data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("invalid project config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes cfg to the project at dir, creating .mytex/ when needed.
func Save(dir string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Join(dir, ConfigDir), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", ConfigDir, err)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(4)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding project config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding project config: %w", err)
	}

	path := ConfigPath(dir)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// AddAuthor appends an author after the existing ones.
func (c *Config) AddAuthor(a AuthorEntry) {
	c.Authors = append(c.Authors, a)
}

// AddKeywords appends keywords in order.
func (c *Config) AddKeywords(keywords ...string) {
	c.Keywords = append(c.Keywords, keywords...)
}
