package manifest

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// FileName is the manifest file expected at the root of a template directory.
const FileName = "template.yaml"

// ParseTemplate reads a template manifest, validates it, and returns the typed struct.
func ParseTemplate(path string) (*TemplateManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(SchemaTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("invalid template manifest %s: %w", path, err)
	}

	var m TemplateManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
