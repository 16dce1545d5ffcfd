package manifest

// TemplateManifest describes a document template directory.
type TemplateManifest struct {
	Name        string   `yaml:"name" json:"name"`
	Format      string   `yaml:"format" json:"format"`
	Version     string   `yaml:"version,omitempty" json:"version,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Render      []string `yaml:"render,omitempty" json:"render,omitempty"`
}

// Schema identifiers accepted by Validate.
const (
	SchemaTemplate = "template"
	SchemaProject  = "project"
)
