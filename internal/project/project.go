package project

import (
	"fmt"
	"os"

	"github.com/mytex-labs/mytex/internal/logging"
	"github.com/mytex-labs/mytex/internal/templates"
)

// Create renders tmpl into the new directory dir and records cfg there.
// dir must not exist. A failed create leaves no directory behind.
func Create(dir string, cfg *Config, tmpl *templates.Template) (*templates.Result, error) {
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("project already exists: %s", dir)
	}

	cfg.Template = tmpl.Name
	cfg.TemplateVersion = tmpl.Version

	ctx, err := cfg.Context(tmpl.Format)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating project directory: %w", err)
	}

	result, err := templates.Render(tmpl, dir, ctx)
	if err != nil {
		os.RemoveAll(dir)
		return nil, err
	}
	if err := Save(dir, cfg); err != nil {
		os.RemoveAll(dir)
		return nil, err
	}

	logging.L().Debug("created project", "dir", dir, "template", tmpl.Name, "files", len(result.Files))
	return result, nil
}

// Rerender loads the project at dir and renders tmpl over it. When tmpl
// differs from the recorded template the config is updated to point at it.
// A warning is added when the template is newer than the one last used.
func Rerender(dir string, tmpl *templates.Template) (*templates.Result, error) {
	cfg, err := Load(dir)
	if err != nil {
		return nil, err
	}

	var warnings []string
	if cfg.Template == tmpl.Name {
		newer, err := tmpl.IsNewer(cfg.TemplateVersion)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("could not compare template versions: %v", err))
		} else if newer {
			warnings = append(warnings, fmt.Sprintf("template %s updated from %s to %s", tmpl.Name, cfg.TemplateVersion, tmpl.Version))
		}
	}

	ctx, err := cfg.Context(tmpl.Format)
	if err != nil {
		return nil, err
	}

	result, err := templates.Render(tmpl, dir, ctx)
	if err != nil {
		return nil, err
	}
	result.Warnings = append(warnings, result.Warnings...)

	if cfg.Template != tmpl.Name || cfg.TemplateVersion != tmpl.Version {
		cfg.Template = tmpl.Name
		cfg.TemplateVersion = tmpl.Version
		if err := Save(dir, cfg); err != nil {
			return nil, err
		}
	}

	logging.L().Debug("re-rendered project", "dir", dir, "template", tmpl.Name)
	return result, nil
}

// Refresh re-renders the project at dir with the template its config names
// at the time of the call, resolved through find.
func Refresh(dir string, find func(name string) (*templates.Template, error)) (*templates.Result, error) {
	cfg, err := Load(dir)
	if err != nil {
		return nil, err
	}
	if cfg.Template == "" {
		return nil, fmt.Errorf("project %s has no template", dir)
	}
	tmpl, err := find(cfg.Template)
	if err != nil {
		return nil, err
	}
	return Rerender(dir, tmpl)
}
