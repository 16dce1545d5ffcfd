package templates

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/mytex-labs/mytex/internal/logging"
)

// Install copies the builtin template sets into dir when dir does not exist
// yet. An existing directory is left untouched so user edits survive.
// It reports whether anything was installed.
func Install(dir string) (bool, error) {
	if _, err := os.Stat(dir); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking templates directory %s: %w", dir, err)
	}

	err := fs.WalkDir(builtinFS, builtinRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := p[len(builtinRoot):]
		dst := filepath.Join(dir, filepath.FromSlash(rel))
		if d.IsDir() {
			return os.MkdirAll(dst, 0755)
		}
		data, err := fs.ReadFile(builtinFS, p)
		if err != nil {
			return err
		}
		return os.WriteFile(dst, data, 0644)
	})
	if err != nil {
		return false, fmt.Errorf("installing builtin templates to %s: %w", dir, err)
	}

	logging.L().Debug("installed builtin templates", "dir", dir)
	return true, nil
}

// BuiltinNames returns the names of the template sets shipped with the binary.
func BuiltinNames() ([]string, error) {
	entries, err := fs.ReadDir(builtinFS, builtinRoot)
	if err != nil {
		return nil, fmt.Errorf("reading builtin templates: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, path.Base(e.Name()))
		}
	}
	return names, nil
}
