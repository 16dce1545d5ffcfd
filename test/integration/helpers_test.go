//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mytex-labs/mytex/internal/config"
	"github.com/mytex-labs/mytex/internal/templates"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir      string // MYTEX_HOME, contains config.yaml and templates/
	TemplatesDir string
	WorkDir      string // parent of the projects created by a test
}

// setupTestEnv points MYTEX_HOME at a temp directory, reloads settings and
// installs the builtin templates there.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
	}
	t.Setenv("MYTEX_HOME", env.HomeDir)
	config.Load()

	env.TemplatesDir = config.TemplatesDir()
	if _, err := templates.Install(env.TemplatesDir); err != nil {
		t.Fatalf("installing templates: %v", err)
	}
	return env
}

// findTemplate discovers the installed templates and returns the named one.
func findTemplate(t *testing.T, env *testEnv, name string) *templates.Template {
	t.Helper()
	all, err := templates.Discover(env.TemplatesDir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	tmpl, err := templates.Find(all, name)
	if err != nil {
		t.Fatalf("Find(%s): %v", name, err)
	}
	return tmpl
}

// writeFile creates a file with the given content, creating parent dirs.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

// assertFileNotContains fails if the file contains substr.
func assertFileNotContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if strings.Contains(string(data), substr) {
		t.Errorf("file %s unexpectedly contains %q.\nContents:\n%s", path, substr, string(data))
	}
}
