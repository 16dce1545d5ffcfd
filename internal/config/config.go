package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mytex-labs/mytex/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName     = "config"
	fileType     = "yaml"
	templatesDir = "templates"
)

// Keys recognized by the CLI. Any other key can still be stored.
const (
	KeyAuthorName      = "author.name"
	KeyAuthorEmail     = "author.email"
	KeyAuthorInstitute = "author.institute"
	KeyTemplatesDir    = "templates_dir"
)

var v = viper.New()

// Dir returns the settings directory. MYTEX_HOME takes precedence over
// ~/.config/mytex.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the settings file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// TemplatesDir returns where document templates are installed. The
// templates_dir setting overrides the default <Dir>/templates.
func TemplatesDir() string {
	if dir := v.GetString(KeyTemplatesDir); dir != "" {
		return dir
	}
	return filepath.Join(Dir(), templatesDir)
}

// EnsureDir creates the settings directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load (re)initializes settings from the config file and environment.
func Load() {
	v = viper.New()
	v.SetConfigFile(FilePath())
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = v.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return v.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	v.Set(key, value)

	configFile := FilePath()
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// DefaultAuthor holds the author seeded into new projects.
type DefaultAuthor struct {
	Name      string
	Email     string
	Institute string
}

// GetDefaultAuthor returns the configured default author. ok is false when
// no author name is configured.
func GetDefaultAuthor() (author DefaultAuthor, ok bool) {
	author = DefaultAuthor{
		Name:      v.GetString(KeyAuthorName),
		Email:     v.GetString(KeyAuthorEmail),
		Institute: v.GetString(KeyAuthorInstitute),
	}
	return author, author.Name != ""
}
