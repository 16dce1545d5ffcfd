// Package config manages user-level settings stored at ~/.config/mytex/config.yaml.
// It resolves the settings and templates directories and reads and writes keys
// such as the default author seeded into every new project.
package config
