// Package cli defines the Cobra command tree for the mytex CLI. Each file
// registers one top-level command with the root command. Commands handle
// flags, prompts and output; project and template logic lives in the
// internal/project and internal/templates packages.
package cli
