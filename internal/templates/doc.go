// Package templates installs, discovers, and renders document templates. A
// template is a directory holding a template.yaml manifest and the files of
// a paper project; files matching the manifest's render globs get their
// <key> placeholders substituted and everything else is copied as-is.
package templates
