// Package manifest parses template manifests (template.yaml) and validates
// both template manifests and project configs (.mytex/config.yaml) against
// the JSON Schemas embedded in this package. Shape errors, such as authors
// given as a string instead of a list, are reported with their path.
package manifest
