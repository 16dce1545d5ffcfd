// Package project owns a paper project on disk: the .mytex/config.yaml
// document, the render context built from it, creation and re-rendering
// from a template, interactive setup, and watch mode.
package project
