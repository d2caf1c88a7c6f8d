// Package descriptor loads utility-CSS build descriptors (the data behind a
// tailwind.config file) into typed, validated values.
//
// A descriptor declares which source files the external build tool scans for
// class names, the theme extension it layers on top of its default design
// tokens, and the plugins it runs. This package only reads and validates that
// data: globs are not resolved and nothing is merged with a base theme.
package descriptor
