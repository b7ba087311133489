// Package config loads the exgen user configuration. It reads a single
// YAML file, applies defaults for everything absent, and validates the
// result before any other component sees it.
package config

import "errors"

// Sentinel errors for configuration operations.
var (
	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrInvalidYAML indicates invalid YAML syntax in a configuration file.
	ErrInvalidYAML = errors.New("config: invalid YAML syntax")

	// ErrConfigTooLarge indicates the configuration file exceeds the size cap.
	ErrConfigTooLarge = errors.New("config: file exceeds size limit")

	// ErrInvalidRegistry indicates the registry value is not an http(s) URL.
	ErrInvalidRegistry = errors.New("config: invalid registry URL")

	// ErrDynamicToken indicates an unexpanded dynamic token was detected
	// in a config value.
	ErrDynamicToken = errors.New("config: unexpanded dynamic token detected")
)
