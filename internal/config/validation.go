package config

import (
	"fmt"
	"net/url"
	"regexp"
)

// Dynamic token patterns that must not appear in configuration values.
// These indicate unexpanded template variables.
var dynamicTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\{[^}]+\}`),        // ${VAR}
	regexp.MustCompile(`\{\{[^}]+\}\}`),      // {{VAR}}
	regexp.MustCompile(`\$[A-Z_][A-Z0-9_]*`), // $VAR
}

// Validate checks the configuration for correctness.
func Validate(cfg *Config) error {
	if err := validateRegistry(cfg.Registry); err != nil {
		return err
	}
	return validateDynamicTokens(cfg)
}

// validateRegistry checks that a non-empty registry value is an
// http(s) URL with a host. Empty means the built-in default.
func validateRegistry(registry string) error {
	if registry == "" {
		return nil
	}
	u, err := url.Parse(registry)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("registry %q: %w", registry, ErrInvalidRegistry)
	}
	return nil
}

// validateDynamicTokens rejects config values that still carry
// unexpanded tokens such as ${VAR} or {{VAR}}.
func validateDynamicTokens(cfg *Config) error {
	fields := map[string]string{
		"registry":              cfg.Registry,
		"defaults.project_name": cfg.Defaults.ProjectName,
	}
	for field, value := range fields {
		for _, pattern := range dynamicTokenPatterns {
			if token := pattern.FindString(value); token != "" {
				return fmt.Errorf("field %s contains %q: %w", field, token, ErrDynamicToken)
			}
		}
	}
	return nil
}
