package template

import "errors"

// Sentinel errors for template rendering.
var (
	// ErrMissingTemplateKey indicates a template referenced a key absent
	// from its data (strict mode).
	ErrMissingTemplateKey = errors.New("missing template key")

	// ErrUnexpandedToken indicates rendered output still contains a
	// dynamic token such as {{.Name}} or ${VAR}.
	ErrUnexpandedToken = errors.New("unexpanded token in rendered output")
)
