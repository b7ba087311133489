package defs

// Generated file names inside a new project root.
const (
	// EntryFile is the Express application entry point.
	EntryFile = "app.js"

	// ManifestFile is the npm package manifest.
	ManifestFile = "package.json"

	// EnvFile is the environment file holding the default port.
	EnvFile = ".env"

	// ErrorMiddlewareFile is the Express error-handling middleware.
	ErrorMiddlewareFile = "middlewares/error.js"

	// ErrorClassFile is the custom error class used by route handlers.
	ErrorClassFile = "utils/errorHandler.js"
)

// ConfigYAML is the exgen user configuration file name.
const ConfigYAML = "config.yaml"

// File system permissions for generated artifacts.
const (
	// DirPerm is the mode for created directories.
	DirPerm = 0o755

	// FilePerm is the mode for written files.
	FilePerm = 0o644
)
