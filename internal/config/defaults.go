package config

// Default prompt answers applied when neither flags nor config.yaml
// say otherwise.
const (
	DefaultProjectName = "my-app"

	DefaultCORS         = true
	DefaultErrorHandler = true
	DefaultEnvFile      = true
)

// NewDefaultConfig returns a Config populated with the built-in
// defaults. Loaded files overlay their values on top of this.
func NewDefaultConfig() *Config {
	return &Config{
		Registry: "",
		Defaults: Defaults{
			ProjectName:  DefaultProjectName,
			CORS:         DefaultCORS,
			ErrorHandler: DefaultErrorHandler,
			EnvFile:      DefaultEnvFile,
		},
	}
}
