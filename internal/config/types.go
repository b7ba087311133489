package config

// Config is the exgen user configuration, read from config.yaml.
type Config struct {
	// Registry overrides the npm registry base URL. Empty selects the
	// public registry.
	Registry string `yaml:"registry"`

	// Defaults seeds the wizard prompts and answers non-interactive runs.
	Defaults Defaults `yaml:"defaults"`
}

// Defaults holds the preset answers for the generator prompts.
type Defaults struct {
	ProjectName  string `yaml:"project_name"`
	CORS         bool   `yaml:"cors"`
	ErrorHandler bool   `yaml:"error_handler"`
	EnvFile      bool   `yaml:"env_file"`
}
