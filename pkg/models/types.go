package models

// Answers holds the collected generator prompts: the project name and
// the three feature toggles.
type Answers struct {
	// ProjectName is the directory name and the package.json "name".
	ProjectName string
	// UseCors wires the cors middleware into the generated app.
	UseCors bool
	// UseErrorHandler generates the error middleware and error class.
	UseErrorHandler bool
	// UseEnvFile generates a .env file with the default port.
	UseEnvFile bool
}

// Dependency is one resolved npm package: its registry name and the
// latest published version at generation time.
type Dependency struct {
	Name    string
	Version string
}

// RenderedFile pairs a path relative to the project root with the
// complete file contents to write there.
type RenderedFile struct {
	Path    string
	Content string
}
