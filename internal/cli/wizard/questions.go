package wizard

import "github.com/exgen-dev/exgen/internal/config"

// DefaultQuestions returns the standard set of questions for project
// generation. The questions follow this order:
// 1. Project name (required)
// 2. CORS support
// 3. Centralized error handler
// 4. Environment file
func DefaultQuestions(d config.Defaults) []Question {
	defaultProjectName := d.ProjectName
	if defaultProjectName == "" {
		defaultProjectName = config.DefaultProjectName
	}

	return []Question{
		{
			ID:          "project_name",
			Type:        QuestionTypeInput,
			Title:       "Enter the project name",
			Description: "Used as the directory name and the package.json name field.",
			Default:     defaultProjectName,
		},
		{
			ID:          "use_cors",
			Type:        QuestionTypeConfirm,
			Title:       "Enable CORS?",
			Description: "Registers the cors middleware and adds the cors package.",
			DefaultBool: d.CORS,
		},
		{
			ID:          "use_error_handler",
			Type:        QuestionTypeConfirm,
			Title:       "Add a centralized error handler?",
			Description: "Generates error middleware and an ErrorHandler class.",
			DefaultBool: d.ErrorHandler,
		},
		{
			ID:          "use_env_file",
			Type:        QuestionTypeConfirm,
			Title:       "Create a .env file?",
			Description: "Writes a starter .env and loads it with dotenv on startup.",
			DefaultBool: d.EnvFile,
		},
	}
}
