package cli

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/exgen-dev/exgen/internal/cli/wizard"
	"github.com/exgen-dev/exgen/internal/config"
	"github.com/exgen-dev/exgen/internal/core/project"
	"github.com/exgen-dev/exgen/internal/registry"
	"github.com/exgen-dev/exgen/internal/ui"
	"github.com/exgen-dev/exgen/pkg/models"
)

var newCmd = &cobra.Command{
	Use:   "new [project-name]",
	Short: "Generate a new Express.js project",
	Long: `Generate a new Express.js server project.

Usage patterns:
  exgen new my-api    Ask the remaining questions, then scaffold ./my-api/
  exgen new           Ask all questions, including the project name

Examples:
  exgen new my-api --non-interactive       Scaffold ./my-api/ with defaults
  exgen new --registry http://npm.corp     Resolve versions from a mirror`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: validateNewFlags,
	RunE:    runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().String("name", "", "Project name (default: asked interactively)")
	newCmd.Flags().String("root", "", "Parent directory for the project (default: current directory)")
	newCmd.Flags().Bool("cors", config.DefaultCORS, "Enable CORS support")
	newCmd.Flags().Bool("error-handler", config.DefaultErrorHandler, "Add a centralized error handler")
	newCmd.Flags().Bool("env-file", config.DefaultEnvFile, "Create a .env file")
	newCmd.Flags().String("registry", "", "npm registry base URL (default: https://registry.npmjs.org)")
	newCmd.Flags().Bool("non-interactive", false, "Skip the wizard; use flags and defaults")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// validateNewFlags validates flag values before execution.
func validateNewFlags(cmd *cobra.Command, _ []string) error {
	reg := getStringFlag(cmd, "registry")
	if reg != "" {
		u, err := url.Parse(reg)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid --registry value %q: must be an http(s) URL", reg)
		}
	}
	return nil
}

// runNew executes the project generation workflow.
func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadDefault()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Flags and the positional argument override config file defaults.
	defaults := cfg.Defaults
	if name := getStringFlag(cmd, "name"); name != "" {
		defaults.ProjectName = name
	}
	if len(args) > 0 && args[0] != "" {
		defaults.ProjectName = args[0]
	}
	if cmd.Flags().Changed("cors") {
		defaults.CORS = getBoolFlag(cmd, "cors")
	}
	if cmd.Flags().Changed("error-handler") {
		defaults.ErrorHandler = getBoolFlag(cmd, "error-handler")
	}
	if cmd.Flags().Changed("env-file") {
		defaults.EnvFile = getBoolFlag(cmd, "env-file")
	}

	hm := ui.NewHeadlessManager()
	if getBoolFlag(cmd, "non-interactive") {
		hm.ForceHeadless(true)
	}

	var answers *models.Answers
	if hm.IsHeadless() {
		answers = &models.Answers{
			ProjectName:     defaults.ProjectName,
			UseCors:         defaults.CORS,
			UseErrorHandler: defaults.ErrorHandler,
			UseEnvFile:      defaults.EnvFile,
		}
		if answers.ProjectName == "" {
			answers.ProjectName = config.DefaultProjectName
		}
	} else {
		printWelcome(cmd.OutOrStdout())

		answers, err = wizard.Run(wizard.DefaultQuestions(defaults))
		if err != nil {
			return fmt.Errorf("collect answers: %w", err)
		}
	}

	// Terminals may deliver composed or decomposed Unicode; normalize so
	// the directory name and package.json agree on one form.
	answers.ProjectName = norm.NFC.String(answers.ProjectName)

	parent := getStringFlag(cmd, "root")
	if parent == "" {
		parent, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
	}
	projectRoot, err := filepath.Abs(filepath.Join(parent, answers.ProjectName))
	if err != nil {
		return fmt.Errorf("resolve project path %q: %w", answers.ProjectName, err)
	}

	registryURL := getStringFlag(cmd, "registry")
	if registryURL == "" {
		registryURL = cfg.Registry
	}

	resolver := registry.NewResolver(registryURL, nil)
	writer := project.NewWriter(nil)
	gen := project.NewGenerator(writer, resolver, nil)

	spin := ui.NewProgress(ui.NewTheme(), hm).Spinner("Generating project")
	gen.SetReporter(&progressReporter{spinner: spin})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := gen.Generate(ctx, project.Options{
		ProjectRoot: projectRoot,
		Answers:     *answers,
	})
	spin.Stop()
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	pairs := []kvPair{
		{"Project", answers.ProjectName},
		{"Location", result.ProjectRoot},
		{"Directories", fmt.Sprintf("%d created", len(result.CreatedDirs))},
		{"Files", fmt.Sprintf("%d created", len(result.CreatedFiles))},
	}
	for _, d := range result.Dependencies {
		pairs = append(pairs, kvPair{d.Name, d.Version})
	}
	for _, d := range result.DevDependencies {
		pairs = append(pairs, kvPair{d.Name + " (dev)", d.Version})
	}

	details := []string{renderKeyValueLines(pairs)}
	for _, w := range result.Warnings {
		details = append(details, cliWarn.Render("Warning: "+w))
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout())
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccessCard("Express project created", details...))
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderNextSteps(answers.ProjectName))

	return nil
}

// progressReporter adapts generator step events to spinner updates.
type progressReporter struct {
	spinner ui.Spinner
}

func (r *progressReporter) StepStart(title string) {
	r.spinner.SetTitle(title)
}

func (r *progressReporter) StepComplete(string) {}

func (r *progressReporter) StepError(error) {
	r.spinner.Stop()
}
