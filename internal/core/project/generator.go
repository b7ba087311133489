// Package project implements the core domain logic for the "exgen new"
// CLI command: it turns collected answers into a scaffolded Express
// project on disk, resolving dependency versions along the way.
package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/exgen-dev/exgen/internal/defs"
	"github.com/exgen-dev/exgen/internal/registry"
	"github.com/exgen-dev/exgen/internal/template"
	"github.com/exgen-dev/exgen/pkg/models"
)

// Options configures a generation run.
type Options struct {
	ProjectRoot string         // Absolute or relative path of the directory to create.
	Answers     models.Answers // Collected prompt answers.
}

// Result summarizes the outcome of a generation run.
type Result struct {
	ProjectRoot     string              // Cleaned path of the generated project.
	CreatedDirs     []string            // Subdirectories that were created.
	CreatedFiles    []string            // Files that were written, relative to the root.
	Dependencies    []models.Dependency // Resolved runtime dependencies.
	DevDependencies []models.Dependency // Resolved development dependencies.
	Warnings        []string            // Non-fatal warnings during generation.
}

// Generator runs the full scaffolding sequence for one project.
type Generator interface {
	// Generate creates the project described by opts. On error the
	// filesystem is left as-is: files already written stay in place
	// and the manifest is never written with unresolved versions.
	Generate(ctx context.Context, opts Options) (*Result, error)

	// SetReporter installs a progress reporter. A nil reporter is ignored.
	SetReporter(r Reporter)
}

// projectGenerator is the concrete implementation of Generator.
type projectGenerator struct {
	writer   Writer
	resolver registry.Resolver
	reporter Reporter
	logger   *slog.Logger
}

// NewGenerator creates a Generator from its collaborators. A nil
// logger discards output; progress is discarded until SetReporter.
func NewGenerator(writer Writer, resolver registry.Resolver, logger *slog.Logger) Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &projectGenerator{
		writer:   writer,
		resolver: resolver,
		reporter: NopReporter{},
		logger:   logger,
	}
}

// SetReporter installs a progress reporter.
func (g *projectGenerator) SetReporter(r Reporter) {
	if r != nil {
		g.reporter = r
	}
}

// Generate creates the project: layout first, then the feature files,
// the entry point, the resolved dependency versions, and the manifest
// last so it only ever exists with complete version information.
func (g *projectGenerator) Generate(ctx context.Context, opts Options) (*Result, error) {
	root := filepath.Clean(opts.ProjectRoot)
	answers := opts.Answers

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.logger.Info("generating project",
		"root", root,
		"cors", answers.UseCors,
		"errorHandler", answers.UseErrorHandler,
		"envFile", answers.UseEnvFile,
	)

	result := &Result{ProjectRoot: root}

	// Step 1: directory layout
	g.reporter.StepStart("Creating project layout")
	created, existed, err := g.writer.EnsureLayout(root)
	if err != nil {
		g.reporter.StepError(err)
		return nil, fmt.Errorf("create project layout: %w", err)
	}
	result.CreatedDirs = created
	if existed {
		warning := fmt.Sprintf("%s already exists: keeping its layout, existing files will be overwritten", root)
		result.Warnings = append(result.Warnings, warning)
		g.logger.Warn("project root already exists", "root", root)
	}
	g.reporter.StepComplete("Project layout ready")

	// Step 2: error handling files
	if answers.UseErrorHandler {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g.reporter.StepStart("Writing error handling files")
		files := []models.RenderedFile{
			{Path: defs.ErrorMiddlewareFile, Content: template.RenderErrorMiddleware()},
			{Path: defs.ErrorClassFile, Content: template.RenderErrorClass()},
		}
		for _, f := range files {
			if err := g.writer.Write(root, f); err != nil {
				g.reporter.StepError(err)
				return nil, fmt.Errorf("write error handling files: %w", err)
			}
			result.CreatedFiles = append(result.CreatedFiles, f.Path)
		}
		g.reporter.StepComplete("Error handling files written")
	}

	// Step 3: env file
	if answers.UseEnvFile {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g.reporter.StepStart("Writing " + defs.EnvFile)
		envFile := models.RenderedFile{Path: defs.EnvFile, Content: template.RenderEnv()}
		if err := g.writer.Write(root, envFile); err != nil {
			g.reporter.StepError(err)
			return nil, fmt.Errorf("write %s: %w", defs.EnvFile, err)
		}
		result.CreatedFiles = append(result.CreatedFiles, defs.EnvFile)
		g.reporter.StepComplete(defs.EnvFile + " written")
	}

	// Step 4: application entry point
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.reporter.StepStart("Writing " + defs.EntryFile)
	entry, err := template.RenderEntry(answers)
	if err != nil {
		g.reporter.StepError(err)
		return nil, fmt.Errorf("render %s: %w", defs.EntryFile, err)
	}
	if err := g.writer.Write(root, models.RenderedFile{Path: defs.EntryFile, Content: entry}); err != nil {
		g.reporter.StepError(err)
		return nil, fmt.Errorf("write %s: %w", defs.EntryFile, err)
	}
	result.CreatedFiles = append(result.CreatedFiles, defs.EntryFile)
	g.reporter.StepComplete(defs.EntryFile + " written")

	// Step 5: resolve package versions, runtime deps then dev deps
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	depNames, devDepNames := template.PackageNames(answers)
	g.reporter.StepStart(fmt.Sprintf("Resolving %d package versions", len(depNames)+len(devDepNames)))
	deps, err := registry.ResolveAll(ctx, g.resolver, depNames)
	if err != nil {
		g.reporter.StepError(err)
		return nil, fmt.Errorf("resolve dependencies: %w", err)
	}
	devDeps, err := registry.ResolveAll(ctx, g.resolver, devDepNames)
	if err != nil {
		g.reporter.StepError(err)
		return nil, fmt.Errorf("resolve dev dependencies: %w", err)
	}
	result.Dependencies = deps
	result.DevDependencies = devDeps
	g.reporter.StepComplete("Package versions resolved")

	// Step 6: manifest, written only after every lookup succeeded
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.reporter.StepStart("Writing " + defs.ManifestFile)
	manifest, err := template.RenderManifest(answers.ProjectName, deps, devDeps)
	if err != nil {
		g.reporter.StepError(err)
		return nil, fmt.Errorf("render %s: %w", defs.ManifestFile, err)
	}
	if err := g.writer.Write(root, models.RenderedFile{Path: defs.ManifestFile, Content: manifest}); err != nil {
		g.reporter.StepError(err)
		return nil, fmt.Errorf("write %s: %w", defs.ManifestFile, err)
	}
	result.CreatedFiles = append(result.CreatedFiles, defs.ManifestFile)
	g.reporter.StepComplete(defs.ManifestFile + " written")

	g.logger.Info("project generated",
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
	)

	return result, nil
}
