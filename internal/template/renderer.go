// Package template renders the files of a generated Express project.
//
// All templates are compiled into the binary and every rendering
// function is pure: the same answers and dependency versions always
// produce byte-identical output.
package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/exgen-dev/exgen/internal/defs"
	"github.com/exgen-dev/exgen/pkg/models"
)

// templateFuncMap provides custom functions available in all templates.
var templateFuncMap = template.FuncMap{
	// jsonEscape escapes a string for safe embedding in JSON values.
	// It handles backslashes, quotes, and control characters by leveraging
	// encoding/json.Marshal, then stripping the surrounding quotes.
	"jsonEscape": func(s string) string {
		b, err := json.Marshal(s)
		if err != nil {
			return s
		}
		return string(b[1 : len(b)-1])
	},
}

// unexpandedTokenPattern detects leftover dynamic tokens in rendered output.
// Matches ${VAR}, {{VAR}}, and $VAR patterns.
var unexpandedTokenPattern = regexp.MustCompile(`\$\{[A-Za-z_][A-Za-z0-9_]*\}|\{\{\.?[A-Za-z_][A-Za-z0-9_.]*\}\}|\$[A-Z_][A-Z0-9_]*`)

// render parses and executes one named template with strict mode
// (missingkey=error) and rejects output that still carries tokens.
func render(name, text string, data any) (string, error) {
	tmpl, err := template.New(name).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(text)
	if err != nil {
		return "", fmt.Errorf("template parse %q: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	if loc := unexpandedTokenPattern.Find(buf.Bytes()); loc != nil {
		return "", fmt.Errorf("%w: found %q in %s", ErrUnexpandedToken, string(loc), name)
	}
	return buf.String(), nil
}

// entryData feeds entryTemplate.
type entryData struct {
	Requires        string
	Middleware      string
	UseEnvFile      bool
	UseErrorHandler bool
}

// RenderEntry renders app.js for the given answers. Import order is
// fixed: express, then cors, then the error middleware, then dotenv.
// Middleware order is fixed as well: the JSON and urlencoded body
// parsers first, then cors. The error middleware is registered after
// the routes.
func RenderEntry(a models.Answers) (string, error) {
	requires := []string{`const express = require("express");`}
	if a.UseCors {
		requires = append(requires, `const cors = require("cors");`)
	}
	if a.UseErrorHandler {
		requires = append(requires, `const errorMiddleware = require("./middlewares/error");`)
	}
	if a.UseEnvFile {
		requires = append(requires, `const dotenv = require("dotenv");`)
	}

	middleware := []string{
		`app.use(express.json());`,
		`app.use(express.urlencoded({ extended: true }));`,
	}
	if a.UseCors {
		middleware = append(middleware, `app.use(cors({ origin: "*", credentials: true }));`)
	}

	return render(defs.EntryFile, entryTemplate, entryData{
		Requires:        strings.Join(requires, "\n"),
		Middleware:      strings.Join(middleware, "\n"),
		UseEnvFile:      a.UseEnvFile,
		UseErrorHandler: a.UseErrorHandler,
	})
}

// RenderErrorMiddleware returns middlewares/error.js.
func RenderErrorMiddleware() string {
	return errorMiddlewareContent
}

// RenderErrorClass returns utils/errorHandler.js.
func RenderErrorClass() string {
	return errorClassContent
}

// RenderEnv returns the .env file contents.
func RenderEnv() string {
	return envContent
}

// RenderAll renders every file the answers call for, in write order:
// the error handling files, the env file, the entry point, and the
// manifest last.
func RenderAll(a models.Answers, deps, devDeps []models.Dependency) ([]models.RenderedFile, error) {
	var files []models.RenderedFile

	if a.UseErrorHandler {
		files = append(files,
			models.RenderedFile{Path: defs.ErrorMiddlewareFile, Content: RenderErrorMiddleware()},
			models.RenderedFile{Path: defs.ErrorClassFile, Content: RenderErrorClass()},
		)
	}
	if a.UseEnvFile {
		files = append(files, models.RenderedFile{Path: defs.EnvFile, Content: RenderEnv()})
	}

	entry, err := RenderEntry(a)
	if err != nil {
		return nil, err
	}
	files = append(files, models.RenderedFile{Path: defs.EntryFile, Content: entry})

	manifest, err := RenderManifest(a.ProjectName, deps, devDeps)
	if err != nil {
		return nil, err
	}
	files = append(files, models.RenderedFile{Path: defs.ManifestFile, Content: manifest})

	return files, nil
}
