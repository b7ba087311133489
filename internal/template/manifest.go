package template

import (
	"fmt"
	"strings"

	"github.com/exgen-dev/exgen/internal/defs"
	"github.com/exgen-dev/exgen/pkg/models"
)

// manifestData feeds manifestTemplate.
type manifestData struct {
	Name            string
	Dependencies    string
	DevDependencies string
}

// PackageNames returns the npm packages implied by the answers: the
// runtime dependencies and the development dependencies, in manifest
// order. express is always first; nodemon backs the dev script.
func PackageNames(a models.Answers) (deps, devDeps []string) {
	deps = []string{"express"}
	if a.UseCors {
		deps = append(deps, "cors")
	}
	if a.UseEnvFile {
		deps = append(deps, "dotenv")
	}
	devDeps = []string{"nodemon"}
	return deps, devDeps
}

// RenderManifest renders package.json with the resolved versions. The
// manifest is only rendered once every lookup has succeeded, so a
// generated project never carries placeholder versions.
func RenderManifest(name string, deps, devDeps []models.Dependency) (string, error) {
	return render(defs.ManifestFile, manifestTemplate, manifestData{
		Name:            name,
		Dependencies:    dependencyObject(deps),
		DevDependencies: dependencyObject(devDeps),
	})
}

// dependencyObject renders a JSON object literal mapping package names
// to exact versions, indented to sit inside the manifest.
func dependencyObject(deps []models.Dependency) string {
	if len(deps) == 0 {
		return "{}"
	}
	pairs := make([]string, len(deps))
	for i, d := range deps {
		pairs[i] = fmt.Sprintf("%q: %q", d.Name, d.Version)
	}
	return "{\n    " + strings.Join(pairs, ",\n    ") + "\n  }"
}
