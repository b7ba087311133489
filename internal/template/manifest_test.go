package template

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/exgen-dev/exgen/pkg/models"
)

func TestPackageNames(t *testing.T) {
	tests := []struct {
		name        string
		answers     models.Answers
		wantDeps    []string
		wantDevDeps []string
	}{
		{
			name:        "all_features",
			answers:     models.Answers{UseCors: true, UseErrorHandler: true, UseEnvFile: true},
			wantDeps:    []string{"express", "cors", "dotenv"},
			wantDevDeps: []string{"nodemon"},
		},
		{
			name:        "no_features",
			answers:     models.Answers{},
			wantDeps:    []string{"express"},
			wantDevDeps: []string{"nodemon"},
		},
		{
			name:        "cors_only",
			answers:     models.Answers{UseCors: true},
			wantDeps:    []string{"express", "cors"},
			wantDevDeps: []string{"nodemon"},
		},
		{
			name:        "env_only",
			answers:     models.Answers{UseEnvFile: true},
			wantDeps:    []string{"express", "dotenv"},
			wantDevDeps: []string{"nodemon"},
		},
		{
			// The error handler files need no package of their own.
			name:        "error_handler_only",
			answers:     models.Answers{UseErrorHandler: true},
			wantDeps:    []string{"express"},
			wantDevDeps: []string{"nodemon"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, devDeps := PackageNames(tt.answers)
			if !reflect.DeepEqual(deps, tt.wantDeps) {
				t.Errorf("deps = %v, want %v", deps, tt.wantDeps)
			}
			if !reflect.DeepEqual(devDeps, tt.wantDevDeps) {
				t.Errorf("devDeps = %v, want %v", devDeps, tt.wantDevDeps)
			}
		})
	}
}

func TestRenderManifest(t *testing.T) {
	t.Run("full_manifest", func(t *testing.T) {
		got, err := RenderManifest("demo",
			[]models.Dependency{
				{Name: "express", Version: "4.18.0"},
				{Name: "cors", Version: "2.8.5"},
				{Name: "dotenv", Version: "16.0.0"},
			},
			[]models.Dependency{
				{Name: "nodemon", Version: "3.0.0"},
			},
		)
		if err != nil {
			t.Fatalf("RenderManifest error: %v", err)
		}

		want := `{
  "name": "demo",
  "version": "1.0.0",
  "scripts": {
    "start": "NODE_ENV=production node app.js",
    "dev": "nodemon app.js"
  },
  "dependencies": {
    "express": "4.18.0",
    "cors": "2.8.5",
    "dotenv": "16.0.0"
  },
  "devDependencies": {
    "nodemon": "3.0.0"
  }
}
`
		if got != want {
			t.Errorf("RenderManifest result mismatch:\ngot:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("valid_json", func(t *testing.T) {
		got, err := RenderManifest("my-app",
			[]models.Dependency{{Name: "express", Version: "4.18.0"}},
			[]models.Dependency{{Name: "nodemon", Version: "3.0.0"}},
		)
		if err != nil {
			t.Fatalf("RenderManifest error: %v", err)
		}

		var manifest struct {
			Name            string            `json:"name"`
			Version         string            `json:"version"`
			Scripts         map[string]string `json:"scripts"`
			Dependencies    map[string]string `json:"dependencies"`
			DevDependencies map[string]string `json:"devDependencies"`
		}
		if err := json.Unmarshal([]byte(got), &manifest); err != nil {
			t.Fatalf("manifest is not valid JSON: %v\n%s", err, got)
		}
		if manifest.Name != "my-app" {
			t.Errorf("name = %q, want %q", manifest.Name, "my-app")
		}
		if manifest.Version != "1.0.0" {
			t.Errorf("version = %q, want %q", manifest.Version, "1.0.0")
		}
		if manifest.Scripts["start"] != "NODE_ENV=production node app.js" {
			t.Errorf("start script = %q", manifest.Scripts["start"])
		}
		if manifest.Scripts["dev"] != "nodemon app.js" {
			t.Errorf("dev script = %q", manifest.Scripts["dev"])
		}
		if manifest.Dependencies["express"] != "4.18.0" {
			t.Errorf("express version = %q", manifest.Dependencies["express"])
		}
		if manifest.DevDependencies["nodemon"] != "3.0.0" {
			t.Errorf("nodemon version = %q", manifest.DevDependencies["nodemon"])
		}
	})

	t.Run("empty_dependencies_render_as_empty_object", func(t *testing.T) {
		got, err := RenderManifest("bare", nil, nil)
		if err != nil {
			t.Fatalf("RenderManifest error: %v", err)
		}

		var manifest struct {
			Dependencies    map[string]string `json:"dependencies"`
			DevDependencies map[string]string `json:"devDependencies"`
		}
		if err := json.Unmarshal([]byte(got), &manifest); err != nil {
			t.Fatalf("manifest is not valid JSON: %v\n%s", err, got)
		}
		if len(manifest.Dependencies) != 0 {
			t.Errorf("dependencies = %v, want empty", manifest.Dependencies)
		}
		if len(manifest.DevDependencies) != 0 {
			t.Errorf("devDependencies = %v, want empty", manifest.DevDependencies)
		}
	})

	t.Run("escapes_project_name", func(t *testing.T) {
		got, err := RenderManifest(`my"app`,
			[]models.Dependency{{Name: "express", Version: "4.18.0"}}, nil)
		if err != nil {
			t.Fatalf("RenderManifest error: %v", err)
		}

		var manifest struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal([]byte(got), &manifest); err != nil {
			t.Fatalf("manifest is not valid JSON: %v\n%s", err, got)
		}
		if manifest.Name != `my"app` {
			t.Errorf("name = %q, want %q", manifest.Name, `my"app`)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		deps := []models.Dependency{{Name: "express", Version: "4.18.0"}}
		devDeps := []models.Dependency{{Name: "nodemon", Version: "3.0.0"}}

		first, err := RenderManifest("demo", deps, devDeps)
		if err != nil {
			t.Fatalf("RenderManifest error: %v", err)
		}
		second, err := RenderManifest("demo", deps, devDeps)
		if err != nil {
			t.Fatalf("RenderManifest error: %v", err)
		}
		if first != second {
			t.Error("repeated renders differ")
		}
	})
}
