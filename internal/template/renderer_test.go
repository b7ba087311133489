package template

import (
	"strings"
	"testing"

	"github.com/exgen-dev/exgen/internal/defs"
	"github.com/exgen-dev/exgen/pkg/models"
)

func TestRenderEntry(t *testing.T) {
	t.Run("all_features_enabled", func(t *testing.T) {
		got, err := RenderEntry(models.Answers{
			ProjectName:     "demo",
			UseCors:         true,
			UseErrorHandler: true,
			UseEnvFile:      true,
		})
		if err != nil {
			t.Fatalf("RenderEntry error: %v", err)
		}

		want := `const express = require("express");
const cors = require("cors");
const errorMiddleware = require("./middlewares/error");
const dotenv = require("dotenv");

dotenv.config();

const app = express();

const mode = process.env.NODE_ENV || "development";
exports.mode = mode;

app.use(express.json());
app.use(express.urlencoded({ extended: true }));
app.use(cors({ origin: "*", credentials: true }));

app.get("/", (req, res) => {
  res.send("Hello World!");
});

app.use((req, res) => {
  res.status(404).json({ success: false, message: "Route not found" });
});

app.use(errorMiddleware);

const PORT = process.env.PORT || 5000;
app.listen(PORT, () => {
  console.log("Server running in " + mode + " mode on port " + PORT);
});
`
		if got != want {
			t.Errorf("RenderEntry result mismatch:\ngot:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("no_features", func(t *testing.T) {
		got, err := RenderEntry(models.Answers{ProjectName: "bare"})
		if err != nil {
			t.Fatalf("RenderEntry error: %v", err)
		}

		want := `const express = require("express");

const app = express();

const mode = process.env.NODE_ENV || "development";
exports.mode = mode;

app.use(express.json());
app.use(express.urlencoded({ extended: true }));

app.get("/", (req, res) => {
  res.send("Hello World!");
});

app.use((req, res) => {
  res.status(404).json({ success: false, message: "Route not found" });
});

const PORT = process.env.PORT || 5000;
app.listen(PORT, () => {
  console.log("Server running in " + mode + " mode on port " + PORT);
});
`
		if got != want {
			t.Errorf("RenderEntry result mismatch:\ngot:\n%s\nwant:\n%s", got, want)
		}
		for _, absent := range []string{"cors", "dotenv", "errorMiddleware"} {
			if strings.Contains(got, absent) {
				t.Errorf("disabled feature %q leaked into output", absent)
			}
		}
	})

	t.Run("import_order_fixed", func(t *testing.T) {
		got, err := RenderEntry(models.Answers{
			UseCors:         true,
			UseErrorHandler: true,
			UseEnvFile:      true,
		})
		if err != nil {
			t.Fatalf("RenderEntry error: %v", err)
		}

		order := []string{
			`require("express")`,
			`require("cors")`,
			`require("./middlewares/error")`,
			`require("dotenv")`,
		}
		last := -1
		for _, imp := range order {
			idx := strings.Index(got, imp)
			if idx < 0 {
				t.Fatalf("missing import %q", imp)
			}
			if idx < last {
				t.Errorf("import %q out of order", imp)
			}
			last = idx
		}
	})

	t.Run("cors_registered_after_body_parsers", func(t *testing.T) {
		got, err := RenderEntry(models.Answers{UseCors: true})
		if err != nil {
			t.Fatalf("RenderEntry error: %v", err)
		}

		jsonIdx := strings.Index(got, "app.use(express.json());")
		urlIdx := strings.Index(got, "app.use(express.urlencoded({ extended: true }));")
		corsIdx := strings.Index(got, `app.use(cors({ origin: "*", credentials: true }));`)
		if jsonIdx < 0 || urlIdx < 0 || corsIdx < 0 {
			t.Fatal("missing middleware registration")
		}
		if !(jsonIdx < urlIdx && urlIdx < corsIdx) {
			t.Errorf("middleware order wrong: json=%d urlencoded=%d cors=%d", jsonIdx, urlIdx, corsIdx)
		}
	})

	t.Run("error_middleware_after_routes", func(t *testing.T) {
		got, err := RenderEntry(models.Answers{UseErrorHandler: true})
		if err != nil {
			t.Fatalf("RenderEntry error: %v", err)
		}

		notFoundIdx := strings.Index(got, `"Route not found"`)
		errIdx := strings.Index(got, "app.use(errorMiddleware);")
		listenIdx := strings.Index(got, "app.listen(PORT")
		if notFoundIdx < 0 || errIdx < 0 || listenIdx < 0 {
			t.Fatal("missing expected sections")
		}
		if !(notFoundIdx < errIdx && errIdx < listenIdx) {
			t.Errorf("error middleware position wrong: 404=%d err=%d listen=%d", notFoundIdx, errIdx, listenIdx)
		}
	})

	t.Run("env_loaded_before_app_creation", func(t *testing.T) {
		got, err := RenderEntry(models.Answers{UseEnvFile: true})
		if err != nil {
			t.Fatalf("RenderEntry error: %v", err)
		}

		cfgIdx := strings.Index(got, "dotenv.config();")
		appIdx := strings.Index(got, "const app = express();")
		if cfgIdx < 0 || appIdx < 0 {
			t.Fatal("missing expected sections")
		}
		if cfgIdx > appIdx {
			t.Error("dotenv.config() must run before the app is created")
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		a := models.Answers{ProjectName: "demo", UseCors: true, UseEnvFile: true}
		first, err := RenderEntry(a)
		if err != nil {
			t.Fatalf("RenderEntry error: %v", err)
		}
		second, err := RenderEntry(a)
		if err != nil {
			t.Fatalf("RenderEntry error: %v", err)
		}
		if first != second {
			t.Error("repeated renders differ")
		}
	})
}

func TestRenderErrorMiddleware(t *testing.T) {
	got := RenderErrorMiddleware()

	for _, want := range []string{
		"err.statusCode || 500",
		`err.message || "Internal Server Error"`,
		"success: false",
		`process.env.NODE_ENV !== "production"`,
		"module.exports = errorMiddleware;",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("error middleware missing %q", want)
		}
	}
}

func TestRenderErrorClass(t *testing.T) {
	got := RenderErrorClass()

	for _, want := range []string{
		"class ErrorHandler extends Error",
		`message = "something went wrong"`,
		"this.statusCode = statusCode;",
		"module.exports = ErrorHandler;",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("error class missing %q", want)
		}
	}
}

func TestRenderEnv(t *testing.T) {
	if got := RenderEnv(); got != "PORT=5000\n" {
		t.Errorf("RenderEnv = %q, want %q", got, "PORT=5000\n")
	}
}

func TestRenderAll(t *testing.T) {
	deps := []models.Dependency{{Name: "express", Version: "4.18.0"}}
	devDeps := []models.Dependency{{Name: "nodemon", Version: "3.0.0"}}

	tests := []struct {
		name      string
		answers   models.Answers
		wantPaths []string
	}{
		{
			name:    "all_features",
			answers: models.Answers{ProjectName: "demo", UseCors: true, UseErrorHandler: true, UseEnvFile: true},
			wantPaths: []string{
				defs.ErrorMiddlewareFile,
				defs.ErrorClassFile,
				defs.EnvFile,
				defs.EntryFile,
				defs.ManifestFile,
			},
		},
		{
			name:      "no_features",
			answers:   models.Answers{ProjectName: "bare"},
			wantPaths: []string{defs.EntryFile, defs.ManifestFile},
		},
		{
			name:      "env_only",
			answers:   models.Answers{ProjectName: "envy", UseEnvFile: true},
			wantPaths: []string{defs.EnvFile, defs.EntryFile, defs.ManifestFile},
		},
		{
			name:      "error_handler_only",
			answers:   models.Answers{ProjectName: "strict", UseErrorHandler: true},
			wantPaths: []string{defs.ErrorMiddlewareFile, defs.ErrorClassFile, defs.EntryFile, defs.ManifestFile},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := RenderAll(tt.answers, deps, devDeps)
			if err != nil {
				t.Fatalf("RenderAll error: %v", err)
			}
			if len(files) != len(tt.wantPaths) {
				t.Fatalf("len(files) = %d, want %d", len(files), len(tt.wantPaths))
			}
			for i, want := range tt.wantPaths {
				if files[i].Path != want {
					t.Errorf("files[%d].Path = %q, want %q", i, files[i].Path, want)
				}
				if files[i].Content == "" {
					t.Errorf("files[%d] (%s) has empty content", i, want)
				}
			}
		})
	}
}
