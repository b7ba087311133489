package project

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/exgen-dev/exgen/internal/defs"
	"github.com/exgen-dev/exgen/pkg/models"
)

// projectDirs lists the subdirectories created inside a new project root.
var projectDirs = []string{
	"routes",
	"controllers",
	"utils",
	"middlewares",
	"lib",
	"tests",
}

// Writer owns all filesystem access during generation.
type Writer interface {
	// EnsureLayout creates the project root and its subdirectories.
	// When the root already exists nothing is created and existed
	// reports true; missing subdirectories are not recreated.
	EnsureLayout(root string) (created []string, existed bool, err error)

	// Write places one rendered file inside the project root,
	// overwriting any existing file. Parent directories are never
	// created here, so a missing subdirectory surfaces as an error.
	Write(root string, file models.RenderedFile) error
}

// diskWriter is the concrete Writer backed by the local filesystem.
type diskWriter struct {
	logger *slog.Logger
}

// NewWriter creates a Writer. A nil logger discards output.
func NewWriter(logger *slog.Logger) Writer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &diskWriter{logger: logger}
}

// EnsureLayout creates the full directory tree for a new project.
func (w *diskWriter) EnsureLayout(root string) ([]string, bool, error) {
	root = filepath.Clean(root)

	if _, err := os.Stat(root); err == nil {
		w.logger.Info("project root already exists, keeping layout as-is", "root", root)
		return nil, true, nil
	} else if !os.IsNotExist(err) {
		return nil, false, fmt.Errorf("stat %s: %w", root, err)
	}

	if err := os.MkdirAll(root, defs.DirPerm); err != nil {
		return nil, false, fmt.Errorf("mkdir %s: %w", root, err)
	}

	created := make([]string, 0, len(projectDirs))
	for _, dir := range projectDirs {
		dirPath := filepath.Join(root, dir)
		if err := os.MkdirAll(dirPath, defs.DirPerm); err != nil {
			return created, false, fmt.Errorf("mkdir %s: %w", dirPath, err)
		}
		created = append(created, dir)
	}

	w.logger.Info("project layout created", "root", root, "dirs", len(created))
	return created, false, nil
}

// Write writes one rendered file under the project root.
func (w *diskWriter) Write(root string, file models.RenderedFile) error {
	path := filepath.Join(filepath.Clean(root), file.Path)
	if err := os.WriteFile(path, []byte(file.Content), defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", file.Path, err)
	}
	w.logger.Info("file written", "path", file.Path, "bytes", len(file.Content))
	return nil
}
