package action

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// MissingFolderName is returned when no folder name could be extracted
const MissingFolderName = "Please specify a folder name to create"

// Folders creates directories under a base directory
type Folders struct {
	baseDir string
	logger  *zap.Logger
}

// NewFolders creates a folder handler. An empty baseDir resolves to the
// user's Desktop at call time.
func NewFolders(baseDir string, logger *zap.Logger) *Folders {
	return &Folders{
		baseDir: baseDir,
		logger:  logger.With(zap.String("component", "action.folders")),
	}
}

// BaseDir returns the directory new folders are created in
func (f *Folders) BaseDir() (string, error) {
	if f.baseDir != "" {
		return filepath.Abs(f.baseDir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, "Desktop"), nil
}

// Create makes name under the base directory and reports the outcome as a
// user-facing sentence. Existing directories are not an error.
func (f *Folders) Create(name string) string {
	fullPath, err := f.create(name)
	if err != nil {
		f.logger.Warn("folder creation failed", zap.String("name", name), zap.Error(err))
		return fmt.Sprintf("Error creating folder: %v", err)
	}
	f.logger.Info("folder created", zap.String("path", fullPath))
	return fmt.Sprintf("Created folder '%s' at %s", name, fullPath)
}

func (f *Folders) create(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("folder name is empty")
	}

	base, err := f.BaseDir()
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(base, name)
	rel, err := filepath.Rel(base, fullPath)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("folder name %q must stay inside %s", name, base)
	}

	if err := os.MkdirAll(fullPath, 0o755); err != nil {
		return "", err
	}
	return fullPath, nil
}
