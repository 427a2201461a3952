package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kyra-labs/internship-dashboard/internal/models"
)

// FileArchive saves submissions on local disk under BaseDir.
type FileArchive struct {
	BaseDir string // e.g. "./submissions"
}

func NewFileArchive(baseDir string) *FileArchive {
	return &FileArchive{BaseDir: baseDir}
}

// Record writes reg to <BaseDir>/<ObjectKey>.
func (fa *FileArchive) Record(_ context.Context, reg *models.Registration) error {
	fullPath := filepath.Join(fa.BaseDir, filepath.FromSlash(ObjectKey(reg)))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(fullPath), err)
	}
	body, err := encode(reg)
	if err != nil {
		return fmt.Errorf("failed to encode submission %s: %w", reg.ID, err)
	}
	if err := os.WriteFile(fullPath, body, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", fullPath, err)
	}
	return nil
}
