package store

import (
	"context"

	"github.com/kyra-labs/internship-dashboard/internal/models"
)

/* ------------------ Registrations ------------------ */

// Record persists an acknowledged registration submission.
func (s *Store) Record(ctx context.Context, reg *models.Registration) error {
	return s.DB.WithContext(ctx).Create(reg).Error
}
