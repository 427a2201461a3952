package store

import (
	"context"
	"errors"
	"time"

	"github.com/kyra-labs/internship-dashboard/internal/models"
	"gorm.io/gorm"
)

/* ------------------ Session registry ------------------ */

// SaveSession records an issued session id and its expiry.
func (s *Store) SaveSession(ctx context.Context, id string, role models.Role, expiresAt time.Time) error {
	rec := models.SessionRecord{
		ID:        id,
		Role:      role,
		IssuedAt:  time.Now().UTC(),
		ExpiresAt: expiresAt.UTC(),
	}
	return s.DB.WithContext(ctx).Create(&rec).Error
}

// IsSessionActive reports whether id was issued, is not revoked and has not expired.
// Revoked sessions have no row.
func (s *Store) IsSessionActive(ctx context.Context, id string) (bool, error) {
	var rec models.SessionRecord
	err := s.DB.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, time.Now().UTC()).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// RevokeSession deletes the row of id. Revoking an unknown or revoked id is not an error.
func (s *Store) RevokeSession(ctx context.Context, id string) error {
	return s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.SessionRecord{}).Error
}

// DeleteExpiredSessions purges rows past their expiry and returns how many went.
func (s *Store) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	res := s.DB.WithContext(ctx).Where("expires_at < ?", time.Now().UTC()).Delete(&models.SessionRecord{})
	return res.RowsAffected, res.Error
}
