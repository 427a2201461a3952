package models

import (
	"time"

	"gorm.io/datatypes"
)

// SessionRecord tracks an issued session token. Logout deletes the row.
type SessionRecord struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Role      Role      `gorm:"type:text;not null" json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `gorm:"index" json:"expires_at"`
}

func (SessionRecord) TableName() string { return "sessions" }

// Registration is an acknowledged registration form submission.
type Registration struct {
	ID        string            `gorm:"primaryKey;size:36" json:"id"`
	SessionID string            `gorm:"index;size:36" json:"session_id"`
	Role      Role              `gorm:"type:text;not null;index" json:"role"`
	Fields    datatypes.JSONMap `json:"fields"`
	CreatedAt time.Time         `json:"created_at"`
}
