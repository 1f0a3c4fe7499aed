package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vote is one entry in the vote ledger. The unique composite index enforces
// at most one vote per (user, project) pair at the storage layer.
type Vote struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	ProjectID uuid.UUID `json:"project_id" gorm:"type:char(36);not null;uniqueIndex:idx_votes_project_user"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;uniqueIndex:idx_votes_project_user"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (v *Vote) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
