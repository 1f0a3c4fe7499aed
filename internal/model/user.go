package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role represents a user's role on the platform.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// User represents an authenticated user in the system.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	DisplayName  string    `json:"display_name" gorm:"size:255;not null"`
	PhotoURL     string    `json:"photo_url,omitempty" gorm:"size:512"`
	Bio          string    `json:"bio,omitempty" gorm:"type:text"`
	Department   string    `json:"department,omitempty" gorm:"size:255"`
	Year         string    `json:"year,omitempty" gorm:"size:20"`
	Phone        string    `json:"phone,omitempty" gorm:"size:50"`
	Role         Role      `json:"role" gorm:"type:varchar(20);not null;default:'student';index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
