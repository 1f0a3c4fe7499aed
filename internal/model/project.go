package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusArchived ProjectStatus = "archived"
	ProjectStatusDraft    ProjectStatus = "draft"
)

// Category is the closed set of project categories.
type Category string

const (
	CategoryWeb      Category = "web"
	CategoryMobile   Category = "mobile"
	CategoryAIML     Category = "ai-ml"
	CategoryIoT      Category = "iot"
	CategoryRobotics Category = "robotics"
	CategoryOther    Category = "other"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryWeb,
	CategoryMobile,
	CategoryAIML,
	CategoryIoT,
	CategoryRobotics,
	CategoryOther,
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// TeamMember is embedded in a project's member list; it has no identity of
// its own beyond its position in that list.
type TeamMember struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	LinkedinURL string `json:"linkedin_url,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	Department  string `json:"department,omitempty"`
	Year        string `json:"year,omitempty"`
}

// Project represents a showcased student project.
// Deletion is permanent, so there is deliberately no soft-delete column.
type Project struct {
	ID               uuid.UUID     `json:"id" gorm:"type:char(36);primaryKey"`
	Title            string        `json:"title" gorm:"size:255;not null"`
	Description      string        `json:"description" gorm:"type:text;not null"`
	ShortDescription string        `json:"short_description" gorm:"size:255"`
	Thumbnail        string        `json:"thumbnail" gorm:"size:512"`
	DemoVideoURL     string        `json:"demo_video_url,omitempty" gorm:"size:512"`
	GithubURL        string        `json:"github_url,omitempty" gorm:"size:512"`
	LiveURL          string        `json:"live_url,omitempty" gorm:"size:512"`
	DocumentationURL string        `json:"documentation_url,omitempty" gorm:"size:512"`
	TeamMembers      []TeamMember  `json:"team_members" gorm:"serializer:json"`
	Tags             []string      `json:"tags" gorm:"serializer:json"`
	Technologies     []string      `json:"technologies" gorm:"serializer:json"`
	Votes            int64         `json:"votes" gorm:"not null;default:0;index"`
	Featured         bool          `json:"featured" gorm:"default:false;index"`
	Status           ProjectStatus `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	Category         Category      `json:"category" gorm:"type:varchar(20);not null;default:'other';index"`
	CreatedBy        uuid.UUID     `json:"created_by" gorm:"type:char(36);not null;index"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
