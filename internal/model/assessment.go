package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	AssessmentStatusDraft     = "draft"
	AssessmentStatusPublished = "published"
)

type Assessment struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Title           string         `json:"title" gorm:"not null;uniqueIndex"`
	Description     string         `json:"description,omitempty"`
	DurationMinutes int            `json:"duration_minutes" gorm:"not null;default:30"`
	PassPercentage  float64        `json:"pass_percentage" gorm:"not null;default:50"`
	Status          string         `json:"status" gorm:"not null;default:'draft'"` // "draft", "published"
	Questions       []Question     `json:"questions,omitempty" gorm:"foreignKey:AssessmentID;constraint:OnDelete:CASCADE;"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
