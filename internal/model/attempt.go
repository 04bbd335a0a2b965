package model

import (
	"time"

	"gorm.io/gorm"
)

type Attempt struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	AssessmentID uint           `json:"assessment_id" gorm:"not null;index"`
	Assessment   Assessment     `json:"assessment,omitempty" gorm:"foreignKey:AssessmentID"`
	UserID       *uint          `json:"user_id,omitempty" gorm:"index"`
	SubmittedAt  time.Time      `json:"submitted_at" gorm:"autoCreateTime"`
	Score        int            `json:"score"`
	MaxScore     int            `json:"max_score"`
	Percentage   float64        `json:"percentage"`
	Passed       bool           `json:"passed"`
	Answers      []Answer       `json:"answers,omitempty" gorm:"foreignKey:AttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
