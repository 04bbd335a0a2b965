package model

import (
	"time"

	"gorm.io/gorm"
)

type Answer struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	AttemptID      uint           `json:"attempt_id" gorm:"not null;index"`
	QuestionID     uint           `json:"question_id" gorm:"not null;index"`
	Question       Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	SelectedOption string         `json:"selected_option" gorm:"size:1"` // empty when skipped
	IsCorrect      bool           `json:"is_correct"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
