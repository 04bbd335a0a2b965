package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	QuestionSourceManual = "manual"
	QuestionSourceAI     = "ai"
	QuestionSourceCSV    = "csv"
)

type Question struct {
	ID                uint           `gorm:"primarykey" json:"id"`
	AssessmentID      uint           `json:"assessment_id" gorm:"not null;index"`
	OrderInAssessment int            `json:"order_in_assessment" gorm:"not null"`
	QuestionText      string         `json:"question_text" gorm:"type:text;not null"`
	OptionA           string         `json:"option_a" gorm:"type:text;not null"`
	OptionB           string         `json:"option_b" gorm:"type:text;not null"`
	OptionC           string         `json:"option_c" gorm:"type:text;not null"`
	OptionD           string         `json:"option_d" gorm:"type:text;not null"`
	CorrectOption     string         `json:"correct_option" gorm:"size:1;not null"` // "A".."D"
	Explanation       string         `json:"explanation,omitempty" gorm:"type:text"`
	DifficultyLevel   string         `json:"difficulty_level" gorm:"not null;default:'Medium'"`
	Topic             string         `json:"topic,omitempty"`
	Skills            string         `json:"skills,omitempty"`
	Source            string         `json:"source" gorm:"not null;default:'manual'"` // "manual", "ai", "csv"
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// OptionText returns the text of the option with the given letter.
func (q *Question) OptionText(letter string) string {
	switch letter {
	case "A":
		return q.OptionA
	case "B":
		return q.OptionB
	case "C":
		return q.OptionC
	case "D":
		return q.OptionD
	}
	return ""
}
