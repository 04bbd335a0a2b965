package dto

import "time"

// QuestionInputDTO is one MCQ authored manually or staged from another mode.
// Field names match the CSV import columns.
type QuestionInputDTO struct {
	QuestionText    string `json:"question_text"`
	OptionA         string `json:"option_a"`
	OptionB         string `json:"option_b"`
	OptionC         string `json:"option_c"`
	OptionD         string `json:"option_d"`
	CorrectOption   string `json:"correct_option"`
	Explanation     string `json:"explanation,omitempty"`
	DifficultyLevel string `json:"difficulty_level,omitempty"`
	Topic           string `json:"topic,omitempty"`
	Skills          string `json:"skills,omitempty"`
}

// AssessmentCreateDTO creates an assessment, optionally with its first questions.
type AssessmentCreateDTO struct {
	Title           string             `json:"title" binding:"required"`
	Description     string             `json:"description,omitempty"`
	DurationMinutes int                `json:"duration_minutes" binding:"omitempty,min=1,max=600"`
	PassPercentage  float64            `json:"pass_percentage" binding:"omitempty,min=0,max=100"`
	Questions       []QuestionInputDTO `json:"questions"`
	Source          string             `json:"source" binding:"omitempty,oneof=manual ai csv"`
}

// AddQuestionsDTO appends staged questions to a draft assessment.
type AddQuestionsDTO struct {
	Questions []QuestionInputDTO `json:"questions" binding:"required,min=1"`
	Source    string             `json:"source" binding:"omitempty,oneof=manual ai csv"`
}

// QuestionResponseDTO is the admin view of a stored question.
type QuestionResponseDTO struct {
	ID                uint      `json:"id"`
	AssessmentID      uint      `json:"assessment_id"`
	OrderInAssessment int       `json:"order_in_assessment"`
	QuestionText      string    `json:"question_text"`
	OptionA           string    `json:"option_a"`
	OptionB           string    `json:"option_b"`
	OptionC           string    `json:"option_c"`
	OptionD           string    `json:"option_d"`
	CorrectOption     string    `json:"correct_option"`
	Explanation       string    `json:"explanation,omitempty"`
	DifficultyLevel   string    `json:"difficulty_level"`
	Topic             string    `json:"topic,omitempty"`
	Skills            string    `json:"skills,omitempty"`
	Source            string    `json:"source"`
	CreatedAt         time.Time `json:"created_at"`
}

type AssessmentResponseDTO struct {
	ID              uint                  `json:"id"`
	Title           string                `json:"title"`
	Description     string                `json:"description,omitempty"`
	DurationMinutes int                   `json:"duration_minutes"`
	PassPercentage  float64               `json:"pass_percentage"`
	Status          string                `json:"status"`
	Questions       []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// AssessmentSummaryDTO is used in listings.
type AssessmentSummaryDTO struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	QuestionCount   int       `json:"question_count"`
	CreatedAt       time.Time `json:"created_at"`
}
