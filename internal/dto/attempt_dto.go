package dto

import "time"

// LearnerQuestionDTO hides the correct option and explanation.
type LearnerQuestionDTO struct {
	ID                uint   `json:"id"`
	OrderInAssessment int    `json:"order_in_assessment"`
	QuestionText      string `json:"question_text"`
	OptionA           string `json:"option_a"`
	OptionB           string `json:"option_b"`
	OptionC           string `json:"option_c"`
	OptionD           string `json:"option_d"`
	DifficultyLevel   string `json:"difficulty_level"`
	Topic             string `json:"topic,omitempty"`
}

type LearnerAssessmentDTO struct {
	ID              uint                 `json:"id"`
	Title           string               `json:"title"`
	Description     string               `json:"description,omitempty"`
	DurationMinutes int                  `json:"duration_minutes"`
	PassPercentage  float64              `json:"pass_percentage"`
	Questions       []LearnerQuestionDTO `json:"questions"`
}

type UserAnswerDTO struct {
	QuestionID     uint   `json:"question_id" binding:"required"`
	SelectedOption string `json:"selected_option"`
}

// AttemptSubmitDTO is a learner's full set of answers for one assessment.
type AttemptSubmitDTO struct {
	UserID  *uint           `json:"user_id"` // Temporary, until authentication lands
	Answers []UserAnswerDTO `json:"answers" binding:"required,dive"`
}

type AnswerResponseDTO struct {
	ID             uint   `json:"id"`
	QuestionID     uint   `json:"question_id"`
	QuestionText   string `json:"question_text"`
	SelectedOption string `json:"selected_option"`
	CorrectOption  string `json:"correct_option"`
	IsCorrect      bool   `json:"is_correct"`
	Explanation    string `json:"explanation,omitempty"`
}

type AttemptDetailDTO struct {
	ID              uint                `json:"id"`
	AssessmentID    uint                `json:"assessment_id"`
	AssessmentTitle string              `json:"assessment_title,omitempty"`
	UserID          *uint               `json:"user_id,omitempty"`
	SubmittedAt     time.Time           `json:"submitted_at"`
	Score           int                 `json:"score"`
	MaxScore        int                 `json:"max_score"`
	Percentage      float64             `json:"percentage"`
	Passed          bool                `json:"passed"`
	Answers         []AnswerResponseDTO `json:"answers,omitempty"`
}

type AttemptSummaryDTO struct {
	ID           uint      `json:"id"`
	AssessmentID uint      `json:"assessment_id"`
	UserID       *uint     `json:"user_id,omitempty"`
	SubmittedAt  time.Time `json:"submitted_at"`
	Score        int       `json:"score"`
	MaxScore     int       `json:"max_score"`
	Percentage   float64   `json:"percentage"`
	Passed       bool      `json:"passed"`
}
