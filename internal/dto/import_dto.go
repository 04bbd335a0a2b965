package dto

import "github.com/lshigami/mcqdesk/internal/importer"

// ImportPreviewResponse is the parse outcome of an uploaded CSV. Questions is
// empty whenever Errors is not.
type ImportPreviewResponse struct {
	Count     int                 `json:"count"`
	Questions []importer.Question `json:"questions"`
	Errors    []string            `json:"errors"`
}

type ImportResultDTO struct {
	AssessmentID uint                  `json:"assessment_id"`
	Imported     int                   `json:"imported"`
	Questions    []QuestionResponseDTO `json:"questions"`
}

// GenerateQuestionsRequest asks the AI mode for a batch of staged MCQs.
type GenerateQuestionsRequest struct {
	Topic        string `json:"topic" binding:"required"`
	Count        int    `json:"count" binding:"required,min=1,max=20"`
	Difficulty   string `json:"difficulty" binding:"omitempty,oneof=Easy Medium Hard"`
	Skills       string `json:"skills,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

type GenerateQuestionsResponse struct {
	Questions []importer.Question `json:"questions"`
}
