package service

import (
	"github.com/lshigami/mcqdesk/internal/dto"
	"github.com/lshigami/mcqdesk/internal/importer"
	"github.com/lshigami/mcqdesk/internal/model"
	"github.com/rs/zerolog/log"
)

// ImportTemplate is the downloadable CSV template.
type ImportTemplate struct {
	FileName    string
	ContentType string
	Body        []byte
}

type QuestionImportService interface {
	// Preview parses text without storing anything.
	Preview(text string) dto.ImportPreviewResponse
	// ImportIntoAssessment stores the whole batch, or nothing when any row is invalid.
	ImportIntoAssessment(assessmentID uint, text string) (*dto.ImportResultDTO, error)
	Template() ImportTemplate
}

type questionImportService struct {
	assessments AssessmentService
}

func NewQuestionImportService(assessments AssessmentService) QuestionImportService {
	return &questionImportService{assessments: assessments}
}

func (s *questionImportService) Preview(text string) dto.ImportPreviewResponse {
	res := importer.Parse(text)
	if !res.OK() {
		log.Debug().Int("errors", len(res.Errors)).Msg("CSV preview rejected")
	}
	return dto.ImportPreviewResponse{
		Count:     len(res.Questions),
		Questions: res.Questions,
		Errors:    res.Errors,
	}
}

func (s *questionImportService) ImportIntoAssessment(assessmentID uint, text string) (*dto.ImportResultDTO, error) {
	res := importer.Parse(text)
	if !res.OK() {
		log.Warn().Uint("assessmentID", assessmentID).Int("errors", len(res.Errors)).Msg("CSV import rejected")
		return nil, newValidationError("CSV import failed", res.Errors...)
	}

	stored, err := s.assessments.AppendQuestions(assessmentID, res.Questions, model.QuestionSourceCSV)
	if err != nil {
		return nil, err
	}
	return &dto.ImportResultDTO{
		AssessmentID: assessmentID,
		Imported:     len(stored),
		Questions:    stored,
	}, nil
}

func (s *questionImportService) Template() ImportTemplate {
	return ImportTemplate{
		FileName:    importer.TemplateFileName,
		ContentType: importer.TemplateContentType,
		Body:        []byte(importer.Template()),
	}
}
