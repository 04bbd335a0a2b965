package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/mcqdesk/internal/dto"
	"github.com/lshigami/mcqdesk/internal/importer"
	"github.com/lshigami/mcqdesk/internal/model"
	"github.com/lshigami/mcqdesk/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	defaultDurationMinutes = 30
	defaultPassPercentage  = 50.0
)

type AssessmentService interface {
	CreateAssessment(req dto.AssessmentCreateDTO) (*dto.AssessmentResponseDTO, error)
	GetAssessment(id uint) (*dto.AssessmentResponseDTO, error)
	ListAssessments() ([]dto.AssessmentSummaryDTO, error)
	AddQuestions(assessmentID uint, req dto.AddQuestionsDTO) ([]dto.QuestionResponseDTO, error)
	// AppendQuestions stores already validated questions at the end of a draft assessment.
	AppendQuestions(assessmentID uint, staged []importer.Question, source string) ([]dto.QuestionResponseDTO, error)
	DeleteQuestion(assessmentID, questionID uint) error
	PublishAssessment(id uint) (*dto.AssessmentResponseDTO, error)
}

type assessmentService struct {
	assessmentRepo repository.AssessmentRepository
	questionRepo   repository.QuestionRepository
}

func NewAssessmentService(assessmentRepo repository.AssessmentRepository, questionRepo repository.QuestionRepository) AssessmentService {
	return &assessmentService{assessmentRepo: assessmentRepo, questionRepo: questionRepo}
}

func (s *assessmentService) CreateAssessment(req dto.AssessmentCreateDTO) (*dto.AssessmentResponseDTO, error) {
	staged, errs := validateInputs(req.Questions)
	if len(errs) > 0 {
		return nil, newValidationError("Invalid questions", errs...)
	}

	a := model.Assessment{
		Title:           req.Title,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		PassPercentage:  req.PassPercentage,
		Status:          model.AssessmentStatusDraft,
		Questions:       toModelQuestions(0, 1, sourceOrDefault(req.Source), staged),
	}
	if a.DurationMinutes == 0 {
		a.DurationMinutes = defaultDurationMinutes
	}
	if a.PassPercentage == 0 {
		a.PassPercentage = defaultPassPercentage
	}

	if err := s.assessmentRepo.Create(&a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("assessment titled %q already exists: %w", req.Title, ErrConflict)
		}
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create assessment in database")
		return nil, fmt.Errorf("database error creating assessment: %w", err)
	}
	log.Info().Uint("assessmentID", a.ID).Int("questions", len(a.Questions)).Msg("Assessment created")
	return s.GetAssessment(a.ID)
}

func (s *assessmentService) GetAssessment(id uint) (*dto.AssessmentResponseDTO, error) {
	a, err := s.findWithQuestions(id)
	if err != nil {
		return nil, err
	}
	var resp dto.AssessmentResponseDTO
	if err := copier.Copy(&resp, a); err != nil {
		log.Error().Err(err).Msg("Failed to copy Assessment model to AssessmentResponseDTO")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	resp.Questions = toQuestionDTOs(a.Questions)
	return &resp, nil
}

func (s *assessmentService) ListAssessments() ([]dto.AssessmentSummaryDTO, error) {
	rows, err := s.assessmentRepo.FindAllWithQuestionCount("")
	if err != nil {
		log.Error().Err(err).Msg("Failed to list assessments")
		return nil, fmt.Errorf("error fetching assessments: %w", err)
	}
	return toSummaries(rows), nil
}

func (s *assessmentService) AddQuestions(assessmentID uint, req dto.AddQuestionsDTO) ([]dto.QuestionResponseDTO, error) {
	staged, errs := validateInputs(req.Questions)
	if len(errs) > 0 {
		return nil, newValidationError("Invalid questions", errs...)
	}
	return s.AppendQuestions(assessmentID, staged, sourceOrDefault(req.Source))
}

func (s *assessmentService) AppendQuestions(assessmentID uint, staged []importer.Question, source string) ([]dto.QuestionResponseDTO, error) {
	if len(staged) == 0 {
		return nil, newValidationError("No questions to add")
	}
	a, err := s.findDraft(assessmentID)
	if err != nil {
		return nil, err
	}
	// Final order numbers are assigned by the repository under the assessment lock.
	questions := toModelQuestions(a.ID, 1, source, staged)
	err = s.questionRepo.AppendToAssessment(a.ID, questions)
	switch {
	case errors.Is(err, repository.ErrAssessmentNotDraft):
		return nil, fmt.Errorf("assessment %d is no longer a draft: %w", a.ID, ErrConflict)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("assessment %d: %w", a.ID, ErrNotFound)
	case err != nil:
		log.Error().Err(err).Uint("assessmentID", a.ID).Int("count", len(questions)).Msg("Failed to store question batch")
		return nil, fmt.Errorf("database error storing questions: %w", err)
	}
	log.Info().Uint("assessmentID", a.ID).Int("count", len(questions)).Str("source", source).Msg("Questions appended")
	return toQuestionDTOs(questions), nil
}

func (s *assessmentService) DeleteQuestion(assessmentID, questionID uint) error {
	if _, err := s.findDraft(assessmentID); err != nil {
		return err
	}
	q, err := s.questionRepo.FindByID(questionID)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && q.AssessmentID != assessmentID) {
		return fmt.Errorf("question %d in assessment %d: %w", questionID, assessmentID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("error fetching question: %w", err)
	}
	return s.questionRepo.Delete(questionID)
}

func (s *assessmentService) PublishAssessment(id uint) (*dto.AssessmentResponseDTO, error) {
	a, err := s.findDraft(id)
	if err != nil {
		return nil, err
	}
	n, err := s.questionRepo.CountByAssessmentID(id)
	if err != nil {
		return nil, fmt.Errorf("error counting questions: %w", err)
	}
	if n == 0 {
		return nil, newValidationError("Cannot publish an assessment without questions")
	}
	a.Status = model.AssessmentStatusPublished
	if err := s.assessmentRepo.Update(a); err != nil {
		log.Error().Err(err).Uint("assessmentID", id).Msg("Failed to publish assessment")
		return nil, fmt.Errorf("database error publishing assessment: %w", err)
	}
	log.Info().Uint("assessmentID", id).Int64("questions", n).Msg("Assessment published")
	return s.GetAssessment(id)
}

func (s *assessmentService) findWithQuestions(id uint) (*model.Assessment, error) {
	a, err := s.assessmentRepo.FindByIDWithQuestions(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("assessment %d: %w", id, ErrNotFound)
	}
	if err != nil {
		log.Error().Err(err).Uint("assessmentID", id).Msg("Failed to load assessment")
		return nil, fmt.Errorf("error fetching assessment %d: %w", id, err)
	}
	return a, nil
}

// findDraft loads an assessment that may still be edited.
func (s *assessmentService) findDraft(id uint) (*model.Assessment, error) {
	a, err := s.assessmentRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("assessment %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching assessment %d: %w", id, err)
	}
	if a.Status != model.AssessmentStatusDraft {
		return nil, fmt.Errorf("assessment %d is %s and can no longer be edited: %w", id, a.Status, ErrConflict)
	}
	return a, nil
}

func toSummaries(rows []repository.AssessmentWithCount) []dto.AssessmentSummaryDTO {
	out := make([]dto.AssessmentSummaryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AssessmentSummaryDTO{
			ID:              r.Assessment.ID,
			Title:           r.Assessment.Title,
			Description:     r.Assessment.Description,
			DurationMinutes: r.Assessment.DurationMinutes,
			Status:          r.Assessment.Status,
			QuestionCount:   r.QuestionCount,
			CreatedAt:       r.Assessment.CreatedAt,
		})
	}
	return out
}

func sourceOrDefault(source string) string {
	if source == "" {
		return model.QuestionSourceManual
	}
	return source
}
