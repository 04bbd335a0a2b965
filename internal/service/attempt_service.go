package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/mcqdesk/internal/dto"
	"github.com/lshigami/mcqdesk/internal/model"
	"github.com/lshigami/mcqdesk/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AttemptService is the learner-facing side: taking published assessments.
type AttemptService interface {
	ListPublished() ([]dto.AssessmentSummaryDTO, error)
	GetForLearner(assessmentID uint) (*dto.LearnerAssessmentDTO, error)
	SubmitAttempt(assessmentID uint, req dto.AttemptSubmitDTO) (*dto.AttemptDetailDTO, error)
	GetAttempt(attemptID uint) (*dto.AttemptDetailDTO, error)
	ListAttempts(assessmentID uint, userID *uint) ([]dto.AttemptSummaryDTO, error)
}

type attemptService struct {
	assessmentRepo repository.AssessmentRepository
	attemptRepo    repository.AttemptRepository
}

func NewAttemptService(assessmentRepo repository.AssessmentRepository, attemptRepo repository.AttemptRepository) AttemptService {
	return &attemptService{assessmentRepo: assessmentRepo, attemptRepo: attemptRepo}
}

func (s *attemptService) ListPublished() ([]dto.AssessmentSummaryDTO, error) {
	rows, err := s.assessmentRepo.FindAllWithQuestionCount(model.AssessmentStatusPublished)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list published assessments")
		return nil, fmt.Errorf("error fetching assessments: %w", err)
	}
	return toSummaries(rows), nil
}

func (s *attemptService) GetForLearner(assessmentID uint) (*dto.LearnerAssessmentDTO, error) {
	a, err := s.findPublished(assessmentID)
	if err != nil {
		return nil, err
	}
	resp := dto.LearnerAssessmentDTO{
		ID:              a.ID,
		Title:           a.Title,
		Description:     a.Description,
		DurationMinutes: a.DurationMinutes,
		PassPercentage:  a.PassPercentage,
		Questions:       make([]dto.LearnerQuestionDTO, 0, len(a.Questions)),
	}
	for _, q := range a.Questions {
		var lq dto.LearnerQuestionDTO
		copier.Copy(&lq, &q)
		resp.Questions = append(resp.Questions, lq)
	}
	return &resp, nil
}

// SubmitAttempt grades the answers against the stored correct options.
// Every question counts toward MaxScore; unanswered ones score zero.
func (s *attemptService) SubmitAttempt(assessmentID uint, req dto.AttemptSubmitDTO) (*dto.AttemptDetailDTO, error) {
	a, err := s.findPublished(assessmentID)
	if err != nil {
		return nil, err
	}
	if len(a.Questions) == 0 {
		return nil, newValidationError(fmt.Sprintf("Assessment %d has no questions, submission is not possible", assessmentID))
	}

	selected := make(map[uint]string, len(req.Answers))
	var details []string
	for _, ans := range req.Answers {
		if _, dup := selected[ans.QuestionID]; dup {
			details = append(details, fmt.Sprintf("question %d answered more than once", ans.QuestionID))
			continue
		}
		opt := strings.ToUpper(strings.TrimSpace(ans.SelectedOption))
		switch opt {
		case "", "A", "B", "C", "D":
		default:
			details = append(details, fmt.Sprintf("question %d: selected option must be A, B, C, or D", ans.QuestionID))
		}
		selected[ans.QuestionID] = opt
	}
	if len(details) > 0 {
		return nil, newValidationError("Invalid answers", details...)
	}

	known := make(map[uint]bool, len(a.Questions))
	attempt := model.Attempt{
		AssessmentID: a.ID,
		UserID:       req.UserID,
		SubmittedAt:  time.Now(),
		MaxScore:     len(a.Questions),
	}
	for _, q := range a.Questions {
		known[q.ID] = true
		opt := selected[q.ID]
		correct := opt != "" && opt == q.CorrectOption
		if correct {
			attempt.Score++
		}
		attempt.Answers = append(attempt.Answers, model.Answer{
			QuestionID:     q.ID,
			SelectedOption: opt,
			IsCorrect:      correct,
		})
	}
	for qid := range selected {
		if !known[qid] {
			log.Warn().Uint("questionID", qid).Uint("assessmentID", a.ID).Msg("SubmitAttempt: Answer for a question not part of this assessment, skipping.")
		}
	}
	attempt.Percentage = percentage(attempt.Score, attempt.MaxScore)
	attempt.Passed = attempt.Percentage >= a.PassPercentage

	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Uint("assessmentID", a.ID).Msg("SubmitAttempt: Failed to store attempt")
		return nil, fmt.Errorf("failed to create attempt record: %w", err)
	}
	attempt.Assessment = *a
	for i := range attempt.Answers {
		attempt.Answers[i].Question = a.Questions[i]
	}
	log.Info().Uint("attemptID", attempt.ID).Int("score", attempt.Score).Int("max", attempt.MaxScore).Msg("Attempt graded")
	return toAttemptDetail(&attempt), nil
}

func (s *attemptService) GetAttempt(attemptID uint) (*dto.AttemptDetailDTO, error) {
	attempt, err := s.attemptRepo.FindByIDWithDetails(attemptID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("attempt %d: %w", attemptID, ErrNotFound)
	}
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("GetAttempt: Failed to load attempt")
		return nil, fmt.Errorf("error fetching attempt %d: %w", attemptID, err)
	}
	return toAttemptDetail(attempt), nil
}

func (s *attemptService) ListAttempts(assessmentID uint, userID *uint) ([]dto.AttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindAllByAssessmentAndUser(assessmentID, userID)
	if err != nil {
		log.Error().Err(err).Uint("assessmentID", assessmentID).Interface("userID", userID).Msg("ListAttempts: Failed to find attempts")
		return nil, fmt.Errorf("error fetching attempts for assessment %d: %w", assessmentID, err)
	}
	out := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for _, at := range attempts {
		var summary dto.AttemptSummaryDTO
		if err := copier.Copy(&summary, &at); err != nil {
			log.Error().Err(err).Uint("attemptID", at.ID).Msg("ListAttempts: Error copying attempt to summary DTO")
			continue
		}
		out = append(out, summary)
	}
	return out, nil
}

func (s *attemptService) findPublished(id uint) (*model.Assessment, error) {
	a, err := s.assessmentRepo.FindByIDWithQuestions(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("assessment %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching assessment %d: %w", id, err)
	}
	if a.Status != model.AssessmentStatusPublished {
		return nil, fmt.Errorf("assessment %d is not published: %w", id, ErrNotFound)
	}
	return a, nil
}

func toAttemptDetail(at *model.Attempt) *dto.AttemptDetailDTO {
	resp := &dto.AttemptDetailDTO{
		ID:              at.ID,
		AssessmentID:    at.AssessmentID,
		AssessmentTitle: at.Assessment.Title,
		UserID:          at.UserID,
		SubmittedAt:     at.SubmittedAt,
		Score:           at.Score,
		MaxScore:        at.MaxScore,
		Percentage:      at.Percentage,
		Passed:          at.Passed,
		Answers:         make([]dto.AnswerResponseDTO, 0, len(at.Answers)),
	}
	for _, ans := range at.Answers {
		resp.Answers = append(resp.Answers, dto.AnswerResponseDTO{
			ID:             ans.ID,
			QuestionID:     ans.QuestionID,
			QuestionText:   ans.Question.QuestionText,
			SelectedOption: ans.SelectedOption,
			CorrectOption:  ans.Question.CorrectOption,
			IsCorrect:      ans.IsCorrect,
			Explanation:    ans.Question.Explanation,
		})
	}
	return resp
}

// percentage rounds to two decimals.
func percentage(score, max int) float64 {
	if max == 0 {
		return 0
	}
	return math.Round(float64(score)*10000/float64(max)) / 100
}
