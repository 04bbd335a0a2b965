package repository

import (
	"github.com/lshigami/mcqdesk/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(attempt *model.Attempt) error
	FindByIDWithDetails(id uint) (*model.Attempt, error)
	FindAllByAssessmentAndUser(assessmentID uint, userID *uint) ([]model.Attempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.Attempt) error {
	// Answers are created with the attempt.
	return r.db.Omit("Assessment").Create(attempt).Error
}

func (r *attemptRepository) FindByIDWithDetails(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.
		Preload("Assessment").
		Preload("Answers.Question").
		First(&attempt, id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindAllByAssessmentAndUser(assessmentID uint, userID *uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	query := r.db.Where("assessment_id = ?", assessmentID)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	err := query.Order("submitted_at DESC").Find(&attempts).Error
	return attempts, err
}
