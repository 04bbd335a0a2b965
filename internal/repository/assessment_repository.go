package repository

import (
	"github.com/lshigami/mcqdesk/internal/model"
	"gorm.io/gorm"
)

// AssessmentWithCount is a list row carrying the number of live questions.
type AssessmentWithCount struct {
	model.Assessment
	QuestionCount int
}

type AssessmentRepository interface {
	Create(assessment *model.Assessment) error
	Update(assessment *model.Assessment) error
	FindByID(id uint) (*model.Assessment, error)
	FindByIDWithQuestions(id uint) (*model.Assessment, error)
	FindAllWithQuestionCount(status string) ([]AssessmentWithCount, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(assessment *model.Assessment) error {
	// Questions attached to the assessment are inserted in the same statement batch.
	return r.db.Create(assessment).Error
}

func (r *assessmentRepository) Update(assessment *model.Assessment) error {
	return r.db.Omit("Questions").Save(assessment).Error
}

func (r *assessmentRepository) FindByID(id uint) (*model.Assessment, error) {
	var assessment model.Assessment
	if err := r.db.First(&assessment, id).Error; err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindByIDWithQuestions(id uint) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_in_assessment ASC")
	}).First(&assessment, id).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

// FindAllWithQuestionCount lists assessments newest first; an empty status lists all.
func (r *assessmentRepository) FindAllWithQuestionCount(status string) ([]AssessmentWithCount, error) {
	var results []AssessmentWithCount
	query := r.db.Model(&model.Assessment{}).
		Select("assessments.*, (SELECT COUNT(*) FROM questions WHERE questions.assessment_id = assessments.id AND questions.deleted_at IS NULL) as question_count").
		Where("assessments.deleted_at IS NULL")
	if status != "" {
		query = query.Where("assessments.status = ?", status)
	}
	err := query.Order("assessments.created_at DESC").Scan(&results).Error
	return results, err
}
