package repository

import (
	"errors"

	"github.com/lshigami/mcqdesk/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrAssessmentNotDraft is returned when questions are appended to a published assessment.
var ErrAssessmentNotDraft = errors.New("assessment is not a draft")

type QuestionRepository interface {
	// AppendToAssessment numbers questions after the current last one and inserts
	// all of them or none. The assessment row stays locked for the whole insert.
	AppendToAssessment(assessmentID uint, questions []model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByAssessmentID(assessmentID uint) ([]model.Question, error)
	CountByAssessmentID(assessmentID uint) (int64, error)
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) AppendToAssessment(assessmentID uint, questions []model.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		var assessment model.Assessment
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&assessment, assessmentID).Error; err != nil {
			return err
		}
		if assessment.Status != model.AssessmentStatusDraft {
			return ErrAssessmentNotDraft
		}
		last, err := maxOrder(tx, assessmentID)
		if err != nil {
			return err
		}
		for i := range questions {
			questions[i].AssessmentID = assessmentID
			questions[i].OrderInAssessment = last + 1 + i
		}
		return tx.CreateInBatches(&questions, 100).Error
	})
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByAssessmentID(assessmentID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("assessment_id = ?", assessmentID).Order("order_in_assessment ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) CountByAssessmentID(assessmentID uint) (int64, error) {
	var n int64
	err := r.db.Model(&model.Question{}).Where("assessment_id = ?", assessmentID).Count(&n).Error
	return n, err
}

func maxOrder(tx *gorm.DB, assessmentID uint) (int, error) {
	var max int
	err := tx.Model(&model.Question{}).
		Where("assessment_id = ?", assessmentID).
		Select("COALESCE(MAX(order_in_assessment), 0)").
		Scan(&max).Error
	return max, err
}

func (r *questionRepository) Delete(id uint) error {
	return r.db.Delete(&model.Question{}, id).Error
}
