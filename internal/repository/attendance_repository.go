package repository

import (
	"github.com/lshigami/mcqdesk/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatusCount is one row of a per-status aggregate.
type StatusCount struct {
	Status string
	Count  int
}

type AttendanceRepository interface {
	// Upsert writes every record in one transaction, replacing an existing
	// mark for the same session and student.
	Upsert(records []model.AttendanceRecord) error
	FindBySession(sessionID string) ([]model.AttendanceRecord, error)
	CountByStudent(studentID uint) ([]StatusCount, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Upsert(records []model.AttendanceRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "student_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "remarks", "marked_at", "updated_at", "deleted_at"}),
		}).Create(&records).Error
	})
}

func (r *attendanceRepository) FindBySession(sessionID string) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.Where("session_id = ?", sessionID).Order("student_id ASC").Find(&records).Error
	return records, err
}

func (r *attendanceRepository) CountByStudent(studentID uint) ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.Model(&model.AttendanceRecord{}).
		Select("status, COUNT(*) as count").
		Where("student_id = ?", studentID).
		Group("status").
		Scan(&counts).Error
	return counts, err
}
