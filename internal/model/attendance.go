package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

type AttendanceRecord struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	SessionID string         `json:"session_id" gorm:"not null;uniqueIndex:idx_attendance_session_student"`
	StudentID uint           `json:"student_id" gorm:"not null;uniqueIndex:idx_attendance_session_student;index"`
	Status    string         `json:"status" gorm:"not null"` // "present", "absent", "late"
	Remarks   string         `json:"remarks,omitempty"`
	MarkedAt  time.Time      `json:"marked_at"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
