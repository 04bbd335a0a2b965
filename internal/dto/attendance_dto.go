package dto

import "time"

type AttendanceEntryDTO struct {
	StudentID uint   `json:"student_id" binding:"required"`
	Status    string `json:"status" binding:"required"`
	Remarks   string `json:"remarks,omitempty"`
}

type MarkAttendanceRequest struct {
	Entries []AttendanceEntryDTO `json:"entries" binding:"required,min=1,dive"`
}

type AttendanceRecordDTO struct {
	ID        uint      `json:"id"`
	SessionID string    `json:"session_id"`
	StudentID uint      `json:"student_id"`
	Status    string    `json:"status"`
	Remarks   string    `json:"remarks,omitempty"`
	MarkedAt  time.Time `json:"marked_at"`
}

type AttendanceSummaryDTO struct {
	StudentID uint    `json:"student_id"`
	Present   int     `json:"present"`
	Late      int     `json:"late"`
	Absent    int     `json:"absent"`
	Total     int     `json:"total"`
	Rate      float64 `json:"rate"` // (present + late) / total, as a percentage
}
