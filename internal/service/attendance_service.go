package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/mcqdesk/internal/dto"
	"github.com/lshigami/mcqdesk/internal/model"
	"github.com/lshigami/mcqdesk/internal/repository"
	"github.com/rs/zerolog/log"
)

type AttendanceService interface {
	// MarkAttendance records every entry or none of them.
	MarkAttendance(sessionID string, req dto.MarkAttendanceRequest) ([]dto.AttendanceRecordDTO, error)
	ListSession(sessionID string) ([]dto.AttendanceRecordDTO, error)
	StudentSummary(studentID uint) (*dto.AttendanceSummaryDTO, error)
}

type attendanceService struct {
	repo repository.AttendanceRepository
	now  func() time.Time
}

func NewAttendanceService(repo repository.AttendanceRepository) AttendanceService {
	return &attendanceService{repo: repo, now: time.Now}
}

func (s *attendanceService) MarkAttendance(sessionID string, req dto.MarkAttendanceRequest) ([]dto.AttendanceRecordDTO, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, newValidationError("Session ID is required")
	}

	seen := make(map[uint]bool, len(req.Entries))
	var details []string
	records := make([]model.AttendanceRecord, 0, len(req.Entries))
	markedAt := s.now().UTC()
	for i, e := range req.Entries {
		status := strings.ToLower(strings.TrimSpace(e.Status))
		if !validAttendanceStatus(status) {
			details = append(details, fmt.Sprintf("Entry %d: status must be present, absent, or late", i+1))
		}
		if seen[e.StudentID] {
			details = append(details, fmt.Sprintf("Entry %d: student %d is listed more than once", i+1, e.StudentID))
		}
		seen[e.StudentID] = true
		records = append(records, model.AttendanceRecord{
			SessionID: sessionID,
			StudentID: e.StudentID,
			Status:    status,
			Remarks:   strings.TrimSpace(e.Remarks),
			MarkedAt:  markedAt,
		})
	}
	if len(details) > 0 {
		return nil, newValidationError("Invalid attendance entries", details...)
	}

	if err := s.repo.Upsert(records); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("Failed to mark attendance")
		return nil, fmt.Errorf("database error marking attendance: %w", err)
	}
	log.Info().Str("sessionID", sessionID).Int("entries", len(records)).Msg("Attendance marked")
	return s.ListSession(sessionID)
}

func (s *attendanceService) ListSession(sessionID string) ([]dto.AttendanceRecordDTO, error) {
	records, err := s.repo.FindBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("error fetching attendance for session %s: %w", sessionID, err)
	}
	out := make([]dto.AttendanceRecordDTO, 0, len(records))
	for _, r := range records {
		var d dto.AttendanceRecordDTO
		copier.Copy(&d, &r)
		out = append(out, d)
	}
	return out, nil
}

func (s *attendanceService) StudentSummary(studentID uint) (*dto.AttendanceSummaryDTO, error) {
	counts, err := s.repo.CountByStudent(studentID)
	if err != nil {
		return nil, fmt.Errorf("error fetching attendance for student %d: %w", studentID, err)
	}
	sum := &dto.AttendanceSummaryDTO{StudentID: studentID}
	for _, c := range counts {
		switch c.Status {
		case model.AttendancePresent:
			sum.Present += c.Count
		case model.AttendanceLate:
			sum.Late += c.Count
		case model.AttendanceAbsent:
			sum.Absent += c.Count
		}
	}
	sum.Total = sum.Present + sum.Late + sum.Absent
	if sum.Total > 0 {
		sum.Rate = math.Round(float64(sum.Present+sum.Late)*10000/float64(sum.Total)) / 100
	}
	return sum, nil
}

func validAttendanceStatus(s string) bool {
	switch s {
	case model.AttendancePresent, model.AttendanceAbsent, model.AttendanceLate:
		return true
	}
	return false
}
