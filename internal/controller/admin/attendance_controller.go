package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mcqdesk/internal/controller"
	"github.com/lshigami/mcqdesk/internal/dto"
	"github.com/lshigami/mcqdesk/internal/service"
)

type AttendanceController struct {
	attendanceService service.AttendanceService
}

func NewAttendanceController(attendanceService service.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// MarkAttendance godoc
// @Summary (Admin) Mark attendance for a session
// @Description Records one status per student. Existing marks for the same student are replaced. Any invalid entry rejects the whole request.
// @Tags Admin - Attendance
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param request body dto.MarkAttendanceRequest true "Attendance entries"
// @Success 200 {array} dto.AttendanceRecordDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid entries"
// @Router /admin/attendance/sessions/{session_id} [post]
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	resp, err := c.attendanceService.MarkAttendance(ctx.Param("session_id"), req)
	if err != nil {
		controller.RespondError(ctx, "Failed to mark attendance", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListSession godoc
// @Summary (Admin) List attendance for a session
// @Tags Admin - Attendance
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {array} dto.AttendanceRecordDTO
// @Router /admin/attendance/sessions/{session_id} [get]
func (c *AttendanceController) ListSession(ctx *gin.Context) {
	resp, err := c.attendanceService.ListSession(ctx.Param("session_id"))
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve attendance", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// StudentSummary godoc
// @Summary (Admin) Attendance summary for a student
// @Tags Admin - Attendance
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.AttendanceSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Router /admin/attendance/students/{student_id}/summary [get]
func (c *AttendanceController) StudentSummary(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "student_id")
	if !ok {
		return
	}
	resp, err := c.attendanceService.StudentSummary(id)
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve attendance summary", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
