package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mcqdesk/internal/controller"
	"github.com/lshigami/mcqdesk/internal/dto"
	"github.com/lshigami/mcqdesk/internal/service"
	"github.com/rs/zerolog/log"
)

type AssessmentController struct {
	attemptService service.AttemptService
}

func NewAssessmentController(attemptService service.AttemptService) *AssessmentController {
	return &AssessmentController{attemptService: attemptService}
}

// ListAssessments godoc
// @Summary (User) List published assessments
// @Tags User - Assessments & Attempts
// @Produce json
// @Success 200 {array} dto.AssessmentSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assessments [get]
func (c *AssessmentController) ListAssessments(ctx *gin.Context) {
	list, err := c.attemptService.ListPublished()
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve assessments", err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// GetAssessment godoc
// @Summary (User) Get a published assessment
// @Description Questions are returned without correct options or explanations.
// @Tags User - Assessments & Attempts
// @Produce json
// @Param id path int true "Assessment ID"
// @Success 200 {object} dto.LearnerAssessmentDTO
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Router /assessments/{id} [get]
func (c *AssessmentController) GetAssessment(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	resp, err := c.attemptService.GetForLearner(id)
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve assessment", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitAttempt godoc
// @Summary (User) Submit answers for an assessment
// @Tags User - Assessments & Attempts
// @Accept json
// @Produce json
// @Param id path int true "Assessment ID"
// @Param attempt body dto.AttemptSubmitDTO true "Answers"
// @Success 201 {object} dto.AttemptDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid answers"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Router /assessments/{id}/attempts [post]
func (c *AssessmentController) SubmitAttempt(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.AttemptSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	resp, err := c.attemptService.SubmitAttempt(id, req)
	if err != nil {
		controller.RespondError(ctx, "Failed to submit attempt", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListMyAttempts godoc
// @Summary (User) List attempts for an assessment
// @Tags User - Assessments & Attempts
// @Produce json
// @Param id path int true "Assessment ID"
// @Param user_id query int false "Only attempts by this user"
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters"
// @Router /assessments/{id}/my-attempts [get]
func (c *AssessmentController) ListMyAttempts(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	userID, ok := controller.OptionalUintQuery(ctx, "user_id")
	if !ok {
		return
	}
	if userID != nil {
		log.Debug().Uint("userID", *userID).Uint("assessmentID", id).Msg("Listing attempts for user")
	}
	resp, err := c.attemptService.ListAttempts(id, userID)
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve attempts", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetAttempt godoc
// @Summary (User) Get a graded attempt
// @Tags User - Assessments & Attempts
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.AttemptDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Router /attempts/{attempt_id} [get]
func (c *AssessmentController) GetAttempt(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "attempt_id")
	if !ok {
		return
	}
	resp, err := c.attemptService.GetAttempt(id)
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve attempt", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
