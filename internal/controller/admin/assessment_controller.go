package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mcqdesk/internal/controller"
	"github.com/lshigami/mcqdesk/internal/dto"
	"github.com/lshigami/mcqdesk/internal/service"
)

type AssessmentController struct {
	assessmentService service.AssessmentService
}

func NewAssessmentController(assessmentService service.AssessmentService) *AssessmentController {
	return &AssessmentController{assessmentService: assessmentService}
}

// CreateAssessment godoc
// @Summary (Admin) Create an assessment
// @Description Creates a draft assessment, optionally with its first questions. Questions follow the same rules as CSV rows; any invalid question rejects the whole request.
// @Tags Admin - Assessments
// @Accept json
// @Produce json
// @Param assessment body dto.AssessmentCreateDTO true "Assessment data"
// @Success 201 {object} dto.AssessmentResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Title already used"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/assessments [post]
func (c *AssessmentController) CreateAssessment(ctx *gin.Context) {
	var req dto.AssessmentCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	resp, err := c.assessmentService.CreateAssessment(req)
	if err != nil {
		controller.RespondError(ctx, "Failed to create assessment", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListAssessments godoc
// @Summary (Admin) List assessments
// @Tags Admin - Assessments
// @Produce json
// @Success 200 {array} dto.AssessmentSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/assessments [get]
func (c *AssessmentController) ListAssessments(ctx *gin.Context) {
	list, err := c.assessmentService.ListAssessments()
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve assessments", err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// GetAssessment godoc
// @Summary (Admin) Get an assessment with its questions
// @Tags Admin - Assessments
// @Produce json
// @Param id path int true "Assessment ID"
// @Success 200 {object} dto.AssessmentResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Router /admin/assessments/{id} [get]
func (c *AssessmentController) GetAssessment(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	resp, err := c.assessmentService.GetAssessment(id)
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve assessment", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// PublishAssessment godoc
// @Summary (Admin) Publish an assessment
// @Description Makes a draft assessment visible to learners. Published assessments can no longer be edited.
// @Tags Admin - Assessments
// @Produce json
// @Param id path int true "Assessment ID"
// @Success 200 {object} dto.AssessmentResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Assessment has no questions"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 409 {object} dto.ErrorResponse "Already published"
// @Router /admin/assessments/{id}/publish [post]
func (c *AssessmentController) PublishAssessment(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	resp, err := c.assessmentService.PublishAssessment(id)
	if err != nil {
		controller.RespondError(ctx, "Failed to publish assessment", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// AddQuestions godoc
// @Summary (Admin) Add questions to a draft assessment
// @Description Appends manually authored or AI-generated questions. All questions are stored or none.
// @Tags Admin - Assessments
// @Accept json
// @Produce json
// @Param id path int true "Assessment ID"
// @Param questions body dto.AddQuestionsDTO true "Questions to add"
// @Success 201 {array} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid questions"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 409 {object} dto.ErrorResponse "Assessment already published"
// @Router /admin/assessments/{id}/questions [post]
func (c *AssessmentController) AddQuestions(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.AddQuestionsDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	resp, err := c.assessmentService.AddQuestions(id, req)
	if err != nil {
		controller.RespondError(ctx, "Failed to add questions", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// DeleteQuestion godoc
// @Summary (Admin) Remove a question from a draft assessment
// @Tags Admin - Assessments
// @Param id path int true "Assessment ID"
// @Param question_id path int true "Question ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 409 {object} dto.ErrorResponse "Assessment already published"
// @Router /admin/assessments/{id}/questions/{question_id} [delete]
func (c *AssessmentController) DeleteQuestion(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	qid, ok := controller.UintParam(ctx, "question_id")
	if !ok {
		return
	}
	if err := c.assessmentService.DeleteQuestion(id, qid); err != nil {
		controller.RespondError(ctx, "Failed to delete question", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
