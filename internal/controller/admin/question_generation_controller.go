package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mcqdesk/internal/controller"
	"github.com/lshigami/mcqdesk/internal/dto"
	"github.com/lshigami/mcqdesk/internal/service"
)

type QuestionGenerationController struct {
	generator service.QuestionGeneratorService
}

func NewQuestionGenerationController(generator service.QuestionGeneratorService) *QuestionGenerationController {
	return &QuestionGenerationController{generator: generator}
}

// GenerateQuestions godoc
// @Summary (Admin) Generate MCQs with AI
// @Description Returns staged questions for review; nothing is stored until they are added to an assessment.
// @Tags Admin - Question Generation
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuestionsRequest true "Generation parameters"
// @Success 200 {object} dto.GenerateQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request or unusable AI output"
// @Failure 503 {object} dto.ErrorResponse "AI service unavailable"
// @Router /admin/questions/generate [post]
func (c *QuestionGenerationController) GenerateQuestions(ctx *gin.Context) {
	var req dto.GenerateQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	resp, err := c.generator.Generate(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Failed to generate questions", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
