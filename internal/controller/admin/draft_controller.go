package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mcqdesk/internal/controller"
	"github.com/lshigami/mcqdesk/internal/dto"
	"github.com/lshigami/mcqdesk/internal/service"
)

type DraftController struct {
	draftService service.DraftService
}

func NewDraftController(draftService service.DraftService) *DraftController {
	return &DraftController{draftService: draftService}
}

// SaveDraft godoc
// @Summary (Admin) Save assessment-builder state
// @Description Overwrites the draft stored under owner and key. Drafts expire after the configured TTL.
// @Tags Admin - Drafts
// @Accept json
// @Produce json
// @Param owner path string true "Draft owner"
// @Param key path string true "Draft key"
// @Param draft body dto.DraftSaveRequest true "Builder state"
// @Success 200 {object} dto.DraftDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid draft"
// @Router /admin/drafts/{owner}/{key} [put]
func (c *DraftController) SaveDraft(ctx *gin.Context) {
	var req dto.DraftSaveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	resp, err := c.draftService.SaveDraft(ctx.Request.Context(), ctx.Param("owner"), ctx.Param("key"), req.Payload)
	if err != nil {
		controller.RespondError(ctx, "Failed to save draft", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// LoadDraft godoc
// @Summary (Admin) Restore assessment-builder state
// @Tags Admin - Drafts
// @Produce json
// @Param owner path string true "Draft owner"
// @Param key path string true "Draft key"
// @Success 200 {object} dto.DraftDTO
// @Failure 404 {object} dto.ErrorResponse "No draft"
// @Router /admin/drafts/{owner}/{key} [get]
func (c *DraftController) LoadDraft(ctx *gin.Context) {
	resp, err := c.draftService.LoadDraft(ctx.Request.Context(), ctx.Param("owner"), ctx.Param("key"))
	if err != nil {
		controller.RespondError(ctx, "Failed to load draft", err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteDraft godoc
// @Summary (Admin) Discard a draft
// @Tags Admin - Drafts
// @Param owner path string true "Draft owner"
// @Param key path string true "Draft key"
// @Success 204
// @Router /admin/drafts/{owner}/{key} [delete]
func (c *DraftController) DeleteDraft(ctx *gin.Context) {
	if err := c.draftService.DeleteDraft(ctx.Request.Context(), ctx.Param("owner"), ctx.Param("key")); err != nil {
		controller.RespondError(ctx, "Failed to delete draft", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
