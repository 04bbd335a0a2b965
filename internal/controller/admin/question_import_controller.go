package admin

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mcqdesk/config"
	"github.com/lshigami/mcqdesk/internal/controller"
	"github.com/lshigami/mcqdesk/internal/dto"
	"github.com/lshigami/mcqdesk/internal/service"
	"github.com/rs/zerolog/log"
)

const utf8BOM = "\ufeff"

var errTooLarge = errors.New("file too large")

type QuestionImportController struct {
	importService service.QuestionImportService
	maxBytes      int64
}

func NewQuestionImportController(importService service.QuestionImportService, cfg *config.Config) *QuestionImportController {
	return &QuestionImportController{importService: importService, maxBytes: cfg.Import.MaxBytes}
}

// PreviewImport godoc
// @Summary (Admin) Validate a CSV of questions without storing it
// @Description Accepts a multipart "file" field or a raw text/csv body. The response always carries the parse outcome; questions is empty whenever errors is not.
// @Tags Admin - Question Import
// @Accept multipart/form-data
// @Accept text/csv
// @Produce json
// @Param file formData file false "CSV file"
// @Success 200 {object} dto.ImportPreviewResponse
// @Failure 400 {object} dto.ErrorResponse "Unreadable upload"
// @Failure 413 {object} dto.ErrorResponse "File too large"
// @Router /admin/questions/import/preview [post]
func (c *QuestionImportController) PreviewImport(ctx *gin.Context) {
	text, ok := c.readCSV(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, c.importService.Preview(text))
}

// ImportQuestions godoc
// @Summary (Admin) Import a CSV of questions into a draft assessment
// @Description All rows are stored or none: a single invalid row rejects the file and every row message is returned in details.
// @Tags Admin - Question Import
// @Accept multipart/form-data
// @Accept text/csv
// @Produce json
// @Param id path int true "Assessment ID"
// @Param file formData file false "CSV file"
// @Success 201 {object} dto.ImportResultDTO
// @Failure 400 {object} dto.ErrorResponse "Validation errors"
// @Failure 404 {object} dto.ErrorResponse "Assessment not found"
// @Failure 409 {object} dto.ErrorResponse "Assessment already published"
// @Failure 413 {object} dto.ErrorResponse "File too large"
// @Router /admin/assessments/{id}/questions/import [post]
func (c *QuestionImportController) ImportQuestions(ctx *gin.Context) {
	id, ok := controller.UintParam(ctx, "id")
	if !ok {
		return
	}
	text, ok := c.readCSV(ctx)
	if !ok {
		return
	}
	resp, err := c.importService.ImportIntoAssessment(id, text)
	if err != nil {
		controller.RespondError(ctx, "Failed to import questions", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// DownloadTemplate godoc
// @Summary (Admin) Download the CSV import template
// @Tags Admin - Question Import
// @Produce text/csv
// @Success 200 {file} file "mcq_template.csv"
// @Router /admin/questions/import/template [get]
func (c *QuestionImportController) DownloadTemplate(ctx *gin.Context) {
	tpl := c.importService.Template()
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, tpl.FileName))
	ctx.Data(http.StatusOK, tpl.ContentType, tpl.Body)
}

// readCSV returns the uploaded text, answering the request itself on failure.
func (c *QuestionImportController) readCSV(ctx *gin.Context) (string, bool) {
	var (
		raw []byte
		err error
	)
	if strings.HasPrefix(ctx.ContentType(), "multipart/") {
		raw, err = c.readFormFile(ctx)
	} else {
		raw, err = readLimited(ctx.Request.Body, c.maxBytes)
	}
	switch {
	case errors.Is(err, errTooLarge):
		ctx.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
			Message: fmt.Sprintf("CSV file must be at most %d bytes", c.maxBytes),
		})
		return "", false
	case err != nil:
		log.Warn().Err(err).Msg("Failed to read CSV upload")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Could not read CSV upload", Details: []string{err.Error()}})
		return "", false
	}
	if !utf8.Valid(raw) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "CSV file must be UTF-8 encoded"})
		return "", false
	}
	return strings.TrimPrefix(string(raw), utf8BOM), true
}

func (c *QuestionImportController) readFormFile(ctx *gin.Context) ([]byte, error) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("missing multipart field \"file\": %w", err)
	}
	if fh.Size > c.maxBytes {
		return nil, errTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLimited(f, c.maxBytes)
}

func readLimited(r io.Reader, max int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > max {
		return nil, errTooLarge
	}
	return b, nil
}
