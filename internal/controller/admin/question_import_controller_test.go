package admin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mcqdesk/config"
	"github.com/lshigami/mcqdesk/internal/dto"
	"github.com/lshigami/mcqdesk/internal/importer"
	"github.com/lshigami/mcqdesk/internal/model"
	"github.com/lshigami/mcqdesk/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvHeader = "question_text,option_a,option_b,option_c,option_d,correct_option,explanation,difficulty_level,topic,skills"

// stubAssessments records appended batches; other methods are unused here.
type stubAssessments struct {
	service.AssessmentService
	appendErr error
	calls     int
	source    string
	staged    []importer.Question
}

func (s *stubAssessments) AppendQuestions(assessmentID uint, staged []importer.Question, source string) ([]dto.QuestionResponseDTO, error) {
	s.calls++
	if s.appendErr != nil {
		return nil, s.appendErr
	}
	s.source = source
	s.staged = staged
	out := make([]dto.QuestionResponseDTO, len(staged))
	for i, q := range staged {
		out[i] = dto.QuestionResponseDTO{
			ID:                uint(i + 1),
			AssessmentID:      assessmentID,
			OrderInAssessment: i + 1,
			QuestionText:      q.QuestionText,
			CorrectOption:     q.CorrectOption,
		}
	}
	return out, nil
}

func setupImportRouter(maxBytes int64) (*gin.Engine, *stubAssessments) {
	gin.SetMode(gin.TestMode)
	stub := &stubAssessments{}
	ctrl := NewQuestionImportController(
		service.NewQuestionImportService(stub),
		&config.Config{Import: config.Import{MaxBytes: maxBytes}},
	)
	r := gin.New()
	r.POST("/questions/import/preview", ctrl.PreviewImport)
	r.POST("/assessments/:id/questions/import", ctrl.ImportQuestions)
	r.GET("/questions/import/template", ctrl.DownloadTemplate)
	return r, stub
}

func multipartBody(t *testing.T, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", "questions.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestPreviewImportRawBody(t *testing.T) {
	r, stub := setupImportRouter(1 << 20)
	csv := csvHeader + "\n\"Which, one?\",a,b,c,d,b,,Hard,,\n"

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/questions/import/preview", strings.NewReader(csv))
	req.Header.Set("Content-Type", "text/csv")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ImportPreviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Empty(t, resp.Errors)
	require.Len(t, resp.Questions, 1)
	assert.Equal(t, "Which, one?", resp.Questions[0].QuestionText)
	assert.Equal(t, "B", resp.Questions[0].CorrectOption)
	assert.Equal(t, importer.Hard, resp.Questions[0].DifficultyLevel)
	assert.Zero(t, stub.calls)
}

func TestPreviewImportReportsRowErrors(t *testing.T) {
	r, _ := setupImportRouter(1 << 20)
	csv := csvHeader + "\nQ1,a,b,c,d,A\nQ2,a,b,c,d,X\n"

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/questions/import/preview", strings.NewReader(csv))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ImportPreviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Count)
	assert.Empty(t, resp.Questions)
	assert.Equal(t, []string{"Row 2: Correct option must be A, B, C, or D"}, resp.Errors)
}

func TestPreviewImportMultipartStripsBOM(t *testing.T) {
	r, _ := setupImportRouter(1 << 20)
	body, contentType := multipartBody(t, "\ufeff"+csvHeader+"\r\nQ,a,b,c,d,D\r\n")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/questions/import/preview", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ImportPreviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Errors)
	assert.Equal(t, 1, resp.Count)
}

func TestPreviewImportMissingFileField(t *testing.T) {
	r, _ := setupImportRouter(1 << 20)
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.WriteField("other", "x"))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/questions/import/preview", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPreviewImportTooLarge(t *testing.T) {
	r, _ := setupImportRouter(16)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/questions/import/preview", strings.NewReader(csvHeader))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestPreviewImportRejectsInvalidUTF8(t *testing.T) {
	r, _ := setupImportRouter(1 << 20)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/questions/import/preview", strings.NewReader(csvHeader+"\nQ,\xff,b,c,d,A\n"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportQuestionsStoresWholeBatch(t *testing.T) {
	r, stub := setupImportRouter(1 << 20)
	csv := csvHeader + "\nQ1,a,b,c,d,A\nQ2,a,b,c,d,c\n"

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/assessments/7/questions/import", strings.NewReader(csv))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.ImportResultDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(7), resp.AssessmentID)
	assert.Equal(t, 2, resp.Imported)
	assert.Equal(t, model.QuestionSourceCSV, stub.source)
	require.Len(t, stub.staged, 2)
	assert.Equal(t, "C", stub.staged[1].CorrectOption)
}

func TestImportQuestionsRejectsAnyInvalidRow(t *testing.T) {
	r, stub := setupImportRouter(1 << 20)
	csv := csvHeader + "\nQ1,a,b,c,d,A\n,a,b,c,d,A\n"

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/assessments/7/questions/import", strings.NewReader(csv))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CSV import failed", resp.Message)
	assert.Equal(t, []string{"Row 2: Question text is required"}, resp.Details)
	assert.Zero(t, stub.calls)
}

func TestImportQuestionsServiceErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "published", err: fmt.Errorf("assessment 7 is published: %w", service.ErrConflict), want: http.StatusConflict},
		{name: "missing", err: fmt.Errorf("assessment 7: %w", service.ErrNotFound), want: http.StatusNotFound},
		{name: "storage", err: fmt.Errorf("insert failed"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, stub := setupImportRouter(1 << 20)
			stub.appendErr = tt.err

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/assessments/7/questions/import", strings.NewReader(csvHeader+"\nQ,a,b,c,d,A\n"))
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestImportQuestionsInvalidID(t *testing.T) {
	r, stub := setupImportRouter(1 << 20)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/assessments/abc/questions/import", strings.NewReader(csvHeader))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, stub.calls)
}

func TestDownloadTemplate(t *testing.T) {
	r, _ := setupImportRouter(1 << 20)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/questions/import/template", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, csvHeader, w.Body.String())
	assert.Equal(t, importer.TemplateContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="mcq_template.csv"`)
}
