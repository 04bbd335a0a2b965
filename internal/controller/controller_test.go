package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mcqdesk/internal/dto"
	"github.com/lshigami/mcqdesk/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
		wantDetails []string
	}{
		{
			name:        "validation",
			err:         &service.ValidationError{Message: "CSV import failed", Details: []string{"Row 1: Question text is required"}},
			wantCode:    http.StatusBadRequest,
			wantMessage: "CSV import failed",
			wantDetails: []string{"Row 1: Question text is required"},
		},
		{
			name:        "wrapped not found",
			err:         fmt.Errorf("assessment 3: %w", service.ErrNotFound),
			wantCode:    http.StatusNotFound,
			wantMessage: "op failed",
			wantDetails: []string{"assessment 3: not found"},
		},
		{name: "conflict", err: service.ErrConflict, wantCode: http.StatusConflict, wantMessage: "op failed", wantDetails: []string{"conflict"}},
		{name: "unavailable", err: service.ErrUnavailable, wantCode: http.StatusServiceUnavailable, wantMessage: "op failed", wantDetails: []string{"service unavailable"}},
		{name: "internal", err: errors.New("db down"), wantCode: http.StatusInternalServerError, wantMessage: "op failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			RespondError(c, "op failed", tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, tt.wantDetails, resp.Details)
		})
	}
}

func TestUintParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for raw, want := range map[string]bool{"12": true, "0": false, "-1": false, "x": false} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: raw}}

		v, ok := UintParam(c, "id")
		assert.Equal(t, want, ok, raw)
		if ok {
			assert.Equal(t, uint(12), v)
		} else {
			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
	}
}

func TestOptionalUintQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	five := uint(5)
	tests := []struct {
		name   string
		url    string
		want   *uint
		wantOK bool
	}{
		{name: "present", url: "/?user_id=5", want: &five, wantOK: true},
		{name: "absent", url: "/", want: nil, wantOK: true},
		{name: "malformed", url: "/?user_id=abc", wantOK: false},
		{name: "zero", url: "/?user_id=0", wantOK: false},
		{name: "negative", url: "/?user_id=-3", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, tt.url, nil)

			v, ok := OptionalUintQuery(c, "user_id")
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Nil(t, v)
				return
			}
			assert.Equal(t, tt.want, v)
		})
	}
}
