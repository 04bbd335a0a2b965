package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mcqdesk/config"
	"github.com/stretchr/testify/assert"
)

func TestNewGinEngineHealthz(t *testing.T) {
	r := NewGinEngine(&config.Config{Server: config.Server{GinMode: gin.TestMode}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.Equal(t, gin.TestMode, gin.Mode())
}
