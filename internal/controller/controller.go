// Package controller holds helpers shared by the admin and learner HTTP controllers.
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mcqdesk/internal/dto"
	"github.com/lshigami/mcqdesk/internal/service"
	"github.com/rs/zerolog/log"
)

// RespondError maps service errors onto HTTP statuses.
func RespondError(c *gin.Context, msg string, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: verr.Message, Details: verr.Details})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: msg, Details: []string{err.Error()}})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Message: msg, Details: []string{err.Error()}})
	case errors.Is(err, service.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: msg, Details: []string{err.Error()}})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg(msg)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: msg})
	}
}

// BindError answers 400 for a request body that failed to bind.
func BindError(c *gin.Context, err error) {
	log.Warn().Err(err).Str("path", c.FullPath()).Msg("Failed to bind request")
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
}

// UintParam reads a positive integer path parameter, answering 400 when it is malformed.
func UintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: fmt.Sprintf("Invalid %s format", name)})
		return 0, false
	}
	return uint(v), true
}

// OptionalUintQuery reads an optional positive integer query parameter. An
// absent parameter yields nil; a malformed or zero one answers 400.
func OptionalUintQuery(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: fmt.Sprintf("Invalid %s format in query", name)})
		return nil, false
	}
	u := uint(v)
	return &u, true
}
