package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/travel-booking/internal/domain/apperror"
	"github.com/oksasatya/travel-booking/pkg/response"
	"github.com/oksasatya/travel-booking/pkg/validation"
)

// Errors maps service errors to HTTP responses. Unclassified errors become
// 500s; their text is only exposed when Debug is set.
type Errors struct {
	Logger *logrus.Logger
	Debug  bool
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, apperror.ErrValidation), errors.Is(err, apperror.ErrDuplicate):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, apperror.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (e Errors) Write(c *gin.Context, err error) {
	status := statusOf(err)
	if status != http.StatusInternalServerError {
		response.Error(c, status, apperror.Message(err), nil)
		return
	}
	e.Logger.WithError(err).WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"path":       c.FullPath(),
	}).Error("request failed")
	var details any
	if e.Debug {
		details = err.Error()
	}
	response.Error(c, status, "Internal server error", details)
}

// Bind reports a malformed body as a 400 with per-field details.
func (e Errors) Bind(c *gin.Context, err error) {
	response.Error(c, http.StatusBadRequest, validation.Message(err), validation.ToDetails(err))
}

// pathID parses a positive integer path parameter; it writes the 400 itself.
func pathID(c *gin.Context, name, invalid string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		response.Error(c, http.StatusBadRequest, invalid, nil)
		return 0, false
	}
	return id, true
}
