package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/travel-booking/internal/domain/apperror"
	"github.com/oksasatya/travel-booking/pkg/response"
)

func TestFlexTypes(t *testing.T) {
	var req struct {
		HostID flexInt    `json:"hostId"`
		Guests flexString `json:"guests"`
		Price  flexString `json:"price"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"hostId":"12","guests":3,"price":499.5}`), &req))
	assert.Equal(t, flexInt(12), req.HostID)
	assert.Equal(t, flexString("3"), req.Guests)
	assert.Equal(t, flexString("499.5"), req.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"hostId":"abc","guests":null,"price":"1,200"}`), &req))
	assert.Equal(t, flexInt(0), req.HostID)
	assert.Equal(t, flexString(""), req.Guests)
	assert.Equal(t, flexString("1,200"), req.Price)

	assert.Error(t, json.Unmarshal([]byte(`{"guests":true}`), &req))
}

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperror.Validation("x"), http.StatusBadRequest},
		{apperror.New(apperror.ErrDuplicate, "x"), http.StatusBadRequest},
		{apperror.New(apperror.ErrUnauthenticated, "x"), http.StatusUnauthorized},
		{apperror.Forbidden("x"), http.StatusForbidden},
		{apperror.NotFound("x"), http.StatusNotFound},
		{apperror.New(apperror.ErrUnavailable, "x"), http.StatusServiceUnavailable},
		{fmt.Errorf("wrapped: %w", apperror.NotFound("x")), http.StatusNotFound},
		{errors.New("disk full"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusOf(tc.err), tc.err.Error())
	}
}

func writeErr(debug bool, err error) (int, response.ErrorBody) {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Errors{Logger: logger, Debug: debug}.Write(c, err)

	var body response.ErrorBody
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w.Code, body
}

func TestInternalErrorsHideDetailOutsideDevelopment(t *testing.T) {
	code, body := writeErr(false, errors.New("open data/users.json: permission denied"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error", body.Error)
	assert.Nil(t, body.Details)

	_, body = writeErr(true, errors.New("open data/users.json: permission denied"))
	assert.Equal(t, "open data/users.json: permission denied", body.Details)

	code, body = writeErr(false, apperror.NotFound("Booking not found"))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Booking not found", body.Error)
}
