package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/travel-booking/internal/domain/apperror"
	"github.com/oksasatya/travel-booking/internal/domain/entity"
	"github.com/oksasatya/travel-booking/internal/domain/policy"
	"github.com/oksasatya/travel-booking/pkg/helpers"
)

type fakeAuth struct {
	fn func(token string) (*entity.User, error)
}

func (f fakeAuth) Authenticate(_ context.Context, token string) (*entity.User, error) {
	return f.fn(token)
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newEngine(auth Authenticator, guards ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), RealIP(), Session(auth, helpers.NewCookie("sid", "", false), quietLogger()))
	handlers := append(guards, func(c *gin.Context) {
		caller := CallerFrom(c)
		if caller == nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, "%s:%d", caller.Role, caller.ID)
	})
	r.GET("/x", handlers...)
	return r
}

func do(r http.Handler, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionLoadsCaller(t *testing.T) {
	auth := fakeAuth{fn: func(token string) (*entity.User, error) {
		if token == "good" {
			return &entity.User{ID: 4, Role: entity.RoleHost}, nil
		}
		return nil, apperror.New(apperror.ErrUnauthenticated, "Not authenticated")
	}}
	r := newEngine(auth)

	assert.Equal(t, "host:4", do(r, "good").Body.String())
	assert.Equal(t, "anonymous", do(r, "").Body.String())

	w := do(r, "stale")
	assert.Equal(t, "anonymous", w.Body.String())
	assert.Contains(t, w.Header().Get("Set-Cookie"), "sid=;")
	assert.NotEmpty(t, w.Header().Get(headerRequestID))
}

func TestSessionStorageErrorIs500(t *testing.T) {
	r := newEngine(fakeAuth{fn: func(string) (*entity.User, error) { return nil, errors.New("disk gone") }})
	w := do(r, "any")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequireRole(t *testing.T) {
	auth := fakeAuth{fn: func(token string) (*entity.User, error) {
		return &entity.User{ID: 1, Role: entity.Role(token)}, nil
	}}
	r := newEngine(auth, RequireRole(entity.RoleAdmin, entity.RoleHost))

	assert.Equal(t, http.StatusUnauthorized, do(r, "").Code)
	w := do(r, "traveler")
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Insufficient permissions")
	assert.Equal(t, http.StatusOK, do(r, "admin").Code)
}

func TestRequireOperationUsesPolicyMessage(t *testing.T) {
	auth := fakeAuth{fn: func(token string) (*entity.User, error) {
		return &entity.User{ID: 1, Role: entity.Role(token)}, nil
	}}
	r := newEngine(auth, RequireOperation(policy.CreatePost))

	assert.Equal(t, http.StatusUnauthorized, do(r, "").Code)
	w := do(r, "traveler")
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Only hosts and admins can create posts")
	assert.Equal(t, http.StatusOK, do(r, "host").Code)
}

func TestRateLimitWithoutRedisPassesThrough(t *testing.T) {
	r := newEngine(fakeAuth{fn: func(string) (*entity.User, error) { return nil, nil }},
		RateLimit(nil, 1, 0, KeyByIP(), nil))
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, do(r, "").Code)
	}
}

func TestRealIPPrefersForwardedHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RealIP())
	r.GET("/ip", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("real_ip")) })

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "203.0.113.7", w.Body.String())
}
