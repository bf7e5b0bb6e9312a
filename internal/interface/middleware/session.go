package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/travel-booking/internal/domain/apperror"
	"github.com/oksasatya/travel-booking/internal/domain/entity"
	"github.com/oksasatya/travel-booking/internal/domain/policy"
	"github.com/oksasatya/travel-booking/pkg/helpers"
	"github.com/oksasatya/travel-booking/pkg/response"
)

const (
	ctxUserKey   = "user"
	ctxCallerKey = "caller"
	// CtxUserIDKey holds the caller id as a string, used by rate-limit keys.
	CtxUserIDKey = "userID"
)

// Authenticator resolves a session token to the current user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}

// Session loads the caller from the session cookie when one is present.
// Requests without a valid session continue anonymously; a stale cookie is cleared.
func Session(auth Authenticator, cookies *helpers.Manager, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := cookies.Session(c)
		if !ok {
			c.Next()
			return
		}
		u, err := auth.Authenticate(c.Request.Context(), token)
		switch {
		case err == nil:
			c.Set(ctxUserKey, u)
			c.Set(ctxCallerKey, policy.CallerOf(u))
			c.Set(CtxUserIDKey, formatID(u.ID))
		case errors.Is(err, apperror.ErrUnauthenticated):
			cookies.Clear(c)
		default:
			logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("session lookup failed")
			response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
			return
		}
		c.Next()
	}
}

// CallerFrom returns the authenticated caller, or nil for anonymous requests.
func CallerFrom(c *gin.Context) *policy.Caller {
	if v, ok := c.Get(ctxCallerKey); ok {
		if caller, ok := v.(*policy.Caller); ok {
			return caller
		}
	}
	return nil
}

// UserFrom returns the authenticated user, or nil.
func UserFrom(c *gin.Context) *entity.User {
	if v, ok := c.Get(ctxUserKey); ok {
		if u, ok := v.(*entity.User); ok {
			return u
		}
	}
	return nil
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth() gin.HandlerFunc {
	return RequireRole(entity.Roles()...)
}

// RequireRole rejects anonymous callers with 401 and callers outside roles with 403.
func RequireRole(roles ...entity.Role) gin.HandlerFunc {
	return guard(func(caller *policy.Caller) error { return policy.Authorize(caller, roles...) })
}

// RequireOperation guards a route with the policy entry for op, including
// its 403 message.
func RequireOperation(op policy.Operation) gin.HandlerFunc {
	return guard(func(caller *policy.Caller) error { return policy.Can(caller, op) })
}

func guard(check func(*policy.Caller) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := check(CallerFrom(c)); err != nil {
			status := http.StatusForbidden
			if errors.Is(err, apperror.ErrUnauthenticated) {
				status = http.StatusUnauthorized
			}
			response.Error(c, status, apperror.Message(err), nil)
			return
		}
		c.Next()
	}
}
