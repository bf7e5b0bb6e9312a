package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/travel-booking/internal/interface/http"
	"github.com/oksasatya/travel-booking/internal/interface/middleware"
)

// AuthModule serves account routes.
// Public: POST /api/register, POST /api/login, POST /api/logout
// Protected: GET /api/user, PUT /api/user
type AuthModule struct {
	Handler *handlers.AuthHandler
	RDB     *redis.Client
}

func NewAuthModule(h *handlers.AuthHandler, rdb *redis.Client) *AuthModule {
	return &AuthModule{Handler: h, RDB: rdb}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(m.RDB, 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(m.RDB, 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/register", registerLimiter, m.Handler.Register)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/logout", m.Handler.Logout)

	auth := rg.Group("/user", middleware.RequireAuth())
	{
		auth.GET("", m.Handler.Me)
		auth.PUT("", middleware.RateLimit(m.RDB, 30, time.Minute, middleware.KeyByUserID(), nil), m.Handler.UpdateProfile)
	}
}
