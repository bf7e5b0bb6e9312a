package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/travel-booking/internal/domain/policy"
	handlers "github.com/oksasatya/travel-booking/internal/interface/http"
	"github.com/oksasatya/travel-booking/internal/interface/middleware"
)

// PostModule serves the travel blog. Reading is public; writing needs a
// session, and creating a post needs the host or admin role.
type PostModule struct {
	Handler *handlers.PostHandler
	RDB     *redis.Client
}

func NewPostModule(h *handlers.PostHandler, rdb *redis.Client) *PostModule {
	return &PostModule{Handler: h, RDB: rdb}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	searchLimiter := middleware.RateLimit(m.RDB, 120, time.Minute, middleware.KeyByIP(), nil)

	rg.GET("/posts", m.Handler.List)
	rg.GET("/posts/search", searchLimiter, m.Handler.Search)

	auth := rg.Group("/posts", middleware.RequireAuth())
	{
		auth.POST("", middleware.RequireOperation(policy.CreatePost), m.Handler.Create)
		auth.PATCH("/:id", m.Handler.Update)
		auth.POST("/:id/cover", middleware.RateLimit(m.RDB, 10, time.Minute, middleware.KeyByUserID(), nil), m.Handler.UploadCover)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
