package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/travel-booking/internal/domain/entity"
	handlers "github.com/oksasatya/travel-booking/internal/interface/http"
	"github.com/oksasatya/travel-booking/internal/interface/middleware"
)

// UserModule serves GET /api/hosts and the admin user management routes.
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.GET("/hosts", middleware.RequireAuth(), m.Handler.Hosts)

	admin := rg.Group("/admin/users", middleware.RequireRole(entity.RoleAdmin))
	{
		admin.GET("", m.Handler.List)
		admin.DELETE("/:id", m.Handler.Delete)
	}
}
