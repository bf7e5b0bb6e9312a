package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/travel-booking/internal/domain/entity"
	handlers "github.com/oksasatya/travel-booking/internal/interface/http"
	"github.com/oksasatya/travel-booking/internal/interface/middleware"
)

type BookingModule struct {
	Handler *handlers.BookingHandler
	RDB     *redis.Client
}

func NewBookingModule(h *handlers.BookingHandler, rdb *redis.Client) *BookingModule {
	return &BookingModule{Handler: h, RDB: rdb}
}

func (m *BookingModule) Register(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings", middleware.RequireAuth())
	{
		bookings.GET("", m.Handler.List)
		bookings.POST("", middleware.RateLimit(m.RDB, 60, time.Minute, middleware.KeyByUserID(), nil), m.Handler.Create)
		bookings.GET("/:id", m.Handler.Get)
		bookings.PATCH("/:id/status", middleware.RequireRole(entity.RoleAdmin, entity.RoleHost), m.Handler.UpdateStatus)
		bookings.DELETE("/:id", m.Handler.Delete)
	}

	admin := rg.Group("/admin", middleware.RequireRole(entity.RoleAdmin))
	{
		admin.GET("/bookings", m.Handler.ListAll)
		admin.GET("/revenue", m.Handler.Revenue)
	}
}
