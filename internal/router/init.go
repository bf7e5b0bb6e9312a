package router

import (
	"github.com/oksasatya/travel-booking/internal/container"
	handlers "github.com/oksasatya/travel-booking/internal/interface/http"
	"github.com/oksasatya/travel-booking/internal/interface/middleware"
	"github.com/oksasatya/travel-booking/internal/router/modules"
)

// InitModules builds the handlers from c and registers every feature module.
// Call once at startup, before RegisterAll.
func InitModules(r *Registry, c *container.Container) {
	errs := handlers.Errors{Logger: c.Logger, Debug: c.Config.IsDevelopment()}

	r.Use(middleware.Session(c.Auth, c.Cookies, c.Logger))

	r.Add(
		modules.NewHealthModule(handlers.NewHealthHandler(c.Checks)),
		modules.NewAuthModule(handlers.NewAuthHandler(c.Auth, c.Cookies, errs), c.Redis),
		modules.NewBookingModule(handlers.NewBookingHandler(c.Bookings, errs), c.Redis),
		modules.NewPostModule(handlers.NewPostHandler(c.Posts, errs), c.Redis),
		modules.NewCatalogModule(handlers.NewCatalogHandler(c.Catalog, errs)),
		modules.NewUserModule(handlers.NewUserHandler(c.Users, errs)),
	)
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(c.Redis))
	}
}
