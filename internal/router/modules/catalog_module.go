package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/travel-booking/internal/interface/http"
)

type CatalogModule struct {
	Handler *handlers.CatalogHandler
}

func NewCatalogModule(h *handlers.CatalogHandler) *CatalogModule {
	return &CatalogModule{Handler: h}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	rg.GET("/destinations", m.Handler.Destinations)
	rg.GET("/destinations/:id", m.Handler.Destination)
	rg.GET("/packages", m.Handler.Packages)
}
