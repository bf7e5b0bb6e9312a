package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/travel-booking/internal/application"
	"github.com/oksasatya/travel-booking/pkg/response"
)

type CatalogHandler struct {
	Svc    *application.CatalogService
	Errors Errors
}

func NewCatalogHandler(svc *application.CatalogService, errs Errors) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Errors: errs}
}

func (h *CatalogHandler) Destinations(c *gin.Context) {
	out, err := h.Svc.Destinations(c.Request.Context())
	if err != nil {
		h.Errors.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *CatalogHandler) Destination(c *gin.Context) {
	d, err := h.Svc.Destination(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Errors.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

// Packages GET /api/packages?destinationId=
func (h *CatalogHandler) Packages(c *gin.Context) {
	out, err := h.Svc.Packages(c.Request.Context(), c.Query("destinationId"))
	if err != nil {
		h.Errors.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}
