package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/travel-booking/internal/application"
	"github.com/oksasatya/travel-booking/internal/interface/middleware"
	"github.com/oksasatya/travel-booking/pkg/response"
)

// UserHandler serves the host directory and admin account management.
type UserHandler struct {
	Svc    *application.UserService
	Errors Errors
}

func NewUserHandler(svc *application.UserService, errs Errors) *UserHandler {
	return &UserHandler{Svc: svc, Errors: errs}
}

// Hosts GET /api/hosts
func (h *UserHandler) Hosts(c *gin.Context) {
	out, err := h.Svc.Hosts(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		h.Errors.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

// List GET /api/admin/users
func (h *UserHandler) List(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		h.Errors.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

// Delete DELETE /api/admin/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", "Invalid user ID")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.CallerFrom(c), id); err != nil {
		h.Errors.Write(c, err)
		return
	}
	response.Message(c, http.StatusOK, "User deleted successfully")
}
