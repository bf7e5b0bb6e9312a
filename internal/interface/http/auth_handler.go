package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/travel-booking/internal/application"
	"github.com/oksasatya/travel-booking/internal/interface/middleware"
	"github.com/oksasatya/travel-booking/pkg/helpers"
	"github.com/oksasatya/travel-booking/pkg/response"
)

type AuthHandler struct {
	Svc     *application.AuthService
	Cookies *helpers.Manager
	Errors  Errors
}

func NewAuthHandler(svc *application.AuthService, cookies *helpers.Manager, errs Errors) *AuthHandler {
	return &AuthHandler{Svc: svc, Cookies: cookies, Errors: errs}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password"`
	Role     string `json:"role" binding:"omitempty,role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password"`
}

// Register POST /api/register. The new account is logged in right away.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Errors.Bind(c, err)
		return
	}
	u, login, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name: req.Name, Email: req.Email, Password: req.Password, Role: req.Role,
	})
	if err != nil {
		h.Errors.Write(c, err)
		return
	}
	h.Cookies.SetSession(c, login.Token, login.ExpiresAt)
	response.Success(c, http.StatusCreated, u)
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Errors.Bind(c, err)
		return
	}
	u, login, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.Errors.Write(c, err)
		return
	}
	h.Cookies.SetSession(c, login.Token, login.ExpiresAt)
	response.Success(c, http.StatusOK, u)
}

// Logout POST /api/logout. Always succeeds and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, ok := h.Cookies.Session(c); ok {
		if err := h.Svc.Logout(c.Request.Context(), token); err != nil {
			h.Errors.Logger.WithError(err).Warn("session delete failed")
		}
	}
	h.Cookies.Clear(c)
	response.Message(c, http.StatusOK, "Logged out successfully")
}

// Me GET /api/user
func (h *AuthHandler) Me(c *gin.Context) {
	response.Success(c, http.StatusOK, middleware.UserFrom(c))
}

// UpdateProfile PUT /api/user
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Errors.Bind(c, err)
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), middleware.CallerFrom(c), application.UpdateProfileInput{
		Name: req.Name, Email: req.Email, Password: req.Password,
	})
	if err != nil {
		h.Errors.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, u)
}
