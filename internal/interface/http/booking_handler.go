package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/travel-booking/internal/application"
	"github.com/oksasatya/travel-booking/internal/interface/middleware"
	"github.com/oksasatya/travel-booking/pkg/response"
)

type BookingHandler struct {
	Svc    *application.BookingService
	Errors Errors
}

func NewBookingHandler(svc *application.BookingService, errs Errors) *BookingHandler {
	return &BookingHandler{Svc: svc, Errors: errs}
}

// createBookingRequest ignores any client-supplied status.
type createBookingRequest struct {
	HostID    flexInt    `json:"hostId"`
	Title     string     `json:"title"`
	StartDate string     `json:"startDate"`
	EndDate   string     `json:"endDate"`
	Guests    flexString `json:"guests"`
	Price     flexString `json:"price"`
	Notes     *string    `json:"notes"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required,bookingstatus"`
}

func (h *BookingHandler) List(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		h.Errors.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Errors.Bind(c, err)
		return
	}
	b, err := h.Svc.Create(c.Request.Context(), middleware.CallerFrom(c), application.CreateBookingInput{
		HostID:    int64(req.HostID),
		Title:     req.Title,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Guests:    string(req.Guests),
		Price:     string(req.Price),
		Notes:     req.Notes,
	})
	if err != nil {
		h.Errors.Write(c, err)
		return
	}
	response.Success(c, http.StatusCreated, b)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "Invalid booking ID")
	if !ok {
		return
	}
	b, err := h.Svc.Get(c.Request.Context(), middleware.CallerFrom(c), id)
	if err != nil {
		h.Errors.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

// UpdateStatus PATCH /api/bookings/:id/status
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id", "Invalid booking ID")
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Errors.Bind(c, err)
		return
	}
	b, err := h.Svc.UpdateStatus(c.Request.Context(), middleware.CallerFrom(c), id, req.Status)
	if err != nil {
		h.Errors.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", "Invalid booking ID")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.CallerFrom(c), id); err != nil {
		h.Errors.Write(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Booking deleted successfully")
}

// ListAll GET /api/admin/bookings
func (h *BookingHandler) ListAll(c *gin.Context) {
	out, err := h.Svc.ListAll(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		h.Errors.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

// Revenue GET /api/admin/revenue
func (h *BookingHandler) Revenue(c *gin.Context) {
	rev, err := h.Svc.Revenue(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		h.Errors.Write(c, err)
		return
	}
	response.Success(c, http.StatusOK, rev)
}
