package handlers

import (
	"net/http"

	"bookingsite/models"
	"bookingsite/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes booking, availability and activity operations.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler accepts any JSON object; known fields are typed, the rest is stored as is.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid booking payload: "+err.Error())
		return
	}
	input, err := models.BookingInputFromMap(body)
	if err != nil {
		getLogger(c).Debug("CreateBookingHandler: undecodable payload", zap.Error(err))
		badRequest(c, err.Error())
		return
	}
	respond(c, http.StatusCreated, h.Service.CreateBooking(c.Request.Context(), input))
}

// ListBookingsHandler returns all bookings, or those of ?date= when given.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	if date := c.Query("date"); date != "" {
		respond(c, http.StatusOK, h.Service.GetBookingsByDate(c.Request.Context(), date))
		return
	}
	respond(c, http.StatusOK, h.Service.GetAllBookings(c.Request.Context()))
}

func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	respond(c, http.StatusOK, h.Service.GetBooking(c.Request.Context(), c.Param("id")))
}

func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		badRequest(c, "invalid update payload: "+err.Error())
		return
	}
	respond(c, http.StatusOK, h.Service.UpdateBooking(c.Request.Context(), c.Param("id"), updates))
}

func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	respond(c, http.StatusOK, h.Service.DeleteBooking(c.Request.Context(), c.Param("id")))
}

func (h *BookingHandler) GetAvailabilityHandler(c *gin.Context) {
	respond(c, http.StatusOK, h.Service.GetAvailability(c.Request.Context(), c.Param("date")))
}

// UpdateAvailabilityHandler applies a manual correction to one slot's booked count.
func (h *BookingHandler) UpdateAvailabilityHandler(c *gin.Context) {
	var body struct {
		Delta *int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Delta == nil {
		badRequest(c, "delta is required")
		return
	}
	respond(c, http.StatusOK, h.Service.UpdateAvailability(c.Request.Context(), c.Param("date"), c.Param("time"), *body.Delta))
}

func (h *BookingHandler) GetActivitiesHandler(c *gin.Context) {
	respond(c, http.StatusOK, h.Service.GetActivities(c.Request.Context()))
}
