package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/deskbook/desk_booking_app/internal/apperrors"
	"github.com/deskbook/desk_booking_app/internal/core/domain"
	portssvc "github.com/deskbook/desk_booking_app/internal/core/ports/services"
	"github.com/deskbook/desk_booking_app/internal/dto"
	"github.com/deskbook/desk_booking_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bookingHandler handles HTTP requests related to availability and booking.
type bookingHandler struct {
	bookingService portssvc.BookingSvcFacade
}

// newBookingHandler creates a new bookingHandler.
func newBookingHandler(bs portssvc.BookingSvcFacade) *bookingHandler {
	return &bookingHandler{
		bookingService: bs,
	}
}

// registerBookingRoutes registers the availability and booking routes.
func registerBookingRoutes(rg *gin.RouterGroup, bookingService portssvc.BookingSvcFacade) {
	h := newBookingHandler(bookingService)

	rg.GET("/booking", h.listAvailableBookings)
	rg.POST("/book", h.createBooking)
}

// listAvailableBookings godoc
// @Summary List available places per date
// @Description Returns every date that still has free places, mapped to those places
// @Tags booking
// @Produce json
// @Param code path string true "Access code (4 alphanumeric characters)"
// @Success 200 {object} dto.AvailableBookingsResponse
// @Failure 401 {object} map[string]string "Unknown access code"
// @Failure 500 {object} map[string]string "Failed to load availability"
// @Router /api/{code}/booking [get]
func (h *bookingHandler) listAvailableBookings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	dates, err := h.bookingService.ListAvailableDates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list available dates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load availability"})
		return
	}

	resp := make(dto.AvailableBookingsResponse, len(dates))
	for _, date := range dates {
		places, err := h.bookingService.ListAvailablePlaces(c.Request.Context(), date)
		if err != nil {
			logger.Error("Failed to list available places", slog.String("error", err.Error()), slog.String("date", domain.DateKey(date)))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load availability"})
			return
		}
		resp[domain.DateKey(date)] = dto.ToAvailablePlaces(places)
	}

	c.JSON(http.StatusOK, resp)
}

// createBooking godoc
// @Summary Book a place
// @Description Reserves the given place on the given date for the user behind the access code
// @Tags booking
// @Accept json
// @Produce json
// @Param code path string true "Access code (4 alphanumeric characters)"
// @Param booking body dto.CreateBookingRequest true "Date and place to book"
// @Success 201 {object} dto.CreateBookingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unknown access code"
// @Failure 404 {object} dto.CreateBookingResponse "Unknown date or place"
// @Failure 409 {object} dto.CreateBookingResponse "Place already booked"
// @Router /api/{code}/book [post]
func (h *bookingHandler) createBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		logger.Error("Authenticated user not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createBooking", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		logger.Warn("Invalid booking date", slog.String("date", req.Date))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Date must be formatted as YYYY-MM-DD"})
		return
	}

	booking, err := h.bookingService.Book(c.Request.Context(), date, req.PlaceID, user.Code)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyBooked) {
			logger.Warn("Booking conflict", slog.String("date", req.Date), slog.Int("place_id", req.PlaceID))
			c.JSON(http.StatusConflict, dto.CreateBookingResponse{Success: false, Error: "Place already booked"})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Unknown place for date", slog.String("date", req.Date), slog.Int("place_id", req.PlaceID))
			c.JSON(http.StatusNotFound, dto.CreateBookingResponse{Success: false, Error: "Unknown place for date"})
		} else {
			logger.Error("Failed to create booking", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.CreateBookingResponse{Success: true, BookingID: booking.ID})
}
