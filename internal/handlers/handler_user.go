package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/deskbook/desk_booking_app/internal/core/ports/services"
	"github.com/deskbook/desk_booking_app/internal/dto"
	"github.com/deskbook/desk_booking_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests about the user behind an access code.
type userHandler struct {
	bookingService portssvc.BookingSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(bs portssvc.BookingSvcFacade) *userHandler {
	return &userHandler{
		bookingService: bs,
	}
}

// registerUserRoutes registers the auth and profile routes.
// The :code group middleware has already resolved the user.
func registerUserRoutes(rg *gin.RouterGroup, bookingService portssvc.BookingSvcFacade) {
	h := newUserHandler(bookingService)

	rg.GET("/auth", h.checkAuth)
	rg.GET("/info", h.getUserInfo)
}

// checkAuth godoc
// @Summary Check an access code
// @Description Confirms that the access code in the path is registered
// @Tags auth
// @Produce json
// @Param code path string true "Access code (4 alphanumeric characters)"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string "Malformed access code"
// @Failure 401 {object} map[string]string "Unknown access code"
// @Router /api/{code}/auth [get]
func (h *userHandler) checkAuth(c *gin.Context) {
	// Reaching this handler means CodeAuthMiddleware accepted the code.
	c.JSON(http.StatusOK, dto.AuthResponse{Success: true, Message: "Authenticated"})
}

// getUserInfo godoc
// @Summary Get user profile and bookings
// @Description Returns the user's display name, photo and current bookings keyed by date
// @Tags auth
// @Produce json
// @Param code path string true "Access code (4 alphanumeric characters)"
// @Success 200 {object} dto.UserInfoResponse
// @Failure 401 {object} map[string]string "Unknown access code"
// @Failure 500 {object} map[string]string "Failed to load bookings"
// @Router /api/{code}/info [get]
func (h *userHandler) getUserInfo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	user, ok := middleware.GetUserFromContext(c)
	if !ok {
		logger.Error("Authenticated user not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bookings, err := h.bookingService.ListUserBookings(c.Request.Context(), user.Code)
	if err != nil {
		logger.Error("Failed to list user bookings", slog.String("error", err.Error()), slog.String("user_code", user.Code))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bookings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToUserInfoResponse(user, bookings))
}
