package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/deskbook/desk_booking_app/internal/apperrors"
	portssvc "github.com/deskbook/desk_booking_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var codeValidator = validator.New()

// CodeAuthMiddleware creates a Gin middleware handler that validates the
// :code path parameter and resolves it against the user directory. The
// resolved user is stored in the context for handlers downstream.
func CodeAuthMiddleware(userService portssvc.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		code := c.Param("code")
		if err := codeValidator.Var(code, "required,len=4,alphanum"); err != nil {
			logger.Warn("Malformed access code", slog.String("code", code))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Access code must be exactly 4 alphanumeric characters"})
			return
		}

		user, err := userService.GetUserByCode(c.Request.Context(), code)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Unknown access code", slog.String("code", code))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid access code"})
				return
			}
			logger.Error("Failed to resolve access code", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to check access code"})
			return
		}

		c.Set(string(authUserKey), user)
		c.Next()
	}
}
