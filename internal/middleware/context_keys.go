package middleware

import (
	"github.com/deskbook/desk_booking_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// authUserKey is the key used to store the resolved user in the Gin context.
const authUserKey = contextKey("authUser")

// GetUserFromContext retrieves the authenticated user placed in the Gin
// context by CodeAuthMiddleware. It returns the user and a boolean
// indicating if it was found.
func GetUserFromContext(c *gin.Context) (*domain.User, bool) {
	val, exists := c.Get(string(authUserKey))
	if !exists {
		return nil, false
	}

	user, ok := val.(*domain.User)
	if !ok {
		// This should not happen if the auth middleware sets it correctly.
		return nil, false
	}
	return user, true
}
