package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deskbook/desk_booking_app/internal/apperrors"
	"github.com/deskbook/desk_booking_app/internal/dto"
	"github.com/deskbook/desk_booking_app/pkg/client"
)

// fakeService builds a gin-backed test server that mimics the booking
// service wire surface for a single known code.
func fakeService(t *testing.T, code string) (*httptest.Server, *client.Client) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	api := r.Group("/api/:code")
	api.Use(func(c *gin.Context) {
		if c.Param("code") != code {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid access code"})
		}
	})
	api.GET("/auth", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.AuthResponse{Success: true, Message: "Authenticated"})
	})
	api.GET("/info", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.UserInfoResponse{
			Name:     "Alex Petrov",
			PhotoURL: "https://example.com/p.png",
			Booking: map[string]dto.BookingInfo{
				"2024-01-02": {ID: 4, Place: "Desk 4 (quiet zone)"},
				"2024-01-01": {ID: 1, Place: "Desk 1 (window)"},
			},
		})
	})
	api.GET("/booking", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.AvailableBookingsResponse{
			"2024-01-02": {{ID: 11, Place: "Desk 4 (quiet zone)"}},
			"2024-01-01": {{ID: 1, Place: "Desk 1 (window)"}, {ID: 2, Place: "Desk 2 (center)"}},
		})
	})
	api.POST("/book", func(c *gin.Context) {
		var req dto.CreateBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
		switch req.PlaceID {
		case 1:
			c.JSON(http.StatusCreated, dto.CreateBookingResponse{Success: true, BookingID: 42})
		case 2:
			c.JSON(http.StatusConflict, dto.CreateBookingResponse{Success: false, Error: "Place already booked"})
		default:
			c.JSON(http.StatusNotFound, dto.CreateBookingResponse{Success: false, Error: "Unknown place for date"})
		}
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server, client.NewClient(server.URL)
}

func TestClient_CheckAuth(t *testing.T) {
	ctx := context.Background()
	_, c := fakeService(t, "1234")

	require.NoError(t, c.CheckAuth(ctx, "1234"))

	err := c.CheckAuth(ctx, "zz99")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestClient_CheckAuth_ServiceDown(t *testing.T) {
	ctx := context.Background()
	server, c := fakeService(t, "1234")
	server.Close()

	err := c.CheckAuth(ctx, "1234")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)
}

func TestClient_UserInfo(t *testing.T) {
	ctx := context.Background()
	_, c := fakeService(t, "1234")

	info, err := c.UserInfo(ctx, "1234")
	require.NoError(t, err)
	assert.Equal(t, "Alex Petrov", info.Name)
	require.Len(t, info.Booking, 2)
	assert.Equal(t, int64(1), info.Booking["2024-01-01"].ID)

	_, err = c.UserInfo(ctx, "zz99")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestClient_AvailableBookings(t *testing.T) {
	ctx := context.Background()
	_, c := fakeService(t, "1234")

	availability, err := c.AvailableBookings(ctx, "1234")
	require.NoError(t, err)
	require.Len(t, availability, 2)
	assert.Len(t, availability["2024-01-01"], 2)
	assert.Equal(t, "Desk 4 (quiet zone)", availability["2024-01-02"][0].Place)
}

func TestClient_CreateBooking(t *testing.T) {
	ctx := context.Background()
	_, c := fakeService(t, "1234")

	bookingID, err := c.CreateBooking(ctx, "1234", "2024-01-01", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(42), bookingID)

	_, err = c.CreateBooking(ctx, "1234", "2024-01-01", 2)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyBooked)

	_, err = c.CreateBooking(ctx, "1234", "2024-01-01", 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = c.CreateBooking(ctx, "zz99", "2024-01-01", 1)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestClient_CreateBooking_UnexpectedStatus(t *testing.T) {
	ctx := context.Background()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(gin.H{"error": "upstream broken"})
	}))
	t.Cleanup(server.Close)
	c := client.NewClient(server.URL)

	_, err := c.CreateBooking(ctx, "1234", "2024-01-01", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnavailable)
}
