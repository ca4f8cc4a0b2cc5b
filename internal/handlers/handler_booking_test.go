package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/deskbook/desk_booking_app/internal/apperrors"
	"github.com/deskbook/desk_booking_app/internal/core/domain"
	portssvc "github.com/deskbook/desk_booking_app/internal/core/ports/services"
	"github.com/deskbook/desk_booking_app/internal/dto"
	"github.com/deskbook/desk_booking_app/internal/handlers"
	"github.com/deskbook/desk_booking_app/pkg/config"
)

// --- Mock BookingService ---
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) ListAvailableDates(ctx context.Context) ([]time.Time, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

func (m *MockBookingService) ListAvailablePlaces(ctx context.Context, date time.Time) ([]domain.Place, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Place), args.Error(1)
}

func (m *MockBookingService) ListUserBookings(ctx context.Context, userID string) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingService) Book(ctx context.Context, date time.Time, placeID int, userID string) (*domain.Booking, error) {
	args := m.Called(ctx, date, placeID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

var _ portssvc.BookingSvcFacade = (*MockBookingService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByCode(ctx context.Context, code string) (*domain.User, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---
type BookingHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockBookingService *MockBookingService
	mockUserService    *MockUserService
	testUser           *domain.User
}

func (suite *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockBookingService = new(MockBookingService)
	suite.mockUserService = new(MockUserService)
	suite.testUser = &domain.User{Code: "1234", Name: "Alex Petrov", PhotoURL: "https://example.com/p.png"}

	// IsProduction skips the swagger routes, which the tests do not need.
	cfg := &config.Config{IsProduction: true}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Booking: suite.mockBookingService,
		User:    suite.mockUserService,
	})
}

func (suite *BookingHandlerTestSuite) serve(method, url string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *BookingHandlerTestSuite) expectAuth() {
	suite.mockUserService.On("GetUserByCode", mock.Anything, "1234").Return(suite.testUser, nil).Once()
}

// --- GET /api/{code}/booking ---

func (suite *BookingHandlerTestSuite) TestListAvailableBookings_Success() {
	suite.expectAuth()

	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	suite.mockBookingService.On("ListAvailableDates", mock.Anything).Return([]time.Time{day1, day2}, nil).Once()
	suite.mockBookingService.On("ListAvailablePlaces", mock.Anything, day1).
		Return([]domain.Place{{ID: 1, Name: "Desk 1 (window)"}, {ID: 2, Name: "Desk 2 (center)"}}, nil).Once()
	suite.mockBookingService.On("ListAvailablePlaces", mock.Anything, day2).
		Return([]domain.Place{{ID: 11, Name: "Desk 4 (quiet zone)"}}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/1234/booking", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.AvailableBookingsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Require().Len(resp["2024-01-01"], 2)
	suite.Equal(1, resp["2024-01-01"][0].ID)
	suite.Equal("Desk 1 (window)", resp["2024-01-01"][0].Place)
	suite.Require().Len(resp["2024-01-02"], 1)
	suite.Equal(11, resp["2024-01-02"][0].ID)

	suite.mockBookingService.AssertExpectations(suite.T())
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *BookingHandlerTestSuite) TestListAvailableBookings_ServiceError() {
	suite.expectAuth()
	suite.mockBookingService.On("ListAvailableDates", mock.Anything).Return(nil, assert.AnError).Once()

	w := suite.serve(http.MethodGet, "/api/1234/booking", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.mockBookingService.AssertExpectations(suite.T())
}

func (suite *BookingHandlerTestSuite) TestListAvailableBookings_UnknownCode() {
	suite.mockUserService.On("GetUserByCode", mock.Anything, "zz99").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, "/api/zz99/booking", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockBookingService.AssertNotCalled(suite.T(), "ListAvailableDates")
}

func (suite *BookingHandlerTestSuite) TestListAvailableBookings_MalformedCode() {
	w := suite.serve(http.MethodGet, "/api/toolong99/booking", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "GetUserByCode")
}

// --- POST /api/{code}/book ---

func (suite *BookingHandlerTestSuite) TestCreateBooking_Success() {
	suite.expectAuth()

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	created := &domain.Booking{ID: 7, Date: date, Place: domain.Place{ID: 1, Name: "Desk 1 (window)"}, UserID: "1234"}
	suite.mockBookingService.On("Book", mock.Anything, date, 1, "1234").Return(created, nil).Once()

	body, _ := json.Marshal(dto.CreateBookingRequest{Date: "2024-01-01", PlaceID: 1})
	w := suite.serve(http.MethodPost, "/api/1234/book", body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.CreateBookingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal(int64(7), resp.BookingID)
	suite.Empty(resp.Error)

	suite.mockBookingService.AssertExpectations(suite.T())
}

func (suite *BookingHandlerTestSuite) TestCreateBooking_Conflict() {
	suite.expectAuth()

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.mockBookingService.On("Book", mock.Anything, date, 1, "1234").Return(nil, apperrors.ErrAlreadyBooked).Once()

	body, _ := json.Marshal(dto.CreateBookingRequest{Date: "2024-01-01", PlaceID: 1})
	w := suite.serve(http.MethodPost, "/api/1234/book", body)

	suite.Equal(http.StatusConflict, w.Code)

	var resp dto.CreateBookingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Success)
	suite.Equal("Place already booked", resp.Error)
}

func (suite *BookingHandlerTestSuite) TestCreateBooking_UnknownPlace() {
	suite.expectAuth()

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.mockBookingService.On("Book", mock.Anything, date, 99, "1234").Return(nil, apperrors.ErrNotFound).Once()

	body, _ := json.Marshal(dto.CreateBookingRequest{Date: "2024-01-01", PlaceID: 99})
	w := suite.serve(http.MethodPost, "/api/1234/book", body)

	suite.Equal(http.StatusNotFound, w.Code)

	var resp dto.CreateBookingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Success)
	suite.Equal("Unknown place for date", resp.Error)
}

func (suite *BookingHandlerTestSuite) TestCreateBooking_BadDate() {
	suite.expectAuth()

	body, _ := json.Marshal(dto.CreateBookingRequest{Date: "01.01.2024", PlaceID: 1})
	w := suite.serve(http.MethodPost, "/api/1234/book", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBookingService.AssertNotCalled(suite.T(), "Book")
}

func (suite *BookingHandlerTestSuite) TestCreateBooking_MissingPlaceID() {
	suite.expectAuth()

	w := suite.serve(http.MethodPost, "/api/1234/book", []byte(`{"date":"2024-01-01"}`))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBookingService.AssertNotCalled(suite.T(), "Book")
}

func (suite *BookingHandlerTestSuite) TestCreateBooking_ServiceError() {
	suite.expectAuth()

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.mockBookingService.On("Book", mock.Anything, date, 1, "1234").Return(nil, assert.AnError).Once()

	body, _ := json.Marshal(dto.CreateBookingRequest{Date: "2024-01-01", PlaceID: 1})
	w := suite.serve(http.MethodPost, "/api/1234/book", body)

	suite.Equal(http.StatusInternalServerError, w.Code)
}

// --- Run Test Suite ---
func TestBookingHandler(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}
