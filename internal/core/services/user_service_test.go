package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/deskbook/desk_booking_app/internal/apperrors"
	"github.com/deskbook/desk_booking_app/internal/core/domain"
	portsrepo "github.com/deskbook/desk_booking_app/internal/core/ports/repositories"
	portssvc "github.com/deskbook/desk_booking_app/internal/core/ports/services"
	"github.com/deskbook/desk_booking_app/internal/core/services"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByCode(ctx context.Context, code string) (*domain.User, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestGetUserByCode_Success() {
	ctx := context.Background()
	expected := &domain.User{Code: "1234", Name: "Alex Petrov"}

	suite.mockUserRepo.On("FindUserByCode", ctx, "1234").Return(expected, nil).Once()

	user, err := suite.service.GetUserByCode(ctx, "1234")

	suite.Require().NoError(err)
	suite.Equal(expected, user)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByCode_NotFound() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByCode", ctx, "zzzz").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByCode(ctx, "zzzz")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetUserByCode_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockUserRepo.On("FindUserByCode", ctx, "1234").Return(nil, expectedErr).Once()

	user, err := suite.service.GetUserByCode(ctx, "1234")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, expectedErr)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
