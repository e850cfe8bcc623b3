package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/parkwise/parking_cash_app/internal/apperrors"
	"github.com/parkwise/parking_cash_app/internal/core/domain"
	portssvc "github.com/parkwise/parking_cash_app/internal/core/ports/services"
	"github.com/parkwise/parking_cash_app/internal/core/services"
	"github.com/parkwise/parking_cash_app/internal/dto"
	"github.com/parkwise/parking_cash_app/internal/platform/config"
	"github.com/parkwise/parking_cash_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret-key-for-auth-service"

type AuthServiceTestSuite struct {
	suite.Suite
	mockUserRepo    *MockUserRepository
	mockSessionRepo *MockSessionRepository
	service         portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockSessionRepo = new(MockSessionRepository)

	cfg := &config.Config{
		JWTSecret:         testJWTSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "parking-cash-app-test",
	}
	suite.service = services.NewAuthService(suite.mockUserRepo, suite.mockSessionRepo, cfg)
}

func (suite *AuthServiceTestSuite) knownUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{UserID: "user-1", Email: "operator@example.com", PasswordHash: hash}
}

func (suite *AuthServiceTestSuite) TestSignIn_Success() {
	ctx := context.Background()
	user := suite.knownUser("Sup3rSecret")
	req := dto.SignInRequest{Email: user.Email, Password: "Sup3rSecret"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()
	suite.mockSessionRepo.On("SaveSession", ctx, mock.MatchedBy(func(s domain.Session) bool {
		return s.UserID == user.UserID && s.Token != "" && s.SessionID != ""
	})).Return(nil).Once()

	resp, err := suite.service.SignIn(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal(user.UserID, resp.UserID)
	suite.Equal(user.Email, resp.Email)

	// The issued token must verify and name the user.
	claims, err := utils.ParseAndValidateJWT(resp.Token, testJWTSecret)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)

	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestSignIn_WrongPassword() {
	ctx := context.Background()
	user := suite.knownUser("Sup3rSecret")
	req := dto.SignInRequest{Email: user.Email, Password: "wrong-password"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	resp, err := suite.service.SignIn(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.Nil(resp)
	suite.mockSessionRepo.AssertNotCalled(suite.T(), "SaveSession", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestSignIn_UnknownEmail() {
	ctx := context.Background()
	req := dto.SignInRequest{Email: "nobody@example.com", Password: "whatever"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, req.Email).
		Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.SignIn(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.Nil(resp)
}

func (suite *AuthServiceTestSuite) TestValidateSession_Success() {
	ctx := context.Background()
	token, err := utils.GenerateJWT("user-1", testJWTSecret, time.Hour, "parking-cash-app-test")
	suite.Require().NoError(err)

	session := &domain.Session{SessionID: "session-1", UserID: "user-1", Token: token}
	suite.mockSessionRepo.On("FindSessionByToken", ctx, token).Return(session, nil).Once()

	userID, err := suite.service.ValidateSession(ctx, token)

	suite.Require().NoError(err)
	suite.Equal("user-1", userID)
}

func (suite *AuthServiceTestSuite) TestValidateSession_NoSessionRow() {
	ctx := context.Background()
	token, err := utils.GenerateJWT("user-1", testJWTSecret, time.Hour, "parking-cash-app-test")
	suite.Require().NoError(err)

	// Valid signature, but the session was never persisted.
	suite.mockSessionRepo.On("FindSessionByToken", ctx, token).
		Return(nil, apperrors.ErrNotFound).Once()

	userID, err := suite.service.ValidateSession(ctx, token)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Empty(userID)
}

func (suite *AuthServiceTestSuite) TestValidateSession_MalformedToken() {
	ctx := context.Background()

	userID, err := suite.service.ValidateSession(ctx, "not-a-jwt")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Empty(userID)
	suite.mockSessionRepo.AssertNotCalled(suite.T(), "FindSessionByToken", mock.Anything, mock.Anything)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
