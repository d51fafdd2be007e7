//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"chefpartner/internal/domain/user"
	"chefpartner/internal/handler/api"
	reqdto "chefpartner/internal/handler/dto/request"
	resdto "chefpartner/internal/handler/dto/response"
	"chefpartner/internal/pkg/config"
	"chefpartner/internal/pkg/cookie"
	"chefpartner/internal/pkg/jwt"
	"chefpartner/internal/usecase/commands"
	"chefpartner/internal/usecase/queries"
	"chefpartner/tests/common/httptest"
	commandsmock "chefpartner/tests/mock/commands"
	queriesmock "chefpartner/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)

	jwtService := jwt.NewService("test-secret-key", 15*time.Minute, 168*time.Hour)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, jwtService, config.NewTestConfig())

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", testUserID)
		c.Set("user_role", user.RolePartner)
		c.Next()
	}

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", authMiddleware, s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

var testUserID = uuid.New()

func loginRequest() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    "buyer@gastronord.example",
		Password: "password123",
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	s.Run("success: returns 200 and sets token cookies", func() {
		result := &commands.LoginResult{
			UserID: testUserID,
			TokenPair: &commands.TokenPair{
				AccessToken:  "access-token",
				RefreshToken: "refresh-token",
			},
		}
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", loginRequest(), "")

		var resp resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(testUserID, resp.UserID)

		access := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		refresh := httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName)
		s.Require().NotNil(access)
		s.Require().NotNil(refresh)
		s.Equal("access-token", access.Value)
		s.Equal("refresh-token", refresh.Value)
		s.True(access.HttpOnly)
	})

	s.Run("error: returns 401 for invalid credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", loginRequest(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: returns 401 for unknown user", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", loginRequest(), "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: returns 403 for inactive account", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrUserInactive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", loginRequest(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Account is inactive")
	})

	s.Run("error: returns 400 for malformed request", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", map[string]any{"email": "x"}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	s.Run("success: rotates token pair", func() {
		pair := &commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "old-refresh").
			Return(pair, nil).Times(1)

		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "old-refresh"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/auth/refresh", nil, cookies, "")

		s.Equal(http.StatusNoContent, rec.Code)
		refreshed := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(refreshed)
		s.Equal("new-access", refreshed.Value)
	})

	s.Run("error: returns 401 without refresh cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/refresh", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Refresh token required")
	})

	s.Run("error: returns 401 and clears cookies for invalid token", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "bad-refresh").
			Return(nil, commands.ErrTokenValidation).Times(1)

		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "bad-refresh"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/auth/refresh", nil, cookies, "")

		s.Equal(http.StatusUnauthorized, rec.Code)
		cleared := httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName)
		s.Require().NotNil(cleared)
		s.Empty(cleared.Value)
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")

	s.Equal(http.StatusNoContent, rec.Code)
	cleared := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
	s.Require().NotNil(cleared)
	s.Empty(cleared.Value)
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: returns current user", func() {
		partnerID := uuid.New()
		view := &queries.AuthorizedUserView{
			ID:        testUserID,
			Email:     "buyer@gastronord.example",
			Role:      "partner",
			PartnerID: &partnerID,
			IsActive:  true,
		}
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), testUserID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "bearer-token")

		var resp resdto.CurrentUserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(testUserID, resp.ID)
		s.Equal("partner", resp.Role)
		s.Require().NotNil(resp.PartnerID)
		s.Equal(partnerID, *resp.PartnerID)
	})

	s.Run("error: returns 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: returns 404 for missing user", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), testUserID).
			Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
