//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"waste-dashboard/internal/domain/access"
	"waste-dashboard/internal/domain/user"
	"waste-dashboard/internal/handler/api"
	resdto "waste-dashboard/internal/handler/dto/response"
	"waste-dashboard/internal/handler/middleware"
	"waste-dashboard/internal/pkg/config"
	"waste-dashboard/internal/pkg/cookie"
	"waste-dashboard/internal/pkg/errs"
	"waste-dashboard/internal/usecase"
	"waste-dashboard/internal/usecase/commands"
	"waste-dashboard/tests/common/authtest"
	"waste-dashboard/tests/common/builder"
	"waste-dashboard/tests/common/httptest"
	"waste-dashboard/tests/common/testutil"
	commandsmock "waste-dashboard/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// newSessionRouter wires the real session middleware so handlers see the
// same context a production request would.
func newSessionRouter(t *testing.T, cfg config.Config) (*gin.Engine, *middleware.AuthMiddleware, *authtest.JWTHelper) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	helper := authtest.NewJWTHelper(cfg.JWT)
	authMw := middleware.NewAuthMiddleware(usecase.NewTokenValidator(helper.Service(t)), nil)

	router := gin.New()
	router.Use(authMw.ResolveSession())
	return router, authMw, helper
}

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	handler      *api.AuthHandler
	jwtHelper    *authtest.JWTHelper
}

func (s *AuthHandlerTestSuite) SetupTest() {
	cfg := config.NewTestConfig()
	var authMw *middleware.AuthMiddleware
	s.router, authMw, s.jwtHelper = newSessionRouter(s.T(), cfg)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, cfg)

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", authMw.RequireAccess(access.RouteSession), s.handler.Me)
	s.router.GET("/auth/me-ungated", s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := builder.NewAuthBuilder().BuildDTO()
	sess := builder.NewSessionBuilder().BuildDomain()
	result := &commands.LoginResult{Session: sess, Token: "test-jwt-token", ExpiresIn: time.Hour}

	s.Run("success: returns 200 OK and sets the session cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		s.Equal(int64(3600), response.ExpiresIn)
		s.Equal(sess.Email(), response.User.Email)
		s.Equal(string(user.RoleBinDisplayUser), response.User.Role)
		s.Require().NotNil(response.User.OrgUnit)
		s.Equal("branch-1", response.User.OrgUnit.ID)

		c := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(c)
		s.Equal("test-jwt-token", c.Value)
		s.True(c.HttpOnly)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseAuth{
			{name: "valid email", mutate: testutil.Field("email", "valid@example.com"), expectCode: http.StatusOK},
			{name: "invalid email", mutate: testutil.Field("email", "invalid-email"), expectCode: http.StatusBadRequest},
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: password (required)", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
			{name: "empty email", mutate: testutil.Field("email", ""), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusOK {
					email, _ := requestMap["email"].(string)
					password, _ := requestMap["password"].(string)
					expectedReq := (&builder.AuthBuilder{Email: email, Password: password}).BuildDTO()
					s.mockCommands.EXPECT().Login(gomock.Any(), expectedReq).Return(result, nil)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				if tc.expectCode == http.StatusOK {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request format")
				}
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				commandsError:  errs.Mark(errors.New("401 from upstream"), commands.ErrInvalidCredentials),
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "upstream unavailable",
				commandsError:  errs.Mark(errors.New("connection refused"), commands.ErrAuthenticationFailed),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Authentication service unavailable",
			},
			{
				name:           "internal server error",
				commandsError:  commands.ErrTokenGeneration,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				s.Nil(httptest.ExtractCookie(rec, cookie.SessionCookieName))
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 and expires the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)

		c := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(c)
		s.Empty(c.Value)
		s.Less(c.MaxAge, 0)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns the session from a bearer token", func() {
		sess := builder.NewSessionBuilder().
			WithRole(user.RoleCityAdmin).
			WithOverride(user.OrgUnitCity, "city-9", "Metro").
			BuildDomain()
		token := s.jwtHelper.GenerateToken(s.T(), sess)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)

		var response resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(sess.UserID(), response.UserID)
		s.Equal(string(user.RoleCityAdmin), response.Role)
		s.True(response.Overridden)
		s.Require().NotNil(response.OrgUnit)
		s.Equal("city", response.OrgUnit.Kind)
		s.Equal("city-9", response.OrgUnit.ID)
	})

	s.Run("success: cookie wins over the bearer header", func() {
		cookieSess := builder.NewSessionBuilder().WithEmail("cookie@example.com").BuildDomain()
		headerSess := builder.NewSessionBuilder().WithEmail("header@example.com").BuildDomain()
		cookies := []*http.Cookie{{Name: cookie.SessionCookieName, Value: s.jwtHelper.GenerateToken(s.T(), cookieSess)}}

		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, url, nil, cookies,
			s.jwtHelper.GenerateToken(s.T(), headerSess))

		var response resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cookie@example.com", response.Email)
	})

	s.Run("error: 401 without a session", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("error: 401 with an expired token", func() {
		token := s.jwtHelper.CreateExpiredToken(s.T(), builder.NewSessionBuilder().BuildDomain())
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Authentication required")
	})

	s.Run("error: handler rejects a missing session even without the gate", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me-ungated", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})
}
