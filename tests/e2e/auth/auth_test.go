//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"waste-dashboard/internal/domain/user"
	"waste-dashboard/internal/handler/dto/request"
	resdto "waste-dashboard/internal/handler/dto/response"
	"waste-dashboard/internal/pkg/cookie"
	"waste-dashboard/tests/common/authtest"
	"waste-dashboard/tests/common/builder"
	"waste-dashboard/tests/common/httptest"
	"waste-dashboard/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL     = "/api/auth/login"
	logoutURL    = "/api/auth/logout"
	meURL        = "/api/auth/me"
	dashboardURL = "/api/dashboard"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)

	// 上流にテスト用アカウントを登録
	s.Upstream.AddAccount(builder.NewSessionBuilder().WithEmail("kiosk@example.com").BuildAccount())
	s.Upstream.AddAccount(builder.NewSessionBuilder().
		WithEmail("admin@example.com").
		WithRole(user.RoleSuperAdmin).
		BuildAccount())
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "kiosk@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "kiosk@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
		{
			name:           "空のパスワード",
			email:          "kiosk@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "空のパスワードは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var loginRes resdto.LoginResponse
				err := httptest.DecodeResponseBody(t, w.Body, &loginRes)
				require.NoError(t, err)
				require.NotEmpty(t, loginRes.AccessToken, "アクセストークンが空")
				require.Greater(t, loginRes.ExpiresIn, int64(0), "有効期限が無効")
				require.Equal(t, tt.email, loginRes.User.Email)
				require.NotNil(t, httptest.ExtractCookie(w, cookie.SessionCookieName), "セッションCookieが設定されていない")
			}
		})
	}
}

func (s *authSuite) TestUpstreamUnavailable() {
	s.Run("上流障害時は502", func() {
		t := s.T()
		s.Upstream.Fail("/api/v1/auth/login", http.StatusInternalServerError)
		defer s.Upstream.Fail("/api/v1/auth/login", 0)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "kiosk@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("ログアウトでCookieが消える", func() {
		t := s.T()

		sessionCookie := authtest.LoginUser(t, s.Router, "kiosk@example.com", "password123")
		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, logoutURL, nil, []*http.Cookie{sessionCookie}, "")
		require.Equal(t, http.StatusNoContent, w.Code)

		cleared := httptest.ExtractCookie(w, cookie.SessionCookieName)
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
	})

	s.Run("セッションなしでもログアウトは成功する", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(s.T(), http.StatusNoContent, w.Code)
	})
}

func (s *authSuite) TestMe() {
	s.Run("Cookieでセッション取得", func() {
		t := s.T()

		sessionCookie := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")
		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil, []*http.Cookie{sessionCookie}, "")
		require.Equal(t, http.StatusOK, w.Code)

		var me resdto.SessionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &me))
		require.Equal(t, "admin@example.com", me.Email)
		require.Equal(t, string(user.RoleSuperAdmin), me.Role)
		require.NotContains(t, w.Body.String(), "password", "レスポンスにパスワード情報が含まれている")
	})

	s.Run("Bearerトークンでセッション取得", func() {
		t := s.T()

		token := s.jwtHelper.GenerateToken(t, builder.NewSessionBuilder().BuildDomain())
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("無効なトークン", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "invalid-token")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("トークンなし", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("期限切れトークンの拒否", func() {
		t := s.T()

		expiredToken := s.jwtHelper.CreateExpiredToken(t, builder.NewSessionBuilder().BuildDomain())
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code, "期限切れトークンは拒否されるべき")
	})
}

func (s *authSuite) TestAuthenticationRequired() {
	s.Run("認証が必要なエンドポイント", func() {
		t := s.T()

		endpoints := []struct {
			method string
			path   string
		}{
			{http.MethodGet, meURL},
			{http.MethodGet, dashboardURL},
			{http.MethodGet, "/api/bins"},
			{http.MethodGet, "/api/companies"},
			{http.MethodPost, "/api/org-unit/override"},
		}

		for _, endpoint := range endpoints {
			w := httptest.PerformRequest(t, s.Router, endpoint.method, endpoint.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code, "認証なしでは拒否されるべき: %s", endpoint.path)
			require.Contains(t, w.Body.String(), `"redirect":"/login"`)
		}
	})
}

func (s *authSuite) TestDashboardView() {
	s.Run("前線ユーザーはキオスク表示", func() {
		t := s.T()

		sessionCookie := authtest.LoginUser(t, s.Router, "kiosk@example.com", "password123")
		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, dashboardURL, nil, []*http.Cookie{sessionCookie}, "")

		var res resdto.DashboardResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "kiosk", res.View)
		require.Equal(t, "branch-1", res.BranchID)
	})

	s.Run("管理者は管理表示、fromAdminでキオスク表示", func() {
		t := s.T()

		sessionCookie := authtest.LoginUser(t, s.Router, "admin@example.com", "password123")
		cookies := []*http.Cookie{sessionCookie}

		var res resdto.DashboardResponse
		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, dashboardURL, nil, cookies, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "admin", res.View)

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, dashboardURL+"?fromAdmin=true", nil, cookies, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "kiosk", res.View)
	})
}
