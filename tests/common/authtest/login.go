//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"waste-dashboard/internal/handler/dto/request"
	"waste-dashboard/internal/pkg/cookie"
	"waste-dashboard/tests/common/builder"
	"waste-dashboard/tests/common/httptest"
	"waste-dashboard/tests/common/upstreamtest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser logs in through the BFF and returns the session cookie.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	sessionCookie := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, sessionCookie, "Session cookie not found")
	require.NotEmpty(t, sessionCookie.Value, "Session cookie is empty")

	return sessionCookie
}

// CreateAndLogin registers the account upstream, then logs in through the BFF.
func CreateAndLogin(t *testing.T, upstream *upstreamtest.Server, router *gin.Engine, b *builder.SessionBuilder) *http.Cookie {
	t.Helper()
	upstream.AddAccount(b.BuildAccount())
	return LoginUser(t, router, b.Email, b.Password)
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
