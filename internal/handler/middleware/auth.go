package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"waste-dashboard/internal/domain/access"
	"waste-dashboard/internal/domain/user"
	"waste-dashboard/internal/handler/httperr"
	"waste-dashboard/internal/pkg/cookie"
	"waste-dashboard/internal/pkg/errs"
	"waste-dashboard/internal/pkg/metrics"
	"waste-dashboard/internal/usecase"

	"github.com/gin-gonic/gin"
)

var (
	ErrSessionPending = errs.New("session not resolved")
	ErrSessionAbsent  = errs.New("session required")
	ErrAccessDenied   = errs.New("role not permitted for route")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	metrics        *metrics.Metrics
}

const (
	ctxSessionKey      = "session"
	ctxSessionStateKey = "session_state"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, m *metrics.Metrics) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		metrics:        m,
	}
}

// ResolveSession reads the one session source, the signed cookie or a
// Bearer token, and records the outcome. It never aborts; RequireAccess
// decides.
func (m *AuthMiddleware) ResolveSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c)
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.Set(ctxSessionStateKey, user.StateAbsent)
			c.Next()
			return
		}

		sess, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.Set(ctxSessionStateKey, user.StateAbsent)
			c.Next()
			return
		}

		c.Set(ctxSessionKey, sess)
		c.Set(ctxSessionStateKey, user.StatePresent)
		c.Set("jwt_claims", map[string]any{
			"user_id": sess.UserID(),
			"role":    sess.Role().String(),
		})
		c.Next()
	}
}

// RequireAccess applies the authorization table entry for route.
func (m *AuthMiddleware) RequireAccess(route access.RouteKey) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, _ := GetSession(c)
		decision := access.Decide(GetSessionState(c), sess, route)
		m.metrics.ObserveGate(string(route), decision.Outcome.String())

		detail := gin.H{"redirect": decision.Redirect}
		switch {
		case decision.Permitted():
			c.Next()
		case decision.Outcome == access.OutcomePending:
			httperr.AbortWithError(c, http.StatusServiceUnavailable, ErrSessionPending, "Session is still being resolved", nil)
		case decision.Redirect == access.LoginPath:
			httperr.AbortWithError(c, http.StatusUnauthorized, ErrSessionAbsent, "Authentication required", detail)
		default:
			httperr.AbortWithError(c, http.StatusForbidden, ErrAccessDenied, "Insufficient permissions", detail)
		}
	}
}

func GetSession(c *gin.Context) (*user.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*user.Session)
	return sess, ok && sess != nil
}

// GetSessionState is unresolved when ResolveSession has not run.
func GetSessionState(c *gin.Context) user.State {
	v, exists := c.Get(ctxSessionStateKey)
	if !exists {
		return user.StateUnresolved
	}
	state, ok := v.(user.State)
	if !ok {
		return user.StateUnresolved
	}
	return state
}
