//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"waste-dashboard/internal/domain/user"
	"waste-dashboard/internal/pkg/clock"
	"waste-dashboard/internal/pkg/config"
	"waste-dashboard/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) Service(t *testing.T) *jwt.Service {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return jwt.NewService(h.cfg.Secret, duration)
}

func (h *JWTHelper) GenerateToken(t *testing.T, sess *user.Session) string {
	t.Helper()
	token, err := h.Service(t).GenerateToken(sess)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs with a clock far enough in the past that the
// token is already expired.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, sess *user.Session) string {
	t.Helper()
	service := h.Service(t)
	past := clock.NewMockClock(time.Now().Add(-2 * service.TokenDuration()))
	token, err := service.WithClock(past).GenerateToken(sess)
	require.NoError(t, err)
	return token
}
