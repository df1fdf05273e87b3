//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"waste-dashboard/internal/domain/user"
	"waste-dashboard/internal/pkg/clock"
	"waste-dashboard/internal/pkg/jwt"
	"waste-dashboard/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	t.Run("オーバーライドを含めて復元できる", func(t *testing.T) {
		svc := jwt.NewService("secret", time.Hour)
		sess := builder.NewSessionBuilder().
			WithRole(user.RoleCountryAdmin).
			WithOverride(user.OrgUnitRegion, "north", "North").
			BuildDomain()

		token, err := svc.GenerateToken(sess)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		restored, err := claims.Session()
		require.NoError(t, err)

		assert.Equal(t, sess.UserID(), restored.UserID())
		assert.Equal(t, sess.Email(), restored.Email())
		assert.Equal(t, sess.Role(), restored.Role())
		assert.Equal(t, sess.Company(), restored.Company())
		assert.Equal(t, sess.BranchAddress(), restored.BranchAddress())
		assert.Equal(t, sess.Override(), restored.Override())
	})

	t.Run("期限切れ", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		svc := jwt.NewService("secret", time.Hour).WithClock(clk)
		token, err := svc.GenerateToken(builder.NewSessionBuilder().BuildDomain())
		require.NoError(t, err)

		clk.Add(59 * time.Minute)
		_, err = svc.ValidateToken(token)
		require.NoError(t, err)

		clk.Add(2 * time.Minute)
		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("別の鍵で署名されたトークンは無効", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Hour).GenerateToken(builder.NewSessionBuilder().BuildDomain())
		require.NoError(t, err)

		_, err = jwt.NewService("secret", time.Hour).ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("壊れたトークンは無効", func(t *testing.T) {
		_, err := jwt.NewService("secret", time.Hour).ValidateToken("not.a.token")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("不正なロールのクレームは復元できない", func(t *testing.T) {
		claims := &jwt.Claims{UserID: "u-1", Role: "Janitor"}
		_, err := claims.Session()
		require.ErrorIs(t, err, user.ErrInvalidRole)
	})
}
