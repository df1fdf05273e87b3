//go:build unit

package access_test

import (
	"testing"

	"waste-dashboard/internal/domain/access"
	"waste-dashboard/internal/domain/user"
	"waste-dashboard/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	t.Run("未解決はリダイレクトせず保留", func(t *testing.T) {
		for _, route := range access.Routes() {
			d := access.Decide(user.StateUnresolved, nil, route)
			assert.Equal(t, access.OutcomePending, d.Outcome, route)
			assert.Empty(t, d.Redirect)
		}
	})

	t.Run("不在はログインへ", func(t *testing.T) {
		for _, route := range access.Routes() {
			d := access.Decide(user.StateAbsent, nil, route)
			assert.Equal(t, access.Decision{Outcome: access.OutcomeDeny, Redirect: access.LoginPath}, d, route)
		}
	})

	t.Run("存在なのにセッションがなければログインへ", func(t *testing.T) {
		d := access.Decide(user.StatePresent, nil, access.RouteDashboard)
		assert.Equal(t, access.LoginPath, d.Redirect)
	})

	t.Run("未知のルートは閉じている", func(t *testing.T) {
		sess := builder.NewSessionBuilder().WithRole(user.RoleSuperAdmin).BuildDomain()
		d := access.Decide(user.StatePresent, sess, access.RouteKey("reports"))
		assert.Equal(t, access.OutcomeDeny, d.Outcome)
		assert.Equal(t, access.DashboardPath, d.Redirect)
		assert.False(t, access.CanAccess(user.RoleSuperAdmin, "reports"))
	})

	t.Run("ロールとルートの全組み合わせ", func(t *testing.T) {
		admins := map[user.Role]bool{
			user.RoleSuperAdmin:    true,
			user.RoleCountryAdmin:  true,
			user.RoleRegionalAdmin: true,
			user.RoleCityAdmin:     true,
			user.RoleOfficeAdmin:   true,
		}
		allowed := func(role user.Role, route access.RouteKey) bool {
			switch route {
			case access.RouteCompanies, access.RouteOverrideAudit:
				return role == user.RoleSuperAdmin
			case access.RouteWasteSummary, access.RouteOrgOverride:
				return admins[role]
			default:
				return true
			}
		}

		for _, role := range user.AllRoles {
			sess := builder.NewSessionBuilder().WithRole(role).BuildDomain()
			for _, route := range access.Routes() {
				d := access.Decide(user.StatePresent, sess, route)
				want := allowed(role, route)
				assert.Equal(t, want, d.Permitted(), "%s -> %s", role, route)
				assert.Equal(t, want, access.CanAccess(role, route), "%s -> %s", role, route)
				if !want {
					assert.Equal(t, access.DashboardPath, d.Redirect, "%s -> %s", role, route)
				}
			}
		}
	})

	t.Run("全員に開いたルートの拒否は必ずログインへ", func(t *testing.T) {
		for _, route := range access.Routes() {
			rule, ok := access.RuleFor(route)
			assert.True(t, ok)
			if len(rule.Allow) == len(user.AllRoles) {
				assert.Equal(t, access.LoginPath, rule.Fallback, route)
			}
			assert.NotEmpty(t, rule.Allow, route)
		}
	})
}

func TestSelectDashboardView(t *testing.T) {
	tests := []struct {
		name      string
		role      user.Role
		fromAdmin bool
		expected  access.View
	}{
		{name: "表示端末はキオスク", role: user.RoleBinDisplayUser, expected: access.ViewKiosk},
		{name: "従業員はキオスク", role: user.RoleEmployeeDashboardUser, expected: access.ViewKiosk},
		{name: "管理者は管理画面", role: user.RoleCityAdmin, expected: access.ViewAdmin},
		{name: "管理画面から来た管理者はキオスク", role: user.RoleSuperAdmin, fromAdmin: true, expected: access.ViewKiosk},
		{name: "前線ロールはfromAdminでもキオスク", role: user.RoleBinDisplayUser, fromAdmin: true, expected: access.ViewKiosk},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, access.SelectDashboardView(tt.role, tt.fromAdmin))
		})
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "pending", access.OutcomePending.String())
	assert.Equal(t, "permit", access.OutcomePermit.String())
	assert.Equal(t, "deny", access.OutcomeDeny.String())
}
