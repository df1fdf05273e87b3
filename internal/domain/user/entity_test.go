//go:build unit

package user_test

import (
	"encoding/json"
	"testing"

	"waste-dashboard/internal/domain/user"
	"waste-dashboard/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	t.Run("ロール順位", func(t *testing.T) {
		for i := 1; i < len(user.AllRoles); i++ {
			higher, lower := user.AllRoles[i-1], user.AllRoles[i]
			assert.True(t, higher.Outranks(lower), "%s は %s より上位", higher, lower)
		}
		assert.Equal(t, 0, user.Role("Janitor").Rank())
	})

	t.Run("前線ロール判定", func(t *testing.T) {
		frontLine := map[user.Role]bool{
			user.RoleEmployeeDashboardUser: true,
			user.RoleBinDisplayUser:        true,
		}
		for _, r := range user.AllRoles {
			assert.Equal(t, frontLine[r], r.IsFrontLine(), r.String())
		}
	})

	t.Run("ロール生成", func(t *testing.T) {
		tests := []struct {
			name  string
			input string
			errIs error
		}{
			{name: "SuperAdmin OK", input: "SuperAdmin"},
			{name: "BinDisplayUser OK", input: "BinDisplayUser"},
			{name: "小文字NG", input: "superadmin", errIs: user.ErrInvalidRole},
			{name: "空文字NG", input: "", errIs: user.ErrInvalidRole},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				role, err := user.NewRole(tt.input)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.input, role.String())
			})
		}
	})
}

func TestOrgRef(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected user.OrgRef
	}{
		{
			name:     "IDのみの文字列",
			payload:  `"branch-1"`,
			expected: user.OrgRef{ID: "branch-1"},
		},
		{
			name:     "展開済みドキュメント",
			payload:  `{"_id":"branch-1","branchName":"Head Office"}`,
			expected: user.OrgRef{ID: "branch-1", Name: "Head Office"},
		},
		{
			name:     "会社ドキュメント",
			payload:  `{"_id":"company-1","CompanyName":"Acme"}`,
			expected: user.OrgRef{ID: "company-1", Name: "Acme"},
		},
		{
			name:     "id と name が優先",
			payload:  `{"id":"x","_id":"y","name":"X","branchName":"Y"}`,
			expected: user.OrgRef{ID: "x", Name: "X"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref user.OrgRef
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &ref))
			if diff := cmp.Diff(tt.expected, ref); diff != "" {
				t.Errorf("OrgRef mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("不正なJSONはエラー", func(t *testing.T) {
		var ref user.OrgRef
		require.Error(t, json.Unmarshal([]byte(`[1,2]`), &ref))
	})
}

func TestOrgUnit(t *testing.T) {
	t.Run("正規化される", func(t *testing.T) {
		u, err := user.NewOrgUnit(" Branch ", " b-1 ", " Head Office ")
		require.NoError(t, err)
		assert.Equal(t, user.OrgUnitBranch, u.Kind())
		assert.Equal(t, "b-1", u.ID())
		assert.Equal(t, "Head Office", u.Name())
		assert.Equal(t, "b-1", u.BranchID())
	})

	t.Run("支店以外はBranchIDが空", func(t *testing.T) {
		u, err := user.NewOrgUnit("city", "c-1", "")
		require.NoError(t, err)
		assert.Empty(t, u.BranchID())
	})

	t.Run("不正な単位NG", func(t *testing.T) {
		_, err := user.NewOrgUnit("planet", "p-1", "")
		require.ErrorIs(t, err, user.ErrInvalidOrgUnit)
		_, err = user.NewOrgUnit("branch", "  ", "")
		require.ErrorIs(t, err, user.ErrInvalidOrgUnit)
	})
}

func TestSession(t *testing.T) {
	t.Run("無効なロールNG", func(t *testing.T) {
		_, err := user.NewSession("u-1", "a@example.com", user.Role("Janitor"), nil, nil)
		require.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("基本単位は所属支店", func(t *testing.T) {
		sess := builder.NewSessionBuilder().BuildDomain()
		unit := sess.OrgUnit()
		require.NotNil(t, unit)
		assert.Equal(t, user.OrgUnitBranch, unit.Kind())
		assert.Equal(t, "branch-1", unit.ID())
		assert.False(t, sess.IsOverridden())
	})

	t.Run("支店なしは単位なし", func(t *testing.T) {
		sess := builder.NewSessionBuilder().WithoutBranch().BuildDomain()
		assert.Nil(t, sess.OrgUnit())
	})

	t.Run("オーバーライドは元のセッションを変えない", func(t *testing.T) {
		base := builder.NewSessionBuilder().WithRole(user.RoleSuperAdmin).BuildDomain()
		city, err := user.NewOrgUnit("city", "c-1", "Metro")
		require.NoError(t, err)

		overridden := base.WithOverride(city)
		assert.False(t, base.IsOverridden())
		assert.Equal(t, "branch-1", base.OrgUnit().ID())

		require.True(t, overridden.IsOverridden())
		assert.Equal(t, user.OrgUnitCity, overridden.OrgUnit().Kind())
		assert.Equal(t, base.UserID(), overridden.UserID())
		assert.Equal(t, base.Role(), overridden.Role())

		restored := overridden.WithoutOverride()
		assert.False(t, restored.IsOverridden())
		assert.True(t, overridden.IsOverridden())
		assert.Equal(t, "branch-1", restored.OrgUnit().ID())
	})

	t.Run("参照はコピーで返る", func(t *testing.T) {
		sess := builder.NewSessionBuilder().BuildDomain()
		ref := sess.BranchAddress()
		ref.ID = "mutated"
		assert.Equal(t, "branch-1", sess.BranchAddress().ID)
	})
}
