//go:build e2e

package override_test

import (
	"net/http"
	"testing"
	"time"

	"waste-dashboard/internal/domain/user"
	"waste-dashboard/internal/handler/dto/request"
	resdto "waste-dashboard/internal/handler/dto/response"
	"waste-dashboard/internal/pkg/cookie"
	"waste-dashboard/tests/common/authtest"
	"waste-dashboard/tests/common/builder"
	"waste-dashboard/tests/common/dbtest"
	"waste-dashboard/tests/common/httptest"
	"waste-dashboard/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	overrideURL  = "/api/org-unit/override"
	auditURL     = "/api/admin/override-audit"
	companiesURL = "/api/companies"
	binsURL      = "/api/bins"
)

type overrideSuite struct {
	e2e.SharedSuite
	superAdmin *builder.SessionBuilder
	cityAdmin  *builder.SessionBuilder
	kiosk      *builder.SessionBuilder
}

func TestOverrideSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(overrideSuite))
}

func (s *overrideSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()

	s.superAdmin = builder.NewSessionBuilder().WithEmail("super@example.com").WithRole(user.RoleSuperAdmin)
	s.cityAdmin = builder.NewSessionBuilder().WithEmail("city@example.com").WithRole(user.RoleCityAdmin)
	s.kiosk = builder.NewSessionBuilder().WithEmail("bins@example.com")
	for _, b := range []*builder.SessionBuilder{s.superAdmin, s.cityAdmin, s.kiosk} {
		s.Upstream.AddAccount(b.BuildAccount())
	}

	s.Upstream.SetBins("branch-5",
		builder.NewBinBuilder().WithID("annex-1").WithWeight(4).Build(),
		builder.NewBinBuilder().WithID("annex-2").WithName("Glass").WithWeight(6).Build(),
	)
}

func (s *overrideSuite) login(b *builder.SessionBuilder) []*http.Cookie {
	return []*http.Cookie{authtest.LoginUser(s.T(), s.Router, b.Email, b.Password)}
}

func (s *overrideSuite) TestOverrideLifecycle() {
	s.Run("支店に入って抜けると監査ログが残る", func() {
		t := s.T()
		cookies := s.login(s.superAdmin)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, overrideURL,
			request.OverrideRequest{Kind: "branch", ID: "branch-5", Name: "Annex"}, cookies, "")
		var entered resdto.OverrideResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &entered)
		require.NotNil(t, entered.User)
		assert.True(t, entered.User.Overridden)
		require.NotNil(t, entered.User.OrgUnit)
		assert.Equal(t, "branch-5", entered.User.OrgUnit.ID)

		overridden := httptest.ExtractCookie(w, cookie.SessionCookieName)
		require.NotNil(t, overridden, "オーバーライド後のCookieが設定されていない")
		cookies = []*http.Cookie{overridden}

		// 一覧はオーバーライド先の支店になる
		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, binsURL, nil, cookies, "")
		var bins resdto.BinListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &bins)
		assert.Equal(t, "branch-5", bins.BranchID)
		assert.Len(t, bins.Bins, 2)
		assert.InDelta(t, 10, bins.TotalWeight, 0.001)

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodDelete, overrideURL, nil, cookies, "")
		var exited resdto.OverrideResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &exited)
		assert.False(t, exited.User.Overridden)
		cookies = []*http.Cookie{httptest.ExtractCookie(w, cookie.SessionCookieName)}

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodDelete, overrideURL, nil, cookies, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "No active override")

		userID := s.superAdmin.UserID
		require.Equal(t, 2, dbtest.CountAuditEntries(t, s.DB, userID))

		w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, auditURL, nil, cookies, "")
		var audit resdto.AuditListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &audit)
		require.Len(t, audit.Entries, 2)
		assert.Equal(t, "exit", audit.Entries[0].Action)
		assert.Equal(t, "enter", audit.Entries[1].Action)
		for _, e := range audit.Entries {
			assert.Equal(t, userID, e.UserID)
			assert.Equal(t, "branch", e.UnitKind)
			assert.Equal(t, "branch-5", e.UnitID)
		}
	})

	s.Run("不正な組織単位は400", func() {
		t := s.T()
		cookies := s.login(s.cityAdmin)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, overrideURL,
			map[string]string{"kind": "planet", "id": "mars"}, cookies, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request format")
		assert.Zero(t, dbtest.CountAuditEntries(t, s.DB, s.cityAdmin.UserID))
	})

	s.Run("前線ロールはオーバーライドできない", func() {
		t := s.T()
		cookies := s.login(s.kiosk)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, overrideURL,
			request.OverrideRequest{Kind: "branch", ID: "branch-5"}, cookies, "")
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
		assert.Contains(t, w.Body.String(), `"redirect":"/dashboard"`)
	})
}

func (s *overrideSuite) TestSuperAdminRoutes() {
	s.Run("CityAdminは会社一覧と監査ログを見られない", func() {
		t := s.T()
		cookies := s.login(s.cityAdmin)

		for _, path := range []string{companiesURL, auditURL} {
			w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, path, nil, cookies, "")
			httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
		}
	})

	s.Run("監査ログは新しい順で件数を絞れる", func() {
		t := s.T()
		base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		dbtest.InsertAuditEntry(t, s.DB, "u-old", "CityAdmin", "enter", "city", "c-1", base)
		dbtest.InsertAuditEntry(t, s.DB, "u-new", "RegionalAdmin", "enter", "region", "r-1", base.Add(time.Hour))

		cookies := s.login(s.superAdmin)
		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, auditURL+"?limit=1", nil, cookies, "")
		var audit resdto.AuditListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &audit)
		require.Len(t, audit.Entries, 1)
		assert.Equal(t, "u-new", audit.Entries[0].UserID)
	})

	s.Run("上限を超える件数は400", func() {
		t := s.T()
		cookies := s.login(s.superAdmin)
		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, auditURL+"?limit=500", nil, cookies, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid query")
	})
}
