package queries

import (
	"strings"

	"waste-dashboard/internal/domain/access"
	"waste-dashboard/internal/domain/user"
)

type DashboardQueries interface {
	Dashboard(sess *user.Session, fromAdmin bool) DashboardView
	// ResolveBranch picks the branch a data view is scoped to: the
	// explicit one first, then the session's effective org unit.
	ResolveBranch(sess *user.Session, explicit string) string
}

type dashboardQueriesImpl struct{}

func NewDashboardQueries() DashboardQueries {
	return &dashboardQueriesImpl{}
}

func (q *dashboardQueriesImpl) Dashboard(sess *user.Session, fromAdmin bool) DashboardView {
	view := DashboardView{
		View:    access.SelectDashboardView(sess.Role(), fromAdmin),
		Role:    sess.Role(),
		OrgUnit: sess.OrgUnit(),
	}
	view.BranchID = q.ResolveBranch(sess, "")
	for _, route := range access.Routes() {
		if route == access.RouteDashboard || route == access.RouteSession {
			continue
		}
		if access.CanAccess(sess.Role(), route) {
			view.Panels = append(view.Panels, route)
		}
	}
	return view
}

func (q *dashboardQueriesImpl) ResolveBranch(sess *user.Session, explicit string) string {
	if b := strings.TrimSpace(explicit); b != "" {
		return b
	}
	if sess == nil {
		return ""
	}
	if unit := sess.OrgUnit(); unit != nil {
		return unit.BranchID()
	}
	return ""
}
