package access

import (
	"slices"

	"waste-dashboard/internal/domain/user"
)

type RouteKey string

const (
	RouteSession       RouteKey = "session"
	RouteDashboard     RouteKey = "dashboard"
	RouteBins          RouteKey = "bins"
	RouteLiveBins      RouteKey = "live-bins"
	RouteWasteSummary  RouteKey = "waste-summary"
	RouteOrgOverride   RouteKey = "org-override"
	RouteCompanies     RouteKey = "companies"
	RouteOverrideAudit RouteKey = "override-audit"
)

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

type AllowList []user.Role

func (l AllowList) Contains(role user.Role) bool {
	return slices.Contains(l, role)
}

var (
	SuperAdminOnly = AllowList{user.RoleSuperAdmin}

	Administrators = AllowList{
		user.RoleSuperAdmin,
		user.RoleCountryAdmin,
		user.RoleRegionalAdmin,
		user.RoleCityAdmin,
		user.RoleOfficeAdmin,
	}

	Everyone = AllowList(user.AllRoles)
)

type Rule struct {
	Allow AllowList
	// Fallback is where a present-but-unauthorised session is sent.
	Fallback string
}

// Routes open to every role fall back to login so a denial can never loop
// back onto the dashboard.
var table = map[RouteKey]Rule{
	RouteSession:       {Allow: Everyone, Fallback: LoginPath},
	RouteDashboard:     {Allow: Everyone, Fallback: LoginPath},
	RouteBins:          {Allow: Everyone, Fallback: LoginPath},
	RouteLiveBins:      {Allow: Everyone, Fallback: LoginPath},
	RouteWasteSummary:  {Allow: Administrators, Fallback: DashboardPath},
	RouteOrgOverride:   {Allow: Administrators, Fallback: DashboardPath},
	RouteCompanies:     {Allow: SuperAdminOnly, Fallback: DashboardPath},
	RouteOverrideAudit: {Allow: SuperAdminOnly, Fallback: DashboardPath},
}

func RuleFor(route RouteKey) (Rule, bool) {
	r, ok := table[route]
	return r, ok
}

func Routes() []RouteKey {
	keys := make([]RouteKey, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// CanAccess reports whether role is on the route's allow-list. Unknown
// routes are closed.
func CanAccess(role user.Role, route RouteKey) bool {
	rule, ok := table[route]
	if !ok {
		return false
	}
	return rule.Allow.Contains(role)
}
