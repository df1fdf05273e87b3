package user

type Role string

const (
	RoleSuperAdmin            Role = "SuperAdmin"
	RoleCountryAdmin          Role = "CountryAdmin"
	RoleRegionalAdmin         Role = "RegionalAdmin"
	RoleCityAdmin             Role = "CityAdmin"
	RoleOfficeAdmin           Role = "OfficeAdmin"
	RoleEmployeeDashboardUser Role = "EmployeeDashboardUser"
	RoleBinDisplayUser        Role = "BinDisplayUser"
)

// AllRoles is ordered from global scope down to the front line.
var AllRoles = []Role{
	RoleSuperAdmin,
	RoleCountryAdmin,
	RoleRegionalAdmin,
	RoleCityAdmin,
	RoleOfficeAdmin,
	RoleEmployeeDashboardUser,
	RoleBinDisplayUser,
}

var roleRank = map[Role]int{
	RoleSuperAdmin:            7,
	RoleCountryAdmin:          6,
	RoleRegionalAdmin:         5,
	RoleCityAdmin:             4,
	RoleOfficeAdmin:           3,
	RoleEmployeeDashboardUser: 2,
	RoleBinDisplayUser:        1,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// Rank is 0 for unknown roles.
func (r Role) Rank() int {
	return roleRank[r]
}

func (r Role) IsFrontLine() bool {
	return r == RoleEmployeeDashboardUser || r == RoleBinDisplayUser
}

func (r Role) Outranks(other Role) bool {
	return r.Rank() > other.Rank()
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

type State int

const (
	StateUnresolved State = iota
	StateAbsent
	StatePresent
)

func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StatePresent:
		return "present"
	default:
		return "unresolved"
	}
}
