package access

import (
	"waste-dashboard/internal/domain/user"
)

type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomePermit
	OutcomeDeny
)

func (o Outcome) String() string {
	switch o {
	case OutcomePermit:
		return "permit"
	case OutcomeDeny:
		return "deny"
	default:
		return "pending"
	}
}

type Decision struct {
	Outcome  Outcome
	Redirect string
}

func (d Decision) Permitted() bool {
	return d.Outcome == OutcomePermit
}

// Decide is the route guard. An unresolved session yields Pending so the
// caller can hold a neutral loading state instead of redirecting early.
func Decide(state user.State, sess *user.Session, route RouteKey) Decision {
	switch state {
	case user.StateUnresolved:
		return Decision{Outcome: OutcomePending}
	case user.StatePresent:
		if sess == nil {
			return Decision{Outcome: OutcomeDeny, Redirect: LoginPath}
		}
	default:
		return Decision{Outcome: OutcomeDeny, Redirect: LoginPath}
	}

	rule, ok := table[route]
	if !ok {
		return Decision{Outcome: OutcomeDeny, Redirect: DashboardPath}
	}
	if !rule.Allow.Contains(sess.Role()) {
		return Decision{Outcome: OutcomeDeny, Redirect: rule.Fallback}
	}
	return Decision{Outcome: OutcomePermit}
}

type View string

const (
	ViewKiosk View = "kiosk"
	ViewAdmin View = "admin"
)

// SelectDashboardView picks the content at the dashboard root. Both
// outcomes are permitted views; this never denies.
func SelectDashboardView(role user.Role, fromAdmin bool) View {
	if role.IsFrontLine() || fromAdmin {
		return ViewKiosk
	}
	return ViewAdmin
}
