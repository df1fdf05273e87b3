package shared

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

import (
	"context"
	"errors"
	"time"

	"waste-dashboard/internal/domain/auth"
	"waste-dashboard/internal/domain/bin"
	"waste-dashboard/internal/domain/user"
	"waste-dashboard/internal/usecase/readmodel"
)

// ErrUpstreamUnauthorized marks upstream 401/403 answers.
var ErrUpstreamUnauthorized = errors.New("upstream rejected credentials")

// AuthGateway is the upstream identity endpoint.
type AuthGateway interface {
	CurrentUser(ctx context.Context) (*user.Session, error)
	Login(ctx context.Context, creds auth.Credentials) (*user.Session, error)
	Logout(ctx context.Context) error
}

type BinSource interface {
	ListBinsByBranch(ctx context.Context, branchID string) (bin.Collection, error)
	LatestWeight(ctx context.Context, binID string) (float64, error)
}

type Subscription interface {
	Updates() <-chan bin.WeightUpdate
	Close() error
}

// PushChannel opens one branch-scoped stream of weight updates. The
// subscription reconnects on its own until closed.
type PushChannel interface {
	Subscribe(ctx context.Context, branchID string) (Subscription, error)
}

type CompanyDirectory interface {
	ListCompanies(ctx context.Context) ([]readmodel.CompanyRM, error)
}

type WasteSummarySource interface {
	WasteSummary(ctx context.Context, branchID string) (*readmodel.WasteSummaryRM, error)
}

type OverrideAction string

const (
	OverrideEntered OverrideAction = "enter"
	OverrideExited  OverrideAction = "exit"
)

type OverrideAuditEntry struct {
	UserID     string
	Role       user.Role
	Action     OverrideAction
	UnitKind   user.OrgUnitKind
	UnitID     string
	UnitName   string
	OccurredAt time.Time
}

type OverrideAuditRepository interface {
	Record(ctx context.Context, entry OverrideAuditEntry) error
	ListRecent(ctx context.Context, limit int) ([]readmodel.OverrideAuditRM, error)
}
