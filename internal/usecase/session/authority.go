package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"waste-dashboard/internal/domain/access"
	"waste-dashboard/internal/domain/auth"
	"waste-dashboard/internal/domain/user"
	"waste-dashboard/internal/pkg/errs"
	"waste-dashboard/internal/usecase/shared"
)

var (
	ErrNoSession          = errors.New("no active session")
	ErrOverrideNotAllowed = errors.New("role may not override org unit")
	ErrNoActiveOverride   = errors.New("no active org unit override")
	ErrSuperseded         = errors.New("superseded by a later session change")
)

type View struct {
	State   user.State
	Session *user.Session
}

// Authority is the single client-side source of session truth. Every
// write takes a ticket when it starts; a result is applied only if no
// later write has been applied already, so a slow login that completes
// after a logout is dropped.
type Authority struct {
	gateway shared.AuthGateway
	logger  *slog.Logger

	mu      sync.Mutex
	state   user.State
	session *user.Session
	issued  uint64
	applied uint64
	changes chan struct{}
}

func NewAuthority(gateway shared.AuthGateway, logger *slog.Logger) *Authority {
	return &Authority{
		gateway: gateway,
		logger:  logger,
		state:   user.StateUnresolved,
		changes: make(chan struct{}, 1),
	}
}

func (a *Authority) Current() View {
	a.mu.Lock()
	defer a.mu.Unlock()
	return View{State: a.state, Session: a.session}
}

func (a *Authority) Changes() <-chan struct{} {
	return a.changes
}

// Resolve checks the current upstream session. Any failure leaves the
// authority absent; there is no retry.
func (a *Authority) Resolve(ctx context.Context) View {
	ticket := a.ticket()
	sess, err := a.gateway.CurrentUser(ctx)
	if err != nil {
		a.logger.Info("session check failed", slog.Any("error", err))
		a.commit(ticket, user.StateAbsent, nil)
		return a.Current()
	}
	a.commit(ticket, user.StatePresent, sess)
	return a.Current()
}

func (a *Authority) Login(ctx context.Context, email, password string) (*user.Session, error) {
	creds, err := auth.NewCredentials(email, password)
	if err != nil {
		return nil, err
	}

	ticket := a.ticket()
	sess, err := a.gateway.Login(ctx, creds)
	if err != nil {
		return nil, errs.Wrap(err, "login")
	}
	if !a.commit(ticket, user.StatePresent, sess) {
		return nil, ErrSuperseded
	}
	return sess, nil
}

// Logout tells upstream and clears the session whatever upstream says.
func (a *Authority) Logout(ctx context.Context) {
	ticket := a.ticket()
	if err := a.gateway.Logout(ctx); err != nil {
		a.logger.Warn("upstream logout failed", slog.Any("error", err))
	}
	a.commit(ticket, user.StateAbsent, nil)
}

// Override layers unit over the current session without touching the
// authenticated identity.
func (a *Authority) Override(unit user.OrgUnit) (*user.Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != user.StatePresent || a.session == nil {
		return nil, ErrNoSession
	}
	if !access.CanAccess(a.session.Role(), access.RouteOrgOverride) {
		return nil, ErrOverrideNotAllowed
	}
	a.session = a.session.WithOverride(unit)
	a.bumpLocked()
	return a.session, nil
}

func (a *Authority) ExitOverride() (*user.Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != user.StatePresent || a.session == nil {
		return nil, ErrNoSession
	}
	if !a.session.IsOverridden() {
		return nil, ErrNoActiveOverride
	}
	a.session = a.session.WithoutOverride()
	a.bumpLocked()
	return a.session, nil
}

func (a *Authority) ticket() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.issued++
	return a.issued
}

func (a *Authority) commit(ticket uint64, state user.State, sess *user.Session) bool {
	a.mu.Lock()
	if ticket <= a.applied {
		a.mu.Unlock()
		return false
	}
	a.applied = ticket
	a.state = state
	a.session = sess
	a.mu.Unlock()
	a.notify()
	return true
}

// bumpLocked applies a synchronous write; in-flight network writes that
// started earlier lose to it.
func (a *Authority) bumpLocked() {
	a.issued++
	a.applied = a.issued
	select {
	case a.changes <- struct{}{}:
	default:
	}
}

func (a *Authority) notify() {
	select {
	case a.changes <- struct{}{}:
	default:
	}
}
