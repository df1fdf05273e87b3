package commands

//go:generate mockgen -source=override.go -destination=../../../tests/mock/commands/override.go -package=commandsmock

import (
	"context"
	"log/slog"

	"waste-dashboard/internal/domain/access"
	"waste-dashboard/internal/domain/user"
	reqdto "waste-dashboard/internal/handler/dto/request"
	"waste-dashboard/internal/pkg/clock"
	"waste-dashboard/internal/pkg/errs"
	"waste-dashboard/internal/pkg/jwt"
	"waste-dashboard/internal/usecase/shared"
)

var (
	ErrOverrideNotAllowed = errs.New("role may not override org unit")
	ErrInvalidOrgUnit     = errs.New("invalid org unit")
	ErrNoActiveOverride   = errs.New("no active org unit override")
)

// OverrideResult carries the reissued session token.
type OverrideResult = LoginResult

type OverrideCommands interface {
	Enter(ctx context.Context, sess *user.Session, req reqdto.OverrideRequest) (*OverrideResult, error)
	Exit(ctx context.Context, sess *user.Session) (*OverrideResult, error)
}

type overrideCommandsImpl struct {
	audit      shared.OverrideAuditRepository
	jwtService *jwt.Service
	clock      clock.Clock
	logger     *slog.Logger
}

func NewOverrideCommands(audit shared.OverrideAuditRepository, jwtService *jwt.Service, clk clock.Clock, logger *slog.Logger) OverrideCommands {
	return &overrideCommandsImpl{
		audit:      audit,
		jwtService: jwtService,
		clock:      clk,
		logger:     logger,
	}
}

func (o *overrideCommandsImpl) Enter(ctx context.Context, sess *user.Session, req reqdto.OverrideRequest) (*OverrideResult, error) {
	if !access.CanAccess(sess.Role(), access.RouteOrgOverride) {
		return nil, ErrOverrideNotAllowed
	}
	unit, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidOrgUnit)
	}

	next := sess.WithOverride(unit)
	result, err := o.reissue(next)
	if err != nil {
		return nil, err
	}
	o.record(ctx, next, shared.OverrideEntered, &unit)
	return result, nil
}

func (o *overrideCommandsImpl) Exit(ctx context.Context, sess *user.Session) (*OverrideResult, error) {
	if !access.CanAccess(sess.Role(), access.RouteOrgOverride) {
		return nil, ErrOverrideNotAllowed
	}
	left := sess.Override()
	if left == nil {
		return nil, ErrNoActiveOverride
	}

	next := sess.WithoutOverride()
	result, err := o.reissue(next)
	if err != nil {
		return nil, err
	}
	o.record(ctx, next, shared.OverrideExited, left)
	return result, nil
}

func (o *overrideCommandsImpl) reissue(sess *user.Session) (*OverrideResult, error) {
	token, err := o.jwtService.GenerateToken(sess)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &OverrideResult{Session: sess, Token: token, ExpiresIn: o.jwtService.TokenDuration()}, nil
}

// record never fails the override; the audit trail is best effort.
func (o *overrideCommandsImpl) record(ctx context.Context, sess *user.Session, action shared.OverrideAction, unit *user.OrgUnit) {
	entry := shared.OverrideAuditEntry{
		UserID:     sess.UserID(),
		Role:       sess.Role(),
		Action:     action,
		UnitKind:   unit.Kind(),
		UnitID:     unit.ID(),
		UnitName:   unit.Name(),
		OccurredAt: o.clock.Now(),
	}
	if err := o.audit.Record(ctx, entry); err != nil {
		o.logger.Warn("failed to record org unit override",
			slog.String("user_id", sess.UserID()),
			slog.String("action", string(action)),
			slog.Any("error", err))
	}
}
