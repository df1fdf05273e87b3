package queries

//go:generate mockgen -source=audit.go -destination=../../../tests/mock/queries/audit.go -package=queriesmock

import (
	"context"

	"waste-dashboard/internal/pkg/errs"
	"waste-dashboard/internal/usecase/readmodel"
	"waste-dashboard/internal/usecase/shared"
)

const (
	DefaultAuditLimit = 50
	MaxAuditLimit     = 200
)

type AuditQueries interface {
	ListRecent(ctx context.Context, limit int) ([]readmodel.OverrideAuditRM, error)
}

type auditQueriesImpl struct {
	repo shared.OverrideAuditRepository
}

func NewAuditQueries(repo shared.OverrideAuditRepository) AuditQueries {
	return &auditQueriesImpl{repo: repo}
}

func (q *auditQueriesImpl) ListRecent(ctx context.Context, limit int) ([]readmodel.OverrideAuditRM, error) {
	switch {
	case limit <= 0:
		limit = DefaultAuditLimit
	case limit > MaxAuditLimit:
		limit = MaxAuditLimit
	}
	entries, err := q.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrAuditUnavailable)
	}
	return entries, nil
}
