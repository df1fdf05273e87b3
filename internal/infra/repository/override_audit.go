package repository

import (
	"context"
	"log/slog"

	"waste-dashboard/internal/infra"
	"waste-dashboard/internal/usecase/readmodel"
	"waste-dashboard/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const insertOverrideAudit = `
INSERT INTO org_unit_override_audit (user_id, role, action, unit_kind, unit_id, unit_name, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const listRecentOverrideAudit = `
SELECT id, user_id, role, action, unit_kind, unit_id, unit_name, occurred_at
FROM org_unit_override_audit
ORDER BY occurred_at DESC, id DESC
LIMIT $1`

type OverrideAuditRepository struct {
	db     DBTX
	logger *slog.Logger
}

func NewOverrideAuditRepository(db DBTX, logger *slog.Logger) *OverrideAuditRepository {
	return &OverrideAuditRepository{db: db, logger: logger}
}

func (r *OverrideAuditRepository) Record(ctx context.Context, entry shared.OverrideAuditEntry) error {
	_, err := r.db.Exec(ctx, insertOverrideAudit,
		entry.UserID,
		string(entry.Role),
		string(entry.Action),
		string(entry.UnitKind),
		entry.UnitID,
		entry.UnitName,
		entry.OccurredAt,
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to record override audit", err)
	}
	return nil
}

func (r *OverrideAuditRepository) ListRecent(ctx context.Context, limit int) ([]readmodel.OverrideAuditRM, error) {
	rows, err := r.db.Query(ctx, listRecentOverrideAudit, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to list override audit", err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (readmodel.OverrideAuditRM, error) {
		var rm readmodel.OverrideAuditRM
		err := row.Scan(&rm.ID, &rm.UserID, &rm.Role, &rm.Action, &rm.UnitKind, &rm.UnitID, &rm.UnitName, &rm.OccurredAt)
		return rm, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindOf(err), "failed to scan override audit", err)
	}
	return entries, nil
}
