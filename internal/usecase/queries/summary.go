package queries

//go:generate mockgen -source=summary.go -destination=../../../tests/mock/queries/summary.go -package=queriesmock

import (
	"context"
	"strings"

	"waste-dashboard/internal/pkg/clock"
	"waste-dashboard/internal/pkg/errs"
	"waste-dashboard/internal/usecase/readmodel"
	"waste-dashboard/internal/usecase/shared"
)

type SummaryQueries interface {
	WasteSummary(ctx context.Context, branchID string) (*readmodel.WasteSummaryRM, error)
}

type summaryQueriesImpl struct {
	source shared.WasteSummarySource
	clock  clock.Clock
}

func NewSummaryQueries(source shared.WasteSummarySource, clk clock.Clock) SummaryQueries {
	return &summaryQueriesImpl{source: source, clock: clk}
}

func (q *summaryQueriesImpl) WasteSummary(ctx context.Context, branchID string) (*readmodel.WasteSummaryRM, error) {
	branchID = strings.TrimSpace(branchID)
	if branchID == "" {
		return nil, ErrBranchRequired
	}
	summary, err := q.source.WasteSummary(ctx, branchID)
	if err != nil {
		return nil, errs.Mark(err, ErrUpstreamUnavailable)
	}
	summary.GeneratedAt = q.clock.Now()
	return summary, nil
}
