package queries

//go:generate mockgen -source=bins.go -destination=../../../tests/mock/queries/bins.go -package=queriesmock

import (
	"context"
	"strings"

	"waste-dashboard/internal/pkg/errs"
	"waste-dashboard/internal/usecase/telemetry"
)

type BinQueries interface {
	ListBins(ctx context.Context, branchID string) (*BinListView, error)
}

type binQueriesImpl struct {
	loader *telemetry.Loader
}

func NewBinQueries(loader *telemetry.Loader) BinQueries {
	return &binQueriesImpl{loader: loader}
}

func (q *binQueriesImpl) ListBins(ctx context.Context, branchID string) (*BinListView, error) {
	branchID = strings.TrimSpace(branchID)
	if branchID == "" {
		return nil, ErrBranchRequired
	}

	bins, err := q.loader.Load(ctx, branchID)
	if err != nil {
		return nil, errs.Mark(err, ErrUpstreamUnavailable)
	}

	return &BinListView{
		BranchID:    branchID,
		TotalWeight: bins.TotalWeight(),
		Bins:        NewBinViews(bins),
	}, nil
}
