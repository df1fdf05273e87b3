package telemetry

import (
	"context"
	"log/slog"
	"math"

	"waste-dashboard/internal/domain/bin"
	"waste-dashboard/internal/pkg/config"
	"waste-dashboard/internal/pkg/errs"
	"waste-dashboard/internal/pkg/metrics"
	"waste-dashboard/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

const (
	defaultEnrichConcurrency = 8
	defaultPendingLimit      = 256
)

type Options struct {
	EnrichLatestWeight bool
	EnrichConcurrency  int
	// PendingLimit bounds the updates held while the baseline is loading.
	PendingLimit int
}

func OptionsFrom(cfg config.TelemetryConfig) Options {
	return Options{
		EnrichLatestWeight: cfg.EnrichLatestWeight,
		EnrichConcurrency:  cfg.EnrichConcurrency,
		PendingLimit:       cfg.PendingLimit,
	}
}

func (o Options) concurrency() int {
	if o.EnrichConcurrency <= 0 {
		return defaultEnrichConcurrency
	}
	return o.EnrichConcurrency
}

func (o Options) pendingLimit() int {
	if o.PendingLimit <= 0 {
		return defaultPendingLimit
	}
	return o.PendingLimit
}

// Loader fetches the baseline bin collection of a branch.
type Loader struct {
	source  shared.BinSource
	opts    Options
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewLoader(source shared.BinSource, opts Options, logger *slog.Logger, m *metrics.Metrics) *Loader {
	return &Loader{source: source, opts: opts, logger: logger, metrics: m}
}

// Load returns the branch collection. With enrichment on, each record's
// weight is replaced by its latest-weight lookup; a failed lookup keeps
// the snapshot value.
func (l *Loader) Load(ctx context.Context, branchID string) (bin.Collection, error) {
	bins, err := l.source.ListBinsByBranch(ctx, branchID)
	if err != nil {
		return nil, errs.Wrapf(err, "list bins for branch %s", branchID)
	}
	if !l.opts.EnrichLatestWeight || len(bins) == 0 {
		return bins, nil
	}

	out := bins.Clone()
	var g errgroup.Group
	g.SetLimit(l.opts.concurrency())
	for i := range out {
		g.Go(func() error {
			weight, err := l.source.LatestWeight(ctx, out[i].ID)
			if err == nil && (math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0) {
				err = bin.ErrInvalidWeight
			}
			if err != nil {
				if ctx.Err() == nil {
					l.metrics.EnrichmentFailed()
					l.logger.Warn("latest weight lookup failed, keeping snapshot weight",
						slog.String("branch_id", branchID),
						slog.String("bin_id", out[i].ID),
						slog.Any("error", err))
				}
				return nil
			}
			out[i].CurrentWeight = weight
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
