package telemetry

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"waste-dashboard/internal/domain/bin"
	"waste-dashboard/internal/pkg/metrics"
	"waste-dashboard/internal/usecase/shared"
)

type Snapshot struct {
	BranchID string
	Bins     bin.Collection
	Loading  bool
	Err      error
	// Idle feeds have no branch: nothing is fetched or subscribed.
	Idle bool
}

type Reconciler struct {
	loader  *Loader
	push    shared.PushChannel
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewReconciler(loader *Loader, push shared.PushChannel, logger *slog.Logger, m *metrics.Metrics) *Reconciler {
	return &Reconciler{loader: loader, push: push, logger: logger, metrics: m}
}

// Feed is one branch-scoped live collection. The baseline comes from the
// loader; push updates are merged by bin id on top of it.
type Feed struct {
	branchID     string
	pendingLimit int
	logger       *slog.Logger
	metrics      *metrics.Metrics

	mu          sync.Mutex
	bins        bin.Collection
	loading     bool
	err         error
	baselineSet bool
	pending     []bin.WeightUpdate
	closed      bool

	cancel    context.CancelFunc
	sub       shared.Subscription
	changes   chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// Open starts the subscription and the baseline fetch for branchID. An
// empty branch id yields an idle feed.
func (r *Reconciler) Open(ctx context.Context, branchID string) *Feed {
	f := &Feed{
		branchID:     strings.TrimSpace(branchID),
		pendingLimit: r.loader.opts.pendingLimit(),
		logger:       r.logger,
		metrics:      r.metrics,
		changes:      make(chan struct{}, 1),
		done:         make(chan struct{}),
	}
	if f.branchID == "" {
		return f
	}

	feedCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.loading = true
	r.metrics.FeedOpened()

	sub, err := r.push.Subscribe(feedCtx, f.branchID)
	if err != nil {
		r.logger.Warn("push subscription unavailable, serving baseline only",
			slog.String("branch_id", f.branchID),
			slog.Any("error", err))
	} else {
		f.sub = sub
		go f.consume(sub.Updates())
	}

	go f.fetch(feedCtx, r.loader)
	return f
}

func (f *Feed) BranchID() string {
	return f.branchID
}

// Changes receives a coalesced signal after every observable change.
func (f *Feed) Changes() <-chan struct{} {
	return f.changes
}

// Done is closed by Close.
func (f *Feed) Done() <-chan struct{} {
	return f.done
}

func (f *Feed) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{
		BranchID: f.branchID,
		Bins:     f.bins.Clone(),
		Loading:  f.loading,
		Err:      f.err,
		Idle:     f.branchID == "",
	}
}

// Close releases the subscription exactly once. Results that land after
// Close are discarded.
func (f *Feed) Close() {
	f.closeOnce.Do(func() {
		f.mu.Lock()
		f.closed = true
		f.pending = nil
		f.mu.Unlock()

		if f.cancel != nil {
			f.cancel()
			f.metrics.FeedClosed()
		}
		if f.sub != nil {
			if err := f.sub.Close(); err != nil {
				f.logger.Warn("push subscription close failed",
					slog.String("branch_id", f.branchID),
					slog.Any("error", err))
			}
		}
		close(f.done)
	})
}

func (f *Feed) fetch(ctx context.Context, loader *Loader) {
	bins, err := loader.Load(ctx, f.branchID)

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.loading = false
	if err != nil {
		f.err = err
		f.pending = nil
		f.mu.Unlock()
		f.logger.Error("baseline fetch failed",
			slog.String("branch_id", f.branchID),
			slog.Any("error", err))
		f.notify()
		return
	}

	f.bins = bins
	f.baselineSet = true
	for _, u := range f.pending {
		f.merge(u)
	}
	f.pending = nil
	f.mu.Unlock()
	f.notify()
}

func (f *Feed) consume(updates <-chan bin.WeightUpdate) {
	for {
		select {
		case u, ok := <-updates:
			if !ok {
				return
			}
			f.apply(u)
		case <-f.done:
			return
		}
	}
}

func (f *Feed) apply(u bin.WeightUpdate) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}

	changed := false
	switch {
	case f.err != nil:
		f.metrics.ObservePush(metrics.PushIgnored)
	case !f.baselineSet:
		if len(f.pending) >= f.pendingLimit {
			f.pending = f.pending[1:]
			f.metrics.ObservePush(metrics.PushDropped)
		}
		f.pending = append(f.pending, u)
		f.metrics.ObservePush(metrics.PushBuffered)
	default:
		changed = f.merge(u)
	}
	f.mu.Unlock()

	if changed {
		f.notify()
	}
}

// merge must be called with mu held.
func (f *Feed) merge(u bin.WeightUpdate) bool {
	next, ok := f.bins.Apply(u)
	if !ok {
		f.metrics.ObservePush(metrics.PushIgnored)
		return false
	}
	f.bins = next
	f.metrics.ObservePush(metrics.PushApplied)
	return true
}

func (f *Feed) notify() {
	select {
	case f.changes <- struct{}{}:
	default:
	}
}
