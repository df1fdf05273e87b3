package kiosk

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"waste-dashboard/internal/domain/access"
	"waste-dashboard/internal/domain/user"
	"waste-dashboard/internal/usecase/queries"
	"waste-dashboard/internal/usecase/readmodel"
	"waste-dashboard/internal/usecase/session"
	"waste-dashboard/internal/usecase/telemetry"
)

const defaultSummaryInterval = 30 * time.Second

// SessionSource is the part of the session authority the kiosk reads.
type SessionSource interface {
	Current() session.View
	Changes() <-chan struct{}
}

type FeedOpener interface {
	Open(ctx context.Context, branchID string) *telemetry.Feed
}

type Options struct {
	// Branch overrides the session's branch when set.
	Branch          string
	FromAdmin       bool
	SummaryInterval time.Duration
}

// sessionCheckMsg re-evaluates the gate without re-arming the change watch.
type sessionCheckMsg struct{}

type sessionChangedMsg struct{}

type feedChangedMsg struct {
	feed *telemetry.Feed
}

type summaryTickMsg struct {
	branchID string
}

type summaryMsg struct {
	branchID string
	summary  *readmodel.WasteSummaryRM
	err      error
}

// Model is the kiosk screen. It never decides access itself; every session
// change goes through access.Decide for the dashboard route.
type Model struct {
	ctx       context.Context
	authority SessionSource
	feeds     FeedOpener
	dashboard queries.DashboardQueries
	summary   queries.SummaryQueries
	opts      Options

	// Gate state
	decision access.Decision
	sess     *user.Session
	view     access.View

	// Telemetry state
	feed       *telemetry.Feed
	snapshot   telemetry.Snapshot
	summaryRM  *readmodel.WasteSummaryRM
	summaryErr error

	// UI state
	spinner  spinner.Model
	keys     KeyMap
	styles   Styles
	width    int
	height   int
	quitting bool
}

func NewModel(ctx context.Context, authority SessionSource, feeds FeedOpener, dashboard queries.DashboardQueries, summary queries.SummaryQueries, opts Options) Model {
	if opts.SummaryInterval <= 0 {
		opts.SummaryInterval = defaultSummaryInterval
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		ctx:       ctx,
		authority: authority,
		feeds:     feeds,
		dashboard: dashboard,
		summary:   summary,
		opts:      opts,
		decision:  access.Decision{Outcome: access.OutcomePending},
		spinner:   sp,
		keys:      DefaultKeyMap,
		styles:    DefaultStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg { return sessionCheckMsg{} },
		waitForSession(m.authority),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.closeFeed()
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			if m.decision.Permitted() {
				m.closeFeed()
				return m, m.evaluate()
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionCheckMsg:
		return m, m.evaluate()

	case sessionChangedMsg:
		return m, tea.Batch(m.evaluate(), waitForSession(m.authority))

	case feedChangedMsg:
		if msg.feed != m.feed {
			return m, nil
		}
		m.snapshot = m.feed.Snapshot()
		return m, waitForFeed(m.feed)

	case summaryTickMsg:
		if !m.summaryActive(msg.branchID) {
			return m, nil
		}
		return m, fetchSummary(m.ctx, m.summary, msg.branchID)

	case summaryMsg:
		if !m.summaryActive(msg.branchID) {
			return m, nil
		}
		if msg.err != nil {
			// keep the last good summary on screen
			m.summaryErr = msg.err
		} else {
			m.summaryRM = msg.summary
			m.summaryErr = nil
		}
		return m, scheduleSummary(m.opts.SummaryInterval, msg.branchID)

	case spinner.TickMsg:
		if m.decision.Outcome != access.OutcomePending && !m.snapshot.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// evaluate runs the dashboard gate against the authority's current view and
// reconciles the feed with the result.
func (m *Model) evaluate() tea.Cmd {
	current := m.authority.Current()
	m.decision = access.Decide(current.State, current.Session, access.RouteDashboard)

	switch m.decision.Outcome {
	case access.OutcomePending:
		m.closeFeed()
		m.sess = nil
		return m.spinner.Tick
	case access.OutcomeDeny:
		m.closeFeed()
		m.sess = nil
		m.quitting = true
		return tea.Quit
	}

	m.sess = current.Session
	m.view = access.SelectDashboardView(m.sess.Role(), m.opts.FromAdmin)
	branchID := m.dashboard.ResolveBranch(m.sess, m.opts.Branch)

	var cmds []tea.Cmd
	if m.feed == nil || m.feed.BranchID() != branchID {
		m.closeFeed()
		m.feed = m.feeds.Open(m.ctx, branchID)
		m.snapshot = m.feed.Snapshot()
		cmds = append(cmds, waitForFeed(m.feed), m.spinner.Tick)
		if m.summaryActive(branchID) {
			cmds = append(cmds, fetchSummary(m.ctx, m.summary, branchID))
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) closeFeed() {
	if m.feed == nil {
		return
	}
	m.feed.Close()
	m.feed = nil
	m.snapshot = telemetry.Snapshot{}
	m.summaryRM = nil
	m.summaryErr = nil
}

// summaryActive reports whether the summary panel for branchID is still the
// one on screen; stale ticks from an earlier branch stop here.
func (m Model) summaryActive(branchID string) bool {
	if m.summary == nil || m.sess == nil || branchID == "" {
		return false
	}
	if m.view != access.ViewAdmin || !access.CanAccess(m.sess.Role(), access.RouteWasteSummary) {
		return false
	}
	return m.feed != nil && m.feed.BranchID() == branchID
}

// Denied reports whether the program ended because the session was refused.
func (m Model) Denied() bool {
	return m.decision.Outcome == access.OutcomeDeny
}

func (m Model) Decision() access.Decision {
	return m.decision
}

func waitForSession(src SessionSource) tea.Cmd {
	return func() tea.Msg {
		<-src.Changes()
		return sessionChangedMsg{}
	}
}

func waitForFeed(feed *telemetry.Feed) tea.Cmd {
	if feed == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-feed.Changes():
			return feedChangedMsg{feed: feed}
		case <-feed.Done():
			return nil
		}
	}
}

func fetchSummary(ctx context.Context, q queries.SummaryQueries, branchID string) tea.Cmd {
	return func() tea.Msg {
		s, err := q.WasteSummary(ctx, branchID)
		return summaryMsg{branchID: branchID, summary: s, err: err}
	}
}

func scheduleSummary(interval time.Duration, branchID string) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return summaryTickMsg{branchID: branchID}
	})
}
