package pushchannel

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"waste-dashboard/internal/domain/bin"
	"waste-dashboard/internal/pkg/config"
	"waste-dashboard/internal/pkg/errs"
	"waste-dashboard/internal/pkg/metrics"
	"waste-dashboard/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
)

const updatesBuffer = 64

var ErrEmptyBranch = errs.New("push channel needs a branch id")

type Channel struct {
	pushURL     string
	dialer      *websocket.Dialer
	header      http.Header
	maxInterval time.Duration
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

type Option func(*Channel)

func WithDialer(d *websocket.Dialer) Option {
	return func(c *Channel) { c.dialer = d }
}

// WithCookieJar shares the REST client's upstream session with the socket.
func WithCookieJar(jar http.CookieJar) Option {
	return func(c *Channel) {
		d := *c.dialer
		d.Jar = jar
		c.dialer = &d
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Channel) { c.metrics = m }
}

func New(upstream config.UpstreamConfig, telemetry config.TelemetryConfig, logger *slog.Logger, opts ...Option) *Channel {
	c := &Channel{
		pushURL: upstream.PushURL,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: upstream.Timeout,
		},
		header:      http.Header{},
		maxInterval: telemetry.ReconnectMaxInterval,
		logger:      logger,
	}
	if upstream.ServiceToken != "" {
		c.header.Set("Authorization", "Bearer "+upstream.ServiceToken)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe returns at once; the connection is dialled and re-dialled in
// the background until the subscription is closed or ctx ends.
func (c *Channel) Subscribe(ctx context.Context, branchID string) (shared.Subscription, error) {
	branchID = strings.TrimSpace(branchID)
	if branchID == "" {
		return nil, ErrEmptyBranch
	}
	target, err := c.endpoint(branchID)
	if err != nil {
		return nil, err
	}

	subCtx, cancel := context.WithCancel(ctx)
	s := &subscription{
		channel:  c,
		url:      target,
		branchID: branchID,
		updates:  make(chan bin.WeightUpdate, updatesBuffer),
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go s.run(subCtx)
	return s, nil
}

func (c *Channel) endpoint(branchID string) (string, error) {
	u, err := url.Parse(c.pushURL)
	if err != nil {
		return "", errs.Wrap(err, "parse push url")
	}
	q := u.Query()
	q.Set("branchId", branchID)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Channel) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 0
	if c.maxInterval > 0 {
		b.MaxInterval = c.maxInterval
		if b.InitialInterval > c.maxInterval {
			b.InitialInterval = c.maxInterval
		}
	}
	return b
}

type subscription struct {
	channel  *Channel
	url      string
	branchID string
	updates  chan bin.WeightUpdate
	cancel   context.CancelFunc
	done     chan struct{}
	once     sync.Once
}

func (s *subscription) Updates() <-chan bin.WeightUpdate {
	return s.updates
}

// Close is idempotent and returns once the reader goroutine has exited.
func (s *subscription) Close() error {
	s.once.Do(func() {
		s.cancel()
		<-s.done
	})
	return nil
}

func (s *subscription) run(ctx context.Context) {
	defer close(s.done)
	defer close(s.updates)

	b := s.channel.newBackOff()
	notify := func(err error, wait time.Duration) {
		s.channel.metrics.Reconnecting()
		s.channel.logger.Warn("push channel disconnected",
			slog.String("branch_id", s.branchID),
			slog.Duration("retry_in", wait),
			slog.Any("error", err))
	}
	err := backoff.RetryNotify(func() error {
		return s.session(ctx, b)
	}, backoff.WithContext(b, ctx), notify)
	if err != nil && ctx.Err() == nil {
		s.channel.logger.Error("push channel gave up",
			slog.String("branch_id", s.branchID),
			slog.Any("error", err))
	}
}

// session runs one connection. It always ends with an error so the retry
// loop reconnects; cancellation is reported as permanent.
func (s *subscription) session(ctx context.Context, b *backoff.ExponentialBackOff) error {
	conn, resp, err := s.channel.dialer.DialContext(ctx, s.url, s.channel.header)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		return errs.Wrap(err, "dial push channel")
	}
	b.Reset()
	s.channel.logger.Debug("push channel connected", slog.String("branch_id", s.branchID))

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.channel.logger.Debug("push channel closed unexpectedly", slog.Any("error", err))
			}
			return errs.Wrap(err, "read push channel")
		}

		update, ok, err := DecodeFrame(data)
		if err != nil {
			s.channel.metrics.ObservePush(metrics.PushInvalid)
			s.channel.logger.Debug("push frame rejected", slog.Any("error", err))
			continue
		}
		if !ok {
			continue
		}

		select {
		case s.updates <- update:
		case <-ctx.Done():
			return backoff.Permanent(ctx.Err())
		}
	}
}
