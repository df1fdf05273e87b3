package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"waste-dashboard/internal/pkg/config"
	"waste-dashboard/internal/pkg/errs"
	"waste-dashboard/internal/pkg/metrics"
	"waste-dashboard/internal/usecase/shared"
)

// StatusError is a non-2xx upstream answer.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream %s: status %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("upstream %s: status %d: %s", e.Operation, e.StatusCode, e.Body)
}

type Client struct {
	baseURL      string
	http         *http.Client
	serviceToken string
	useJar       bool
	logger       *slog.Logger
	metrics      *metrics.Metrics
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithServiceToken overrides the bearer token sent on every call.
func WithServiceToken(token string) Option {
	return func(c *Client) { c.serviceToken = token }
}

// WithSessionCookies keeps the upstream session cookie between calls, the
// way a browser would.
func WithSessionCookies() Option {
	return func(c *Client) { c.useJar = true }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

func NewClient(cfg config.UpstreamConfig, logger *slog.Logger, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errs.New("upstream base url is required")
	}
	c := &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		http:         &http.Client{Timeout: cfg.Timeout},
		serviceToken: cfg.ServiceToken,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.useJar && c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, errs.Wrap(err, "failed to create cookie jar")
		}
		c.http.Jar = jar
	}
	return c, nil
}

// CookieJar is nil unless WithSessionCookies was given.
func (c *Client) CookieJar() http.CookieJar {
	return c.http.Jar
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errs.Wrapf(err, "upstream %s: encode request", op)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.Wrapf(err, "upstream %s: build request", op)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.serviceToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.serviceToken)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream(op, "error", time.Since(start).Seconds())
		return errs.Wrapf(err, "upstream %s", op)
	}
	defer resp.Body.Close()
	c.metrics.ObserveUpstream(op, statusClass(resp.StatusCode), time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		statusErr := &StatusError{Operation: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
		c.logger.Debug("upstream call failed",
			slog.String("operation", op),
			slog.Int("status", resp.StatusCode))
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return errs.Mark(statusErr, shared.ErrUpstreamUnauthorized)
		}
		return statusErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrapf(err, "upstream %s: decode response", op)
	}
	return nil
}

func statusClass(code int) string {
	return fmt.Sprintf("%dxx", code/100)
}
