package bootstrap

import (
	"log/slog"

	"waste-dashboard/internal/infra/backend"
	"waste-dashboard/internal/infra/pushchannel"
	"waste-dashboard/internal/pkg/config"
	"waste-dashboard/internal/pkg/metrics"
	"waste-dashboard/internal/usecase/shared"

	"go.uber.org/fx"
)

var UpstreamModule = fx.Module("upstream",
	fx.Provide(
		fx.Annotate(
			NewUpstreamClient,
			fx.As(new(shared.AuthGateway)),
			fx.As(new(shared.BinSource)),
			fx.As(new(shared.CompanyDirectory)),
			fx.As(new(shared.WasteSummarySource)),
		),
		fx.Annotate(
			NewPushChannel,
			fx.As(new(shared.PushChannel)),
		),
	),
)

func NewUpstreamClient(cfg config.Config, logger *slog.Logger, m *metrics.Metrics) (*backend.Client, error) {
	return backend.NewClient(cfg.Upstream, logger, backend.WithMetrics(m))
}

func NewPushChannel(cfg config.Config, logger *slog.Logger, m *metrics.Metrics) *pushchannel.Channel {
	return pushchannel.New(cfg.Upstream, cfg.Telemetry, logger, pushchannel.WithMetrics(m))
}
