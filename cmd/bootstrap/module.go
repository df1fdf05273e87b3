package bootstrap

import (
	"waste-dashboard/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	DBModule,
	JWTModule,
	UpstreamModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
