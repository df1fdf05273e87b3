package components

import (
	"waste-dashboard/internal/pkg/clock"
	"waste-dashboard/internal/pkg/config"
	"waste-dashboard/internal/usecase"
	"waste-dashboard/internal/usecase/commands"
	"waste-dashboard/internal/usecase/queries"
	"waste-dashboard/internal/usecase/telemetry"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseTelemetryModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseTelemetryModule = fx.Module("usecase/telemetry",
	fx.Provide(
		func(cfg config.Config) telemetry.Options {
			return telemetry.OptionsFrom(cfg.Telemetry)
		},
		telemetry.NewLoader,
		telemetry.NewReconciler,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewOverrideCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewDashboardQueries,
		queries.NewBinQueries,
		queries.NewCompanyQueries,
		queries.NewSummaryQueries,
		queries.NewAuditQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
