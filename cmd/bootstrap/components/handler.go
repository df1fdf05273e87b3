package components

import (
	"waste-dashboard/internal/handler"
	"waste-dashboard/internal/handler/api"
	"waste-dashboard/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewDashboardHandler,
		api.NewAdminHandler,
		api.NewLiveHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, dashboard *api.DashboardHandler, admin *api.AdminHandler, live *api.LiveHandler) handler.Handlers {
			return handler.Handlers{Auth: auth, Dashboard: dashboard, Admin: admin, Live: live}
		},
	),
	fx.Invoke(handler.NewRouter),
)
