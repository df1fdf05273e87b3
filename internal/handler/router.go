package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"waste-dashboard/internal/domain/access"
	"waste-dashboard/internal/handler/api"
	"waste-dashboard/internal/handler/middleware"
	"waste-dashboard/internal/pkg/config"
	"waste-dashboard/internal/pkg/metrics"
)

// route.Access is empty for public routes; every other route goes through
// RequireAccess with its key.
type route struct {
	Method  string
	Path    string
	Access  access.RouteKey
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Dashboard *api.DashboardHandler
	Admin     *api.AdminHandler
	Live      *api.LiveHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, registry *prometheus.Registry) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, registry)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, registry *prometheus.Registry) {
	engine.GET("/health", healthCheck)
	if registry != nil {
		engine.GET("/metrics", gin.WrapH(metrics.Handler(registry)))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.ResolveSession())
	addRoutes(apiGroup, authMiddleware, []route{
		{Method: http.MethodPost, Path: "/auth/login", Handler: h.Auth.Login},
		{Method: http.MethodPost, Path: "/auth/logout", Handler: h.Auth.Logout},
		{Method: http.MethodGet, Path: "/auth/me", Access: access.RouteSession, Handler: h.Auth.Me},

		{Method: http.MethodGet, Path: "/dashboard", Access: access.RouteDashboard, Handler: h.Dashboard.Dashboard},
		{Method: http.MethodGet, Path: "/bins", Access: access.RouteBins, Handler: h.Dashboard.Bins},
		{Method: http.MethodGet, Path: "/live/bins", Access: access.RouteLiveBins, Handler: h.Live.LiveBins},
		{Method: http.MethodGet, Path: "/waste/summary", Access: access.RouteWasteSummary, Handler: h.Dashboard.WasteSummary},

		{Method: http.MethodPost, Path: "/org-unit/override", Access: access.RouteOrgOverride, Handler: h.Admin.EnterOverride},
		{Method: http.MethodDelete, Path: "/org-unit/override", Access: access.RouteOrgOverride, Handler: h.Admin.ExitOverride},
		{Method: http.MethodGet, Path: "/companies", Access: access.RouteCompanies, Handler: h.Admin.Companies},
		{Method: http.MethodGet, Path: "/admin/override-audit", Access: access.RouteOverrideAudit, Handler: h.Admin.OverrideAudit},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware, rs []route) {
	for _, r := range rs {
		mw := r.Mw
		if r.Access != "" {
			mw = append([]gin.HandlerFunc{authMiddleware.RequireAccess(r.Access)}, mw...)
		}
		h := r.Handler
		if len(mw) > 0 {
			h = chainHandlers(append(mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
