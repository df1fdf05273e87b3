package api

import (
	"net/http"

	reqdto "waste-dashboard/internal/handler/dto/request"
	resdto "waste-dashboard/internal/handler/dto/response"
	"waste-dashboard/internal/handler/httperr"
	"waste-dashboard/internal/handler/middleware"
	"waste-dashboard/internal/pkg/config"
	"waste-dashboard/internal/pkg/cookie"
	"waste-dashboard/internal/pkg/errs"
	"waste-dashboard/internal/usecase/commands"
	"waste-dashboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	overrides commands.OverrideCommands
	companies queries.CompanyQueries
	audit     queries.AuditQueries
	cfg       config.Config
}

func NewAdminHandler(overrides commands.OverrideCommands, companies queries.CompanyQueries, audit queries.AuditQueries, cfg config.Config) *AdminHandler {
	return &AdminHandler{overrides: overrides, companies: companies, audit: audit, cfg: cfg}
}

// @Summary Enter an org unit override
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.OverrideRequest true "Target org unit"
// @Success 200 {object} resdto.OverrideResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /org-unit/override [post]
func (h *AdminHandler) EnterOverride(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoSession, "User not authenticated", nil)
		return
	}
	var req reqdto.OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.overrides.Enter(c.Request.Context(), sess, req)
	if err != nil {
		abortOverrideError(c, err)
		return
	}
	h.respondWithSession(c, result)
}

// @Summary Exit the active org unit override
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.OverrideResponse
// @Failure 409 {object} httperr.Response
// @Router /org-unit/override [delete]
func (h *AdminHandler) ExitOverride(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoSession, "User not authenticated", nil)
		return
	}

	result, err := h.overrides.Exit(c.Request.Context(), sess)
	if err != nil {
		abortOverrideError(c, err)
		return
	}
	h.respondWithSession(c, result)
}

// @Summary List companies
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.CompanyListResponse
// @Failure 502 {object} httperr.Response
// @Router /companies [get]
func (h *AdminHandler) Companies(c *gin.Context) {
	companies, err := h.companies.ListCompanies(c.Request.Context())
	if err != nil {
		abortQueryError(c, err, "Failed to load companies")
		return
	}
	c.JSON(http.StatusOK, resdto.CompanyListResponse{Companies: companies})
}

// @Summary Recent org unit overrides
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param limit query int false "max entries (1-200)"
// @Success 200 {object} resdto.AuditListResponse
// @Router /admin/override-audit [get]
func (h *AdminHandler) OverrideAudit(c *gin.Context) {
	var q reqdto.AuditQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	entries, err := h.audit.ListRecent(c.Request.Context(), q.Limit)
	if err != nil {
		abortQueryError(c, err, "Override audit unavailable")
		return
	}
	c.JSON(http.StatusOK, resdto.AuditListResponse{Entries: entries})
}

func (h *AdminHandler) respondWithSession(c *gin.Context, result *commands.OverrideResult) {
	cookie.SetSessionCookie(c, h.cfg.Cookie, result.Token, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.OverrideResponse{
		AccessToken: result.Token,
		ExpiresIn:   int64(result.ExpiresIn.Seconds()),
		User:        resdto.NewSessionResponse(result.Session),
	})
}

func abortOverrideError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrOverrideNotAllowed):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
	case errs.Is(err, commands.ErrInvalidOrgUnit):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid org unit", nil)
	case errs.Is(err, commands.ErrNoActiveOverride):
		httperr.AbortWithError(c, http.StatusConflict, err, "No active override", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
