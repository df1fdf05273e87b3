package api

import (
	"net/http"

	reqdto "waste-dashboard/internal/handler/dto/request"
	resdto "waste-dashboard/internal/handler/dto/response"
	"waste-dashboard/internal/handler/httperr"
	"waste-dashboard/internal/handler/middleware"
	"waste-dashboard/internal/pkg/errs"
	"waste-dashboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboard queries.DashboardQueries
	bins      queries.BinQueries
	summary   queries.SummaryQueries
}

func NewDashboardHandler(dashboard queries.DashboardQueries, bins queries.BinQueries, summary queries.SummaryQueries) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, bins: bins, summary: summary}
}

// @Summary Dashboard root
// @Description Picks the kiosk or admin view for the session
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Param fromAdmin query bool false "entered from an admin view"
// @Success 200 {object} resdto.DashboardResponse
// @Router /dashboard [get]
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoSession, "User not authenticated", nil)
		return
	}
	var q reqdto.DashboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	view := h.dashboard.Dashboard(sess, q.FromAdmin)
	panels := make([]string, 0, len(view.Panels))
	for _, p := range view.Panels {
		panels = append(panels, string(p))
	}
	c.JSON(http.StatusOK, resdto.DashboardResponse{
		View:     string(view.View),
		Role:     view.Role.String(),
		OrgUnit:  resdto.NewOrgUnitResponse(view.OrgUnit),
		BranchID: view.BranchID,
		Panels:   panels,
	})
}

// @Summary Branch bins
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Param branchId query string false "defaults to the session org unit"
// @Success 200 {object} resdto.BinListResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /bins [get]
func (h *DashboardHandler) Bins(c *gin.Context) {
	branchID, ok := h.branch(c)
	if !ok {
		return
	}
	list, err := h.bins.ListBins(c.Request.Context(), branchID)
	if err != nil {
		abortQueryError(c, err, "Failed to load bins")
		return
	}
	c.JSON(http.StatusOK, resdto.BinListResponse{
		BranchID:    list.BranchID,
		TotalWeight: list.TotalWeight,
		Bins:        list.Bins,
	})
}

// @Summary Branch waste summary
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Param branchId query string false "defaults to the session org unit"
// @Success 200 {object} readmodel.WasteSummaryRM
// @Failure 403 {object} httperr.Response
// @Router /waste/summary [get]
func (h *DashboardHandler) WasteSummary(c *gin.Context) {
	branchID, ok := h.branch(c)
	if !ok {
		return
	}
	summary, err := h.summary.WasteSummary(c.Request.Context(), branchID)
	if err != nil {
		abortQueryError(c, err, "Failed to load waste summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *DashboardHandler) branch(c *gin.Context) (string, bool) {
	var q reqdto.BranchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return "", false
	}
	sess, _ := middleware.GetSession(c)
	return h.dashboard.ResolveBranch(sess, q.BranchID), true
}

func abortQueryError(c *gin.Context, err error, msg string) {
	switch {
	case errs.Is(err, queries.ErrBranchRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Branch is required", nil)
	case errs.Is(err, queries.ErrUpstreamUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, msg, nil)
	case errs.Is(err, queries.ErrAuditUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, msg, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
