package controller

import (
	"perform_backend/internal/service"
	"perform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Service *service.AnalyticsService
}

func NewAnalyticsController(svc *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Service: svc}
}

// @Summary Recompute the dashboard snapshots of a matrix
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param id path string true "assessment matrix id"
// @Success 200 {object} util.Response
// @Router /api/matrices/{id}/analytics/recompute [post]
func (c *AnalyticsController) Recompute(ctx *gin.Context) {
	if err := c.Service.RecomputeAnalytics(ctx.Param("id"), util.TenantFromContext(ctx)); err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary Get the matrix-scope snapshot
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param companyId query string true "company id"
// @Param cycleId query string true "performance cycle id"
// @Param id path string true "assessment matrix id"
// @Success 200 {object} util.Response
// @Router /api/matrices/{id}/analytics [get]
func (c *AnalyticsController) GetOverview(ctx *gin.Context) {
	row, err := c.Service.GetOverview(ctx.Request.Context(),
		ctx.Query("companyId"), ctx.Query("cycleId"), ctx.Param("id"))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, row)
}

// @Summary Get one team's snapshot
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param companyId query string true "company id"
// @Param cycleId query string true "performance cycle id"
// @Param id path string true "assessment matrix id"
// @Param teamId path string true "team id"
// @Success 200 {object} util.Response
// @Router /api/matrices/{id}/analytics/teams/{teamId} [get]
func (c *AnalyticsController) GetTeam(ctx *gin.Context) {
	row, err := c.Service.GetTeamAnalytics(ctx.Request.Context(),
		ctx.Query("companyId"), ctx.Query("cycleId"), ctx.Param("id"), ctx.Param("teamId"))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, row)
}

// @Summary List every snapshot of a company+cycle
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param companyId query string true "company id"
// @Param cycleId query string true "performance cycle id"
// @Success 200 {object} util.Response
// @Router /api/analytics [get]
func (c *AnalyticsController) ListCycle(ctx *gin.Context) {
	rows, err := c.Service.ListCycleAnalytics(ctx.Query("companyId"), ctx.Query("cycleId"))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, rows)
}
