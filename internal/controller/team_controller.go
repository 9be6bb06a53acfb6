package controller

import (
	"perform_backend/internal/service"
	"perform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TeamController struct {
	Service *service.TeamService
}

func NewTeamController(svc *service.TeamService) *TeamController {
	return &TeamController{Service: svc}
}

// @Summary Create a team
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.TeamRequest true "team payload"
// @Success 201 {object} util.Response{data=model.Team}
// @Failure 400 {object} util.Response
// @Router /api/teams [post]
func (c *TeamController) Create(ctx *gin.Context) {
	var req service.TeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	t, err := c.Service.Create(&req, util.TenantFromContext(ctx))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Created(ctx, t)
}

// @Summary Get a team
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path string true "team id"
// @Success 200 {object} util.Response{data=model.Team}
// @Failure 404 {object} util.Response
// @Router /api/teams/{id} [get]
func (c *TeamController) Get(ctx *gin.Context) {
	t, err := c.Service.Get(ctx.Param("id"), util.TenantFromContext(ctx))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, t)
}

// @Summary List the teams of a company
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param companyId query string true "company id"
// @Success 200 {object} util.Response{data=[]model.Team}
// @Router /api/teams [get]
func (c *TeamController) ListByCompany(ctx *gin.Context) {
	ts, err := c.Service.ListByCompany(ctx.Query("companyId"), util.TenantFromContext(ctx))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, ts)
}

// @Summary Update a team
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "team id"
// @Param body body service.TeamRequest true "team payload"
// @Success 200 {object} util.Response{data=model.Team}
// @Failure 404 {object} util.Response
// @Router /api/teams/{id} [put]
func (c *TeamController) Update(ctx *gin.Context) {
	var req service.TeamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	t, err := c.Service.Update(ctx.Param("id"), &req, util.TenantFromContext(ctx))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, t)
}

// @Summary Delete a team
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path string true "team id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/teams/{id} [delete]
func (c *TeamController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Param("id"), util.TenantFromContext(ctx)); err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
