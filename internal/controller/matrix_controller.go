package controller

import (
	"perform_backend/internal/service"
	"perform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MatrixController struct {
	Service *service.MatrixService
}

func NewMatrixController(svc *service.MatrixService) *MatrixController {
	return &MatrixController{Service: svc}
}

// @Summary Create an assessment matrix
// @Tags matrices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.MatrixRequest true "matrix payload"
// @Success 201 {object} util.Response{data=model.AssessmentMatrix}
// @Failure 400 {object} util.Response
// @Router /api/matrices [post]
func (c *MatrixController) Create(ctx *gin.Context) {
	var req service.MatrixRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	m, err := c.Service.Create(&req, util.TenantFromContext(ctx))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Created(ctx, m)
}

// @Summary Get an assessment matrix
// @Tags matrices
// @Produce json
// @Security BearerAuth
// @Param id path string true "assessment matrix id"
// @Success 200 {object} util.Response{data=model.AssessmentMatrix}
// @Failure 404 {object} util.Response
// @Router /api/matrices/{id} [get]
func (c *MatrixController) Get(ctx *gin.Context) {
	m, err := c.Service.Get(ctx.Param("id"), util.TenantFromContext(ctx))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, m)
}

// @Summary List the matrices of a performance cycle
// @Tags matrices
// @Produce json
// @Security BearerAuth
// @Param cycleId query string true "performance cycle id"
// @Success 200 {object} util.Response{data=[]model.AssessmentMatrix}
// @Router /api/matrices [get]
func (c *MatrixController) ListByCycle(ctx *gin.Context) {
	ms, err := c.Service.ListByCycle(ctx.Query("cycleId"), util.TenantFromContext(ctx))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, ms)
}

// @Summary Update an assessment matrix
// @Tags matrices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "assessment matrix id"
// @Param body body service.MatrixRequest true "matrix payload"
// @Success 200 {object} util.Response{data=model.AssessmentMatrix}
// @Failure 404 {object} util.Response
// @Router /api/matrices/{id} [put]
func (c *MatrixController) Update(ctx *gin.Context) {
	var req service.MatrixRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	m, err := c.Service.Update(ctx.Param("id"), &req, util.TenantFromContext(ctx))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, m)
}

// @Summary Delete an assessment matrix
// @Tags matrices
// @Produce json
// @Security BearerAuth
// @Param id path string true "assessment matrix id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/matrices/{id} [delete]
func (c *MatrixController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Param("id"), util.TenantFromContext(ctx)); err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
