package controller

import (
	"perform_backend/internal/service"
	"perform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EmployeeAssessmentController struct {
	Service *service.EmployeeAssessmentService
}

func NewEmployeeAssessmentController(svc *service.EmployeeAssessmentService) *EmployeeAssessmentController {
	return &EmployeeAssessmentController{Service: svc}
}

// @Summary Enroll an employee into an assessment matrix
// @Tags employee-assessment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.EnrollRequest true "enrollment"
// @Success 201 {object} util.Response
// @Router /api/employee-assessments [post]
func (c *EmployeeAssessmentController) Enroll(ctx *gin.Context) {
	var req service.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	req.TenantID = util.TenantFromContext(ctx)

	ea, err := c.Service.Enroll(req)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Created(ctx, ea)
}

// @Summary Confirm an invited assessment
// @Tags employee-assessment
// @Produce json
// @Security BearerAuth
// @Param id path string true "employee assessment id"
// @Success 200 {object} util.Response
// @Router /api/employee-assessments/{id}/confirm [post]
func (c *EmployeeAssessmentController) Confirm(ctx *gin.Context) {
	ea, err := c.Service.Confirm(ctx.Param("id"), util.TenantFromContext(ctx))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, ea)
}

// @Summary Get one employee assessment
// @Tags employee-assessment
// @Produce json
// @Security BearerAuth
// @Param id path string true "employee assessment id"
// @Success 200 {object} util.Response
// @Router /api/employee-assessments/{id} [get]
func (c *EmployeeAssessmentController) Get(ctx *gin.Context) {
	ea, err := c.Service.Get(ctx.Param("id"), util.TenantFromContext(ctx))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, ea)
}

// @Summary List the assessments of a matrix
// @Tags employee-assessment
// @Produce json
// @Security BearerAuth
// @Param id path string true "assessment matrix id"
// @Success 200 {object} util.Response
// @Router /api/matrices/{id}/employee-assessments [get]
func (c *EmployeeAssessmentController) ListByMatrix(ctx *gin.Context) {
	eas, err := c.Service.ListByMatrix(ctx.Param("id"), util.TenantFromContext(ctx))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, eas)
}
