package controller

import (
	"perform_backend/internal/service"
	"perform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	Service *service.AssessmentService
}

func NewAssessmentController(svc *service.AssessmentService) *AssessmentController {
	return &AssessmentController{Service: svc}
}

// @Summary Create a question on an assessment matrix
// @Tags assessment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.QuestionRequest true "question"
// @Success 201 {object} util.Response
// @Router /api/questions [post]
func (c *AssessmentController) CreateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.CreateQuestion(req, util.TenantFromContext(ctx))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Created(ctx, q)
}

// @Summary Update a question
// @Tags assessment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "question id"
// @Param body body service.QuestionRequest true "question"
// @Success 200 {object} util.Response
// @Router /api/questions/{id} [put]
func (c *AssessmentController) UpdateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.UpdateQuestion(ctx.Param("id"), req, util.TenantFromContext(ctx))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, q)
}

// @Summary Delete a question
// @Tags assessment
// @Produce json
// @Security BearerAuth
// @Param id path string true "question id"
// @Success 200 {object} util.Response
// @Router /api/questions/{id} [delete]
func (c *AssessmentController) DeleteQuestion(ctx *gin.Context) {
	if err := c.Service.DeleteQuestion(ctx.Param("id"), util.TenantFromContext(ctx)); err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary List the questions of a matrix in canonical order
// @Tags assessment
// @Produce json
// @Security BearerAuth
// @Param id path string true "assessment matrix id"
// @Success 200 {object} util.Response
// @Router /api/matrices/{id}/questions [get]
func (c *AssessmentController) ListQuestions(ctx *gin.Context) {
	qs, err := c.Service.ListQuestions(ctx.Param("id"), util.TenantFromContext(ctx))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, qs)
}

// @Summary Recompute and return the matrix's potential score
// @Tags assessment
// @Produce json
// @Security BearerAuth
// @Param id path string true "assessment matrix id"
// @Success 200 {object} util.Response
// @Router /api/matrices/{id}/potential-score [post]
func (c *AssessmentController) ComputePotentialScore(ctx *gin.Context) {
	ps, err := c.Service.ComputePotentialScore(ctx.Param("id"), util.TenantFromContext(ctx))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, ps)
}

// @Summary Submit an answer
// @Tags assessment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "employee assessment id"
// @Param body body service.SubmitAnswerRequest true "answer"
// @Success 200 {object} util.Response
// @Router /api/employee-assessments/{id}/answers [post]
func (c *AssessmentController) SubmitAnswer(ctx *gin.Context) {
	var req service.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	req.EmployeeAssessmentID = ctx.Param("id")
	req.TenantID = util.TenantFromContext(ctx)

	answer, err := c.Service.SubmitAnswer(req)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, answer)
}
