package controller

import (
	"perform_backend/internal/service"
	"perform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NavigationController struct {
	Service *service.NavigationService
}

func NewNavigationController(svc *service.NavigationService) *NavigationController {
	return &NavigationController{Service: svc}
}

// @Summary Get the next unanswered question
// @Tags navigation
// @Produce json
// @Security BearerAuth
// @Param id path string true "employee assessment id"
// @Success 200 {object} util.Response
// @Router /api/employee-assessments/{id}/next [get]
func (c *NavigationController) GetNext(ctx *gin.Context) {
	resp, err := c.Service.GetNextUnanswered(ctx.Param("id"), util.TenantFromContext(ctx))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, resp)
}

// @Summary Save an answer and get the next unanswered question
// @Tags navigation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "employee assessment id"
// @Param body body service.SubmitAnswerRequest true "answer"
// @Success 200 {object} util.Response
// @Router /api/employee-assessments/{id}/answers/next [post]
func (c *NavigationController) SaveAnswerAndGetNext(ctx *gin.Context) {
	var req service.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	req.EmployeeAssessmentID = ctx.Param("id")
	req.TenantID = util.TenantFromContext(ctx)

	resp, err := c.Service.SaveAnswerAndGetNext(req)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, resp)
}

// @Summary Revisit a specific question with its existing answer
// @Tags navigation
// @Produce json
// @Security BearerAuth
// @Param id path string true "employee assessment id"
// @Param questionId path string true "question id"
// @Success 200 {object} util.Response
// @Router /api/employee-assessments/{id}/questions/{questionId} [get]
func (c *NavigationController) GetQuestionForReview(ctx *gin.Context) {
	resp, err := c.Service.GetQuestionForReview(ctx.Param("id"), ctx.Param("questionId"), util.TenantFromContext(ctx))
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, resp)
}
