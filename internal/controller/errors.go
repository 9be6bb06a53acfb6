package controller

import (
	"errors"
	"net/http"

	"perform_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondDomainError maps the service error taxonomy onto HTTP codes.
func respondDomainError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrInvalidAnswerValue):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidIDReference):
		util.Error(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, util.ErrAlreadyExists):
		util.Conflict(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
