// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schooladmin/internal/app/deletion"
	"github.com/yigit/schooladmin/internal/app/models/dto"
	"github.com/yigit/schooladmin/internal/middleware"
)

// parseIDParam reads a positive int64 path parameter. On failure it writes a
// 400 response and returns false.
func parseIDParam(ctx *gin.Context, name, what string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+what+" ID")
		errorDetail = errorDetail.WithField(name).WithDetails(what + " ID must be a positive number")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// respondDeletion writes the outcome of a delete request
func respondDeletion(ctx *gin.Context, result *deletion.Result, err error) {
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.DeletionResponse{
		Entity:   string(result.Kind),
		ID:       result.ID,
		Strategy: result.Strategy,
	}, "Deleted successfully"))
}
