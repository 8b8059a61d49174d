package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campushire/campushire/internal/app/models/dto"
	"github.com/campushire/campushire/internal/middleware"
	"github.com/campushire/campushire/internal/pkg/apperrors"
)

// parseIDParam reads a positive integer path parameter.
func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequestError(fmt.Sprintf("invalid %s parameter", name))
	}
	return id, nil
}

// callerID reads the authenticated user's id, aborting with 401 when it is
// missing. Routes behind JWTAuth always have it.
func callerID(ctx *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
		return 0, false
	}
	return userID, true
}
