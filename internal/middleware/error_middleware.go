package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushire/campushire/internal/app/models/dto"
	"github.com/campushire/campushire/internal/pkg/apperrors"
	"github.com/campushire/campushire/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses. Controllers call
// it with whatever a service returned; anything unmapped is a 500 and gets
// logged with the request path.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, err, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")

	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, err, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")

	case errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, err, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")

	case errors.Is(err, apperrors.ErrInvalidFormat):
		respondError(c, err, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required")

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, err, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")

	case errors.Is(err, apperrors.ErrUserNotFound):
		respondError(c, err, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "User not found")

	case errors.Is(err, apperrors.ErrCollegeNotFound):
		respondError(c, err, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "College not found")

	case errors.Is(err, apperrors.ErrJobNotFound):
		respondError(c, err, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Job not found")

	case errors.Is(err, apperrors.ErrApplicationNotFound):
		respondError(c, err, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Application not found")

	case errors.Is(err, apperrors.ErrProjectNotFound):
		respondError(c, err, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Project not found")

	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, err, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respondError(c, err, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists")

	case errors.Is(err, apperrors.ErrCollegeAlreadyExists):
		respondError(c, err, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "College already exists")

	case errors.Is(err, apperrors.ErrDuplicateApplication):
		respondError(c, err, http.StatusConflict, dto.ErrorCodeDuplicateApplication, "Already applied to this job")

	case errors.Is(err, apperrors.ErrJobTransitionNotAllowed):
		respondError(c, err, http.StatusConflict, dto.ErrorCodeValidationFailed, "Job status cannot change that way")

	case errors.Is(err, apperrors.ErrApplicationTransitionNotAllowed):
		respondError(c, err, http.StatusConflict, dto.ErrorCodeValidationFailed, "Application status cannot change that way")

	case errors.Is(err, apperrors.ErrWithdrawalNotAllowed):
		respondError(c, err, http.StatusConflict, dto.ErrorCodeValidationFailed, "An offered application cannot be withdrawn")

	case errors.Is(err, apperrors.ErrConflict):
		respondError(c, err, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Conflict")

	case errors.Is(err, apperrors.ErrInvalidJobStatus),
		errors.Is(err, apperrors.ErrInvalidApplicationStatus),
		errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").
			WithDetails(err.Error())
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(applyCustom(err, detail)))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respondError(c, err, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// HandleValidationError responds to a request body that failed binding,
// listing the offending fields when the failure came from validation tags.
func HandleValidationError(c *gin.Context, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
	if fieldErrors := collectValidationErrors(err); fieldErrors != nil {
		detail = detail.WithDetails(fieldErrors.Errors)
	} else {
		detail = detail.WithDetails(err.Error())
	}
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}

// applyCustom overlays the message and details a CustomError carries onto
// the response detail; the status and code stay with the sentinel mapping.
func applyCustom(err error, detail *dto.ErrorDetail) *dto.ErrorDetail {
	var custom *apperrors.CustomError
	if !errors.As(err, &custom) {
		return detail
	}
	if custom.Message != "" {
		detail.Message = custom.Message
	}
	if custom.Details != nil {
		detail = detail.WithDetails(custom.Details)
	}
	return detail
}

func respondError(c *gin.Context, err error, status int, code dto.ErrorCode, message string) {
	detail := applyCustom(err, dto.NewErrorDetail(code, message))
	c.JSON(status, dto.NewErrorResponse(detail))
}
