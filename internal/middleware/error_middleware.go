package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schooladmin/internal/app/models/dto"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
	"github.com/yigit/schooladmin/internal/pkg/logger"
)

// HandleAPIError maps an application error onto a status code and error envelope
func HandleAPIError(c *gin.Context, err error) {
	var blocked *apperrors.DeletionBlockedError

	switch {
	case errors.As(err, &blocked):
		detail := dto.NewErrorDetail(dto.ErrorCodeResourceInUse, blocked.Error()).
			WithSeverity(dto.ErrorSeverityWarning).
			WithDetails(dto.BlockersDetails{
				Entity:   blocked.Entity,
				ID:       blocked.ID,
				Blockers: blocked.Labels,
			})
		abort(c, http.StatusConflict, detail)
	case errors.Is(err, apperrors.ErrResourceNotFound):
		abort(c, http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()))
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		abort(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()))
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrConstraintViolation):
		abort(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeConflict, "The record changed while it was being processed"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		abort(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()))
	case errors.Is(err, apperrors.ErrBadRequest):
		abort(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, err.Error()))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		abort(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		abort(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"))
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		abort(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		abort(c, http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"))
	case errors.Is(err, apperrors.ErrConnectionUnavailable):
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Store unavailable")
		abort(c, http.StatusServiceUnavailable,
			dto.NewErrorDetail(dto.ErrorCodeServiceUnavailable, "Database unavailable").WithSeverity(dto.ErrorSeverityCritical))
	case errors.Is(err, apperrors.ErrStore):
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Store error")
		abort(c, http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database error"))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		abort(c, http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}

func abort(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}
