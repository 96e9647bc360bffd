package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushub/campushub/internal/app/models/dto"
	"github.com/campushub/campushub/internal/pkg/apperrors"
	"github.com/campushub/campushub/internal/pkg/logger"
)

// HandleAPIError maps service errors onto the failure envelope with the
// right status code. Unknown errors are logged with their cause and
// reported as an opaque 500.
func HandleAPIError(c *gin.Context, err error) {
	message := err.Error()

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))

	case errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")))

	case isNotFound(err):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message)))

	case isConflict(err):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message)))

	case errors.Is(err, apperrors.ErrPreconditionFailed):
		c.JSON(http.StatusPreconditionFailed, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceHasDependents, message)))

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrResourceNotFound) ||
		errors.Is(err, apperrors.ErrUserNotFound) ||
		errors.Is(err, apperrors.ErrStudentNotFound) ||
		errors.Is(err, apperrors.ErrTeacherNotFound) ||
		errors.Is(err, apperrors.ErrAdminNotFound) ||
		errors.Is(err, apperrors.ErrCourseNotFound) ||
		errors.Is(err, apperrors.ErrEnrollmentNotFound) ||
		errors.Is(err, apperrors.ErrAssignmentNotFound) ||
		errors.Is(err, apperrors.ErrExamNotFound) ||
		errors.Is(err, apperrors.ErrSubmissionNotFound) ||
		errors.Is(err, apperrors.ErrGradeNotFound) ||
		errors.Is(err, apperrors.ErrAttendanceNotFound)
}

func isConflict(err error) bool {
	return errors.Is(err, apperrors.ErrConflict) ||
		errors.Is(err, apperrors.ErrResourceAlreadyExists) ||
		errors.Is(err, apperrors.ErrEmailAlreadyExists) ||
		errors.Is(err, apperrors.ErrCourseCodeExists) ||
		errors.Is(err, apperrors.ErrEnrollmentExists)
}
