package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Chippsss/sms-backend/internal/app/models/dto"
	"github.com/Chippsss/sms-backend/internal/pkg/apperrors"
)

// HandleAPIError maps application errors onto HTTP responses. Every
// controller funnels its service errors through here so status codes and
// body shapes stay consistent.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrAcademicYearNotFound,
		apperrors.ErrSemesterNotFound,
		apperrors.ErrBranchNotFound,
		apperrors.ErrDivisionNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrTeacherNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrGradeNotFound,
		apperrors.ErrAssignmentNotFound,
		apperrors.ErrAttendanceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, firstMessage(err, "Resource not found"))))

	case errors.Is(err, apperrors.ErrNoProfile):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeNoProfile, "No student or teacher profile is linked to this account")))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))

	case errors.Is(err, apperrors.ErrAccountDisabled):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeForbidden, "Account is disabled")))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))

	case apperrors.Is(err, apperrors.ErrTokenInvalid, apperrors.ErrTokenRevoked):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))

	case errors.Is(err, apperrors.ErrTokenNotFound):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Token not found")))

	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")))

	case errors.Is(err, apperrors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInvalidInput, firstMessage(err, "Invalid input"))))

	case errors.Is(err, apperrors.ErrIntegrityViolation):
		c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeIntegrityViolation, firstMessage(err, "Referenced resource does not exist"))))

	case apperrors.Is(err, apperrors.ErrResourceAlreadyExists,
		apperrors.ErrConflict,
		apperrors.ErrEmailAlreadyExists,
		apperrors.ErrAcademicYearAlreadyExists,
		apperrors.ErrBranchAlreadyExists,
		apperrors.ErrStudentAlreadyExists,
		apperrors.ErrEmployeeIDAlreadyExists,
		apperrors.ErrUserAlreadyLinked,
		apperrors.ErrAlreadyEnrolled):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, firstMessage(err, "Resource already exists"))))

	case errors.Is(err, apperrors.ErrNotEnrolled):
		c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeIntegrityViolation, "Student is not enrolled in this course")))

	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

// firstMessage prefers the wrapped CustomError message when one is present
func firstMessage(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return fallback
}
