package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorUnwrap(t *testing.T) {
	err := NewInvalidInputError("date must be in YYYY-MM-DD format")

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, "date must be in YYYY-MM-DD format", err.Error())

	var customErr *CustomError
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, ErrInvalidInput, customErr.Err)
}

func TestCustomErrorFallsBackToWrapped(t *testing.T) {
	err := &CustomError{Err: ErrCourseNotFound}
	assert.Equal(t, "course not found", err.Error())
}

func TestIsMatchesAnyTarget(t *testing.T) {
	err := fmt.Errorf("loading grade: %w", ErrGradeNotFound)

	assert.True(t, Is(err, ErrCourseNotFound, ErrGradeNotFound, ErrAssignmentNotFound))
	assert.False(t, Is(err, ErrCourseNotFound, ErrAssignmentNotFound))
	assert.True(t, Is(ErrNoProfile, ErrNoProfile))
}

func TestWithDetailsAndCode(t *testing.T) {
	err := NewCustomError(ErrValidationFailed, "validation failed").
		WithCode("VAL_001").
		WithDetails(map[string]interface{}{"field": "date"})

	assert.Equal(t, "VAL_001", err.Code)
	assert.Equal(t, "date", err.Details["field"])
	assert.True(t, errors.Is(err, ErrValidationFailed))
}
