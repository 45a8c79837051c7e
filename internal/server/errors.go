package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-analyzer/internal/pipeline"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// newValidationError converts the first validator field error into an
// ErrValidation. Other errors pass through unchanged.
func newValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ErrValidation{
			Field:   fe.Namespace(),
			Message: fmt.Sprintf("failed '%s' validation", fe.Tag()),
		}
	}
	return err
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		tooLargeErr   *http.MaxBytesError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &tooLargeErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, pipeline.ErrInputMissing):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
