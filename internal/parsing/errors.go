package parsing

import (
	"errors"
	"fmt"
)

// ErrInputMissing is matched by errors.Is for any InputMissingError
var ErrInputMissing = errors.New("input missing")

// InputMissingError is returned when a required text input is empty or blank
type InputMissingError struct {
	Field string
}

func (e *InputMissingError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("input missing: %s is empty", e.Field)
	}
	return "input missing"
}

// Is makes errors.Is(err, ErrInputMissing) report true
func (e *InputMissingError) Is(target error) bool {
	return target == ErrInputMissing
}
