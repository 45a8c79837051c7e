package pipeline

import (
	"github.com/jonathan/resume-analyzer/internal/parsing"
)

// ErrInputMissing matches, via errors.Is, any failure caused by an empty or
// whitespace-only input text.
var ErrInputMissing = parsing.ErrInputMissing

// InputMissingError names the input that was empty
type InputMissingError = parsing.InputMissingError
