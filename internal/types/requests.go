//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// MaxBatchSize caps the number of résumés accepted in one batch request
const MaxBatchSize = 50

// AnalyzeRequest is the request to analyze one résumé against one job description.
type AnalyzeRequest struct {
	Resume         string `json:"resume" validate:"required"`
	JobDescription string `json:"jobDescription" validate:"required"`
}

// BatchRequest analyzes several résumés against the same job description.
type BatchRequest struct {
	JobDescription string        `json:"jobDescription" validate:"required"`
	Resumes        []BatchResume `json:"resumes" validate:"required,min=1,max=50,dive"`
}

// BatchResume is one résumé within a batch. ID is echoed back in the result.
type BatchResume struct {
	ID   string `json:"id,omitempty" validate:"omitempty,max=128"`
	Text string `json:"text" validate:"required"`
}

// BatchResult is the outcome for one résumé of a batch.
// Exactly one of Report and Error is set.
type BatchResult struct {
	ID     string  `json:"id"`
	Report *Report `json:"report,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// BatchResponse holds batch results in request order
type BatchResponse struct {
	Results   []BatchResult `json:"results"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BatchRequest using the validator.
func (r *BatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
