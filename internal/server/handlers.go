package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// decodeJSON reads the request body into dst, enforcing the body size limit.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := r.Body
	if s.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	}
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return nil
}

// progressLogger logs pipeline steps under the request ID. next, when set,
// receives every event too.
func progressLogger(r *http.Request, next pipeline.ProgressCallback) pipeline.ProgressCallback {
	id := requestID(r)
	return func(event pipeline.ProgressEvent) {
		log.Printf("[analyze %s] %s: %s", id, event.Step, event.Message)
		if next != nil {
			next(event)
		}
	}
}

// analyze runs the pipeline for one request and applies the optional schema check.
func (s *Server) analyze(r *http.Request, req *types.AnalyzeRequest, onProgress pipeline.ProgressCallback) (*types.Report, error) {
	report, err := pipeline.Run(req.Resume, req.JobDescription, pipeline.Options{
		OnProgress: progressLogger(r, onProgress),
	})
	if err == nil && s.validateSchema {
		if verr := schemas.ValidateReport(report); verr != nil {
			report, err = nil, fmt.Errorf("report failed schema validation: %w", verr)
		}
	}
	s.metrics.ObserveAnalysis(report, err)
	return report, err
}

// handleAnalyze analyzes one résumé against one job description
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, newValidationError(err))
		return
	}

	report, err := s.analyze(r, &req, nil)
	if err != nil {
		log.Printf("[analyze %s] failed: %v", requestID(r), err)
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, report)
}

// handleAnalyzeStream streams step events over SSE, then the report
func (s *Server) handleAnalyzeStream(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, newValidationError(err))
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	report, err := s.analyze(r, &req, func(event pipeline.ProgressEvent) {
		if werr := sse.WriteEvent(eventStep, event); werr != nil {
			log.Printf("Error writing SSE event: %v", werr)
		}
	})
	if err != nil {
		log.Printf("[analyze %s] failed: %v", requestID(r), err)
		if werr := sse.WriteError(err); werr != nil {
			log.Printf("Error writing SSE event: %v", werr)
		}
		return
	}
	if err := sse.WriteReport(report); err != nil {
		log.Printf("Error writing SSE event: %v", err)
	}
}

// handleAnalyzeBatch analyzes many résumés against one job description
func (s *Server) handleAnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.errorResponse(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, newValidationError(err))
		return
	}

	resp, err := pipeline.RunBatch(r.Context(), req.JobDescription, req.Resumes, pipeline.BatchOptions{
		Concurrency: s.batchConcurrency,
		OnProgress:  progressLogger(r, nil),
	})
	if err != nil {
		log.Printf("[batch %s] failed: %v", requestID(r), err)
		s.errorResponse(w, err)
		return
	}
	if s.validateSchema {
		s.validateBatch(resp)
	}
	s.metrics.ObserveBatch(resp)
	s.jsonResponse(w, http.StatusOK, resp)
}

// validateBatch turns reports that fail the schema into item errors.
func (s *Server) validateBatch(resp *types.BatchResponse) {
	for i := range resp.Results {
		res := &resp.Results[i]
		if res.Report == nil {
			continue
		}
		if err := schemas.ValidateReport(res.Report); err != nil {
			res.Report = nil
			res.Error = fmt.Sprintf("report failed schema validation: %v", err)
			resp.Succeeded--
			resp.Failed++
		}
	}
}

// handleTaxonomy lists skill categories and learning resources
func (s *Server) handleTaxonomy(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, taxonomy.Snapshot())
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
