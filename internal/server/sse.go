package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// SSE event names
const (
	eventStep   = "step"
	eventReport = "report"
	eventError  = "error"
)

// SSEWriter writes Server-Sent Events
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewSSEWriter sets the event-stream headers. It fails when the response
// cannot be flushed incrementally.
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends one named event with a JSON payload
func (s *SSEWriter) WriteEvent(event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// WriteError sends an error event carrying the status the plain endpoint
// would have returned.
func (s *SSEWriter) WriteError(err error) error {
	return s.WriteEvent(eventError, map[string]any{
		"error":  err.Error(),
		"status": HTTPStatus(err),
	})
}

// WriteReport sends the final report
func (s *SSEWriter) WriteReport(report *types.Report) error {
	return s.WriteEvent(eventReport, report)
}
