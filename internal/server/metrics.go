package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jonathan/resume-analyzer/internal/pipeline"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Analysis outcome labels
const (
	outcomeOK           = "ok"
	outcomeInputMissing = "input_missing"
	outcomeError        = "error"
)

// Metrics holds the server's Prometheus collectors on a private registry.
type Metrics struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.SummaryVec
	requestsTotal   *prometheus.CounterVec
	analysesTotal   *prometheus.CounterVec
	atsScore        prometheus.Histogram
	matchPercentage prometheus.Histogram
}

// NewMetrics registers the HTTP and analysis collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requestDuration: factory.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP request duration in seconds",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.95: 0.005,
					0.99: 0.001,
				},
			},
			[]string{"method", "path", "status_code"},
		),
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		analysesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resume_analyses_total",
				Help: "Résumé analyses by outcome",
			},
			[]string{"outcome"},
		),
		atsScore: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "resume_ats_score",
			Help:    "Distribution of ATS scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		}),
		matchPercentage: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "resume_skill_match_percentage",
			Help:    "Distribution of required-skill match percentages",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveAnalysis records the outcome of one pipeline run.
func (m *Metrics) ObserveAnalysis(report *types.Report, err error) {
	switch {
	case err == nil:
		m.analysesTotal.WithLabelValues(outcomeOK).Inc()
		if report.ATSScore != nil {
			m.atsScore.Observe(float64(report.ATSScore.Score))
		}
		if report.SkillGap != nil {
			m.matchPercentage.Observe(report.SkillGap.MatchPercentage)
		}
	case HTTPStatus(err) == http.StatusUnprocessableEntity:
		m.analysesTotal.WithLabelValues(outcomeInputMissing).Inc()
	default:
		m.analysesTotal.WithLabelValues(outcomeError).Inc()
	}
}

// ObserveBatch records every item of a batch response.
func (m *Metrics) ObserveBatch(resp *types.BatchResponse) {
	for _, res := range resp.Results {
		switch {
		case res.Error == "":
			m.ObserveAnalysis(res.Report, nil)
		case strings.HasPrefix(res.Error, pipeline.ErrInputMissing.Error()):
			m.analysesTotal.WithLabelValues(outcomeInputMissing).Inc()
		default:
			m.analysesTotal.WithLabelValues(outcomeError).Inc()
		}
	}
}

// withMetrics records request count and latency labelled by route pattern.
func (m *Metrics) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		// r.Pattern is filled in by the mux once routing is done.
		path := "unmatched"
		if r.Pattern != "" {
			_, p, found := strings.Cut(r.Pattern, " ")
			if !found {
				p = r.Pattern
			}
			path = p
		}
		status := strconv.Itoa(rec.status)

		m.requestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
		m.requestsTotal.WithLabelValues(r.Method, path, status).Inc()
	})
}

// statusRecorder captures the response status and keeps streaming working.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
