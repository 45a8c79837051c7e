package pipeline

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// DefaultBatchConcurrency bounds parallel analyses when no limit is given
const DefaultBatchConcurrency = 4

// BatchOptions holds configuration for RunBatch
type BatchOptions struct {
	Concurrency int
	OnProgress  ProgressCallback
}

// RunBatch analyzes each résumé against the same job description with bounded
// parallelism. Results keep input order. A résumé that fails records its error
// in its own result and does not stop the others. Items without an ID get a
// generated one. The batch as a whole fails only when the job text is missing
// or ctx is cancelled.
func RunBatch(ctx context.Context, jobText string, resumes []types.BatchResume, opts BatchOptions) (*types.BatchResponse, error) {
	if strings.TrimSpace(jobText) == "" {
		return nil, &InputMissingError{Field: "job description"}
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultBatchConcurrency
	}

	results := make([]types.BatchResult, len(resumes))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, item := range resumes {
		id := item.ID
		if id == "" {
			id = uuid.NewString()
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			report, err := Run(item.Text, jobText, Options{OnProgress: opts.OnProgress})
			if err != nil {
				results[i] = types.BatchResult{ID: id, Error: err.Error()}
				return nil
			}
			results[i] = types.BatchResult{ID: id, Report: report}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &types.BatchResponse{Results: results}
	for _, r := range results {
		if r.Error != "" {
			resp.Failed++
		} else {
			resp.Succeeded++
		}
	}
	return resp, nil
}
