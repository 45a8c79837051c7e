// Package pipeline orchestrates a full résumé analysis: parsing both texts,
// computing the skill gap, ATS score, semantic similarity and learning roadmap,
// and assembling them into one report.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/nlp"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/pipeline/steps"
	"github.com/jonathan/resume-analyzer/internal/roadmap"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for running the pipeline
type Options struct {
	OnProgress ProgressCallback
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *Options, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: steps.CategoryOf(step),
			Message:  message,
			Content:  content,
		})
	}
}

// Run analyzes one résumé against one job description. Both texts are checked
// before any work starts; an empty or whitespace-only text yields an
// InputMissingError and no report.
func Run(resumeText, jobText string, opts Options) (*types.Report, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, &InputMissingError{Field: "resume"}
	}
	if strings.TrimSpace(jobText) == "" {
		return nil, &InputMissingError{Field: "job description"}
	}

	profile, err := parsing.ParseResume(resumeText)
	if err != nil {
		return nil, fmt.Errorf("parsing resume failed: %w", err)
	}
	emitProgress(&opts, steps.ParseResume,
		fmt.Sprintf("Parsed résumé: %d skills, %d sections, %d words",
			len(profile.Skills), len(profile.Sections), profile.Metadata.WordCount), profile)

	reqs, err := parsing.AnalyzeJobDescription(jobText)
	if err != nil {
		return nil, fmt.Errorf("analyzing job description failed: %w", err)
	}
	emitProgress(&opts, steps.AnalyzeJob,
		fmt.Sprintf("Analyzed job: %d required, %d preferred skills, %s level",
			len(reqs.RequiredSkills), len(reqs.PreferredSkills), reqs.ExperienceLevel), reqs)

	gap := skills.ComputeSkillGap(profile, reqs)
	emitProgress(&opts, steps.SkillGap,
		fmt.Sprintf("Matched %d of %d required skills (%.1f%%)",
			gap.TotalMatched, gap.TotalRequired, gap.MatchPercentage), gap)

	ats := scoring.ScoreATS(profile, reqs, gap)
	emitProgress(&opts, steps.ATSScore,
		fmt.Sprintf("ATS score %d/%d (grade %s)", ats.Score, ats.MaxScore, ats.Grade), ats)

	similarity := nlp.SemanticSimilarity(resumeText, jobText)
	emitProgress(&opts, steps.Similarity,
		fmt.Sprintf("Semantic similarity %.1f%%", similarity), similarity)

	plan := roadmap.Generate(gap)
	emitProgress(&opts, steps.Roadmap,
		fmt.Sprintf("Roadmap with %d skills to learn", plan.Len()), plan)

	return &types.Report{
		Resume:             profile,
		Job:                reqs,
		SkillGap:           gap,
		ATSScore:           ats,
		Roadmap:            plan,
		SemanticSimilarity: similarity,
	}, nil
}
