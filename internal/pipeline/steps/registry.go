// Package steps defines the analysis pipeline's steps, their categories and the
// data dependencies between them.
package steps

import (
	"fmt"
)

// Step names, in execution order
const (
	ParseResume = "parse_resume"
	AnalyzeJob  = "analyze_job"
	SkillGap    = "skill_gap"
	ATSScore    = "ats_score"
	Similarity  = "similarity"
	Roadmap     = "roadmap"
)

// Step categories
const (
	CategoryParsing  = "parsing"
	CategoryScoring  = "scoring"
	CategoryPlanning = "planning"
)

// StepDefinition defines metadata for a pipeline step
type StepDefinition struct {
	Name         string
	Category     string
	Dependencies []string
}

// StepRegistry holds all step definitions
var StepRegistry = map[string]StepDefinition{
	ParseResume: {
		Name:         ParseResume,
		Category:     CategoryParsing,
		Dependencies: []string{},
	},
	AnalyzeJob: {
		Name:         AnalyzeJob,
		Category:     CategoryParsing,
		Dependencies: []string{},
	},
	SkillGap: {
		Name:         SkillGap,
		Category:     CategoryScoring,
		Dependencies: []string{ParseResume, AnalyzeJob},
	},
	ATSScore: {
		Name:         ATSScore,
		Category:     CategoryScoring,
		Dependencies: []string{ParseResume, AnalyzeJob, SkillGap},
	},
	Similarity: {
		Name:         Similarity,
		Category:     CategoryScoring,
		Dependencies: []string{},
	},
	Roadmap: {
		Name:         Roadmap,
		Category:     CategoryPlanning,
		Dependencies: []string{SkillGap},
	},
}

// Sequence is the fixed order the orchestrator runs steps in
var Sequence = []string{ParseResume, AnalyzeJob, SkillGap, ATSScore, Similarity, Roadmap}

// CategoryOf returns the category of a registered step, or "" if unknown
func CategoryOf(step string) string {
	return StepRegistry[step].Category
}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("step %s: missing dependencies: %v", e.Step, e.MissingDependencies)
}

// ValidateDependencies checks that every dependency of stepName is in completed
func ValidateDependencies(completed map[string]bool, stepName string) error {
	def, ok := StepRegistry[stepName]
	if !ok {
		return fmt.Errorf("unknown step: %s", stepName)
	}

	var missing []string
	for _, dep := range def.Dependencies {
		if !completed[dep] {
			missing = append(missing, dep)
		}
	}

	if len(missing) > 0 {
		return &DependencyError{
			Step:                stepName,
			MissingDependencies: missing,
		}
	}
	return nil
}

// ValidateSequence checks that running steps in the given order never starts a
// step before its dependencies.
func ValidateSequence(sequence []string) error {
	completed := make(map[string]bool, len(sequence))
	for _, name := range sequence {
		if err := ValidateDependencies(completed, name); err != nil {
			return err
		}
		completed[name] = true
	}
	return nil
}
