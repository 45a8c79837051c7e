package steps

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepRegistry(t *testing.T) {
	for _, stepName := range Sequence {
		def, ok := StepRegistry[stepName]
		require.True(t, ok, "Step %s should be in registry", stepName)
		assert.Equal(t, stepName, def.Name)
		assert.NotEmpty(t, def.Category)
	}
	assert.Len(t, StepRegistry, len(Sequence))
}

func TestStepRegistryCategories(t *testing.T) {
	categories := map[string][]string{
		CategoryParsing:  {ParseResume, AnalyzeJob},
		CategoryScoring:  {SkillGap, ATSScore, Similarity},
		CategoryPlanning: {Roadmap},
	}

	for category, stepNames := range categories {
		for _, stepName := range stepNames {
			assert.Equal(t, category, CategoryOf(stepName), "Step %s should be in category %s", stepName, category)
		}
	}
	assert.Equal(t, "", CategoryOf("render_pdf"))
}

func TestValidateSequence_Default(t *testing.T) {
	assert.NoError(t, ValidateSequence(Sequence))
}

func TestValidateSequence_OutOfOrder(t *testing.T) {
	err := ValidateSequence([]string{ParseResume, SkillGap, AnalyzeJob})

	var depErr *DependencyError
	require.True(t, errors.As(err, &depErr))
	assert.Equal(t, SkillGap, depErr.Step)
	assert.Equal(t, []string{AnalyzeJob}, depErr.MissingDependencies)
}

func TestValidateDependencies_UnknownStep(t *testing.T) {
	err := ValidateDependencies(map[string]bool{}, "render_pdf")
	assert.EqualError(t, err, "unknown step: render_pdf")
}

func TestValidateDependencies_Met(t *testing.T) {
	completed := map[string]bool{SkillGap: true}
	assert.NoError(t, ValidateDependencies(completed, Roadmap))
}
