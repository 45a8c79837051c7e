package skills

import (
	"testing"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileWith(skills ...string) *types.ResumeProfile {
	return &types.ResumeProfile{Skills: skills}
}

func TestComputeSkillGap_ScenarioA(t *testing.T) {
	reqs := &types.JobRequirements{
		RequiredSkills:  []string{"python", "sql", "docker"},
		PreferredSkills: []string{},
	}

	gap := ComputeSkillGap(profileWith("python", "sql"), reqs)

	assert.Equal(t, []string{"python", "sql"}, gap.MatchedSkills)
	assert.Equal(t, []string{"docker"}, gap.MissingRequired)
	assert.Empty(t, gap.MissingPreferred)
	assert.Equal(t, 66.7, gap.MatchPercentage)
	assert.Equal(t, 3, gap.TotalRequired)
	assert.Equal(t, 2, gap.TotalMatched)
	assert.Equal(t, map[string][]string{"Cloud & DevOps": {"docker"}}, gap.CategorizedGaps)
}

func TestComputeSkillGap_NoRequiredSkills(t *testing.T) {
	reqs := &types.JobRequirements{
		RequiredSkills:  []string{},
		PreferredSkills: []string{"kafka"},
	}

	gap := ComputeSkillGap(profileWith("python"), reqs)

	assert.Equal(t, 0.0, gap.MatchPercentage)
	assert.Equal(t, 0, gap.TotalRequired)
	assert.NotNil(t, gap.MatchedSkills)
	assert.NotNil(t, gap.MissingRequired)
	assert.Equal(t, []string{"kafka"}, gap.MissingPreferred)
}

func TestComputeSkillGap_SupersetMatchesFully(t *testing.T) {
	reqs := &types.JobRequirements{
		RequiredSkills:  []string{"go", "kubernetes"},
		PreferredSkills: []string{},
	}

	gap := ComputeSkillGap(profileWith("kubernetes", "go", "terraform"), reqs)

	assert.Empty(t, gap.MissingRequired)
	assert.Equal(t, 100.0, gap.MatchPercentage)
	assert.Empty(t, gap.CategorizedGaps)
}

func TestComputeSkillGap_CaseInsensitive(t *testing.T) {
	reqs := &types.JobRequirements{
		RequiredSkills:  []string{"Python", "SQL"},
		PreferredSkills: []string{},
	}

	gap := ComputeSkillGap(profileWith("python", " sql "), reqs)

	assert.Equal(t, []string{"python", "sql"}, gap.MatchedSkills)
	assert.Equal(t, 100.0, gap.MatchPercentage)
}

func TestComputeSkillGap_Partition(t *testing.T) {
	reqs := &types.JobRequirements{
		RequiredSkills:  []string{"python", "react", "aws", "git"},
		PreferredSkills: []string{"docker"},
	}

	gap := ComputeSkillGap(profileWith("react", "git", "docker"), reqs)

	union := append(append([]string{}, gap.MatchedSkills...), gap.MissingRequired...)
	assert.ElementsMatch(t, reqs.RequiredSkills, union)
	for _, m := range gap.MissingRequired {
		assert.NotContains(t, gap.MatchedSkills, m)
	}
	assert.Empty(t, gap.MissingPreferred)
	assert.Equal(t, 50.0, gap.MatchPercentage)
}

func TestComputeSkillGap_CategorizedGaps(t *testing.T) {
	reqs := &types.JobRequirements{
		RequiredSkills:  []string{"python", "postgresql", "go"},
		PreferredSkills: []string{"redis", "communication"},
	}

	gap := ComputeSkillGap(profileWith(), reqs)

	assert.Equal(t, map[string][]string{
		"Programming Languages": {"python", "go"},
		"Databases":             {"postgresql", "redis"},
		"Soft Skills":           {"communication"},
	}, gap.CategorizedGaps)
}

func TestComputeSkillGap_Importance(t *testing.T) {
	reqs := &types.JobRequirements{
		RequiredSkills:  []string{"python", "docker"},
		PreferredSkills: []string{"docker", "kafka"},
	}

	gap := ComputeSkillGap(profileWith(), reqs)

	require.Len(t, gap.SkillImportance, 3)
	assert.Equal(t, types.ImportanceRequired, gap.SkillImportance["python"])
	assert.Equal(t, types.ImportanceRequired, gap.SkillImportance["docker"], "required weight wins over preferred")
	assert.Equal(t, types.ImportancePreferred, gap.SkillImportance["kafka"])
}

func TestMatchPercentage(t *testing.T) {
	tests := []struct {
		matched, required int
		want              float64
	}{
		{0, 0, 0},
		{0, 5, 0},
		{1, 3, 33.3},
		{2, 3, 66.7},
		{5, 5, 100},
		{1, 8, 12.5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, matchPercentage(tt.matched, tt.required))
	}
}
