package taxonomy

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSkills_WholeWordsOnly(t *testing.T) {
	skills := DetectSkills("Built services in Go and Python; deployed with Docker on AWS.")
	assert.Equal(t, []string{"python", "go", "aws", "docker"}, skills)

	// "java" must not match inside "javascript", "r" must not match inside words
	skills = DetectSkills("Wrote JavaScript for a React frontend")
	assert.Contains(t, skills, "javascript")
	assert.Contains(t, skills, "react")
	assert.NotContains(t, skills, "java")
	assert.NotContains(t, skills, "r")
}

func TestDetectSkills_MultiWordAndPunctuated(t *testing.T) {
	skills := DetectSkills("Experience with Machine Learning, Node.js, CI/CD and C++ tooling.")
	assert.Contains(t, skills, "machine learning")
	assert.Contains(t, skills, "node.js")
	assert.Contains(t, skills, "ci/cd")
	assert.Contains(t, skills, "c++")
	assert.NotContains(t, skills, "c#")
}

func TestDetectSkills_EscapesMetacharacters(t *testing.T) {
	// "node.js" must not match "nodexjs" even though "." is a regex wildcard
	assert.NotContains(t, DetectSkills("nodexjs"), "node.js")
}

func TestDetectSkills_NoneFound(t *testing.T) {
	assert.Empty(t, DetectSkills("Friendly barista with latte art credentials"))
}

func TestWholePhrase(t *testing.T) {
	tests := []struct {
		phrase string
		text   string
		want   bool
	}{
		{"go", "i write go daily", true},
		{"go", "google", false},
		{"c++", "c++", true},
		{"c++", "c++, java", true},
		{"c++", "abc++", false},
		{"c#", "c# and .net", true},
		{"rest api", "a rest api design", true},
		{"rest api", "a rest apis design", false},
	}
	for _, tt := range tests {
		t.Run(tt.phrase+"/"+tt.text, func(t *testing.T) {
			re := regexp.MustCompile(`(?i)` + WholePhrase(tt.phrase))
			assert.Equal(t, tt.want, re.MatchString(tt.text))
		})
	}
	assert.Equal(t, "", WholePhrase(""))
}

func TestCategoryOf(t *testing.T) {
	cat, ok := CategoryOf("Docker")
	require.True(t, ok)
	assert.Equal(t, "Cloud & DevOps", cat)

	_, ok = CategoryOf("basket weaving")
	assert.False(t, ok)
}

func TestCategories_ReturnsCopy(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 7)
	assert.Equal(t, "Programming Languages", cats[0].Name)

	cats[0].Skills[0] = "mutated"
	assert.Equal(t, "python", Categories()[0].Skills[0])
}

func TestAllSkills_FlattenedOrder(t *testing.T) {
	all := AllSkills()
	assert.Equal(t, "python", all[0])
	assert.Equal(t, "mentoring", all[len(all)-1])

	seen := make(map[string]bool)
	for _, s := range all {
		assert.False(t, seen[s], "duplicate skill %q", s)
		seen[s] = true
	}
}

func TestResourceFor(t *testing.T) {
	r := ResourceFor("docker")
	assert.Equal(t, "Docker Official Docs", r.Course)
	assert.Equal(t, "1 week", r.EstimatedTime)
	assert.Equal(t, "medium", r.Priority)

	fallback := ResourceFor("graphql")
	assert.Equal(t, "generic search", fallback.Platform)
	assert.Equal(t, "search 'graphql tutorial'", fallback.Course)
	assert.Equal(t, "2-4 weeks", fallback.EstimatedTime)
	assert.Equal(t, "medium", fallback.Priority)
}

func TestResourceSkills_Sorted(t *testing.T) {
	skills := ResourceSkills()
	require.Len(t, skills, 10)
	assert.IsNonDecreasing(t, skills)
}

func TestResources_ReturnsCopy(t *testing.T) {
	all := Resources()
	require.Len(t, all, len(ResourceSkills()))
	assert.Equal(t, "Docker Official Docs", all["docker"].Course)

	delete(all, "docker")
	_, ok := LookupResource("docker")
	assert.True(t, ok)
}

func TestSnapshot(t *testing.T) {
	snap := Snapshot()
	assert.Equal(t, Categories(), snap.Categories)
	assert.Equal(t, Resources(), snap.Resources)
}
