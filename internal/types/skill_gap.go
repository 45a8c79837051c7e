//nolint:revive // types is a standard Go package name pattern
package types

// Skill importance weights
const (
	ImportanceRequired  = 2
	ImportancePreferred = 1
)

// SkillGapReport compares résumé skills against job requirements
type SkillGapReport struct {
	MatchPercentage  float64             `json:"matchPercentage"`
	MatchedSkills    []string            `json:"matchedSkills"`
	MissingRequired  []string            `json:"missingRequired"`
	MissingPreferred []string            `json:"missingPreferred"`
	CategorizedGaps  map[string][]string `json:"categorizedGaps"`
	SkillImportance  map[string]int      `json:"skillImportance"`
	TotalRequired    int                 `json:"totalRequired"`
	TotalMatched     int                 `json:"totalMatched"`
}
