//nolint:revive // types is a standard Go package name pattern
package types

// Experience levels inferred from a job description
const (
	LevelJunior = "junior"
	LevelMid    = "mid"
	LevelSenior = "senior"
)

// JobRequirements represents a job description analyzed into skill requirements
type JobRequirements struct {
	RequiredSkills      []string    `json:"requiredSkills"`
	PreferredSkills     []string    `json:"preferredSkills"`
	ExperienceLevel     string      `json:"experienceLevel"`
	KeyResponsibilities []string    `json:"keyResponsibilities"`
	Metadata            JobMetadata `json:"metadata"`
}

// JobMetadata holds derived facts about the posting
type JobMetadata struct {
	YearsRequired string `json:"yearsRequired"`
}
