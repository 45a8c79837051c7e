//nolint:revive // types is a standard Go package name pattern
package types

// Report is the full result of analyzing one résumé against one job description
type Report struct {
	Resume             *ResumeProfile   `json:"resume"`
	Job                *JobRequirements `json:"job"`
	SkillGap           *SkillGapReport  `json:"skillGap"`
	ATSScore           *ATSReport       `json:"atsScore"`
	Roadmap            *LearningRoadmap `json:"roadmap"`
	SemanticSimilarity float64          `json:"semanticSimilarity"`
}
