//nolint:revive // types is a standard Go package name pattern
package types

// LearningRoadmap buckets missing skills by how soon they should be learned
type LearningRoadmap struct {
	Immediate []RoadmapItem `json:"immediate"`
	ShortTerm []RoadmapItem `json:"shortTerm"`
	LongTerm  []RoadmapItem `json:"longTerm"`
}

// RoadmapItem is a single skill to learn with a suggested resource
type RoadmapItem struct {
	Skill         string `json:"skill"`
	Resource      string `json:"resource"`
	Platform      string `json:"platform"`
	EstimatedTime string `json:"estimatedTime"`
	Priority      string `json:"priority"`
	Importance    int    `json:"importance"`
}

// Len returns the number of items across all buckets
func (r *LearningRoadmap) Len() int {
	return len(r.Immediate) + len(r.ShortTerm) + len(r.LongTerm)
}
