package taxonomy

import (
	"maps"
	"sort"
	"strings"
)

// Resource is a suggested way to learn a skill
type Resource struct {
	Platform      string `json:"platform"`
	Course        string `json:"course"`
	EstimatedTime string `json:"estimatedTime"`
	Priority      string `json:"priority"`
}

var resources = map[string]Resource{
	"python":           {Platform: "Free", Course: "Python.org Tutorial", EstimatedTime: "2 weeks", Priority: "high"},
	"javascript":       {Platform: "Free", Course: "MDN Web Docs", EstimatedTime: "3 weeks", Priority: "high"},
	"react":            {Platform: "Free", Course: "React Official Docs", EstimatedTime: "2 weeks", Priority: "high"},
	"machine learning": {Platform: "Coursera", Course: "ML by Andrew Ng", EstimatedTime: "8 weeks", Priority: "high"},
	"sql":              {Platform: "Free", Course: "SQLBolt Interactive", EstimatedTime: "1 week", Priority: "high"},
	"docker":           {Platform: "Free", Course: "Docker Official Docs", EstimatedTime: "1 week", Priority: "medium"},
	"aws":              {Platform: "AWS", Course: "AWS Free Tier Training", EstimatedTime: "4 weeks", Priority: "high"},
	"kubernetes":       {Platform: "Free", Course: "Kubernetes.io Tutorial", EstimatedTime: "3 weeks", Priority: "medium"},
	"tensorflow":       {Platform: "Free", Course: "TensorFlow.org Guides", EstimatedTime: "4 weeks", Priority: "high"},
	"node.js":          {Platform: "Free", Course: "NodeJS.org Learning", EstimatedTime: "2 weeks", Priority: "medium"},
}

// Fallback values for skills without a catalog entry
const (
	fallbackPlatform = "generic search"
	fallbackTime     = "2-4 weeks"
	fallbackPriority = "medium"
)

// LookupResource returns the catalog resource for a skill
func LookupResource(skill string) (Resource, bool) {
	r, ok := resources[strings.ToLower(skill)]
	return r, ok
}

// ResourceFor returns the catalog resource for a skill, or a generic search
// suggestion when the catalog has no entry.
func ResourceFor(skill string) Resource {
	if r, ok := LookupResource(skill); ok {
		return r
	}
	return Resource{
		Platform:      fallbackPlatform,
		Course:        "search '" + skill + " tutorial'",
		EstimatedTime: fallbackTime,
		Priority:      fallbackPriority,
	}
}

// ResourceSkills returns the skills that have a catalog resource, sorted
func ResourceSkills() []string {
	out := make([]string, 0, len(resources))
	for skill := range resources {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// Resources returns a copy of the learning-resource catalog keyed by skill
func Resources() map[string]Resource {
	return maps.Clone(resources)
}

// Catalog is the serializable view of both catalogs
type Catalog struct {
	Categories []Category          `json:"categories"`
	Resources  map[string]Resource `json:"resources"`
}

// Snapshot returns copies of the skill taxonomy and resource catalog
func Snapshot() Catalog {
	return Catalog{Categories: Categories(), Resources: Resources()}
}
