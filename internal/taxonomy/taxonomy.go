// Package taxonomy provides the static skill catalog and learning-resource catalog
// used for keyword-based skill detection. Both catalogs are built once at package
// initialization and never mutated, so they are safe for concurrent use.
package taxonomy

import (
	"regexp"
	"strings"
)

// Category is a named group of skills in catalog order
type Category struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

var categories = []Category{
	{Name: "Programming Languages", Skills: []string{
		"python", "javascript", "java", "c++", "c#", "ruby", "go", "rust", "swift",
		"kotlin", "typescript", "php", "scala", "r", "matlab", "perl", "shell", "bash",
	}},
	{Name: "Web Technologies", Skills: []string{
		"html", "css", "react", "angular", "vue", "node.js", "express", "django",
		"flask", "fastapi", "spring", "asp.net", "next.js", "nuxt", "gatsby", "jquery",
		"bootstrap", "tailwind", "sass", "webpack", "babel",
	}},
	{Name: "Data Science & AI", Skills: []string{
		"machine learning", "deep learning", "tensorflow", "pytorch", "keras",
		"scikit-learn", "pandas", "numpy", "nlp", "computer vision", "opencv",
		"data analysis", "statistics", "data visualization", "tableau", "power bi",
		"matplotlib", "seaborn", "plotly", "xgboost", "lightgbm", "hugging face",
	}},
	{Name: "Databases", Skills: []string{
		"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch", "cassandra",
		"dynamodb", "oracle", "sqlite", "neo4j", "firebase", "mariadb",
	}},
	{Name: "Cloud & DevOps", Skills: []string{
		"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "gitlab ci",
		"github actions", "terraform", "ansible", "linux", "ci/cd", "serverless",
		"cloudformation", "helm", "prometheus", "grafana", "nginx", "apache",
	}},
	{Name: "Tools & Frameworks", Skills: []string{
		"git", "jira", "agile", "scrum", "rest api", "graphql", "microservices",
		"oauth", "jwt", "websockets", "rabbitmq", "kafka", "spark", "hadoop",
	}},
	{Name: "Soft Skills", Skills: []string{
		"leadership", "communication", "teamwork", "problem solving", "critical thinking",
		"time management", "collaboration", "adaptability", "creativity", "mentoring",
	}},
}

// compiled holds a detection pattern per skill, in flattened catalog order
type compiled struct {
	skill    string
	category string
	pattern  *regexp.Regexp
}

var (
	flattened  []compiled
	categoryOf = make(map[string]string)
)

func init() {
	for _, c := range categories {
		for _, skill := range c.Skills {
			if _, dup := categoryOf[skill]; dup {
				continue
			}
			categoryOf[skill] = c.Name
			flattened = append(flattened, compiled{
				skill:    skill,
				category: c.Name,
				pattern:  regexp.MustCompile(`(?i)` + WholePhrase(skill)),
			})
		}
	}
}

// Categories returns the catalog in its fixed order. The returned slice is a copy.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = Category{Name: c.Name, Skills: append([]string(nil), c.Skills...)}
	}
	return out
}

// AllSkills returns every skill in flattened catalog order
func AllSkills() []string {
	out := make([]string, len(flattened))
	for i, c := range flattened {
		out[i] = c.skill
	}
	return out
}

// CategoryOf returns the category a skill belongs to
func CategoryOf(skill string) (string, bool) {
	name, ok := categoryOf[strings.ToLower(skill)]
	return name, ok
}

// DetectSkills returns every catalog skill found as a whole word or phrase in text,
// in flattened catalog order. Matching is case-insensitive and runs against the
// whole text so multi-word skills are found.
func DetectSkills(text string) []string {
	normalized := strings.ToLower(text)
	found := make([]string, 0)
	for _, c := range flattened {
		if c.pattern.MatchString(normalized) {
			found = append(found, c.skill)
		}
	}
	return found
}

// WholePhrase returns a regular expression fragment matching phrase as a whole
// word or phrase. Metacharacters are escaped. A word boundary is only asserted
// next to a word character; a skill edge such as the "+" in "c++" instead
// requires a non-word character or the text boundary.
func WholePhrase(phrase string) string {
	if phrase == "" {
		return ""
	}
	var sb strings.Builder
	if isWordByte(phrase[0]) {
		sb.WriteString(`\b`)
	} else {
		sb.WriteString(`(?:^|\W)`)
	}
	sb.WriteString(regexp.QuoteMeta(phrase))
	if isWordByte(phrase[len(phrase)-1]) {
		sb.WriteString(`\b`)
	} else {
		sb.WriteString(`(?:\W|$)`)
	}
	return sb.String()
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}
