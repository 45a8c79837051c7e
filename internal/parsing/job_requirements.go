package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Skill requirement classes
const (
	classRequired  = "required"
	classPreferred = "preferred"
)

// skillRule classifies a detected skill when its cue phrase precedes the skill
// within the same sentence. Rules are evaluated top to bottom and the first
// match wins; overlapping cues must resolve in this order.
type skillRule struct {
	class string
	cue   string
}

var skillRules = []skillRule{
	{class: classRequired, cue: `(required|must have|essential)`},
	{class: classPreferred, cue: `(preferred|nice to have|bonus)`},
}

// defaultSkillClass applies when no rule matches
const defaultSkillClass = classRequired

// levelRule maps a seniority cue to an experience level and years range.
// Evaluated top to bottom over the whole text; the first match wins.
type levelRule struct {
	pattern *regexp.Regexp
	level   string
	years   string
}

var levelRules = []levelRule{
	{pattern: regexp.MustCompile(`(?i)senior|lead|principal|staff`), level: types.LevelSenior, years: "5-8+"},
	{pattern: regexp.MustCompile(`(?i)junior|entry|graduate|intern`), level: types.LevelJunior, years: "0-2"},
}

var defaultLevel = levelRule{level: types.LevelMid, years: "2-5"}

var (
	listItemRe   = regexp.MustCompile(`^[-•*]\s|^\d+\.`)
	listMarkerRe = regexp.MustCompile(`^[-•*]\s|^\d+\.\s`)
)

// Responsibility length bounds, exclusive
const (
	minRespLen = 20
	maxRespLen = 200
)

// AnalyzeJobDescription extracts required and preferred skills, the experience
// level and the bulleted responsibilities from plain job-description text.
func AnalyzeJobDescription(text string) (*types.JobRequirements, error) {
	if isBlank(text) {
		return nil, &InputMissingError{Field: "job description"}
	}

	normalized := strings.ToLower(text)
	reqs := &types.JobRequirements{
		RequiredSkills:      []string{},
		PreferredSkills:     []string{},
		KeyResponsibilities: extractResponsibilities(text),
	}

	seen := make(map[string]bool)
	for _, skill := range taxonomy.DetectSkills(text) {
		name := NormalizeSkillName(skill)
		if seen[name] {
			continue
		}
		seen[name] = true

		switch classifySkill(normalized, name) {
		case classPreferred:
			reqs.PreferredSkills = append(reqs.PreferredSkills, name)
		default:
			reqs.RequiredSkills = append(reqs.RequiredSkills, name)
		}
	}

	level := classifyLevel(text)
	reqs.ExperienceLevel = level.level
	reqs.Metadata.YearsRequired = level.years

	return reqs, nil
}

// classifySkill runs skillRules in order against lowercased text
func classifySkill(normalized, skill string) string {
	for _, rule := range skillRules {
		re := regexp.MustCompile(`(?i)` + rule.cue + `[^.]*` + regexp.QuoteMeta(skill))
		if re.MatchString(normalized) {
			return rule.class
		}
	}
	return defaultSkillClass
}

func classifyLevel(text string) levelRule {
	for _, rule := range levelRules {
		if rule.pattern.MatchString(text) {
			return rule
		}
	}
	return defaultLevel
}

// extractResponsibilities keeps bulleted or numbered lines whose trimmed length
// is strictly between 20 and 200 characters, with the list marker removed.
func extractResponsibilities(text string) []string {
	out := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if !listItemRe.MatchString(trimmed) {
			continue
		}
		n := len([]rune(trimmed))
		if n <= minRespLen || n >= maxRespLen {
			continue
		}
		out = append(out, strings.TrimSpace(listMarkerRe.ReplaceAllString(trimmed, "")))
	}
	return out
}
