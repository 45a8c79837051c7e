package parsing

import (
	"strings"
)

// NormalizeSkillName returns the canonical comparison form of a skill name.
// All skill comparisons are case-insensitive, so the canonical form is the
// trimmed, lowercased name.
func NormalizeSkillName(skillName string) string {
	return strings.ToLower(strings.TrimSpace(skillName))
}

// NormalizeSkills normalizes skill names and deduplicates them, keeping the
// first occurrence and dropping empty names.
func NormalizeSkills(skills []string) []string {
	normalized := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))

	for _, skill := range skills {
		name := NormalizeSkillName(skill)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		normalized = append(normalized, name)
	}

	return normalized
}

// nonEmptyLines splits text on newlines and keeps lines that are not blank.
// Lines are returned untrimmed.
func nonEmptyLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func isBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
