package parsing

import (
	"strings"
)

// Résumé section names
const (
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
	SectionProjects   = "projects"
)

// sectionHeader maps a section to the keywords that open it. The table is
// scanned in order and the first section with a matching keyword wins.
type sectionHeader struct {
	name     string
	keywords []string
}

var sectionHeaders = []sectionHeader{
	{name: SectionExperience, keywords: []string{"experience", "work history", "employment", "professional experience"}},
	{name: SectionEducation, keywords: []string{"education", "academic", "qualification", "degree"}},
	{name: SectionSkills, keywords: []string{"skills", "technical skills", "expertise", "competencies"}},
	{name: SectionProjects, keywords: []string{"projects", "portfolio", "work samples"}},
}

// matchSectionHeader returns the section a line opens, if any
func matchSectionHeader(line string) (string, bool) {
	lower := strings.ToLower(line)
	for _, h := range sectionHeaders {
		for _, kw := range h.keywords {
			if strings.Contains(lower, kw) {
				return h.name, true
			}
		}
	}
	return "", false
}

// segmentSections walks the lines of a résumé as a state machine whose state is
// the current section. A header line switches state and starts that section
// afresh, discarding earlier content under the same name. Other lines are
// appended trimmed to the current section; lines before the first header are
// dropped.
func segmentSections(lines []string) map[string][]string {
	sections := make(map[string][]string)
	current := ""

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if name, ok := matchSectionHeader(trimmed); ok {
			current = name
			sections[name] = []string{}
			continue
		}

		if current != "" {
			sections[current] = append(sections[current], trimmed)
		}
	}

	return sections
}
