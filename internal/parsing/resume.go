// Package parsing turns raw résumé and job-description text into structured
// profiles using regular expressions and the static skill taxonomy.
package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	emailRe = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)

	// phoneRe accepts an optional country code, a parenthesized area code and
	// "-" or "." separators: +1-555-123-4567, (555)123.4567, 5551234567.
	phoneRe = regexp.MustCompile(`(\+\d{1,3}[-.]?)?\(?\d{3}\)?[-.]?\d{3}[-.]?\d{4}`)

	yearsRe = regexp.MustCompile(`(?i)(\d+)\+?\s*years?`)
)

// ParseResume extracts skills, contact details, sections and basic metadata
// from plain résumé text. Extraction is best-effort: fields with no match are
// left unset. Only empty input is an error.
func ParseResume(text string) (*types.ResumeProfile, error) {
	if isBlank(text) {
		return nil, &InputMissingError{Field: "resume"}
	}

	lines := nonEmptyLines(text)

	profile := &types.ResumeProfile{
		RawText:  text,
		Skills:   NormalizeSkills(taxonomy.DetectSkills(text)),
		Sections: segmentSections(lines),
		Metadata: types.ResumeMetadata{
			Email:     emailRe.FindString(text),
			Phone:     phoneRe.FindString(text),
			WordCount: len(strings.Fields(text)),
			LineCount: len(lines),
		},
	}

	if years, ok := extractYearsOfExperience(text); ok {
		profile.Metadata.YearsOfExperience = &years
	}

	return profile, nil
}

// extractYearsOfExperience returns the number in the first "<n> years" phrase
func extractYearsOfExperience(text string) (int, bool) {
	m := yearsRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	years, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return years, true
}
