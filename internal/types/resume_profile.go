// Package types provides type definitions for structured data used throughout the resume analyzer.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeProfile represents a résumé parsed from plain text
type ResumeProfile struct {
	RawText  string              `json:"rawText"`
	Skills   []string            `json:"skills"`
	Sections map[string][]string `json:"sections"`
	Metadata ResumeMetadata      `json:"metadata"`
}

// ResumeMetadata holds best-effort facts extracted from the résumé text.
// Email, Phone and YearsOfExperience are left unset when nothing matched.
type ResumeMetadata struct {
	Email             string `json:"email,omitempty"`
	Phone             string `json:"phone,omitempty"`
	YearsOfExperience *int   `json:"yearsOfExperience,omitempty"`
	WordCount         int    `json:"wordCount"`
	LineCount         int    `json:"lineCount"`
}

// HasSection reports whether a section header was detected, even if the section is empty
func (p *ResumeProfile) HasSection(name string) bool {
	_, ok := p.Sections[name]
	return ok
}
