package scoring

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Feedback categories
const (
	CategorySkills     = "Skills"
	CategoryFormat     = "Format"
	CategoryKeywords   = "Keywords"
	CategoryLength     = "Length"
	CategoryContact    = "Contact"
	CategorySections   = "Sections"
	CategoryExperience = "Experience"
)

var severityWeight = map[string]int{
	types.SeverityHigh:   3,
	types.SeverityMedium: 2,
	types.SeverityLow:    1,
}

// sortFeedback orders feedback by descending severity, keeping emission order for ties
func sortFeedback(items []types.FeedbackItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return severityWeight[items[i].Severity] > severityWeight[items[j].Severity]
	})
}

func skillsFeedback(matchPercentage float64) types.FeedbackItem {
	return types.FeedbackItem{
		Category:   CategorySkills,
		Severity:   types.SeverityHigh,
		Message:    fmt.Sprintf("Only %s%% skill match", strconv.FormatFloat(matchPercentage, 'f', -1, 64)),
		Suggestion: "Add more relevant skills from the job description",
	}
}

func formatFeedback() types.FeedbackItem {
	return types.FeedbackItem{
		Category:   CategoryFormat,
		Severity:   types.SeverityHigh,
		Message:    "Missing key sections",
		Suggestion: "Include: Experience, Education, Skills, Projects",
	}
}

func keywordsFeedback() types.FeedbackItem {
	return types.FeedbackItem{
		Category:   CategoryKeywords,
		Severity:   types.SeverityMedium,
		Message:    "Low keyword density",
		Suggestion: "Naturally incorporate job description keywords",
	}
}

func tooShortFeedback(words int) types.FeedbackItem {
	return types.FeedbackItem{
		Category:   CategoryLength,
		Severity:   types.SeverityMedium,
		Message:    fmt.Sprintf("Too short (%d words)", words),
		Suggestion: "Expand with more details (aim for 400-800 words)",
	}
}

func tooLongFeedback(words int) types.FeedbackItem {
	return types.FeedbackItem{
		Category:   CategoryLength,
		Severity:   types.SeverityLow,
		Message:    fmt.Sprintf("Too long (%d words)", words),
		Suggestion: "Condense to 400-800 words for better readability",
	}
}

func contactFeedback() types.FeedbackItem {
	return types.FeedbackItem{
		Category:   CategoryContact,
		Severity:   types.SeverityHigh,
		Message:    "Missing contact information",
		Suggestion: "Include email and phone number at the top",
	}
}

func sectionsFeedback(missing []string) types.FeedbackItem {
	return types.FeedbackItem{
		Category:   CategorySections,
		Severity:   types.SeverityHigh,
		Message:    "Missing sections: " + strings.Join(missing, ", "),
		Suggestion: "Add all standard resume sections",
	}
}

func unquantifiedFeedback() types.FeedbackItem {
	return types.FeedbackItem{
		Category:   CategoryExperience,
		Severity:   types.SeverityMedium,
		Message:    "No quantifiable achievements",
		Suggestion: `Add metrics: "Increased X by Y%", "Reduced Z by N hours"`,
	}
}

func noExperienceFeedback() types.FeedbackItem {
	return types.FeedbackItem{
		Category:   CategoryExperience,
		Severity:   types.SeverityHigh,
		Message:    "No work experience section found",
		Suggestion: "Add detailed work experience with achievements",
	}
}

// buildSuggestions condenses failed checks into a short list of next steps
func buildSuggestions(checks types.ATSChecks) []string {
	out := make([]string, 0, 4)
	if !checks.Quantifiable {
		out = append(out, "Add numbers and metrics to your achievements")
	}
	if !checks.Keywords {
		out = append(out, "Use more keywords from the job description")
	}
	if !checks.SkillMatch {
		out = append(out, "Highlight more relevant technical skills")
	}
	if !checks.Sections {
		out = append(out, "Organize content into clear sections")
	}
	return out
}
