// Package scoring rates a parsed résumé the way an applicant tracking system
// might: seven capped sub-scores summed into a 0-100 score, plus feedback,
// readability statistics and short improvement suggestions.
package scoring

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/nlp"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// MaxScore is the best achievable ATS score
const MaxScore = 100

// Sub-score caps. They sum to MaxScore.
const (
	skillMatchWeight = 30.0
	formattingWeight = 15.0
	keywordWeight    = 20.0
	lengthWeight     = 10.0
	contactWeight    = 5.0
	sectionsWeight   = 10.0
	experienceWeight = 10.0
)

// Check thresholds
const (
	skillMatchPassAbove  = 20.0
	skillMatchFlagBelow  = 15.0
	keywordPassAbove     = 12.0
	keywordFlagBelow     = 10.0
	minFormattedSections = 3
	minWords             = 400
	maxWords             = 800
)

// requiredSections must all be present for the sections check, in reporting order
var requiredSections = []string{
	parsing.SectionExperience,
	parsing.SectionEducation,
	parsing.SectionSkills,
}

var quantifiableRe = regexp.MustCompile(`(?i)\d+%|\d+\+|\$\d+|\d+ [a-z]+`)

// ScoreATS produces the ATS report for a résumé against a job's requirements
// and the skill gap already computed between them.
func ScoreATS(profile *types.ResumeProfile, reqs *types.JobRequirements, gap *types.SkillGapReport) *types.ATSReport {
	card := &scorecard{feedback: make([]types.FeedbackItem, 0)}

	computeSkillMatchScore(card, gap)
	computeFormattingScore(card, profile)
	computeKeywordScore(card, profile, reqs)
	computeLengthScore(card, profile)
	computeContactScore(card, profile)
	computeSectionsScore(card, profile)
	computeExperienceScore(card, profile)

	score := int(math.Round(card.total))
	sortFeedback(card.feedback)

	return &types.ATSReport{
		Score:       score,
		MaxScore:    MaxScore,
		Grade:       GradeFor(score),
		Feedback:    card.feedback,
		Checks:      card.checks,
		Readability: ComputeReadability(profile.RawText),
		Suggestions: buildSuggestions(card.checks),
	}
}

// GradeFor maps a rounded score to a letter grade
func GradeFor(score int) string {
	switch {
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

// scorecard accumulates sub-scores, check flags and feedback while scoring
type scorecard struct {
	total    float64
	checks   types.ATSChecks
	feedback []types.FeedbackItem
}

func (c *scorecard) add(points float64) {
	c.total += points
}

func (c *scorecard) flag(item types.FeedbackItem) {
	c.feedback = append(c.feedback, item)
}

func computeSkillMatchScore(card *scorecard, gap *types.SkillGapReport) {
	score := gap.MatchPercentage / 100 * skillMatchWeight
	card.add(score)
	card.checks.SkillMatch = score > skillMatchPassAbove
	if score < skillMatchFlagBelow {
		card.flag(skillsFeedback(gap.MatchPercentage))
	}
}

func computeFormattingScore(card *scorecard, profile *types.ResumeProfile) {
	if len(profile.Sections) >= minFormattedSections {
		card.add(formattingWeight)
		card.checks.Formatting = true
		return
	}
	card.flag(formatFeedback())
}

// computeKeywordScore tokenizes the required skills and counts how many tokens
// occur as substrings of the lowercased résumé text. No tokens scores 0.
func computeKeywordScore(card *scorecard, profile *types.ResumeProfile, reqs *types.JobRequirements) {
	keywords := nlp.Tokenize(strings.Join(reqs.RequiredSkills, " "))
	resumeText := strings.ToLower(profile.RawText)

	score := 0.0
	if len(keywords) > 0 {
		matches := 0
		for _, kw := range keywords {
			if strings.Contains(resumeText, kw) {
				matches++
			}
		}
		score = float64(matches) / float64(len(keywords)) * keywordWeight
	}

	card.add(score)
	card.checks.Keywords = score > keywordPassAbove
	if score < keywordFlagBelow {
		card.flag(keywordsFeedback())
	}
}

func computeLengthScore(card *scorecard, profile *types.ResumeProfile) {
	words := profile.Metadata.WordCount
	switch {
	case words >= minWords && words <= maxWords:
		card.add(lengthWeight)
		card.checks.Length = true
	case words < minWords:
		card.flag(tooShortFeedback(words))
	default:
		card.flag(tooLongFeedback(words))
	}
}

func computeContactScore(card *scorecard, profile *types.ResumeProfile) {
	if profile.Metadata.Email != "" && profile.Metadata.Phone != "" {
		card.add(contactWeight)
		card.checks.Contact = true
		return
	}
	card.flag(contactFeedback())
}

func computeSectionsScore(card *scorecard, profile *types.ResumeProfile) {
	missing := make([]string, 0, len(requiredSections))
	for _, name := range requiredSections {
		if !profile.HasSection(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		card.add(sectionsWeight)
		card.checks.Sections = true
		return
	}
	card.flag(sectionsFeedback(missing))
}

// computeExperienceScore awards half the weight for a non-empty experience
// section and the other half when any of its lines is quantified.
func computeExperienceScore(card *scorecard, profile *types.ResumeProfile) {
	lines := profile.Sections[parsing.SectionExperience]
	if len(lines) == 0 {
		card.flag(noExperienceFeedback())
		return
	}

	card.add(experienceWeight / 2)
	card.checks.Experience = true

	for _, line := range lines {
		if quantifiableRe.MatchString(line) {
			card.add(experienceWeight / 2)
			card.checks.Quantifiable = true
			return
		}
	}
	card.flag(unquantifiedFeedback())
}
