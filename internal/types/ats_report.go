//nolint:revive // types is a standard Go package name pattern
package types

// Feedback severities
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// ATSReport is an applicant-tracking-system style quality assessment
type ATSReport struct {
	Score       int            `json:"score"`
	MaxScore    int            `json:"maxScore"`
	Grade       string         `json:"grade"`
	Feedback    []FeedbackItem `json:"feedback"`
	Checks      ATSChecks      `json:"checks"`
	Readability Readability    `json:"readability"`
	Suggestions []string       `json:"suggestions"`
}

// FeedbackItem describes one failing check and how to address it
type FeedbackItem struct {
	Category   string `json:"category"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
}

// ATSChecks records which checks passed
type ATSChecks struct {
	SkillMatch   bool `json:"skillMatch"`
	Formatting   bool `json:"formatting"`
	Keywords     bool `json:"keywords"`
	Length       bool `json:"length"`
	Contact      bool `json:"contact"`
	Sections     bool `json:"sections"`
	Experience   bool `json:"experience"`
	Quantifiable bool `json:"quantifiable"`
}

// Readability summarizes sentence-length statistics
type Readability struct {
	Score               int     `json:"score"`
	AvgWordsPerSentence float64 `json:"avgWordsPerSentence"`
	TotalSentences      int     `json:"totalSentences"`
	Complexity          string  `json:"complexity"` // low, medium, high
}
