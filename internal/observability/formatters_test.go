package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintResumeProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	years := 6
	p.PrintResumeProfile(&types.ResumeProfile{
		Skills: []string{"python", "go", "sql", "docker", "aws", "kafka", "redis"},
		Sections: map[string][]string{
			"skills":     {"Go"},
			"experience": {"Acme"},
		},
		Metadata: types.ResumeMetadata{
			Email:             "jane@example.com",
			YearsOfExperience: &years,
			WordCount:         120,
			LineCount:         14,
		},
	})
	output := buf.String()

	assert.Contains(t, output, "PARSED RÉSUMÉ")
	assert.Contains(t, output, "jane@example.com")
	assert.Contains(t, output, "Phone:    (none)")
	assert.Contains(t, output, "Years:    6")
	assert.Contains(t, output, "Sections: experience, skills")
	assert.Contains(t, output, "... and 2 more")
	assert.NotContains(t, output, "redis")
}

func TestPrintResumeProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResumeProfile(nil)

	assert.Empty(t, buf.String())
}

func TestPrintJobRequirements(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobRequirements(&types.JobRequirements{
		RequiredSkills:      []string{"go", "kubernetes"},
		PreferredSkills:     []string{"rust"},
		ExperienceLevel:     types.LevelSenior,
		KeyResponsibilities: []string{"Operate multi-region clusters"},
		Metadata:            types.JobMetadata{YearsRequired: "5-8+"},
	})
	output := buf.String()

	assert.Contains(t, output, "JOB REQUIREMENTS")
	assert.Contains(t, output, "senior (5-8+ years)")
	assert.Contains(t, output, "• kubernetes")
	assert.Contains(t, output, "• rust")
	assert.Contains(t, output, "Operate multi-region clusters")
}

func TestPrintSkillGap(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkillGap(&types.SkillGapReport{
		MatchPercentage:  66.7,
		MatchedSkills:    []string{"python", "sql"},
		MissingRequired:  []string{"docker"},
		MissingPreferred: []string{},
		CategorizedGaps:  map[string][]string{"Cloud & DevOps": {"docker"}},
		TotalRequired:    3,
		TotalMatched:     2,
	})
	output := buf.String()

	assert.Contains(t, output, "66.7% (2/3 required)")
	assert.Contains(t, output, "Matched:  python, sql")
	assert.Contains(t, output, "• docker")
	assert.Contains(t, output, "Cloud & DevOps: 1")
	assert.NotContains(t, output, "Missing preferred")
}

func TestPrintATSReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintATSReport(&types.ATSReport{
		Score:    62,
		MaxScore: 100,
		Grade:    "C",
		Feedback: []types.FeedbackItem{
			{Category: "Contact", Severity: types.SeverityHigh, Message: "Missing contact information", Suggestion: "Include email"},
			{Category: "Length", Severity: types.SeverityLow, Message: "Too long (900 words)", Suggestion: "Condense"},
		},
		Readability: types.Readability{Score: 80, AvgWordsPerSentence: 26.5, TotalSentences: 10, Complexity: "high"},
		Suggestions: []string{"Organize content into clear sections"},
	})
	output := buf.String()

	assert.Contains(t, output, "ATS SCORE")
	assert.Contains(t, output, "62/100  Grade: C")
	assert.Contains(t, output, "26.5 words/sentence, high")
	assert.Contains(t, output, "✗ [Contact] Missing contact information")
	assert.Contains(t, output, "• [Length] Too long (900 words)")
	assert.Contains(t, output, "Organize content into clear sections")
}

func TestPrintRoadmap(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRoadmap(&types.LearningRoadmap{
		Immediate: []types.RoadmapItem{{Skill: "docker", Resource: "Docker Official Docs", Platform: "Free", EstimatedTime: "1 week"}},
		ShortTerm: []types.RoadmapItem{},
		LongTerm:  []types.RoadmapItem{{Skill: "helm", Resource: "search 'helm tutorial'", Platform: "generic search", EstimatedTime: "2-4 weeks"}},
	})
	output := buf.String()

	assert.Contains(t, output, "Immediate:")
	assert.Contains(t, output, "• docker (1 week)")
	assert.NotContains(t, output, "Short term:")
	assert.Contains(t, output, "Long term:")
	assert.Contains(t, output, "generic search: search 'helm tutorial'")
}

func TestPrintRoadmap_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRoadmap(&types.LearningRoadmap{})

	assert.Contains(t, buf.String(), "No missing skills")
}

func TestPrintReport_AllSections(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReport(&types.Report{
		Resume:             &types.ResumeProfile{Sections: map[string][]string{}},
		Job:                &types.JobRequirements{ExperienceLevel: types.LevelMid},
		SkillGap:           &types.SkillGapReport{},
		ATSScore:           &types.ATSReport{Grade: "F", MaxScore: 100},
		Roadmap:            &types.LearningRoadmap{},
		SemanticSimilarity: 42.5,
	})
	output := buf.String()

	for _, title := range []string{"PARSED RÉSUMÉ", "JOB REQUIREMENTS", "SKILL GAP", "ATS SCORE", "SEMANTIC SIMILARITY", "LEARNING ROADMAP"} {
		assert.Contains(t, output, title)
	}
	assert.Contains(t, output, "42.5%")
}

func TestPrintTaxonomy(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintTaxonomy(taxonomy.Categories())
	output := buf.String()

	assert.Contains(t, output, "SKILL TAXONOMY")
	assert.Contains(t, output, "Programming Languages (18)")
	assert.Contains(t, output, "Curated resources:")
}

func TestPrintBox_LinesFitWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("é", 200)+"\nshort")

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ééé...", truncate("éééééééé", 6))
}

func TestPrintStepContent(t *testing.T) {
	tests := []struct {
		name    string
		content any
		want    string
	}{
		{name: "profile", content: &types.ResumeProfile{}, want: "PARSED RÉSUMÉ"},
		{name: "similarity", content: 42.5, want: "42.5"},
		{name: "roadmap", content: &types.LearningRoadmap{}, want: "LEARNING ROADMAP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPrinter(&buf).PrintStepContent(tt.content)
			assert.Contains(t, buf.String(), tt.want)
		})
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintStepContent("unknown")
	assert.Empty(t, buf.String())
}

func TestPrintBatchSummary(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintBatchSummary(&types.BatchResponse{
		Results: []types.BatchResult{
			{ID: "alice.txt", Report: &types.Report{
				ATSScore:           &types.ATSReport{Score: 90, Grade: "A"},
				SkillGap:           &types.SkillGapReport{MatchPercentage: 66.7},
				SemanticSimilarity: 12.5,
			}},
			{ID: "bob.txt", Error: "input missing: resume is empty"},
		},
		Succeeded: 1,
		Failed:    1,
	})
	output := buf.String()

	assert.Contains(t, output, "BATCH RESULTS")
	assert.Contains(t, output, "✓ alice.txt: ATS 90 (A), match 66.7%, similarity 12.5%")
	assert.Contains(t, output, "✗ bob.txt: input missing: resume is empty")
	assert.Contains(t, output, "Succeeded: 1  Failed: 1")
}
