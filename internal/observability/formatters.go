// Package observability provides formatted output utilities for verbose CLI mode
// and the human-readable text report.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// writeList writes up to limit items as bullets, then a "... and N more" line
func writeList(sb *strings.Builder, items []string, limit int) {
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

// PrintResumeProfile outputs a summary of the parsed résumé.
func (p *Printer) PrintResumeProfile(profile *types.ResumeProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	meta := profile.Metadata
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orNone(meta.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orNone(meta.Phone)))
	if meta.YearsOfExperience != nil {
		sb.WriteString(fmt.Sprintf("Years:    %d\n", *meta.YearsOfExperience))
	}
	sb.WriteString(fmt.Sprintf("Words:    %d (%d lines)\n", meta.WordCount, meta.LineCount))

	names := make([]string, 0, len(profile.Sections))
	for name := range profile.Sections {
		names = append(names, name)
	}
	sort.Strings(names)
	sb.WriteString(fmt.Sprintf("Sections: %s\n", orNone(strings.Join(names, ", "))))

	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("\nSkills (%d):\n", len(profile.Skills)))
		writeList(&sb, profile.Skills, maxItemsToShow)
	}

	p.printBox("PARSED RÉSUMÉ", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobRequirements outputs the analyzed job requirements.
func (p *Printer) PrintJobRequirements(reqs *types.JobRequirements) {
	if reqs == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Level:    %s (%s years)\n", reqs.ExperienceLevel, reqs.Metadata.YearsRequired))
	sb.WriteString("\n")

	if len(reqs.RequiredSkills) > 0 {
		sb.WriteString("Required:\n")
		writeList(&sb, reqs.RequiredSkills, maxItemsToShow)
		sb.WriteString("\n")
	}
	if len(reqs.PreferredSkills) > 0 {
		sb.WriteString("Preferred:\n")
		writeList(&sb, reqs.PreferredSkills, 3)
		sb.WriteString("\n")
	}
	if len(reqs.KeyResponsibilities) > 0 {
		sb.WriteString("Responsibilities:\n")
		writeList(&sb, reqs.KeyResponsibilities, 3)
	}

	p.printBox("JOB REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillGap outputs matched and missing skills.
func (p *Printer) PrintSkillGap(gap *types.SkillGapReport) {
	if gap == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match:    %.1f%% (%d/%d required)\n", gap.MatchPercentage, gap.TotalMatched, gap.TotalRequired))

	if len(gap.MatchedSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Matched:  %s\n", strings.Join(gap.MatchedSkills, ", ")))
	}
	if len(gap.MissingRequired) > 0 {
		sb.WriteString("\nMissing required:\n")
		writeList(&sb, gap.MissingRequired, maxItemsToShow)
	}
	if len(gap.MissingPreferred) > 0 {
		sb.WriteString("\nMissing preferred:\n")
		writeList(&sb, gap.MissingPreferred, 3)
	}

	if len(gap.CategorizedGaps) > 0 {
		sb.WriteString("\nBy category:\n")
		for _, c := range taxonomy.Categories() {
			if missing, ok := gap.CategorizedGaps[c.Name]; ok {
				sb.WriteString(fmt.Sprintf("  %s: %d\n", c.Name, len(missing)))
			}
		}
	}

	p.printBox("SKILL GAP", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintATSReport outputs the ATS score, feedback and readability.
func (p *Printer) PrintATSReport(report *types.ATSReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %d/%d  Grade: %s\n", report.Score, report.MaxScore, report.Grade))
	r := report.Readability
	sb.WriteString(fmt.Sprintf("Reading:  %d (%.1f words/sentence, %s)\n", r.Score, r.AvgWordsPerSentence, r.Complexity))

	if len(report.Feedback) > 0 {
		sb.WriteString("\n")
		for _, f := range report.Feedback {
			sb.WriteString(fmt.Sprintf("%s [%s] %s\n", severityMark(f.Severity), f.Category, f.Message))
			sb.WriteString(fmt.Sprintf("  → %s\n", f.Suggestion))
		}
	}

	if len(report.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		writeList(&sb, report.Suggestions, maxItemsToShow)
	}

	p.printBox("ATS SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSimilarity outputs the semantic similarity score.
func (p *Printer) PrintSimilarity(similarity float64) {
	p.printBox("SEMANTIC SIMILARITY", fmt.Sprintf("TF-IDF cosine: %.1f%%", similarity))
}

// PrintRoadmap outputs the learning roadmap by bucket.
func (p *Printer) PrintRoadmap(roadmap *types.LearningRoadmap) {
	if roadmap == nil {
		return
	}
	if roadmap.Len() == 0 {
		p.printBox("LEARNING ROADMAP", "✅ No missing skills")
		return
	}

	var sb strings.Builder
	buckets := []struct {
		name  string
		items []types.RoadmapItem
	}{
		{"Immediate", roadmap.Immediate},
		{"Short term", roadmap.ShortTerm},
		{"Long term", roadmap.LongTerm},
	}
	for _, b := range buckets {
		if len(b.items) == 0 {
			continue
		}
		sb.WriteString(b.name + ":\n")
		for _, item := range b.items {
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", item.Skill, item.EstimatedTime))
			sb.WriteString(fmt.Sprintf("    %s: %s\n", item.Platform, item.Resource))
		}
		sb.WriteString("\n")
	}

	p.printBox("LEARNING ROADMAP", strings.TrimSuffix(sb.String(), "\n\n"))
}

// PrintReport outputs every section of a report in pipeline order.
func (p *Printer) PrintReport(report *types.Report) {
	if report == nil {
		return
	}
	p.PrintResumeProfile(report.Resume)
	p.PrintJobRequirements(report.Job)
	p.PrintSkillGap(report.SkillGap)
	p.PrintATSReport(report.ATSScore)
	p.PrintSimilarity(report.SemanticSimilarity)
	p.PrintRoadmap(report.Roadmap)
}

// PrintTaxonomy outputs the skill catalog and which skills have a curated resource.
func (p *Printer) PrintTaxonomy(categories []taxonomy.Category) {
	var sb strings.Builder
	for i, c := range categories {
		sb.WriteString(fmt.Sprintf("%s (%d)\n", c.Name, len(c.Skills)))
		sb.WriteString("  " + strings.Join(c.Skills, ", ") + "\n")
		if i < len(categories)-1 {
			sb.WriteString("\n")
		}
	}
	sb.WriteString(fmt.Sprintf("\nCurated resources: %s", strings.Join(taxonomy.ResourceSkills(), ", ")))

	p.printBox("SKILL TAXONOMY", sb.String())
}

// PrintStepContent prints the output of one pipeline step by its type.
// Unknown content is ignored.
func (p *Printer) PrintStepContent(content any) {
	switch c := content.(type) {
	case *types.ResumeProfile:
		p.PrintResumeProfile(c)
	case *types.JobRequirements:
		p.PrintJobRequirements(c)
	case *types.SkillGapReport:
		p.PrintSkillGap(c)
	case *types.ATSReport:
		p.PrintATSReport(c)
	case float64:
		p.PrintSimilarity(c)
	case *types.LearningRoadmap:
		p.PrintRoadmap(c)
	}
}

// PrintBatchSummary outputs one line per batch item: score and match, or the error.
func (p *Printer) PrintBatchSummary(resp *types.BatchResponse) {
	if resp == nil {
		return
	}
	var sb strings.Builder
	for _, res := range resp.Results {
		if res.Report == nil {
			sb.WriteString(fmt.Sprintf("✗ %s: %s\n", res.ID, res.Error))
			continue
		}
		sb.WriteString(fmt.Sprintf("✓ %s: ATS %d (%s), match %.1f%%, similarity %.1f%%\n",
			res.ID, res.Report.ATSScore.Score, res.Report.ATSScore.Grade,
			res.Report.SkillGap.MatchPercentage, res.Report.SemanticSimilarity))
	}
	sb.WriteString(fmt.Sprintf("\nSucceeded: %d  Failed: %d", resp.Succeeded, resp.Failed))

	p.printBox("BATCH RESULTS", sb.String())
}

func severityMark(severity string) string {
	switch severity {
	case types.SeverityHigh:
		return "✗"
	case types.SeverityMedium:
		return "⚠"
	default:
		return "•"
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
