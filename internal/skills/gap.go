// Package skills compares the skills detected in a résumé against the skills a
// job description asks for.
package skills

import (
	"math"

	"github.com/ecodeclub/ekit/slice"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// ComputeSkillGap builds the gap report for a parsed résumé and analyzed job.
// Matched and missing lists keep the job's detection order. All comparisons are
// case-insensitive.
func ComputeSkillGap(profile *types.ResumeProfile, reqs *types.JobRequirements) *types.SkillGapReport {
	have := normalizeAll(profile.Skills)
	required := normalizeAll(reqs.RequiredSkills)
	preferred := normalizeAll(reqs.PreferredSkills)

	report := &types.SkillGapReport{
		MatchedSkills:    []string{},
		MissingRequired:  []string{},
		MissingPreferred: []string{},
		CategorizedGaps:  make(map[string][]string),
		SkillImportance:  make(map[string]int),
		TotalRequired:    len(required),
	}

	for _, skill := range required {
		if slice.Contains(have, skill) {
			report.MatchedSkills = append(report.MatchedSkills, skill)
		} else {
			report.MissingRequired = append(report.MissingRequired, skill)
		}
		addOrUpdateImportance(report.SkillImportance, skill, types.ImportanceRequired)
	}

	for _, skill := range preferred {
		if !slice.Contains(have, skill) {
			report.MissingPreferred = append(report.MissingPreferred, skill)
		}
		addOrUpdateImportance(report.SkillImportance, skill, types.ImportancePreferred)
	}

	report.TotalMatched = len(report.MatchedSkills)
	report.MatchPercentage = matchPercentage(report.TotalMatched, report.TotalRequired)

	for _, skill := range append(append([]string{}, report.MissingRequired...), report.MissingPreferred...) {
		category, ok := taxonomy.CategoryOf(skill)
		if !ok {
			continue
		}
		report.CategorizedGaps[category] = append(report.CategorizedGaps[category], skill)
	}

	return report
}

// matchPercentage is matched/required as a percentage rounded to one decimal,
// or 0 when nothing is required.
func matchPercentage(matched, required int) float64 {
	if required == 0 {
		return 0
	}
	return math.Round(float64(matched)/float64(required)*1000) / 10
}

// normalizeAll lowercases skill names and drops duplicates and empties,
// keeping first-seen order.
func normalizeAll(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range slice.Map(names, func(_ int, src string) string {
		return parsing.NormalizeSkillName(src)
	}) {
		if name == "" || slice.Contains(out, name) {
			continue
		}
		out = append(out, name)
	}
	return out
}

// addOrUpdateImportance records a skill's weight, keeping the maximum when the
// skill is listed more than once.
func addOrUpdateImportance(importance map[string]int, skill string, weight int) {
	if existing, ok := importance[skill]; ok && existing >= weight {
		return
	}
	importance[skill] = weight
}
