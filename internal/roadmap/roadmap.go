// Package roadmap turns a skill gap into a prioritized learning plan.
package roadmap

import (
	"sort"

	"github.com/ecodeclub/ekit/slice"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Bucket boundaries by rank: ranks below immediateSlots are immediate, ranks
// below shortTermLimit are short term, the rest are long term.
const (
	immediateSlots = 3
	shortTermLimit = 7
)

// defaultImportance applies to skills missing from the gap's importance map
const defaultImportance = 1

// Generate builds the roadmap for the missing skills of a gap report. Missing
// required skills come before missing preferred ones, then candidates are
// stable-sorted by descending importance and split into buckets by rank.
func Generate(gap *types.SkillGapReport) *types.LearningRoadmap {
	candidates := append(append([]string{}, gap.MissingRequired...), gap.MissingPreferred...)

	items := slice.Map(candidates, func(_ int, skill string) types.RoadmapItem {
		return newItem(skill, importanceOf(gap, skill))
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Importance > items[j].Importance
	})

	roadmap := &types.LearningRoadmap{
		Immediate: []types.RoadmapItem{},
		ShortTerm: []types.RoadmapItem{},
		LongTerm:  []types.RoadmapItem{},
	}
	for rank, item := range items {
		switch {
		case rank < immediateSlots:
			roadmap.Immediate = append(roadmap.Immediate, item)
		case rank < shortTermLimit:
			roadmap.ShortTerm = append(roadmap.ShortTerm, item)
		default:
			roadmap.LongTerm = append(roadmap.LongTerm, item)
		}
	}
	return roadmap
}

func importanceOf(gap *types.SkillGapReport, skill string) int {
	if w, ok := gap.SkillImportance[skill]; ok && w > 0 {
		return w
	}
	return defaultImportance
}

func newItem(skill string, importance int) types.RoadmapItem {
	r := taxonomy.ResourceFor(skill)
	return types.RoadmapItem{
		Skill:         skill,
		Resource:      r.Course,
		Platform:      r.Platform,
		EstimatedTime: r.EstimatedTime,
		Priority:      r.Priority,
		Importance:    importance,
	}
}
