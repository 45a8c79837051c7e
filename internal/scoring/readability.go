package scoring

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// Readability penalties by average sentence length
const (
	longSentenceWords     = 25.0
	veryLongSentenceWords = 30.0
	mediumSentenceWords   = 20.0
	longSentencePenalty   = 20
	veryLongPenalty       = 10
)

// ComputeReadability derives sentence statistics from raw text. Text with no
// sentences has an average of 0.
func ComputeReadability(text string) types.Readability {
	sentences := 0
	for _, s := range sentenceSplitRe.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	words := len(strings.Fields(text))

	avg := 0.0
	if sentences > 0 {
		avg = float64(words) / float64(sentences)
	}

	score := 100
	if avg > longSentenceWords {
		score -= longSentencePenalty
	}
	if avg > veryLongSentenceWords {
		score -= veryLongPenalty
	}

	complexity := "low"
	switch {
	case avg > longSentenceWords:
		complexity = "high"
	case avg > mediumSentenceWords:
		complexity = "medium"
	}

	return types.Readability{
		Score:               score,
		AvgWordsPerSentence: math.Round(avg*10) / 10,
		TotalSentences:      sentences,
		Complexity:          complexity,
	}
}
