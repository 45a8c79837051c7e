package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sentenceOf(words int) string {
	return strings.TrimSpace(strings.Repeat("word ", words)) + "."
}

func TestComputeReadability(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		score      int
		avg        float64
		sentences  int
		complexity string
	}{
		{"short sentences", "One two three. Four five!", 100, 2.5, 2, "low"},
		{"no terminator", "Hello world", 100, 2, 1, "low"},
		{"empty", "", 100, 0, 0, "low"},
		{"only punctuation", "...!?", 100, 0, 0, "low"},
		{"medium", sentenceOf(21), 100, 21, 1, "medium"},
		{"long", sentenceOf(26), 80, 26, 1, "high"},
		{"very long", sentenceOf(31), 70, 31, 1, "high"},
		{"rounded average", "a b c. d e. f g.", 100, 2.3, 3, "low"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ComputeReadability(tt.text)
			assert.Equal(t, tt.score, r.Score)
			assert.Equal(t, tt.avg, r.AvgWordsPerSentence)
			assert.Equal(t, tt.sentences, r.TotalSentences)
			assert.Equal(t, tt.complexity, r.Complexity)
		})
	}
}
