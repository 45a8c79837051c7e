package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkillName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Python", "python"},
		{"  Machine Learning ", "machine learning"},
		{"NODE.JS", "node.js"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSkillName(tt.input))
		})
	}
}

func TestNormalizeSkills_DeduplicatesKeepingFirst(t *testing.T) {
	got := NormalizeSkills([]string{"Docker", "python", " DOCKER", "", "SQL", "Python"})
	assert.Equal(t, []string{"docker", "python", "sql"}, got)
}

func TestNormalizeSkills_Empty(t *testing.T) {
	assert.Empty(t, NormalizeSkills(nil))
}
