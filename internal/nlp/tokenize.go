// Package nlp provides the text normalization and TF-IDF similarity primitives
// used to compare a résumé with a job description.
package nlp

import (
	"regexp"
	"strings"
)

// minTokenLen is the shortest token kept; shorter tokens carry little signal
const minTokenLen = 3

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "has": true, "he": true,
	"in": true, "is": true, "it": true, "its": true, "of": true, "on": true,
	"that": true, "the": true, "to": true, "was": true, "will": true, "with": true,
}

// Tokenize lowercases text, replaces punctuation with spaces and splits on
// whitespace, dropping stop words and tokens shorter than three characters.
// The result is a fresh slice in text order.
func Tokenize(text string) []string {
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(text), " ")
	fields := strings.Fields(cleaned)

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < minTokenLen || stopWords[f] {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// IsStopWord reports whether word is in the fixed stop-word set
func IsStopWord(word string) bool {
	return stopWords[strings.ToLower(word)]
}
