package nlp

import (
	"math"
	"sort"
)

// Vector is a sparse term -> weight mapping
type Vector map[string]float64

// Corpus is the set of documents IDF is computed over. For an analysis it holds
// exactly the résumé and the job description, so IDF takes at most two values.
type Corpus struct {
	docs []map[string]bool
}

// NewCorpus tokenizes each text once and records which terms it contains
func NewCorpus(texts ...string) *Corpus {
	c := &Corpus{docs: make([]map[string]bool, len(texts))}
	for i, text := range texts {
		set := make(map[string]bool)
		for _, tok := range Tokenize(text) {
			set[tok] = true
		}
		c.docs[i] = set
	}
	return c
}

// Size returns the number of documents in the corpus
func (c *Corpus) Size() int {
	return len(c.docs)
}

// DocumentFrequency returns how many documents contain term
func (c *Corpus) DocumentFrequency(term string) int {
	n := 0
	for _, doc := range c.docs {
		if doc[term] {
			n++
		}
	}
	return n
}

// InverseDocumentFrequency returns log(N / (1 + df)).
// With a two-document corpus a term present in one document weighs 0 and a
// term present in both weighs log(2/3).
func (c *Corpus) InverseDocumentFrequency(term string) float64 {
	return math.Log(float64(c.Size()) / float64(1+c.DocumentFrequency(term)))
}

// TermFrequency counts token occurrences in text and divides each count by the
// highest count in the document.
func TermFrequency(text string) Vector {
	tf := make(Vector)
	for _, tok := range Tokenize(text) {
		tf[tok]++
	}

	maxFreq := 0.0
	for _, n := range tf {
		maxFreq = math.Max(maxFreq, n)
	}
	for term := range tf {
		tf[term] /= maxFreq
	}
	return tf
}

// TFIDF weighs every term of text by its frequency and its IDF over corpus
func TFIDF(text string, corpus *Corpus) Vector {
	tf := TermFrequency(text)
	out := make(Vector, len(tf))
	for term, freq := range tf {
		out[term] = freq * corpus.InverseDocumentFrequency(term)
	}
	return out
}

// CosineSimilarity returns the cosine of the angle between v1 and v2 over the
// union of their terms, or 0 when either vector has zero magnitude. Terms are
// visited in sorted order so the result is reproducible bit for bit.
func CosineSimilarity(v1, v2 Vector) float64 {
	keys := make([]string, 0, len(v1)+len(v2))
	for k := range v1 {
		keys = append(keys, k)
	}
	for k := range v2 {
		if _, ok := v1[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var dot, mag1, mag2 float64
	for _, k := range keys {
		a, b := v1[k], v2[k]
		dot += a * b
		mag1 += a * a
		mag2 += b * b
	}

	if mag1 == 0 || mag2 == 0 {
		return 0
	}
	return dot / (math.Sqrt(mag1) * math.Sqrt(mag2))
}

// SemanticSimilarity scores how close two texts are as a percentage rounded to
// one decimal place, using TF-IDF vectors over the corpus {a, b}.
func SemanticSimilarity(a, b string) float64 {
	corpus := NewCorpus(a, b)
	sim := CosineSimilarity(TFIDF(a, corpus), TFIDF(b, corpus)) * 100
	return math.Round(sim*10) / 10
}
