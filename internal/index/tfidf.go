// Package index implements the TF-IDF similarity index the catalog is
// searched through. The index is built once over the full document set
// and is immutable afterwards, so concurrent queries need no locking.
package index

import (
	"math"
	"strings"
)

// Normalizer is the text normalization dependency. The catalog documents
// are normalized at build time; queries must arrive already normalized.
type Normalizer interface {
	Normalize(text string) string
}

// Index is a term-weighted vector space over the catalog documents.
// Row i answers for document i.
type Index struct {
	vocabulary map[string]int
	idf        []float64
	rows       [][]float64
	rowNorms   []float64
}

// Build normalizes every document, derives the vocabulary from the
// normalized corpus, and computes TF-IDF weights. The IDF uses the
// smoothed form 1 + ln((1+N)/(1+df)): monotonically decreasing in
// document frequency, never zero or negative, never dividing by zero.
func Build(documents []string, normalizer Normalizer) *Index {
	n := len(documents)

	tokenized := make([][]string, n)
	vocabulary := make(map[string]int)
	docFreq := make(map[string]int)

	for i, doc := range documents {
		tokens := strings.Fields(normalizer.Normalize(doc))
		tokenized[i] = tokens

		seen := make(map[string]bool, len(tokens))
		for _, t := range tokens {
			if _, ok := vocabulary[t]; !ok {
				vocabulary[t] = len(vocabulary)
			}
			if !seen[t] {
				docFreq[t]++
				seen[t] = true
			}
		}
	}

	idf := make([]float64, len(vocabulary))
	for term, col := range vocabulary {
		idf[col] = 1 + math.Log(float64(1+n)/float64(1+docFreq[term]))
	}

	rows := make([][]float64, n)
	rowNorms := make([]float64, n)
	for i, tokens := range tokenized {
		row := make([]float64, len(vocabulary))
		if len(tokens) > 0 {
			for _, t := range tokens {
				row[vocabulary[t]] += 1 / float64(len(tokens))
			}
			for col := range row {
				row[col] *= idf[col]
			}
		}
		rows[i] = row
		rowNorms[i] = vectorNorm(row)
	}

	return &Index{
		vocabulary: vocabulary,
		idf:        idf,
		rows:       rows,
		rowNorms:   rowNorms,
	}
}

// Len returns the number of indexed documents.
func (ix *Index) Len() int {
	return len(ix.rows)
}

// VocabularySize returns the number of distinct corpus terms.
func (ix *Index) VocabularySize() int {
	return len(ix.vocabulary)
}

// Query projects already-normalized question text into the vocabulary
// space and returns the index and cosine score of the best document.
// Out-of-vocabulary terms contribute nothing. Ties break toward the
// lowest index; a query or document with a zero vector scores exactly 0.
// With an empty index the returned index is -1.
func (ix *Index) Query(normalizedText string) (int, float64) {
	if len(ix.rows) == 0 {
		return -1, 0
	}

	tokens := strings.Fields(normalizedText)

	// Sparse query vector: column -> weight.
	weights := make(map[int]float64)
	if len(tokens) > 0 {
		for _, t := range tokens {
			if col, ok := ix.vocabulary[t]; ok {
				weights[col] += 1 / float64(len(tokens))
			}
		}
		for col := range weights {
			weights[col] *= ix.idf[col]
		}
	}

	var queryNorm float64
	for _, w := range weights {
		queryNorm += w * w
	}
	queryNorm = math.Sqrt(queryNorm)

	best, bestScore := 0, 0.0
	for i, row := range ix.rows {
		score := cosine(weights, queryNorm, row, ix.rowNorms[i])
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	return best, bestScore
}

// cosine computes the cosine similarity between a sparse query vector
// and a dense document row. Zero vectors score 0, never NaN.
func cosine(query map[int]float64, queryNorm float64, row []float64, rowNorm float64) float64 {
	if queryNorm == 0 || rowNorm == 0 {
		return 0
	}

	var dot float64
	for col, w := range query {
		dot += w * row[col]
	}
	return dot / (queryNorm * rowNorm)
}

func vectorNorm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
