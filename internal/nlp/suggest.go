package nlp

import (
	"math"
	"sort"

	"github.com/jobradar/jobradar/internal/model"
)

// SuggestKeywords derives refinement suggestions from a result set. Each
// job's preprocessed title+description is one document in a TF-IDF corpus
// scoped to this result set; each term's tf-idf weight is accumulated across
// documents and the heaviest terms win. Stop words and terms of length <= 2
// are excluded. Deterministic for identical input: weight ties break on the
// term itself.
func SuggestKeywords(jobs []model.Job, limit int) []string {
	if len(jobs) == 0 || limit <= 0 {
		return nil
	}

	docs := make([]map[string]int, len(jobs))
	docFreq := make(map[string]int)
	for i, job := range jobs {
		counts := make(map[string]int)
		for _, term := range Tokenize(Preprocess(job.Title + " " + job.Description)) {
			counts[term]++
		}
		docs[i] = counts
		for term := range counts {
			docFreq[term]++
		}
	}

	n := float64(len(docs))
	weights := make(map[string]float64)
	for _, counts := range docs {
		for term, count := range counts {
			if len(term) <= 2 || IsStopWord(term) {
				continue
			}
			idf := math.Log(n/(1+float64(docFreq[term]))) + 1
			weights[term] += float64(count) * idf
		}
	}

	terms := make([]string, 0, len(weights))
	for term := range weights {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if weights[terms[i]] != weights[terms[j]] {
			return weights[terms[i]] > weights[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > limit {
		terms = terms[:limit]
	}
	return terms
}
