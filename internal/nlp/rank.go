package nlp

import (
	"math"
	"sort"
	"strings"

	"github.com/jobradar/jobradar/internal/model"
)

// neutralScore is assigned to every job when no keywords were given.
const neutralScore = 50

// Score computes the relevance of a job against free-text user keywords,
// in [0, 100]. The score blends three signals over stemmed token sets:
// Jaccard overlap (50%), a capped term-frequency bonus (30%), and a bonus
// for keyword hits in the title (20%).
func Score(userKeywords string, job model.Job) float64 {
	userTokens := TokenizeAndStem(userKeywords)

	jobText := job.Title + " " + job.Description + " " + job.Company + " " + strings.Join(job.Skills, " ")
	jobTokens := TokenizeAndStem(jobText)

	if len(userTokens) == 0 || len(jobTokens) == 0 {
		return 0
	}

	userSet := toSet(userTokens)
	jobSet := toSet(jobTokens)

	intersection := 0
	for tok := range userSet {
		if _, ok := jobSet[tok]; ok {
			intersection++
		}
	}
	union := len(userSet) + len(jobSet) - intersection
	jaccard := float64(intersection) / float64(union)

	// Each user token contributes 0.05 per occurrence in the job text,
	// capped at 0.2 so a single repeated term cannot dominate.
	tfBonus := 0.0
	for _, tok := range userTokens {
		count := 0
		for _, jt := range jobTokens {
			if jt == tok {
				count++
			}
		}
		tfBonus += math.Min(float64(count)*0.05, 0.2)
	}

	titleSet := toSet(TokenizeAndStem(job.Title))
	titleMatches := 0
	for _, tok := range userTokens {
		if _, ok := titleSet[tok]; ok {
			titleMatches++
		}
	}
	titleBonus := float64(titleMatches) * 0.15

	raw := jaccard*50 + tfBonus*30 + titleBonus*20
	return math.Min(math.Round(raw*100)/100, 100)
}

// RankJobs annotates every job with extracted skills and a relevance score,
// then sorts descending by score. The sort is stable: ties keep their input
// order. When userKeywords is blank, no scoring happens: every job gets a
// neutral score of 50 and the input order is preserved.
func RankJobs(jobs []model.Job, userKeywords string) []model.Job {
	ranked := make([]model.Job, len(jobs))
	copy(ranked, jobs)

	if strings.TrimSpace(userKeywords) == "" {
		for i := range ranked {
			ranked[i].Skills = ExtractSkills(ranked[i].Description)
			ranked[i].RelevanceScore = neutralScore
		}
		return ranked
	}

	for i := range ranked {
		ranked[i].Skills = ExtractSkills(ranked[i].Description)
		ranked[i].RelevanceScore = Score(userKeywords, ranked[i])
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RelevanceScore > ranked[j].RelevanceScore
	})

	return ranked
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}
