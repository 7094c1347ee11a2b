package nlp

import (
	"sort"
	"strings"

	"github.com/jobradar/jobradar/internal/model"
)

// skillVocabulary is the fixed set of technology and role terms recognized by
// ExtractSkills. Order matters: extracted skills come back in vocabulary order.
var skillVocabulary = []string{
	"javascript", "typescript", "python", "java", "c++", "c#", "ruby", "go",
	"rust", "swift", "kotlin", "php", "scala", "r", "matlab", "perl",
	"react", "angular", "vue", "svelte", "next.js", "nuxt", "gatsby",
	"node.js", "express", "fastapi", "django", "flask", "spring", "rails",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible",
	"mongodb", "postgresql", "mysql", "redis", "elasticsearch", "graphql",
	"rest", "api", "microservices", "serverless", "ci/cd", "jenkins", "github",
	"git", "agile", "scrum", "jira", "confluence", "figma", "sketch",
	"machine learning", "deep learning", "tensorflow", "pytorch", "nlp",
	"computer vision", "data science", "data engineering", "spark", "hadoop",
	"tableau", "power bi", "sql", "nosql", "linux", "unix", "bash",
	"html", "css", "sass", "tailwind", "bootstrap", "material ui",
	"redux", "mobx", "webpack", "vite", "babel", "jest", "cypress",
	"selenium", "playwright", "puppeteer", "blockchain", "web3", "solidity",
}

// ExtractSkills returns the vocabulary terms found in the text, in vocabulary
// order. Matching is substring containment against the preprocessed (but not
// stemmed) text. Single-letter languages like "r" match anywhere a lone "r"
// appears; that imprecision is part of the contract.
func ExtractSkills(text string) []string {
	if text == "" {
		return nil
	}

	processed := Preprocess(text)

	var skills []string
	seen := make(map[string]struct{})
	for _, term := range skillVocabulary {
		if !strings.Contains(processed, term) {
			continue
		}
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		skills = append(skills, term)
	}
	return skills
}

// SkillCount pairs a skill with the number of jobs mentioning it.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// TopSkills tallies skills across all jobs and returns the most frequent
// ones, count descending. Jobs without annotated skills are extracted on the
// fly from their descriptions.
func TopSkills(jobs []model.Job, limit int) []SkillCount {
	counts := make(map[string]int)
	for _, job := range jobs {
		skills := job.Skills
		if skills == nil {
			skills = ExtractSkills(job.Description)
		}
		for _, skill := range skills {
			counts[skill]++
		}
	}

	ranked := make([]SkillCount, 0, len(counts))
	for skill, count := range counts {
		ranked = append(ranked, SkillCount{Skill: skill, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Skill < ranked[j].Skill
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
