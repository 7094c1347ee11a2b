package nlp

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball/english"
)

var (
	punctRegexp      = regexp.MustCompile(`[^\w\s+#.]`)
	whitespaceRegexp = regexp.MustCompile(`\s+`)
	wordRegexp       = regexp.MustCompile(`[a-z0-9_]+`)
)

// abbreviation maps a shorthand term to its expanded form. Expansion is
// whole-word and applied in declaration order.
type abbreviation struct {
	re   *regexp.Regexp
	full string
}

var abbreviations = buildAbbreviations([][2]string{
	{"js", "javascript"},
	{"ts", "typescript"},
	{"py", "python"},
	{"ml", "machine learning"},
	{"ai", "artificial intelligence"},
	{"dl", "deep learning"},
	{"fe", "frontend"},
	{"be", "backend"},
	{"fs", "fullstack"},
	{"db", "database"},
	{"sql", "database"},
	{"nosql", "database"},
	{"k8s", "kubernetes"},
	{"aws", "amazon web services"},
	{"gcp", "google cloud platform"},
	{"ci/cd", "continuous integration"},
	{"ux", "user experience"},
	{"ui", "user interface"},
	{"qa", "quality assurance"},
	{"swe", "software engineer"},
	{"sde", "software development engineer"},
	{"pm", "product manager"},
	{"devops", "development operations"},
})

func buildAbbreviations(pairs [][2]string) []abbreviation {
	abbrs := make([]abbreviation, 0, len(pairs))
	for _, p := range pairs {
		abbrs = append(abbrs, abbreviation{
			re:   regexp.MustCompile(`\b` + regexp.QuoteMeta(p[0]) + `\b`),
			full: p[1],
		})
	}
	return abbrs
}

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"a", "an", "the", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "from", "as", "is", "was", "are", "were", "been",
		"be", "have", "has", "had", "do", "does", "did", "will", "would", "could",
		"should", "may", "might", "must", "shall", "can", "need", "dare", "ought",
		"used", "it", "its", "this", "that", "these", "those", "i", "you", "he",
		"she", "we", "they", "what", "which", "who", "whom", "whose", "where",
		"when", "why", "how", "all", "each", "every", "both", "few", "more",
		"most", "other", "some", "such", "no", "nor", "not", "only", "own",
		"same", "so", "than", "too", "very", "just", "about", "above", "after",
		"again", "against", "am", "any", "because", "before", "being", "below",
		"between", "during", "further", "here", "into", "off", "once", "our",
		"out", "over", "then", "there", "through", "under", "until", "up", "while",
		"your", "his", "her", "my", "their", "also", "etc", "able", "nbsp",
	} {
		stopWords[w] = struct{}{}
	}
}

// IsStopWord reports whether the term is in the fixed stop-word set.
func IsStopWord(term string) bool {
	_, ok := stopWords[term]
	return ok
}

// Preprocess normalizes text for comparison: lowercase, strip everything
// except word characters and "+", "#", ".", collapse whitespace, then expand
// known abbreviations as whole words (js -> javascript, k8s -> kubernetes).
func Preprocess(text string) string {
	if text == "" {
		return ""
	}

	processed := strings.ToLower(text)
	processed = punctRegexp.ReplaceAllString(processed, " ")
	processed = strings.TrimSpace(whitespaceRegexp.ReplaceAllString(processed, " "))

	for _, a := range abbreviations {
		processed = a.re.ReplaceAllString(processed, a.full)
	}

	return processed
}

// Tokenize splits preprocessed text into word tokens (runs of letters,
// digits, and underscores). Punctuation kept by Preprocess ("+", "#", ".")
// acts as a separator here, so "node.js" tokenizes as "node", "js".
func Tokenize(text string) []string {
	return wordRegexp.FindAllString(text, -1)
}

// TokenizeAndStem runs the full token pipeline: preprocess, tokenize, drop
// single-character tokens and stop words, stem the rest.
func TokenizeAndStem(text string) []string {
	tokens := Tokenize(Preprocess(text))

	stemmed := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) <= 1 {
			continue
		}
		if IsStopWord(tok) {
			continue
		}
		stemmed = append(stemmed, english.Stem(tok, false))
	}
	return stemmed
}
