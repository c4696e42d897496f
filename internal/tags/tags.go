package tags

import (
	"sort"
	"strings"
)

// MaxTags caps how many tags a single document carries in its record.
const MaxTags = 5

// Rule maps a keyword to the tag emitted when the keyword appears in a
// document. Tags are often shorter than the keyword (postgresql -> postgres).
type Rule struct {
	Match string
	Tag   string
}

// Default lexicons, grouped by what the keyword describes.
var (
	Frameworks = []Rule{
		{"react", "react"},
		{"vue", "vue"},
		{"angular", "angular"},
		{"express", "express"},
		{"fastapi", "fastapi"},
		{"django", "django"},
		{"flask", "flask"},
		{"spring", "spring"},
		{"rails", "rails"},
		{"nextjs", "nextjs"},
	}

	Languages = []Rule{
		{"javascript", "js"},
		{"typescript", "ts"},
		{"python", "python"},
		{"rust", "rust"},
		{"go", "go"},
		{"java", "java"},
		{"c++", "cpp"},
		{"c#", "csharp"},
		{"php", "php"},
		{"ruby", "ruby"},
	}

	Technologies = []Rule{
		{"docker", "docker"},
		{"kubernetes", "k8s"},
		{"aws", "aws"},
		{"azure", "azure"},
		{"gcp", "gcp"},
		{"redis", "redis"},
		{"postgresql", "postgres"},
		{"mysql", "mysql"},
		{"mongodb", "mongo"},
		{"elasticsearch", "elastic"},
	}

	Concepts = []Rule{
		{"authentication", "auth"},
		{"authorization", "authz"},
		{"security", "security"},
		{"testing", "testing"},
		{"deployment", "deploy"},
		{"monitoring", "monitoring"},
		{"logging", "logging"},
		{"caching", "cache"},
		{"scaling", "scale"},
		{"performance", "perf"},
	}
)

// Extractor matches documents against a set of keyword lexicons.
type Extractor struct {
	lexicons [][]Rule
}

// NewExtractor returns an extractor over the default lexicons.
func NewExtractor() *Extractor {
	return &Extractor{
		lexicons: [][]Rule{Frameworks, Languages, Technologies, Concepts},
	}
}

// Extract returns up to MaxTags tags for the document, sorted
// alphabetically. Matching is case-insensitive substring containment,
// so "go" also fires on "golang" or "Google"; short keywords over-match
// and that is accepted for a hint-level signal.
func (e *Extractor) Extract(content string) []string {
	lower := strings.ToLower(content)
	seen := make(map[string]struct{})

	for _, lexicon := range e.lexicons {
		for _, rule := range lexicon {
			if strings.Contains(lower, rule.Match) {
				seen[rule.Tag] = struct{}{}
			}
		}
	}

	result := make([]string, 0, len(seen))
	for tag := range seen {
		result = append(result, tag)
	}
	sort.Strings(result)

	if len(result) > MaxTags {
		result = result[:MaxTags]
	}
	return result
}
