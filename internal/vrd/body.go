package vrd

import (
	"regexp"
	"strings"

	"github.com/fyrsmithlabs/verdant/internal/config"
	"github.com/fyrsmithlabs/verdant/internal/transform"
)

// Arrow rewrites run in two tiers. The enhanced patterns capture both
// sides of a relationship and must run before the basic connector words
// get collapsed, or the captures have nothing left to bind.
type arrowRule struct {
	pattern *regexp.Regexp
	repl    string
}

var enhancedArrowRules = []arrowRule{
	// Process flows
	{regexp.MustCompile(`(?i)user submits form`), "user→form"},
	{regexp.MustCompile(`(?i)server validates data`), "server→validate"},
	{regexp.MustCompile(`(?i)database stores result`), "DB→store"},
	{regexp.MustCompile(`(?i)system sends response`), "system→response"},

	// Causal relationships
	{regexp.MustCompile(`(?i)(\w+)\s+triggers\s+(\w+)`), "$1→$2"},
	{regexp.MustCompile(`(?i)(\w+)\s+causes\s+(\w+)`), "$1→$2"},
	{regexp.MustCompile(`(?i)(\w+)\s+leads to\s+(\w+)`), "$1→$2"},
	{regexp.MustCompile(`(?i)(\w+)\s+results in\s+(\w+)`), "$1→$2"},

	// Temporal sequences
	{regexp.MustCompile(`(?i)after\s+(\w+),?\s+(\w+)`), "$1→$2"},
	{regexp.MustCompile(`(?i)once\s+(\w+),?\s+(\w+)`), "$1→$2"},
	{regexp.MustCompile(`(?i)when\s+(\w+),?\s+(\w+)`), "$1→$2"},
	{regexp.MustCompile(`(?i)then\s+(\w+)`), "→$1"},

	// Data flows
	{regexp.MustCompile(`(?i)(\w+)\s+passes\s+(\w+)\s+to\s+(\w+)`), "$1→$2→$3"},
	{regexp.MustCompile(`(?i)(\w+)\s+sends\s+(\w+)`), "$1→$2"},
	{regexp.MustCompile(`(?i)(\w+)\s+receives\s+(\w+)`), "$2→$1"},
}

var basicArrowRules = []arrowRule{
	{regexp.MustCompile(` then `), "→"},
	{regexp.MustCompile(` and then `), "→"},
	{regexp.MustCompile(` which `), "→"},
	{regexp.MustCompile(` that `), "→"},
	{regexp.MustCompile(` leads to `), "→"},
	{regexp.MustCompile(` results in `), "→"},
	{regexp.MustCompile(` causes `), "→"},
	{regexp.MustCompile(` triggers `), "→"},
	{regexp.MustCompile(` followed by `), "→"},
}

// Body abbreviations are case-sensitive so identifiers like
// "Authentication" in headings survive untouched.
var bodyAbbreviations = []arrowRule{
	{regexp.MustCompile(`\bapplication\b`), "app"},
	{regexp.MustCompile(`\bconfiguration\b`), "CFG"},
	{regexp.MustCompile(`\bauthentication\b`), "AUTH"},
	{regexp.MustCompile(`\bauthorization\b`), "AUTHZ"},
	{regexp.MustCompile(`\bdatabase\b`), "DB"},
	{regexp.MustCompile(`\bfunction\b`), "FN"},
	{regexp.MustCompile(`\bparameter\b`), "PARAM"},
	{regexp.MustCompile(`\bvariable\b`), "var"},
	{regexp.MustCompile(`\bimplementation\b`), "IMPL"},
	{regexp.MustCompile(`\bdocumentation\b`), "DOC"},
	{regexp.MustCompile(`\bexample\b`), "EX"},
	{regexp.MustCompile(`\binstallation\b`), "INST"},
	{regexp.MustCompile(`\bdevelopment\b`), "dev"},
	{regexp.MustCompile(`\bproduction\b`), "prod"},
	{regexp.MustCompile(`\benvironment\b`), "env"},
	{regexp.MustCompile(`\brepository\b`), "repo"},
}

var (
	bodyBulletPattern   = regexp.MustCompile(`(?m)^[*-]\s+(.+)$`)
	bodyNumberedPattern = regexp.MustCompile(`(?m)^\d+\.\s+(.+)$`)
	bodyCodePattern     = regexp.MustCompile("```[\\s\\S]*?```")
)

var sentenceRules = []arrowRule{
	{regexp.MustCompile(`(?i)in order to`), "to"},
	{regexp.MustCompile(`(?i)due to the fact that`), "because"},
	{regexp.MustCompile(`(?i)it is important to note that`), "NOTE:"},
	{regexp.MustCompile(`(?i)please note that`), "NOTE:"},
	{regexp.MustCompile(`(?i)as mentioned above`), "↑"},
	{regexp.MustCompile(`(?i)as shown below`), "↓"},
	{regexp.MustCompile(`(?i)for example`), "EX:"},
	{regexp.MustCompile(`(?i)such as`), "e.g."},
	{regexp.MustCompile(`(?i)and so on`), "etc"},
	{regexp.MustCompile(`(?i)at this point in time`), "now"},
	{regexp.MustCompile(`(?i)in the event that`), "if"},
	{regexp.MustCompile(`(?i)on the other hand`), "vs"},
}

var (
	extremeArticlePattern = regexp.MustCompile(`\b(a|an|the)\s+`)
	extremeFillerPattern  = regexp.MustCompile(`\b(really|very|quite|just|simply|basically|essentially|actually|literally)\s+`)
)

var aggressiveRules = []arrowRule{
	{regexp.MustCompile(`(?i)\bin order to\b`), "to"},
	{regexp.MustCompile(`(?i)\bdue to the fact that\b`), "because"},
	{regexp.MustCompile(`(?i)\bit is important to note that\b`), "NOTE:"},
	{regexp.MustCompile(`(?i)\bplease note that\b`), "NOTE:"},
	{regexp.MustCompile(`(?i)\bas mentioned above\b`), "↑"},
	{regexp.MustCompile(`(?i)\bas shown below\b`), "↓"},
	{regexp.MustCompile(`(?i)\bfor example\b`), "EX:"},
	{regexp.MustCompile(`(?i)\bsuch as\b`), "e.g."},
	{regexp.MustCompile(`(?i)\band so on\b`), "etc"},
	{regexp.MustCompile(`(?i)\bat this point in time\b`), "now"},
	{regexp.MustCompile(`(?i)\bin the event that\b`), "if"},
	{regexp.MustCompile(`(?i)\bon the other hand\b`), "vs"},
	{regexp.MustCompile(`(?i)\bGenerated:\b`), "Gen:"},
	{regexp.MustCompile(`(?i)\bCreated:\b`), "Made:"},
	{regexp.MustCompile(`(?i)\bImplemented:\b`), "Built:"},
	{regexp.MustCompile(`(?i)\bAchievement:\b`), "Win:"},
	{regexp.MustCompile(`(?i)\bAccomplished:\b`), "Done:"},
	{regexp.MustCompile(`(?i)\bFeatures\b`), "F:"},
	{regexp.MustCompile(`(?i)\bPriority\b`), "P"},
	{regexp.MustCompile(`(?i)\bCurrent\b`), "Now"},
	{regexp.MustCompile(`(?i)\bStrategic\b`), "Strategy"},
	{regexp.MustCompile(`(?i)\bTechnical\b`), "Tech"},
	{regexp.MustCompile(`(?i)\bDevelopment\b`), "Dev"},
	{regexp.MustCompile(`(?i)\bImplementation\b`), "Impl"},
	{regexp.MustCompile(`(?i)\bOptimization\b`), "Opt"},
	{regexp.MustCompile(`(?i)\bSpecification\b`), "Spec"},
	{regexp.MustCompile(`(?i)\bDocumentation\b`), "Doc"},
	{regexp.MustCompile(`(?i)\bRepository\b`), "Repo"},
	{regexp.MustCompile(`(?i)\bApplication\b`), "App"},
	{regexp.MustCompile(`(?i)\bConfiguration\b`), "Config"},
	{regexp.MustCompile(`(?i)\bEnvironment\b`), "Env"},
	{regexp.MustCompile(`(?i)\bPerformance\b`), "Perf"},
	{regexp.MustCompile(`(?i)\bQuality Assurance\b`), "QA"},
	{regexp.MustCompile(`(?i)\bUser Experience\b`), "UX"},
	{regexp.MustCompile(`(?i)\bBreakthrough\b`), "Win"},
	{regexp.MustCompile(`(?i)\brepresents\b`), "="},
	{regexp.MustCompile(`(?i)\bdemonstrates\b`), "shows"},
	{regexp.MustCompile(`(?i)\bsuccessfully\b`), "✓"},
	{regexp.MustCompile(`(?i)\befficiently\b`), "fast"},
	{regexp.MustCompile(`(?i)\bcomprehensive\b`), "full"},
	{regexp.MustCompile(`(?i)\binnovative\b`), "new"},
	{regexp.MustCompile(`(?i)\brevolutionary\b`), "new"},
	{regexp.MustCompile(`(?i)\bsignificant\b`), "big"},
	{regexp.MustCompile(`(?i)\bimportant\b`), "key"},
	{regexp.MustCompile(`(?i)\bpotential\b`), "could"},
	{regexp.MustCompile(`(?i)\bcapability\b`), "can"},
	{regexp.MustCompile(`(?i)\bfunctionality\b`), "work"},
	{regexp.MustCompile(`(?i)\bopportunity\b`), "chance"},
	{regexp.MustCompile(`(?i)\bimprovement\b`), "fix"},
	{regexp.MustCompile(`(?i)\benhancement\b`), "boost"},
}

var mathRules = []arrowRule{
	{regexp.MustCompile(`(?i)\breturn\b`), "→"},
	{regexp.MustCompile(`(?i)\byield\b`), "⟶"},
	{regexp.MustCompile(`(?i)\btherefore\b`), "∴"},
	{regexp.MustCompile(`(?i)\bbecause\b`), "∵"},
	{regexp.MustCompile(`(?i)\bequals?\b`), "="},
	{regexp.MustCompile(`(?i)\bnot equal`), "≠"},
	{regexp.MustCompile(`(?i)\bgreater than or equal`), "≥"},
	{regexp.MustCompile(`(?i)\bless than or equal`), "≤"},
	{regexp.MustCompile(`(?i)\bapproximately`), "≈"},
	{regexp.MustCompile(`(?i)\binfinity`), "∞"},
	{regexp.MustCompile(`(?i)\bsum of`), "Σ"},
	{regexp.MustCompile(`(?i)\bfor all`), "∀"},
	{regexp.MustCompile(`(?i)\bthere exists`), "∃"},
	{regexp.MustCompile(`(?i)\bmapping to`), "↦"},
	{regexp.MustCompile(`(?i)\bimplies`), "⟹"},
	{regexp.MustCompile(`(?i)\bif and only if`), "⟺"},
}

func applyRules(content string, rules []arrowRule) string {
	for _, r := range rules {
		content = r.pattern.ReplaceAllString(content, r.repl)
	}
	return content
}

// ArrowNotation rewrites causal and sequential prose into → chains.
func ArrowNotation(content string) string {
	return applyRules(applyRules(content, enhancedArrowRules), basicArrowRules)
}

// Abbreviate applies the dictionary abbreviations declared in the
// payload's DICT line.
func Abbreviate(content string) string {
	return applyRules(content, bodyAbbreviations)
}

// CompactLists converts markdown bullets to • and numbered items to №.
func CompactLists(content string) string {
	content = bodyBulletPattern.ReplaceAllString(content, "•$1")
	return bodyNumberedPattern.ReplaceAllString(content, "№$1")
}

// CompactSentences replaces verbose phrases with terse markers.
func CompactSentences(content string) string {
	return applyRules(content, sentenceRules)
}

// ExtremeCompress strips articles, filler words and markdown emphasis,
// then applies the aggressive phrase table.
func ExtremeCompress(content string) string {
	content = extremeArticlePattern.ReplaceAllString(content, "")
	content = extremeFillerPattern.ReplaceAllString(content, "")
	content = strings.ReplaceAll(content, "**", "")
	content = strings.ReplaceAll(content, "*", "")
	return applyRules(content, aggressiveRules)
}

// MathNotation substitutes mathematical symbols for their prose forms.
func MathNotation(content string) string {
	return applyRules(content, mathRules)
}

// CompressBody reduces a document to its prose payload. Code blocks and
// headers are dropped here because they travel in the X: and H: fields.
func CompressBody(content string, level config.Level) string {
	content = bodyCodePattern.ReplaceAllString(content, "")

	lines := strings.Split(content, "\n")
	kept := lines[:0:0]
	for _, line := range lines {
		if !strings.HasPrefix(strings.TrimLeft(line, " \t"), "#") {
			kept = append(kept, line)
		}
	}
	content = strings.Join(kept, "\n")

	content = transform.CollapseWhitespace(content)
	content = transform.DropBlankLines(content)

	content = ArrowNotation(content)
	content = Abbreviate(content)
	content = CompactLists(content)
	content = CompactSentences(content)

	if level.AtLeast(config.LevelHigh) {
		content = ExtremeCompress(content)
		content = MathNotation(content)
	}

	return content
}
