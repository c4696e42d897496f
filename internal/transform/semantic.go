package transform

import "regexp"

// Fluff phrases removed (or shortened) at tier medium and above. Matching is
// case-insensitive, whole-phrase.
var fluffReplacements = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(?i)\b(please note that|it should be noted that|it is important to note that)\b`), ""},
	{regexp.MustCompile(`(?i)\b(as mentioned above|as mentioned earlier|as we can see)\b`), ""},
	{regexp.MustCompile(`(?i)\b(in order to|for the purpose of)\b`), "to"},
	{regexp.MustCompile(`(?i)\b(due to the fact that)\b`), "because"},
	{regexp.MustCompile(`(?i)\b(at this point in time)\b`), "now"},
}

// Sentence connectors stripped at tier high and above, including a trailing
// comma and whitespace.
var connectorPattern = regexp.MustCompile(`(?i)\b(however|therefore|furthermore|moreover|additionally),?\s*`)

// Intensifier adverbs stripped at tier high and above.
var intensifierPattern = regexp.MustCompile(`(?i)\b(very|really|quite|basically)\s+`)

// Article stripping and abbreviation substitution for the extreme tier (or
// AI mode). Case-sensitive by contract: capitalized forms survive.
var (
	articlePattern = regexp.MustCompile(`\b(a|an|the)\s+`)

	abbreviations = []struct {
		re   *regexp.Regexp
		repl string
	}{
		{regexp.MustCompile(`\bfunction\b`), "FN"},
		{regexp.MustCompile(`\bparameter\b`), "PARAM"},
		{regexp.MustCompile(`\bdocumentation\b`), "DOC"},
		{regexp.MustCompile(`\bexample\b`), "EX"},
		{regexp.MustCompile(`\binstallation\b`), "INST"},
		{regexp.MustCompile(`\bconfiguration\b`), "CFG"},
		{regexp.MustCompile(`\bauthentication\b`), "AUTH"},
		{regexp.MustCompile(`\bdatabase\b`), "DB"},
		{regexp.MustCompile(`\breturns\b`), "→"},
		{regexp.MustCompile(`\btherefore\b`), "∴"},
	}
)

// RemoveFluff strips filler phrases, mapping a few to short replacements.
func RemoveFluff(content string) string {
	for _, f := range fluffReplacements {
		content = f.re.ReplaceAllString(content, f.repl)
	}
	return content
}

// RemoveConnectors strips sentence connectors.
func RemoveConnectors(content string) string {
	return connectorPattern.ReplaceAllString(content, "")
}

// RemoveIntensifiers strips intensifier adverbs.
func RemoveIntensifiers(content string) string {
	return intensifierPattern.ReplaceAllString(content, "")
}

// ApplyExtreme strips lowercase articles and substitutes the abbreviation
// dictionary plus the returns/therefore symbols.
func ApplyExtreme(content string) string {
	content = articlePattern.ReplaceAllString(content, "")
	for _, a := range abbreviations {
		content = a.re.ReplaceAllString(content, a.repl)
	}
	return content
}
