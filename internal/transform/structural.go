package transform

import (
	"regexp"
	"strings"

	"github.com/fyrsmithlabs/verdant/internal/config"
)

// headerPatterns rewrite 1-4 hash headers to H<level>: notation. A line with
// five or more hashes matches none of them and is left untouched.
var headerPatterns = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(?m)^# (.+)$`), "H1:$1"},
	{regexp.MustCompile(`(?m)^## (.+)$`), "H2:$1"},
	{regexp.MustCompile(`(?m)^### (.+)$`), "H3:$1"},
	{regexp.MustCompile(`(?m)^#### (.+)$`), "H4:$1"},
}

var (
	codeBlockPattern = regexp.MustCompile("```(\\w+)?\\n([\\s\\S]*?)```")
	listItemPattern  = regexp.MustCompile(`(?m)^[*-] (.+)$`)
)

// CompressHeaders rewrites markdown headers to the compact H<n>: form.
func CompressHeaders(content string) string {
	for _, p := range headerPatterns {
		content = p.re.ReplaceAllString(content, p.repl)
	}
	return content
}

// PassthroughFormatting is the inline bold/italic/code stage. It is a stable
// no-op: the stage exists as the hook where inline delimiter rewriting would
// slot in, and currently leaves the text byte-for-byte unchanged.
func PassthroughFormatting(content string) string {
	return content
}

// CompressCodeBlocks collapses fenced code blocks into single-line CODE
// notation. Non-blank lines are joined with "|" (" | " and an uppercased
// language prefix for the copilot target). Unterminated fences never match
// and pass through unchanged.
func CompressCodeBlocks(content string, model config.Model) string {
	return codeBlockPattern.ReplaceAllStringFunc(content, func(match string) string {
		sub := codeBlockPattern.FindStringSubmatch(match)
		lang, code := sub[1], sub[2]

		kept := make([]string, 0, 8)
		for _, line := range strings.Split(code, "\n") {
			if strings.TrimSpace(line) != "" {
				kept = append(kept, line)
			}
		}

		if model == config.ModelCopilot {
			body := strings.Join(kept, " | ")
			if lang == "" {
				return "CODE:" + body
			}
			return strings.ToUpper(lang) + ":" + body
		}

		body := strings.Join(kept, "|")
		if lang == "" {
			return "CODE:" + body
		}
		return "CODE(" + lang + "):" + body
	})
}

// CompressLists rewrites "* " / "- " list items to a leading bullet glyph.
func CompressLists(content string) string {
	return listItemPattern.ReplaceAllString(content, "•$1")
}
