// Package transform implements the lossy text transforms of the compression
// pipeline: whitespace normalization, structural markdown rewriting, semantic
// reduction, and the per-model adapter pass. Every transform is a total
// string-to-string function; malformed markdown constructs are left unmatched
// rather than erroring.
package transform

import (
	"regexp"
	"strings"
)

// emojiPattern covers the eight Unicode blocks stripped when emoji removal is
// enabled: emoticons, misc pictographs, transport/map, regional indicators,
// misc symbols, dingbats, supplemental symbols, extended pictographs.
var emojiPattern = regexp.MustCompile(`[` +
	`\x{1F600}-\x{1F64F}` +
	`\x{1F300}-\x{1F5FF}` +
	`\x{1F680}-\x{1F6FF}` +
	`\x{1F1E0}-\x{1F1FF}` +
	`\x{2600}-\x{26FF}` +
	`\x{2700}-\x{27BF}` +
	`\x{1F900}-\x{1F9FF}` +
	`\x{1FA70}-\x{1FAFF}` +
	`]`)

var (
	multipleNewlines = regexp.MustCompile(`\n{2,}`)
	multipleSpaces   = regexp.MustCompile(` {2,}`)
	trailingSpaces   = regexp.MustCompile(` +\n`)
)

// RemoveEmojis strips emoji glyphs. It must run before whitespace collapsing
// since removal can itself introduce double spaces.
func RemoveEmojis(content string) string {
	return emojiPattern.ReplaceAllString(content, "")
}

// CountEmojis counts emoji glyphs, used for token-savings reporting.
func CountEmojis(content string) int {
	return len(emojiPattern.FindAllStringIndex(content, -1))
}

// CollapseWhitespace squeezes runs of newlines and spaces and strips spaces
// that precede a newline.
func CollapseWhitespace(content string) string {
	result := multipleNewlines.ReplaceAllString(content, "\n")
	result = multipleSpaces.ReplaceAllString(result, " ")
	result = trailingSpaces.ReplaceAllString(result, "\n")
	return result
}

// DropBlankLines removes every line that is empty after trimming.
func DropBlankLines(content string) string {
	lines := strings.Split(content, "\n")
	kept := lines[:0:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// Normalize runs the whitespace/blank-line/emoji pass over one document.
func Normalize(content string, removeEmojis bool) string {
	if removeEmojis {
		content = RemoveEmojis(content)
	}
	content = CollapseWhitespace(content)
	return DropBlankLines(content)
}
