package transform

import (
	"regexp"

	"github.com/fyrsmithlabs/verdant/internal/config"
)

// gpt targets get explicit structure markers on the already-compacted headers.
var sectionPattern = regexp.MustCompile(`H(\d):(.+)`)

// AdaptForModel is the final per-target pass.
func AdaptForModel(content string, model config.Model) string {
	switch model {
	case config.ModelCopilot:
		return prioritizeCode(content)
	case config.ModelGPT:
		return sectionPattern.ReplaceAllString(content, "SECTION_L$1:$2")
	case config.ModelClaude:
		return content
	default:
		return content
	}
}

// prioritizeCode is the copilot hook for reordering code blocks to the front
// of their sections. Performing no content change here is a stable contract;
// the hook exists so the reorder can land without touching the stage order.
func prioritizeCode(content string) string {
	return content
}
