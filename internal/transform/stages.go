package transform

import "github.com/fyrsmithlabs/verdant/internal/config"

// Stage is one named transform in the compression sequence.
type Stage struct {
	Name  string
	Apply func(string) string
}

// Stages assembles the ordered transform sequence for one run. The pipeline
// is a single configurable sequence selected by the config rather than
// parallel per-feature variants:
//
//	always:             emoji strip (optional), whitespace, blank lines,
//	                    headers, inline formatting, model adapter (last)
//	tier >= medium:     code blocks, lists, fluff phrases
//	tier >= high:       connectors, intensifiers
//	extreme or aiMode:  articles, abbreviations, symbols
func Stages(cfg *config.Config) []Stage {
	model := cfg.Model

	var stages []Stage
	if cfg.RemoveEmojis {
		stages = append(stages, Stage{"emojis", RemoveEmojis})
	}
	stages = append(stages,
		Stage{"whitespace", CollapseWhitespace},
		Stage{"blank-lines", DropBlankLines},
		Stage{"headers", CompressHeaders},
		Stage{"formatting", PassthroughFormatting},
	)

	if cfg.Level.AtLeast(config.LevelMedium) {
		stages = append(stages,
			Stage{"code-blocks", func(s string) string { return CompressCodeBlocks(s, model) }},
			Stage{"lists", CompressLists},
			Stage{"fluff", RemoveFluff},
		)
	}

	if cfg.Level.AtLeast(config.LevelHigh) {
		stages = append(stages,
			Stage{"connectors", RemoveConnectors},
			Stage{"intensifiers", RemoveIntensifiers},
		)
	}

	if cfg.ExtremeActive() {
		stages = append(stages, Stage{"symbolic", ApplyExtreme})
	}

	stages = append(stages, Stage{"model", func(s string) string { return AdaptForModel(s, model) }})
	return stages
}

// Run applies the stages in order. Each stage returns a new string; the
// input is never mutated.
func Run(stages []Stage, content string) string {
	for _, stage := range stages {
		content = stage.Apply(content)
	}
	return content
}
