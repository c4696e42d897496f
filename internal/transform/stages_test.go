package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fyrsmithlabs/verdant/internal/config"
)

func stageNames(stages []Stage) []string {
	names := make([]string, len(stages))
	for i, s := range stages {
		names[i] = s.Name
	}
	return names
}

func TestStages_TierSelection(t *testing.T) {
	base := func(level config.Level) *config.Config {
		cfg := config.NewDefaultConfig()
		cfg.Level = level
		return cfg
	}

	low := stageNames(Stages(base(config.LevelLow)))
	medium := stageNames(Stages(base(config.LevelMedium)))
	high := stageNames(Stages(base(config.LevelHigh)))
	extreme := stageNames(Stages(base(config.LevelExtreme)))

	assert.Equal(t, []string{"emojis", "whitespace", "blank-lines", "headers", "formatting", "model"}, low)
	assert.Contains(t, medium, "code-blocks")
	assert.Contains(t, medium, "fluff")
	assert.NotContains(t, medium, "connectors")
	assert.Contains(t, high, "connectors")
	assert.NotContains(t, high, "symbolic")
	assert.Contains(t, extreme, "symbolic")

	// Monotonic: every stage active at tier N is active at tier N+1.
	for _, pair := range [][2][]string{{low, medium}, {medium, high}, {high, extreme}} {
		for _, name := range pair[0] {
			assert.Contains(t, pair[1], name)
		}
	}
}

func TestStages_AIModeForcesSymbolic(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Level = config.LevelLow
	cfg.AIMode = true

	assert.Contains(t, stageNames(Stages(cfg)), "symbolic")
}

func TestStages_EmojiStageOptional(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.RemoveEmojis = false

	assert.NotContains(t, stageNames(Stages(cfg)), "emojis")
}

func TestStages_ModelAdapterIsLast(t *testing.T) {
	for _, level := range []config.Level{config.LevelLow, config.LevelMedium, config.LevelHigh, config.LevelExtreme} {
		cfg := config.NewDefaultConfig()
		cfg.Level = level
		stages := Stages(cfg)
		assert.Equal(t, "model", stages[len(stages)-1].Name)
	}
}

func TestRun_FullPipeline(t *testing.T) {
	cfg := config.NewDefaultConfig() // medium, claude
	in := "# Setup 😀\n\nPlease note that you must run:\n\n```sh\nmake install\n\nmake test\n```\n\n* first\n* second\n"

	got := Run(Stages(cfg), in)

	assert.Contains(t, got, "H1:Setup")
	assert.Contains(t, got, "CODE(sh):make install|make test")
	assert.Contains(t, got, "•first")
	assert.NotContains(t, got, "Please note that")
	assert.NotContains(t, got, "😀")
}

func TestRun_GPTSections(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Model = config.ModelGPT

	got := Run(Stages(cfg), "## Setup Guide\nbody")
	assert.Contains(t, got, "SECTION_L2:Setup Guide")
}

func TestRun_InputNotMutated(t *testing.T) {
	cfg := config.NewDefaultConfig()
	in := "# Title\n\ntext"
	saved := in

	_ = Run(Stages(cfg), in)
	assert.Equal(t, saved, in)
}
