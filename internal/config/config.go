// Package config provides configuration loading for verdant.
package config

import (
	"fmt"

	"github.com/fyrsmithlabs/verdant/internal/logging"
)

// Level is the ordinal compression tier. Higher tiers strictly extend the
// transform set of lower tiers.
type Level string

const (
	LevelLow     Level = "low"
	LevelMedium  Level = "medium"
	LevelHigh    Level = "high"
	LevelExtreme Level = "extreme"
)

// levelRank orders tiers for AtLeast comparisons.
var levelRank = map[Level]int{
	LevelLow:     0,
	LevelMedium:  1,
	LevelHigh:    2,
	LevelExtreme: 3,
}

// AtLeast reports whether l is at least as aggressive as other.
func (l Level) AtLeast(other Level) bool {
	return levelRank[l] >= levelRank[other]
}

// Valid reports whether l names a known tier.
func (l Level) Valid() bool {
	_, ok := levelRank[l]
	return ok
}

// Model identifies the target AI model for the final adapter pass.
// Unrecognized values get the identity adapter.
type Model string

const (
	ModelClaude  Model = "claude"
	ModelGPT     Model = "gpt"
	ModelCopilot Model = "copilot"
)

// Format selects the output serialization.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatVRD      Format = "vrd"
)

// ChunkConfig controls line-budget splitting of the final payload.
type ChunkConfig struct {
	Enabled  bool `koanf:"enabled"`
	MaxLines int  `koanf:"max_lines"`
}

// Config is the immutable configuration snapshot for one compression run.
// Behavior switches (emoji removal, chronological ordering) are explicit
// fields here rather than ambient process state.
type Config struct {
	// Input is the directory scanned for .md files.
	Input string `koanf:"input"`

	// Output is the base path for output files (extension and chunk
	// numbering are appended).
	Output string `koanf:"output"`

	Level         Level  `koanf:"level"`
	Model         Model  `koanf:"model"`
	Format        Format `koanf:"format"`
	AIMode        bool   `koanf:"ai_mode"`
	RemoveEmojis  bool   `koanf:"remove_emojis"`
	Chronological bool   `koanf:"chronological"`

	Chunk ChunkConfig `koanf:"chunk"`

	Logging logging.Config `koanf:"logging"`
}

// NewDefaultConfig returns the defaults the CLI ships with.
func NewDefaultConfig() *Config {
	return &Config{
		Output:        "compressed",
		Level:         LevelMedium,
		Model:         ModelClaude,
		Format:        FormatMarkdown,
		RemoveEmojis:  true,
		Chronological: true,
		Chunk: ChunkConfig{
			Enabled:  false,
			MaxLines: 800,
		},
		Logging: *logging.NewDefaultConfig(),
	}
}

// Validate checks config for errors. The output format is deliberately not
// validated here: requesting an unsupported format is a pipeline-level fatal
// error so callers get the documented pipeline.ErrUnsupportedFormat.
func (c *Config) Validate() error {
	if !c.Level.Valid() {
		return fmt.Errorf("level must be one of low, medium, high, extreme; got %q", c.Level)
	}
	if c.Chunk.Enabled && c.Chunk.MaxLines <= 0 {
		return fmt.Errorf("chunk max_lines must be > 0, got %d", c.Chunk.MaxLines)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// ExtremeActive reports whether the extreme symbolic/abbreviation
// substitutions apply: either the extreme tier or the explicit AI mode flag.
func (c *Config) ExtremeActive() bool {
	return c.Level == LevelExtreme || c.AIMode
}

// Extension returns the output file extension for the configured format.
func (c *Config) Extension() string {
	if c.Format == FormatVRD {
		return "vrd"
	}
	return "md"
}
