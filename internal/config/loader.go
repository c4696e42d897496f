package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	maxConfigFileSize = 1024 * 1024 // 1MB

	// envPrefix namespaces the environment variables verdant reads.
	envPrefix = "VERDANT_"
)

// LoadWithFile loads configuration from a YAML file, then overrides with
// environment variables.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (VERDANT_LEVEL, VERDANT_CHUNK_MAX_LINES, ...)
//  2. YAML config file (~/.config/verdant/config.yaml)
//  3. Hardcoded defaults
//
// The configPath parameter specifies the YAML file to load. If empty, the
// default path is used; a missing file is not an error.
//
// Environment variables use underscore separators and are uppercased. The
// transformer splits on the first underscore after the prefix so compound
// field names survive:
//
//	VERDANT_LEVEL           -> level
//	VERDANT_CHUNK_MAX_LINES -> chunk.max_lines
//	VERDANT_LOGGING_FORMAT  -> logging.format
func LoadWithFile(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = filepath.Join(home, ".config", "verdant", "config.yaml")
	}

	if _, err := os.Stat(configPath); err == nil {
		// Open once and validate via the file descriptor to avoid a
		// TOCTOU race between stat and read.
		f, err := os.Open(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
		if info.Size() > maxConfigFileSize {
			return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
		}

		content, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", transformEnvKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := NewDefaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// transformEnvKey maps VERDANT_* environment variables onto config keys.
// Split on the first underscore only (section.field_name pattern); simple
// top-level fields stay as-is.
func transformEnvKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, envPrefix))

	parts := strings.SplitN(lower, "_", 2)
	if len(parts) == 1 {
		return lower
	}

	// Only nested sections use the dot form.
	switch parts[0] {
	case "chunk", "logging":
		return parts[0] + "." + parts[1]
	}
	return lower
}

// applyDefaults backfills values a sparse config file left unset.
func applyDefaults(cfg *Config) {
	if cfg.Output == "" {
		cfg.Output = "compressed"
	}
	if cfg.Level == "" {
		cfg.Level = LevelMedium
	}
	if cfg.Model == "" {
		cfg.Model = ModelClaude
	}
	if cfg.Format == "" {
		cfg.Format = FormatMarkdown
	}
	if cfg.Chunk.MaxLines == 0 {
		cfg.Chunk.MaxLines = 800
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
}
