// Package main implements the verdant CLI, which compresses markdown
// documentation sets into compact payloads for LLM context windows.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/verdant/internal/config"
	"github.com/fyrsmithlabs/verdant/internal/logging"
	"github.com/fyrsmithlabs/verdant/internal/pipeline"
	"github.com/fyrsmithlabs/verdant/internal/source"
)

var version = "dev"

var (
	cfgFile string

	flagInput         string
	flagOutput        string
	flagLevel         string
	flagModel         string
	flagFormat        string
	flagStats         bool
	flagChunk         bool
	flagMaxLines      int
	flagAIMode        bool
	flagChronological bool
	flagNoEmojis      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "verdant",
	Short: "Compress markdown files for AI consumption",
	Long: `verdant compresses a directory of markdown files into a single compact
payload tuned for LLM context windows.

Examples:
  # Compress ./docs with the defaults (medium level, markdown output)
  verdant --input ./docs

  # Maximum compression in the VRD wire format, split into chunks
  verdant -i ./docs -o notes --level extreme --format vrd --chunk`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCompress,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&cfgFile, "config", "", "config file (default ~/.config/verdant/config.yaml)")
	f.StringVarP(&flagInput, "input", "i", "", "input directory containing .md files")
	f.StringVarP(&flagOutput, "output", "o", "compressed", "output file base path (numbered when chunking)")
	f.StringVarP(&flagLevel, "level", "l", "medium", "compression level (low, medium, high, extreme)")
	f.StringVarP(&flagModel, "model", "m", "claude", "target AI model (claude, gpt, copilot)")
	f.StringVarP(&flagFormat, "format", "f", "md", "output format (md, vrd)")
	f.BoolVarP(&flagStats, "stats", "s", false, "show detailed compression statistics")
	f.BoolVar(&flagChunk, "chunk", false, "split large outputs into smaller files")
	f.IntVar(&flagMaxLines, "max-lines", 800, "maximum lines per chunk")
	f.BoolVar(&flagAIMode, "ai-mode", false, "enable AI-optimized extreme compression")
	f.BoolVar(&flagChronological, "chronological", true, "sort files by modification date, oldest first")
	f.BoolVar(&flagNoEmojis, "no-emojis", true, "remove emojis to save tokens")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(watchCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the verdant version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("verdant %s\n", version)
	},
}

// loadConfig merges file and environment configuration, then applies
// any flags the user explicitly set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadWithFile(cfgFile)
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("input") {
		cfg.Input = flagInput
	}
	if f.Changed("output") {
		cfg.Output = flagOutput
	}
	if f.Changed("level") {
		cfg.Level = config.Level(flagLevel)
	}
	if f.Changed("model") {
		cfg.Model = config.Model(flagModel)
	}
	if f.Changed("format") {
		cfg.Format = config.Format(flagFormat)
	}
	if f.Changed("chunk") {
		cfg.Chunk.Enabled = flagChunk
	}
	if f.Changed("max-lines") {
		cfg.Chunk.MaxLines = flagMaxLines
	}
	if f.Changed("ai-mode") {
		cfg.AIMode = flagAIMode
	}
	if f.Changed("chronological") {
		cfg.Chronological = flagChronological
	}
	if f.Changed("no-emojis") {
		cfg.RemoveEmojis = flagNoEmojis
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Input == "" {
		return nil, fmt.Errorf("input directory is required (--input)")
	}
	return cfg, nil
}

func runCompress(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(&cfg.Logging)
	if err != nil {
		return err
	}
	defer logging.Sync(logger) //nolint:errcheck

	result, outputs, err := compressOnce(cmd, cfg, logger)
	if result != nil && len(outputs) > 0 {
		fmt.Print(renderStats(result.Stats, outputs, flagStats))
	}
	if err != nil {
		return err
	}
	if result == nil {
		fmt.Println("No markdown files found.")
	}
	return nil
}

// compressOnce runs a full discover/load/compress/write cycle. A nil
// result with nil error means no markdown files were found.
func compressOnce(cmd *cobra.Command, cfg *config.Config, logger *zap.Logger) (*pipeline.Result, []string, error) {
	loader := source.NewLoader(logger)

	paths, err := loader.Discover(cfg.Input)
	if err != nil {
		return nil, nil, fmt.Errorf("reading input directory: %w", err)
	}
	docs := loader.Load(paths)
	if len(docs) == 0 {
		return nil, nil, nil
	}
	logger.Info("loaded markdown files", zap.Int("count", len(docs)), zap.String("input", cfg.Input))

	svc, err := pipeline.NewService(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	result, err := svc.Run(cmd.Context(), docs)
	if err != nil {
		return nil, nil, err
	}

	outputs, err := writeResult(cfg, result)
	return result, outputs, err
}

// writeResult writes the payload, or every chunk when chunking is on,
// and returns the file names written. A chunk that fails to write does
// not stop the remaining chunks; the failures come back joined so the
// caller still sees every name that landed.
func writeResult(cfg *config.Config, result *pipeline.Result) ([]string, error) {
	if len(result.Chunks) > 0 {
		outputs := make([]string, 0, len(result.Chunks))
		var errs []error
		for _, c := range result.Chunks {
			if err := os.WriteFile(c.FileName, []byte(c.Content), 0o644); err != nil {
				errs = append(errs, fmt.Errorf("writing chunk %s: %w", c.FileName, err))
				continue
			}
			outputs = append(outputs, c.FileName)
		}
		return outputs, errors.Join(errs...)
	}

	name := cfg.Output + "." + cfg.Extension()
	if err := os.WriteFile(name, []byte(result.Payload), 0o644); err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}
	return []string{name}, nil
}
