// Package pipeline orchestrates a compression run: ordering, dedup,
// per-document transforms, payload assembly and chunking.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/verdant/internal/chunk"
	"github.com/fyrsmithlabs/verdant/internal/config"
	"github.com/fyrsmithlabs/verdant/internal/dedup"
	"github.com/fyrsmithlabs/verdant/internal/document"
	"github.com/fyrsmithlabs/verdant/internal/source"
	"github.com/fyrsmithlabs/verdant/internal/tags"
	"github.com/fyrsmithlabs/verdant/internal/transform"
	"github.com/fyrsmithlabs/verdant/internal/vrd"
)

const tracerName = "github.com/fyrsmithlabs/verdant/internal/pipeline"
const meterName = "pipeline"

// ErrUnsupportedFormat rejects output formats other than md and vrd.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Result is one completed run. Payload is the full compressed output;
// Chunks is populated instead when chunking is enabled.
type Result struct {
	Payload string
	Chunks  []chunk.Chunk
	Stats   document.Stats
}

// Service runs the compression pipeline for one configuration.
type Service struct {
	cfg       *config.Config
	log       *zap.Logger
	extractor *tags.Extractor

	tracer trace.Tracer
	meter  metric.Meter

	runsTotal         metric.Int64Counter
	runDuration       metric.Float64Histogram
	compressionRatio  metric.Float64Histogram
	duplicatesRemoved metric.Int64Counter
}

// NewService wires a pipeline service for the given configuration.
func NewService(cfg *config.Config, log *zap.Logger) (*Service, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		cfg:       cfg,
		log:       log,
		extractor: tags.NewExtractor(),
		tracer:    otel.Tracer(tracerName),
		meter:     otel.Meter(meterName),
	}

	if err := s.initMetrics(); err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	return s, nil
}

// Run compresses the documents into a single payload, then chunks it
// when chunking is enabled. Stats always describe the raw inputs
// against the final output.
func (s *Service) Run(ctx context.Context, docs []document.Document) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "pipeline.run",
		trace.WithAttributes(
			attribute.Int("files", len(docs)),
			attribute.String("level", string(s.cfg.Level)),
			attribute.String("model", string(s.cfg.Model)),
			attribute.String("format", string(s.cfg.Format)),
		),
	)
	defer span.End()

	start := time.Now()

	if s.cfg.Format != config.FormatMarkdown && s.cfg.Format != config.FormatVRD {
		err := fmt.Errorf("%w: %s", ErrUnsupportedFormat, s.cfg.Format)
		span.RecordError(err)
		return nil, err
	}

	if s.cfg.Chronological {
		source.SortChronological(docs)
	}

	result := &Result{}
	for _, doc := range docs {
		result.Stats.OriginalBytes += doc.SizeBytes()
		result.Stats.OriginalLines += doc.LineCount()
	}

	// Dedup sees raw content so identical paragraphs match before any
	// transform can diverge them. The low tier keeps everything.
	if s.cfg.Level.AtLeast(config.LevelMedium) {
		d := dedup.New()
		for i := range docs {
			docs[i].RawContent = d.Apply(docs[i].RawContent)
		}
		result.Stats.DuplicatesRemoved = d.Removed()
		if d.Removed() > 0 {
			s.log.Info("removed duplicate paragraphs", zap.Int("count", d.Removed()))
		}
	}

	if s.cfg.RemoveEmojis {
		for _, doc := range docs {
			result.Stats.EmojisRemoved += transform.CountEmojis(doc.RawContent)
		}
		if result.Stats.EmojisRemoved > 0 {
			s.log.Info("removing emojis",
				zap.Int("count", result.Stats.EmojisRemoved),
				zap.Int("tokens_saved", result.Stats.EmojisRemoved*2))
		}
	}

	switch s.cfg.Format {
	case config.FormatVRD:
		if len(docs) == 1 {
			s.log.Warn("VRD format with a single file may be less efficient due to format overhead; " +
				"it is optimized for multi-file documentation sets")
		}
		records := make([]vrd.Record, 0, len(docs))
		for _, doc := range docs {
			records = append(records, vrd.NewRecord(doc, s.extractor, s.cfg))
		}
		result.Payload = vrd.Encode(records, s.cfg, result.Stats.OriginalBytes, time.Now())
	case config.FormatMarkdown:
		result.Payload = s.buildMarkdown(docs)
	}

	if s.cfg.Chunk.Enabled {
		result.Chunks = chunk.Split(result.Payload, s.cfg.Chunk.MaxLines, s.cfg.Format, s.cfg.Output)
		result.Stats.ChunkCount = len(result.Chunks)
		for _, c := range result.Chunks {
			result.Stats.CompressedBytes += len(c.Content)
			result.Stats.CompressedLines += document.CountLines(c.Content)
		}
	} else {
		result.Stats.CompressedBytes = len(result.Payload)
		result.Stats.CompressedLines = document.CountLines(result.Payload)
	}

	elapsed := time.Since(start).Seconds()
	ratio := result.Stats.CompressionRatioPercent()

	s.runsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("level", string(s.cfg.Level)),
		attribute.String("format", string(s.cfg.Format)),
	))
	s.runDuration.Record(ctx, elapsed,
		metric.WithAttributes(attribute.String("format", string(s.cfg.Format))))
	s.compressionRatio.Record(ctx, ratio,
		metric.WithAttributes(attribute.String("level", string(s.cfg.Level))))
	s.duplicatesRemoved.Add(ctx, int64(result.Stats.DuplicatesRemoved))

	span.SetAttributes(
		attribute.Float64("duration_s", elapsed),
		attribute.Float64("compression_ratio_pct", ratio),
		attribute.Int("original_bytes", result.Stats.OriginalBytes),
		attribute.Int("compressed_bytes", result.Stats.CompressedBytes),
		attribute.Int("chunks", result.Stats.ChunkCount),
	)

	s.log.Info("compression run complete",
		zap.Int("files", len(docs)),
		zap.Int("original_bytes", result.Stats.OriginalBytes),
		zap.Int("compressed_bytes", result.Stats.CompressedBytes),
		zap.Float64("ratio_pct", ratio),
		zap.Int("chunks", result.Stats.ChunkCount),
	)

	return result, nil
}

// mdDict is the abbreviation dictionary announced in AI mode, in wire
// order.
var mdDict = [][2]string{
	{"FN", "function"},
	{"PARAM", "parameter"},
	{"DOC", "documentation"},
	{"EX", "example"},
	{"INST", "installation"},
	{"CFG", "configuration"},
	{"AUTH", "authentication"},
	{"DB", "database"},
	{"MW", "middleware"},
	{"COMP", "component"},
}

var modelNotes = map[config.Model]string{
	config.ModelClaude:  "NOTE:Structured data with technical notation\n",
	config.ModelGPT:     "NOTE:Consistent formatting with explicit context\n",
	config.ModelCopilot: "NOTE:Code-focused with file-type hints\n",
}

func (s *Service) buildMarkdown(docs []document.Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "TARGET:%s\n", strings.ToUpper(string(s.cfg.Model)))
	if s.cfg.AIMode {
		b.WriteString("MODE:AI_OPTIMIZED\n")
		b.WriteString("DICT:{")
		for i, e := range mdDict {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(e[0])
			b.WriteByte('=')
			b.WriteString(e[1])
		}
		b.WriteString("}\n")
	}
	b.WriteString(modelNotes[s.cfg.Model])
	b.WriteString("---\n")

	stages := transform.Stages(s.cfg)
	for _, doc := range docs {
		fmt.Fprintf(&b, "F:%s\n", doc.Name)
		b.WriteString(transform.Run(stages, doc.RawContent))
		b.WriteString("\n|\n")
	}

	return b.String()
}

func (s *Service) initMetrics() error {
	var err error

	s.runsTotal, err = s.meter.Int64Counter(
		"pipeline.runs_total",
		metric.WithDescription("Total number of compression runs"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create runs counter: %w", err)
	}

	s.runDuration, err = s.meter.Float64Histogram(
		"pipeline.duration_seconds",
		metric.WithDescription("Time spent on compression runs"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0),
	)
	if err != nil {
		return fmt.Errorf("failed to create duration histogram: %w", err)
	}

	s.compressionRatio, err = s.meter.Float64Histogram(
		"pipeline.compression_ratio_percent",
		metric.WithDescription("Compression ratios achieved"),
		metric.WithUnit("%"),
		metric.WithExplicitBucketBoundaries(0, 10, 25, 50, 75, 90, 100),
	)
	if err != nil {
		return fmt.Errorf("failed to create ratio histogram: %w", err)
	}

	s.duplicatesRemoved, err = s.meter.Int64Counter(
		"pipeline.duplicates_removed_total",
		metric.WithDescription("Total duplicate paragraphs removed across runs"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create duplicates counter: %w", err)
	}

	return nil
}
