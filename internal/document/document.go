// Package document defines the input unit flowing through the compression
// pipeline and the corpus-level statistics accumulated across a run.
package document

import (
	"strings"
	"time"
)

// Document is one input text unit. RawContent is owned by the Document until
// the first transform consumes it; transforms never mutate it in place and
// always return new strings.
type Document struct {
	// Name is the display name (base filename). Not necessarily unique.
	Name string

	// ModifiedAt is the source-provided modification time. Callers default
	// it to time.Now() when the source cannot provide one.
	ModifiedAt time.Time

	// RawContent is the original text.
	RawContent string
}

// SizeBytes returns the byte length of the raw content.
func (d Document) SizeBytes() int {
	return len(d.RawContent)
}

// LineCount returns the number of lines in the raw content.
func (d Document) LineCount() int {
	return CountLines(d.RawContent)
}

// CountLines counts lines the way a line iterator does: a trailing newline
// does not open a final empty line, and the empty string has zero lines.
func CountLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}

// Stats is the statistics record one run exposes to its caller.
type Stats struct {
	OriginalBytes     int
	CompressedBytes   int
	OriginalLines     int
	CompressedLines   int
	ChunkCount        int
	DuplicatesRemoved int
	EmojisRemoved     int
}

// CompressionRatioPercent is the byte reduction as a percentage of the
// original size. Zero when no input was seen.
func (s Stats) CompressionRatioPercent() float64 {
	if s.OriginalBytes == 0 {
		return 0
	}
	return (1 - float64(s.CompressedBytes)/float64(s.OriginalBytes)) * 100
}

// LineRatioPercent is the line reduction as a percentage of original lines.
func (s Stats) LineRatioPercent() float64 {
	if s.OriginalLines == 0 {
		return 0
	}
	return (1 - float64(s.CompressedLines)/float64(s.OriginalLines)) * 100
}

// EstimatedTokens approximates token counts as bytes divided by four.
func EstimatedTokens(byteLen int) int {
	return byteLen / 4
}
