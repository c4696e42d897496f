package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"single line no newline", "hello", 1},
		{"single line trailing newline", "hello\n", 1},
		{"two lines", "a\nb", 2},
		{"two lines trailing newline", "a\nb\n", 2},
		{"blank middle line", "a\n\nb", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountLines(tt.in))
		})
	}
}

func TestStats_Ratios(t *testing.T) {
	s := Stats{
		OriginalBytes:   1000,
		CompressedBytes: 600,
		OriginalLines:   100,
		CompressedLines: 25,
	}

	assert.InDelta(t, 40.0, s.CompressionRatioPercent(), 0.001)
	assert.InDelta(t, 75.0, s.LineRatioPercent(), 0.001)
}

func TestStats_ZeroInput(t *testing.T) {
	var s Stats
	assert.Equal(t, 0.0, s.CompressionRatioPercent())
	assert.Equal(t, 0.0, s.LineRatioPercent())
}

func TestEstimatedTokens(t *testing.T) {
	assert.Equal(t, 0, EstimatedTokens(3))
	assert.Equal(t, 1, EstimatedTokens(4))
	assert.Equal(t, 425, EstimatedTokens(1700))
}
