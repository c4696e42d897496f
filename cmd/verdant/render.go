package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fyrsmithlabs/verdant/internal/document"
)

var (
	resultTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("51")).
				Bold(true).
				Padding(0, 1)

	statLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	statValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true)

	fileNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))
)

func statLine(label, value string) string {
	return fmt.Sprintf("  %s %s\n", statLabelStyle.Render(label), statValueStyle.Render(value))
}

// renderStats formats the post-run summary. The detailed view mirrors
// --stats and adds line counts and token estimates.
func renderStats(stats document.Stats, outputs []string, detailed bool) string {
	var b strings.Builder

	b.WriteString(resultTitleStyle.Render("COMPRESSION RESULTS"))
	b.WriteByte('\n')

	for _, name := range outputs {
		fmt.Fprintf(&b, "  %s %s\n", statLabelStyle.Render("wrote"), fileNameStyle.Render(name))
	}
	if stats.ChunkCount > 0 {
		b.WriteString(statLine("chunks:", fmt.Sprintf("%d", stats.ChunkCount)))
	}

	if detailed {
		b.WriteString(statLine("original:",
			fmt.Sprintf("%d lines, %d chars", stats.OriginalLines, stats.OriginalBytes)))
		b.WriteString(statLine("compressed:",
			fmt.Sprintf("%d lines, %d chars", stats.CompressedLines, stats.CompressedBytes)))
		b.WriteString(statLine("line compression:",
			fmt.Sprintf("%.1f%%", stats.LineRatioPercent())))
		b.WriteString(statLine("char compression:",
			fmt.Sprintf("%.1f%%", stats.CompressionRatioPercent())))

		originalTokens := document.EstimatedTokens(stats.OriginalBytes)
		compressedTokens := document.EstimatedTokens(stats.CompressedBytes)
		saved := originalTokens - compressedTokens
		if saved < 0 {
			saved = 0
		}
		b.WriteString(statLine("est. tokens:",
			fmt.Sprintf("%d → %d (saved ~%d)", originalTokens, compressedTokens, saved)))

		if stats.DuplicatesRemoved > 0 {
			b.WriteString(statLine("duplicates removed:", fmt.Sprintf("%d", stats.DuplicatesRemoved)))
		}
		if stats.EmojisRemoved > 0 {
			b.WriteString(statLine("emojis removed:", fmt.Sprintf("%d", stats.EmojisRemoved)))
		}
	} else {
		b.WriteString(statLine("",
			fmt.Sprintf("%d chars → %d chars (%.1f%% reduction)",
				stats.OriginalBytes, stats.CompressedBytes, stats.CompressionRatioPercent())))
		b.WriteString(statLine("",
			fmt.Sprintf("%d lines → %d lines (%.1f%% reduction)",
				stats.OriginalLines, stats.CompressedLines, stats.LineRatioPercent())))
	}

	return b.String()
}
