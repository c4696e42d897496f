package chunk

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/verdant/internal/config"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "compressed_chunk_1.md", FileName("compressed", 1, config.FormatMarkdown))
	assert.Equal(t, "compressed_chunk_2.vrd", FileName("compressed", 2, config.FormatVRD))
	// Bases already containing "chunk" skip the infix.
	assert.Equal(t, "my_chunks_3.md", FileName("my_chunks", 3, config.FormatMarkdown))
}

func numberedLines(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	return b.String()
}

func TestSplit_Markdown(t *testing.T) {
	chunks := Split(numberedLines(1700), 800, config.FormatMarkdown, "compressed")

	require.Len(t, chunks, 3)

	assert.Equal(t, 1, chunks[0].Index)
	assert.Equal(t, 3, chunks[0].Total)
	assert.Equal(t, "compressed_chunk_1.md", chunks[0].FileName)
	assert.True(t, strings.HasPrefix(chunks[0].Content, "CHUNK:1/3 | NEXT:compressed_chunk_2.md\n"))
	assert.Contains(t, chunks[0].Content, "line 1\n")
	assert.Contains(t, chunks[0].Content, "line 800")
	assert.NotContains(t, chunks[0].Content, "line 801")
	assert.Contains(t, chunks[0].Content, "\n---\nCHUNK_END | Lines:800 | Est.tokens:")

	assert.True(t, strings.HasPrefix(chunks[1].Content, "CHUNK:2/3 | NEXT:compressed_chunk_3.md\n"))
	assert.Contains(t, chunks[1].Content, "line 801\n")
	assert.Contains(t, chunks[1].Content, "line 1600")

	// Last chunk has no NEXT link and carries the 100-line remainder.
	assert.True(t, strings.HasPrefix(chunks[2].Content, "CHUNK:3/3\n"))
	assert.Contains(t, chunks[2].Content, "CHUNK_END | Lines:100 |")
	assert.Contains(t, chunks[2].Content, "line 1700")
}

func TestSplit_MarkdownTokenEstimate(t *testing.T) {
	chunks := Split("alpha\nbeta\n", 10, config.FormatMarkdown, "out")

	require.Len(t, chunks, 1)
	body := "CHUNK:1/1\nalpha\nbeta"
	want := body + fmt.Sprintf("\n---\nCHUNK_END | Lines:2 | Est.tokens:%d", len(body)/4)
	assert.Equal(t, want, chunks[0].Content)
}

func TestSplit_VRDHeaderRewrite(t *testing.T) {
	payload := "VRD1.0|TARGET:CLAUDE|MODE:HIGH|CHUNKS:1/1\n" + numberedLines(5)

	chunks := Split(payload, 3, config.FormatVRD, "compressed")

	require.Len(t, chunks, 2)
	assert.True(t, strings.HasPrefix(chunks[0].Content,
		"VRD1.0|TARGET:CLAUDE|MODE:HIGH|CHUNKS:1/2|NEXT:compressed_chunk_2.vrd\n"))
	assert.Equal(t, "compressed_chunk_1.vrd", chunks[0].FileName)

	// Later chunks carry no VRD header, so nothing is rewritten.
	assert.Equal(t, "line 3\nline 4\nline 5", chunks[1].Content)
	assert.Equal(t, "compressed_chunk_2.vrd", chunks[1].FileName)
}

func TestSplit_EmptyPayload(t *testing.T) {
	assert.Nil(t, Split("", 800, config.FormatMarkdown, "out"))
}

func TestSplit_ExactMultiple(t *testing.T) {
	chunks := Split(numberedLines(1600), 800, config.FormatMarkdown, "out")

	require.Len(t, chunks, 2)
	assert.Contains(t, chunks[0].Content, "Lines:800 |")
	assert.Contains(t, chunks[1].Content, "Lines:800 |")
	assert.True(t, strings.HasPrefix(chunks[1].Content, "CHUNK:2/2\n"))
}
