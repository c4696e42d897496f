// Package chunk splits a compressed payload into fixed-size line windows
// so each piece fits a context window, with forward links between pieces.
package chunk

import (
	"fmt"
	"strings"

	"github.com/fyrsmithlabs/verdant/internal/config"
)

// Chunk is one output piece. Index is 1-based.
type Chunk struct {
	Index    int
	Total    int
	FileName string
	Content  string
}

// FileName names chunk files <base>_chunk_<i>.<ext>, except when the
// base already contains "chunk", which would double the word.
func FileName(base string, index int, format config.Format) string {
	ext := string(format)
	if strings.Contains(base, "chunk") {
		return fmt.Sprintf("%s_%d.%s", base, index, ext)
	}
	return fmt.Sprintf("%s_chunk_%d.%s", base, index, ext)
}

// Split cuts the payload into ceil(lines/maxLines) chunks. Markdown
// chunks carry a CHUNK header and a CHUNK_END footer; VRD chunks reuse
// the CHUNKS field already in the payload header, so only the first
// chunk (which holds that header) is rewritten.
func Split(payload string, maxLines int, format config.Format, base string) []Chunk {
	lines := strings.Split(payload, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if len(lines) == 0 {
		return nil
	}

	total := (len(lines) + maxLines - 1) / maxLines
	chunks := make([]Chunk, 0, total)

	for i := 0; i < total; i++ {
		start := i * maxLines
		end := start + maxLines
		if end > len(lines) {
			end = len(lines)
		}
		part := lines[start:end]

		var content string
		if format == config.FormatVRD {
			content = vrdChunk(strings.Join(part, "\n"), i+1, total, base, format)
		} else {
			content = mdChunk(part, i+1, total, base, format)
		}

		chunks = append(chunks, Chunk{
			Index:    i + 1,
			Total:    total,
			FileName: FileName(base, i+1, format),
			Content:  content,
		})
	}

	return chunks
}

func mdChunk(part []string, index, total int, base string, format config.Format) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CHUNK:%d/%d", index, total)
	if index < total {
		fmt.Fprintf(&b, " | NEXT:%s", FileName(base, index+1, format))
	}
	b.WriteByte('\n')
	b.WriteString(strings.Join(part, "\n"))

	// The token estimate covers the chunk before its own footer.
	body := b.String()
	return body + fmt.Sprintf("\n---\nCHUNK_END | Lines:%d | Est.tokens:%d", len(part), len(body)/4)
}

func vrdChunk(content string, index, total int, base string, format config.Format) string {
	marker := fmt.Sprintf("CHUNKS:%d/%d", index, total)
	content = strings.Replace(content, "CHUNKS:1/1", marker, 1)
	if index < total {
		content = strings.Replace(content, marker, marker+"|NEXT:"+FileName(base, index+1, format), 1)
	}
	return content
}
