// Package vrd renders documents into the VRD machine-first wire format:
// a pipe-delimited header, a metadata line, an abbreviation dictionary,
// and one field-tagged record per source document.
package vrd

import (
	"regexp"
	"strings"
	"time"

	"github.com/fyrsmithlabs/verdant/internal/config"
	"github.com/fyrsmithlabs/verdant/internal/document"
	"github.com/fyrsmithlabs/verdant/internal/tags"
	"github.com/fyrsmithlabs/verdant/internal/transform"
)

// TimeLayout is the timestamp form used in D: fields and META lines.
const TimeLayout = "2006-01-02T15:04:05Z"

var codeBlockPattern = regexp.MustCompile("```(\\w+)?\\n([\\s\\S]*?)```")

// Record holds one document's wire fields. Size and Lines describe the
// raw input so a consumer can judge how much was compressed away.
type Record struct {
	Name       string
	Modified   time.Time
	Size       int
	Lines      int
	Tags       []string
	Headers    []string
	Body       string
	CodeBlocks []string
}

// NewRecord builds a record from a raw document. Tags come from the raw
// content; headers, body and code blocks come from the content after
// optional emoji removal.
func NewRecord(doc document.Document, extractor *tags.Extractor, cfg *config.Config) Record {
	rec := Record{
		Name:     doc.Name,
		Modified: doc.ModifiedAt,
		Size:     doc.SizeBytes(),
		Lines:    doc.LineCount(),
		Tags:     extractor.Extract(doc.RawContent),
		Headers:  ExtractHeaders(doc.RawContent, cfg.RemoveEmojis),
	}

	processed := doc.RawContent
	if cfg.RemoveEmojis {
		processed = transform.RemoveEmojis(processed)
	}
	rec.CodeBlocks = ExtractCodeBlocks(processed)
	rec.Body = CompressBody(processed, cfg.Level)
	return rec
}

// ExtractHeaders returns the text of every markdown header, in document
// order, with the leading # markers stripped.
func ExtractHeaders(content string, removeEmojis bool) []string {
	var headers []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "#") {
			continue
		}
		text := strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		if removeEmojis {
			text = transform.RemoveEmojis(text)
		}
		headers = append(headers, text)
	}
	return headers
}

// ExtractCodeBlocks returns every fenced code block compressed to a
// single → chain, in document order.
func ExtractCodeBlocks(content string) []string {
	var blocks []string
	for _, m := range codeBlockPattern.FindAllStringSubmatch(content, -1) {
		blocks = append(blocks, CompressCode(m[2]))
	}
	return blocks
}

var codeReplacer = strings.NewReplacer(
	" => ", "→",
	" -> ", "→",
	"return ", "→",
	"async function ", "async FN ",
	"function ", "FN ",
	"const ", "",
	"let ", "",
	"var ", "",
	"( ", "(",
	" )", ")",
	"{ ", "{",
	" }", "}",
)

// CompressCode flattens a code block into one line. Blank lines drop,
// the rest are trimmed, rewritten and joined with →.
func CompressCode(code string) string {
	var out []string
	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		out = append(out, codeReplacer.Replace(trimmed))
	}
	return strings.Join(out, "→")
}
