package vrd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fyrsmithlabs/verdant/internal/config"
)

// metaPlaceholder occupies the META line during the first encode pass.
// The final line is longer than the placeholder, so token estimates in
// META undercount slightly; consumers treat them as estimates. The
// compressed ratio is reported at one decimal place, and the length
// drift is a few dozen bytes against whole documents, so it stays
// below that precision in practice.
const metaPlaceholder = "META:{files:0,tokens:0,compressed:0.0%,generated:2025-01-01T00:00:00Z}"

// dictEntries is the fixed abbreviation dictionary emitted in every
// payload, in wire order.
var dictEntries = [][2]string{
	{"FN", "function"},
	{"PARAM", "parameter"},
	{"AUTH", "authentication"},
	{"DB", "database"},
	{"API", "application programming interface"},
	{"CFG", "configuration"},
	{"DOC", "documentation"},
	{"IMPL", "implementation"},
	{"ENV", "environment"},
	{"REPO", "repository"},
}

// Encode renders the full VRD payload. originalBytes is the combined
// size of the raw inputs and drives the compressed:% figure. The META
// stats are computed from the payload while it still holds the
// placeholder, then spliced in.
func Encode(records []Record, cfg *config.Config, originalBytes int, generatedAt time.Time) string {
	payload := buildPayload(records, cfg)

	ratio := 0.0
	if originalBytes > 0 {
		ratio = float64(originalBytes-len(payload)) / float64(originalBytes) * 100
	}
	meta := fmt.Sprintf(
		"META:{files:%d,tokens:%d,compressed:%.1f%%,generated:%s}",
		len(records),
		len(payload)/4,
		ratio,
		generatedAt.UTC().Format(TimeLayout),
	)
	return strings.Replace(payload, metaPlaceholder, meta, 1)
}

func buildPayload(records []Record, cfg *config.Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "VRD1.0|TARGET:%s|MODE:%s|CHUNKS:1/1\n",
		strings.ToUpper(string(cfg.Model)),
		strings.ToUpper(string(cfg.Level)))
	b.WriteString(metaPlaceholder)
	b.WriteByte('\n')

	b.WriteString("DICT:{")
	for i, e := range dictEntries {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(e[0])
		b.WriteByte('=')
		b.WriteString(e[1])
	}
	b.WriteString("}\n---\n")

	for i, rec := range records {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "F:%s|D:%s|S:%d|L:%d|T:%s\n",
			rec.Name,
			rec.Modified.UTC().Format(TimeLayout),
			rec.Size,
			rec.Lines,
			strings.Join(rec.Tags, ","))

		if len(rec.Headers) > 0 {
			fmt.Fprintf(&b, "H:%s\n", strings.Join(rec.Headers, ","))
		}
		if body := strings.TrimSpace(rec.Body); body != "" {
			fmt.Fprintf(&b, "C:%s\n", body)
		}
		for _, block := range rec.CodeBlocks {
			fmt.Fprintf(&b, "X:%s\n", block)
		}
		b.WriteString("|\n")
	}

	return b.String()
}
