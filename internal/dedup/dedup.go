// Package dedup removes exact duplicate paragraphs across a document corpus.
//
// A paragraph is the text between newline characters. The seen set is global
// to the run: once a paragraph has appeared in any document, later occurrences
// are dropped from every subsequent document, so results depend on processing
// order. Matching is trimmed exact text with no further normalization.
package dedup

import "strings"

// MinParagraphLength is the trimmed length a paragraph must exceed to be
// subject to deduplication. Shorter paragraphs (single words, list markers,
// structural lines) always pass through unchanged.
const MinParagraphLength = 30

// Deduplicator carries the run-global seen set and the removal counter.
// Not safe for concurrent use; the pipeline processes documents serially.
type Deduplicator struct {
	seen    map[string]struct{}
	removed int
}

// New creates an empty Deduplicator.
func New() *Deduplicator {
	return &Deduplicator{seen: make(map[string]struct{})}
}

// Apply returns content with already-seen paragraphs removed, and records
// newly seen ones. Callers must invoke Apply in deterministic document order.
func (d *Deduplicator) Apply(content string) string {
	paragraphs := strings.Split(content, "\n")
	unique := make([]string, 0, len(paragraphs))

	for _, paragraph := range paragraphs {
		trimmed := strings.TrimSpace(paragraph)
		if len(trimmed) <= MinParagraphLength {
			unique = append(unique, paragraph)
			continue
		}
		if _, ok := d.seen[trimmed]; ok {
			d.removed++
			continue
		}
		d.seen[trimmed] = struct{}{}
		unique = append(unique, paragraph)
	}

	return strings.Join(unique, "\n")
}

// Removed returns the running count of paragraphs dropped so far.
func (d *Deduplicator) Removed() int {
	return d.removed
}
