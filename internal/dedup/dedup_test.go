package dedup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const longParagraph = "this paragraph is well over thirty characters long"

func TestApply_RemovesCrossDocumentDuplicates(t *testing.T) {
	d := New()

	a := d.Apply("X\n" + longParagraph)
	b := d.Apply(longParagraph)

	assert.Equal(t, "X\n"+longParagraph, a, "first occurrence is kept")
	assert.Equal(t, "", b, "later occurrence is dropped")
	assert.Equal(t, 1, d.Removed())
}

func TestApply_OrderSensitive(t *testing.T) {
	docA := "X\n" + longParagraph
	docB := longParagraph

	// Order [A, B]: paragraph survives in A, dropped from B.
	d := New()
	gotA := d.Apply(docA)
	gotB := d.Apply(docB)
	assert.Contains(t, gotA, longParagraph)
	assert.NotContains(t, gotB, longParagraph)

	// Order [B, A]: paragraph survives in B, dropped from A.
	d = New()
	gotB = d.Apply(docB)
	gotA = d.Apply(docA)
	assert.Contains(t, gotB, longParagraph)
	assert.NotContains(t, gotA, longParagraph)
}

func TestApply_ShortParagraphsExempt(t *testing.T) {
	d := New()

	short := "## Setup"
	content := short + "\n" + short + "\n" + short

	got := d.Apply(content)
	assert.Equal(t, content, got, "short structural lines always pass")
	assert.Equal(t, 0, d.Removed())
}

func TestApply_ThresholdBoundary(t *testing.T) {
	d := New()

	exactly30 := strings.Repeat("a", 30)
	exactly31 := strings.Repeat("b", 31)

	assert.Equal(t, exactly30+"\n"+exactly30, d.Apply(exactly30+"\n"+exactly30),
		"30 trimmed chars is exempt")
	assert.Equal(t, exactly31, d.Apply(exactly31+"\n"+exactly31),
		"31 trimmed chars dedups")
}

func TestApply_TrimmedExactMatch(t *testing.T) {
	d := New()

	d.Apply("  " + longParagraph + "  ")
	got := d.Apply(longParagraph)

	assert.Equal(t, "", got, "surrounding whitespace does not defeat the match")

	// Case differences do: no normalization beyond trim.
	upper := strings.ToUpper(longParagraph)
	assert.Equal(t, upper, d.Apply(upper))
}

func TestApply_DuplicateWithinSingleDocument(t *testing.T) {
	d := New()

	got := d.Apply(longParagraph + "\n" + longParagraph)
	assert.Equal(t, longParagraph, got)
	assert.Equal(t, 1, d.Removed())
}
