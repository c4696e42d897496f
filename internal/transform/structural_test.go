package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fyrsmithlabs/verdant/internal/config"
)

func TestCompressHeaders(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"h1", "# Title", "H1:Title"},
		{"h2", "## Setup Guide", "H2:Setup Guide"},
		{"h3", "### Deep", "H3:Deep"},
		{"h4", "#### Deeper", "H4:Deeper"},
		{"five hashes untouched", "##### Too Deep", "##### Too Deep"},
		{"no space untouched", "#Title", "#Title"},
		{"mid-document header", "intro\n## Setup Guide\nbody", "intro\nH2:Setup Guide\nbody"},
		{"hash inside line untouched", "use # as a marker", "use # as a marker"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompressHeaders(tt.in))
		})
	}
}

func TestPassthroughFormatting(t *testing.T) {
	in := "**bold** and *italic* and `code`"
	assert.Equal(t, in, PassthroughFormatting(in))
}

func TestCompressCodeBlocks(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		model config.Model
		want  string
	}{
		{
			name:  "tagged block",
			in:    "```js\nconst x = 1;\nreturn x;\n```",
			model: config.ModelClaude,
			want:  "CODE(js):const x = 1;|return x;",
		},
		{
			name:  "untagged block",
			in:    "```\nfoo\nbar\n```",
			model: config.ModelClaude,
			want:  "CODE:foo|bar",
		},
		{
			name:  "blank lines dropped",
			in:    "```go\na\n\nb\n```",
			model: config.ModelClaude,
			want:  "CODE(go):a|b",
		},
		{
			name:  "copilot tagged",
			in:    "```js\nconst x = 1;\nreturn x;\n```",
			model: config.ModelCopilot,
			want:  "JS:const x = 1; | return x;",
		},
		{
			name:  "copilot untagged",
			in:    "```\nfoo\nbar\n```",
			model: config.ModelCopilot,
			want:  "CODE:foo | bar",
		},
		{
			name:  "unterminated fence untouched",
			in:    "```js\nconst x = 1;",
			model: config.ModelClaude,
			want:  "```js\nconst x = 1;",
		},
		{
			name:  "surrounding text preserved",
			in:    "before\n```py\nx = 1\n```\nafter",
			model: config.ModelClaude,
			want:  "before\nCODE(py):x = 1\nafter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompressCodeBlocks(tt.in, tt.model))
		})
	}
}

func TestCompressLists(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"star marker", "* item", "•item"},
		{"dash marker", "- item", "•item"},
		{"multiple items", "* one\n- two", "•one\n•two"},
		{"no marker untouched", "plain line", "plain line"},
		{"marker without space untouched", "*tight", "*tight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompressLists(tt.in))
		})
	}
}
